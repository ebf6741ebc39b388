package models

import "gorm.io/gorm"

// General enquiry statuses (independent of the course-enquiry pipeline)
const (
	GenEnquiryPending    = "pending"
	GenEnquiryInProgress = "in-progress"
	GenEnquiryResolved   = "resolved"
	GenEnquiryClosed     = "closed"
)

// ValidGeneralEnquiryStatus reports whether s is a general-enquiry status.
func ValidGeneralEnquiryStatus(s string) bool {
	switch s {
	case GenEnquiryPending, GenEnquiryInProgress, GenEnquiryResolved, GenEnquiryClosed:
		return true
	}
	return false
}

type GeneralEnquiry struct {
	gorm.Model
	Email     string `json:"email" gorm:"not null"`
	CourseID  uint   `json:"courseId" gorm:"index;not null"`
	Status    string `json:"status" gorm:"default:'pending'"`
	IsDeleted bool   `json:"isDeleted" gorm:"default:false"`
}
