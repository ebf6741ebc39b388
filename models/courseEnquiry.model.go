package models

import "gorm.io/gorm"

// Course enquiry statuses
const (
	EnquiryPending            = "pending"
	EnquiryInProgress         = "in-progress"
	EnquiryClosedAndWon       = "closedAndWon"
	EnquiryClosedAndLost      = "closedAndLost"
	EnquiryCloseWithOutReason = "closeWithOutReason"
)

// ValidEnquiryStatus reports whether s is one of the enquiry status values.
func ValidEnquiryStatus(s string) bool {
	switch s {
	case EnquiryPending, EnquiryInProgress, EnquiryClosedAndWon,
		EnquiryClosedAndLost, EnquiryCloseWithOutReason:
		return true
	}
	return false
}

type CourseEnquiry struct {
	gorm.Model
	Name           string `json:"name" gorm:"not null"`
	Email          string `json:"email" gorm:"not null"`
	Phone          string `json:"phone" gorm:"default:''"`
	Message        string `json:"message" gorm:"type:text;not null"`
	Status         string `json:"status" gorm:"default:'pending'"`
	ClosureMessage string `json:"closureMessage" gorm:"type:text;default:''"`
	IsDeleted      bool   `json:"isDeleted" gorm:"default:false"`
}
