package models

import "gorm.io/gorm"

// Assignment priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// ValidPriority reports whether p is a known assignment priority.
func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// EnquiryAssign records one act of delegating an enquiry to a child admin.
type EnquiryAssign struct {
	gorm.Model
	Priority   string `json:"priority" gorm:"default:'medium'"`
	AdminNotes string `json:"adminNotes" gorm:"type:text;default:''"`
	AssignedBy string `json:"assignedBy" gorm:"default:'admin'"`
	IsDeleted  bool   `json:"isDeleted" gorm:"default:false"`
}
