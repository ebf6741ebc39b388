package models

import (
	"time"

	"gorm.io/gorm"
)

// EnquiryAssignMapping binds an enquiry to the responsible child admin.
// At most one non-deleted row may exist per enquiry; AssignEnquiry enforces
// this at write time and ReassignEnquiry replaces the active row.
type EnquiryAssignMapping struct {
	gorm.Model
	EnquiryID    uint       `json:"enquiryId" gorm:"index;not null"`
	ChildAdminID uint       `json:"childAdminId" gorm:"index;not null"`
	AssignID     uint       `json:"assignId" gorm:"index;not null"`
	ValidFrom    time.Time  `json:"validFrom" gorm:"autoCreateTime"`
	ValidTo      *time.Time `json:"validTo" gorm:"default:NULL"`
	IsDeleted    bool       `json:"isDeleted" gorm:"default:false"`
}
