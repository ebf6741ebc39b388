package models

import (
	"time"

	"gorm.io/gorm"
)

type CourseEnquiryMapping struct {
	gorm.Model
	CourseID  uint       `json:"courseId" gorm:"index;not null"`
	UserID    uint       `json:"userId" gorm:"index;not null"`
	EnquiryID uint       `json:"enquiryId" gorm:"index;not null"`
	ValidFrom time.Time  `json:"validFrom" gorm:"autoCreateTime"`
	ValidTo   *time.Time `json:"validTo" gorm:"default:NULL"`
	IsDeleted bool       `json:"isDeleted" gorm:"default:false"`
}
