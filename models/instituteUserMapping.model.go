package models

import (
	"time"

	"gorm.io/gorm"
)

type InstituteUserMapping struct {
	gorm.Model
	UserID      uint       `json:"userId" gorm:"index;not null"`
	InstituteID uint       `json:"instituteId" gorm:"index;not null"`
	ValidFrom   time.Time  `json:"validFrom" gorm:"autoCreateTime"`
	ValidTo     *time.Time `json:"validTo" gorm:"default:NULL"`
	IsActive    bool       `json:"isActive" gorm:"default:true"`
	IsDeleted   bool       `json:"isDeleted" gorm:"default:false"`
}
