package models

import (
	"time"

	"gorm.io/gorm"
)

type SpecialPrice struct {
	gorm.Model
	SpecialPrice float64    `json:"specialPrice" gorm:"not null"`
	ValidFrom    time.Time  `json:"validFrom" gorm:"autoCreateTime"`
	ValidTo      *time.Time `json:"validTo" gorm:"default:NULL"`
	IsActive     bool       `json:"isActive" gorm:"default:true"`
	IsDeleted    bool       `json:"isDeleted" gorm:"default:false"`
}
