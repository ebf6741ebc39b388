package models

import (
	"time"

	"gorm.io/gorm"
)

type CoursePriceMapping struct {
	gorm.Model
	CourseID  uint       `json:"courseId" gorm:"index;not null"`
	PriceID   uint       `json:"priceId" gorm:"index;not null"`
	ValidFrom time.Time  `json:"validFrom" gorm:"autoCreateTime"`
	ValidTo   *time.Time `json:"validTo" gorm:"default:NULL"`
	IsActive  bool       `json:"isActive" gorm:"default:true"`
	IsDeleted bool       `json:"isDeleted" gorm:"default:false"`
}
