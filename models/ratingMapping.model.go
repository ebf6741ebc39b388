package models

import (
	"time"

	"gorm.io/gorm"
)

type RatingMapping struct {
	gorm.Model
	CourseID  uint       `json:"courseId" gorm:"index;not null"`
	UserID    uint       `json:"userId" gorm:"index;not null"`
	RatingID  uint       `json:"ratingId" gorm:"index;not null"`
	ValidFrom time.Time  `json:"validFrom" gorm:"autoCreateTime"`
	ValidTo   *time.Time `json:"validTo" gorm:"default:NULL"`
	IsActive  bool       `json:"isActive" gorm:"default:true"`
	IsDeleted bool       `json:"isDeleted" gorm:"default:false"`
}
