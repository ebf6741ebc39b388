package models

import "gorm.io/gorm"

type Rating struct {
	gorm.Model
	Rating            int    `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Review            string `json:"review" gorm:"type:text;default:''"`
	ShowInCourse      bool   `json:"showInCourse" gorm:"default:false"`
	ShowInTestimonial bool   `json:"showInTestimonial" gorm:"default:false"`
	IsActive          bool   `json:"isActive" gorm:"default:true"`
	IsDeleted         bool   `json:"isDeleted" gorm:"default:false"`
}
