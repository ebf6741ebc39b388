package models

import "gorm.io/gorm"

type Mentor struct {
	gorm.Model
	MentorName    string `json:"mentorName" gorm:"not null"`
	Title         string `json:"title" gorm:"not null"`
	Description   string `json:"description" gorm:"type:text;default:''"`
	MentorPic     string `json:"mentorPic" gorm:"default:''"`
	CreatedByName string `json:"createdByName" gorm:"default:''"`
	UpdatedByName string `json:"updatedByName" gorm:"default:''"`
	DeletedByName string `json:"deletedByName" gorm:"default:''"`
	IsActive      bool   `json:"isActive" gorm:"default:true"`
	IsDeleted     bool   `json:"isDeleted" gorm:"default:false"`
}
