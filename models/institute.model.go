package models

import "gorm.io/gorm"

type Institute struct {
	gorm.Model
	InstituteName string `json:"instituteName" gorm:"not null"`
	ContactPerson string `json:"contactPerson" gorm:"not null"`
	Email         string `json:"email" gorm:"not null"`
	Phone         string `json:"phone" gorm:"not null"`
	Address       string `json:"address" gorm:"default:''"`
	IsVerified    bool   `json:"isVerified" gorm:"default:false"`
	IsActive      bool   `json:"isActive" gorm:"default:false"`
	IsDeleted     bool   `json:"isDeleted" gorm:"default:false"`
}
