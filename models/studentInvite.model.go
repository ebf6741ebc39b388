package models

import "gorm.io/gorm"

type StudentInvite struct {
	gorm.Model
	Email       string `json:"email" gorm:"not null"`
	Token       string `json:"-" gorm:"not null;index"`
	InstituteID uint   `json:"instituteId" gorm:"index;not null"`
	IsUsed      bool   `json:"isUsed" gorm:"default:false"`
}
