package models

import "gorm.io/gorm"

type InstituteStudentMapping struct {
	gorm.Model
	StudentID   uint `json:"studentId" gorm:"index;not null"`
	InstituteID uint `json:"instituteId" gorm:"index;not null"`
	IsDeleted   bool `json:"isDeleted" gorm:"default:false"`
}
