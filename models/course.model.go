package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	CourseName      string `json:"courseName" gorm:"not null"`
	Description     string `json:"description" gorm:"type:text"`
	CourseThumbnail string `json:"courseThumbnail" gorm:"default:''"`
	VideoUrl        string `json:"videoUrl"`
	PdfUrl          string `json:"pdfUrl"`
	Duration        string `json:"duration"`
	Language        string `json:"language"`
	Category        string `json:"category" gorm:"default:'free courses'"`
	CreatedBy       string `json:"createdBy" gorm:"default:'admin'"`
	IsFree          bool   `json:"isFree" gorm:"default:false"`
	IsActive        bool   `json:"isActive" gorm:"default:true"`
	IsDeleted       bool   `json:"isDeleted" gorm:"default:false"`
}
