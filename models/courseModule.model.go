package models

import "gorm.io/gorm"

type CourseModule struct {
	gorm.Model
	Title     string `json:"title" gorm:"not null"`
	Subtitle  string `json:"subtitle" gorm:"default:''"`
	Content   string `json:"content" gorm:"type:text;default:''"`
	Order     int    `json:"order" gorm:"column:item_order;default:0"`
	IsActive  bool   `json:"isActive" gorm:"default:true"`
	IsDeleted bool   `json:"isDeleted" gorm:"default:false"`
}
