package models

import "gorm.io/gorm"

type Price struct {
	gorm.Model
	Price     float64 `json:"price" gorm:"not null"`
	IsActive  bool    `json:"isActive" gorm:"default:true"`
	IsDeleted bool    `json:"isDeleted" gorm:"default:false"`
}
