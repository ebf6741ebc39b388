package models

import "gorm.io/gorm"

type FollowUpMapping struct {
	gorm.Model
	FollowUpID   uint `json:"followUpId" gorm:"index;not null"`
	EnquiryID    uint `json:"enquiryId" gorm:"index;not null"`
	ChildAdminID uint `json:"childAdminId" gorm:"index;not null"`
	IsDeleted    bool `json:"isDeleted" gorm:"default:false"`
}
