package models

import "gorm.io/gorm"

// Deal statuses
const (
	DealPending  = "pending"
	DealApproved = "approved"
	DealRejected = "rejected"
)

type RaisedDeal struct {
	gorm.Model
	RequestedPrice float64 `json:"requestedPrice" gorm:"not null"`
	RequestedSeats int     `json:"requestedSeats" gorm:"not null"`
	Status         string  `json:"status" gorm:"default:'pending'"`
	AdminRemarks   string  `json:"adminRemarks" gorm:"type:text;default:''"`
	IsDeleted      bool    `json:"isDeleted" gorm:"default:false"`
}
