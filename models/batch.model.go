package models

import (
	"time"

	"gorm.io/gorm"
)

// Batch delivery modes
const (
	BatchModeOnline  = "Online"
	BatchModeOffline = "Offline"
	BatchModeHybrid  = "Hybrid"
)

type Batch struct {
	gorm.Model
	CourseID  uint      `json:"courseId" gorm:"index;not null"`
	BatchName string    `json:"batchName" gorm:"not null"`
	BatchNo   string    `json:"batchNo" gorm:"not null"`
	StartDate time.Time `json:"startDate" gorm:"not null"`
	EndDate   time.Time `json:"endDate" gorm:"not null"`
	StartTime string    `json:"startTime" gorm:"not null"`
	EndTime   string    `json:"endTime" gorm:"not null"`
	Mode      string    `json:"mode" gorm:"not null"` // Online, Offline, Hybrid
	Location  string    `json:"location" gorm:"not null"`
	Capacity  int       `json:"capacity" gorm:"not null"`
	IsActive  bool      `json:"isActive" gorm:"default:true"`
	IsDeleted bool      `json:"isDeleted" gorm:"default:false"`
}
