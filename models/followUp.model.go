package models

import (
	"time"

	"gorm.io/gorm"
)

// Follow-up contact modes
const (
	ModeCall            = "call"
	ModeOnlineMeeting   = "onlineMeeting"
	ModePhysicalMeeting = "physicalMeeting"
)

// ValidFollowUpMode reports whether m is a known follow-up mode.
func ValidFollowUpMode(m string) bool {
	return m == ModeCall || m == ModeOnlineMeeting || m == ModePhysicalMeeting
}

// FollowUp is an immutable log entry of a scheduled or completed contact.
// ReminderSent is flipped by the reminder sweep after a successful send so
// each follow-up is reminded at most once.
type FollowUp struct {
	gorm.Model
	Mode             string    `json:"mode" gorm:"not null"`
	Message          string    `json:"message" gorm:"type:text;not null"`
	NextFollowUpDate time.Time `json:"nextFollowUpDate" gorm:"not null"`
	NextFollowUpTime string    `json:"nextFollowUpTime" gorm:"not null"` // "HH:MM"
	ReminderSent     bool      `json:"reminderSent" gorm:"default:false"`
	IsDeleted        bool      `json:"isDeleted" gorm:"default:false"`
}
