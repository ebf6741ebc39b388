package models

import "gorm.io/gorm"

// Capability strings checked by the permission middleware.
const (
	CapUserManage      = "user:manage"
	CapCourseWrite     = "course:write"
	CapBatchWrite      = "batch:write"
	CapRatingWrite     = "rating:write"
	CapMentorWrite     = "mentor:write"
	CapDealRaise       = "deal:raise"
	CapDealManage      = "deal:manage"
	CapEnquiryCreate   = "enquiry:create"
	CapEnquiryRead     = "enquiry:read"
	CapEnquiryManage   = "enquiry:manage"
	CapEnquiryAssign   = "enquiry:assign"
	CapEnquiryFollowUp = "enquiry:follow-up"
	CapInviteSend      = "invite:send"
)

type Permission struct {
	gorm.Model
	UserID     uint   `gorm:"index;not null"`
	User       User   `gorm:"foreignKey:UserID"`
	Role       string
	Permission string `gorm:"type:varchar(255)"` // e.g. "enquiry:assign"
	IsDeleted  bool   `gorm:"default:false"`
}

// DefaultPermissions returns the capability set seeded for a role.
func DefaultPermissions(role string) []string {
	switch role {
	case RoleAdmin:
		return []string{
			CapUserManage, CapCourseWrite, CapBatchWrite, CapRatingWrite,
			CapMentorWrite, CapDealManage, CapEnquiryCreate, CapEnquiryRead,
			CapEnquiryManage, CapEnquiryAssign,
		}
	case RoleChildAdmin:
		return []string{
			CapMentorWrite, CapEnquiryRead, CapEnquiryManage, CapEnquiryFollowUp,
		}
	case RoleInstitute:
		return []string{CapDealRaise, CapInviteSend, CapEnquiryCreate, CapRatingWrite}
	case RoleCorporate:
		return []string{CapDealRaise, CapEnquiryCreate, CapRatingWrite}
	default: // student, instituteStudent
		return []string{CapEnquiryCreate, CapRatingWrite}
	}
}
