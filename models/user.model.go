package models

import "gorm.io/gorm"

// User roles
const (
	RoleStudent          = "student"
	RoleCorporate        = "corporate"
	RoleAdmin            = "admin"
	RoleChildAdmin       = "childAdmin"
	RoleInstitute        = "institute"
	RoleInstituteStudent = "instituteStudent"
)

type User struct {
	gorm.Model
	UserName       string `json:"userName" gorm:"not null"`
	Email          string `json:"email" gorm:"uniqueIndex;not null"`
	Phone          string `json:"phone" gorm:"default:''"`
	Password       string `json:"-" gorm:"not null"`
	Role           string `json:"role" gorm:"default:'student'"`
	UserProfilePic string `json:"userProfilePic" gorm:"default:''"`
	IsActive       bool   `json:"isActive" gorm:"default:true"`
	IsDeleted      bool   `json:"isDeleted" gorm:"default:false"`
}
