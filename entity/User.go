package entity

import (
	"gorm.io/gorm"
)

// Role แยกสองฝั่งของระบบ: ผู้อยู่อาศัย (แจ้งขอเก็บขยะ) กับเจ้าหน้าที่เก็บขยะ
type Role string

const (
	RoleResident  Role = "resident"
	RoleCollector Role = "collector"
)

func (r Role) Valid() bool {
	switch r {
	case RoleResident, RoleCollector:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null;size:150" json:"username"`
	Password string `json:"-"`
	FullName string `gorm:"size:80" json:"fullName"`
	Role     Role   `gorm:"not null;default:resident" json:"role"`

	// preload เฉพาะตอนจำเป็น
	PickupRequests []PickupRequest `gorm:"foreignKey:CreatedByID" json:"-"`
}
