package services

import (
	"errors"

	"backend/entity"
)

// Session คือ identity ของ request ปัจจุบัน ส่งเข้า service ทุกตัว
// แทนการไปอ่าน global state
type Session struct {
	UserID uint
	Role   entity.Role
}

func (s Session) Authenticated() bool {
	return s.UserID != 0
}

func (s Session) IsCollector() bool {
	return s.Role == entity.RoleCollector
}

// error กลางที่ controller ใช้ map เป็น HTTP status
var (
	ErrLoginRequired  = errors.New("login required")
	ErrForbidden      = errors.New("forbidden")
	ErrCollectorOnly  = errors.New("collector access only")
	ErrNotFound       = errors.New("not found")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrUnownedRequest = errors.New("request is not linked to a user")
	ErrUsernameTaken  = errors.New("username already exists")
	ErrBadCredentials = errors.New("invalid credentials")
	ErrValidation     = errors.New("validation failed")
)
