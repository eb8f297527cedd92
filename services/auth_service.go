package services

import (
	"errors"
	"strings"
	"time"

	"backend/entity"
	"backend/repository"
	"backend/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService จัดการ business logic ของการ login/register
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Register เปิดให้ resident สมัครเองเท่านั้น collector มาจาก seed
// สมัครเสร็จ login ให้เลย (คืน token)
func (s *AuthService) Register(fullName, username, password string) (string, *entity.User, error) {
	fullName = strings.TrimSpace(fullName)
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if fullName == "" || username == "" || password == "" {
		return "", nil, errors.New("all fields are required")
	}

	count, err := s.userRepo.CountByUsername(username)
	if err != nil {
		return "", nil, err
	}
	if count > 0 {
		return "", nil, ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Username: username,
		Password: string(hashed),
		FullName: fullName,
		Role:     entity.RoleResident,
	}
	if err := s.userRepo.Create(user); err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

// Login ตรวจ credentials + role ต้องตรงช่องทางที่เข้ามา
// collector มา login ช่อง resident (หรือกลับกัน) ได้ error กลางๆ
// เหมือน credentials ผิด — ไม่เฉลยว่าบัญชีอยู่ฝั่งไหน
func (s *AuthService) Login(username, password string, expected entity.Role) (string, *entity.User, error) {
	username = strings.TrimSpace(username)

	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return "", nil, ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrBadCredentials
	}
	if user.Role != expected {
		return "", nil, ErrBadCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}
