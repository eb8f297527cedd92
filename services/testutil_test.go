package services

import (
	"testing"
	"time"

	"backend/entity"
	"backend/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB เปิด sqlite in-memory แยกต่อ test
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&entity.User{}, &entity.PickupRequest{}, &entity.WasteGuideItem{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// MinCost ให้ test เร็ว
func createTestUser(t *testing.T, db *gorm.DB, username, password string, role entity.Role) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := &entity.User{
		Username: username,
		Password: string(hash),
		FullName: username,
		Role:     role,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return u
}

func newTestPickupService(t *testing.T, db *gorm.DB, requireOwnership bool) *PickupService {
	t.Helper()
	return NewPickupService(repository.NewPickupRepository(db), requireOwnership, t.TempDir())
}

func newTestAuthService(t *testing.T, db *gorm.DB) *AuthService {
	t.Helper()
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func validPickupInput() CreatePickupInput {
	return CreatePickupInput{
		FullName:  "Alice",
		WasteType: entity.WasteWet,
		Quantity:  entity.QuantitySmall,
		Address:   "12 Oak St",
		Slot:      "Morning",
	}
}
