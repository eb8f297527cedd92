package services

import (
	"testing"

	"backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCreatesResident(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuthService(t, db)

	token, user, err := svc.Register("Alice A", "alice", "pw123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, entity.RoleResident, user.Role)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "pw123", user.Password, "password must be stored hashed")

	// สมัครเสร็จต้อง login ต่อได้เลยด้วย credentials เดิม
	_, _, err = svc.Login("alice", "pw123", entity.RoleResident)
	assert.NoError(t, err)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuthService(t, db)

	_, _, err := svc.Register("Alice A", "alice", "pw123")
	require.NoError(t, err)

	_, _, err = svc.Register("Other Alice", "alice", "different")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegisterRequiresAllFields(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuthService(t, db)

	cases := []struct {
		name                          string
		fullName, username, password string
	}{
		{"missing full name", "", "alice", "pw123"},
		{"missing username", "Alice", "", "pw123"},
		{"missing password", "Alice", "alice", ""},
		{"whitespace only", "  ", "alice", "pw123"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Register(tc.fullName, tc.username, tc.password)
			assert.Error(t, err)
		})
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuthService(t, db)
	createTestUser(t, db, "alice", "pw123", entity.RoleResident)

	_, _, err := svc.Login("alice", "wrong", entity.RoleResident)
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, _, err = svc.Login("nobody", "pw123", entity.RoleResident)
	assert.ErrorIs(t, err, ErrBadCredentials)
}

// collector login ผ่านช่อง resident ต้องล้มด้วย error เดียวกับรหัสผิด
// จะได้ไม่รู้ว่าบัญชีนี้เป็นเจ้าหน้าที่
func TestLoginRejectsRoleCrossing(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuthService(t, db)
	createTestUser(t, db, "collector1", "pw123", entity.RoleCollector)
	createTestUser(t, db, "alice", "pw123", entity.RoleResident)

	_, _, err := svc.Login("collector1", "pw123", entity.RoleResident)
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, _, err = svc.Login("alice", "pw123", entity.RoleCollector)
	assert.ErrorIs(t, err, ErrBadCredentials)

	// ช่องที่ถูก role ต้องผ่านปกติ
	_, user, err := svc.Login("collector1", "pw123", entity.RoleCollector)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCollector, user.Role)
}
