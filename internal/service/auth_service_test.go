package service_test

import (
	"testing"

	"go-business-ws/internal/model"
	"go-business-ws/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	users := newFakeUserRepo()
	svc := service.NewAuthService(users)
	created, err := svc.EnsureAdmin("admin@example.com", "s3cret!")
	require.NoError(t, err)
	require.True(t, created)

	_, err = svc.Login("admin@example.com", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	_, err = svc.Login("nobody@example.com", "s3cret!")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	first, err := svc.Login("admin@example.com", "s3cret!")
	require.NoError(t, err)
	assert.NotEmpty(t, first.Token)
	assert.Equal(t, model.RoleAdmin, first.User.Role)

	user, err := svc.ValidateToken(first.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", user.Email)

	// A second login invalidates the first session
	second, err := svc.Login("admin@example.com", "s3cret!")
	require.NoError(t, err)
	_, err = svc.ValidateToken(first.Token)
	assert.ErrorIs(t, err, service.ErrSessionReplaced)
	_, err = svc.ValidateToken(second.Token)
	assert.NoError(t, err)
}

func TestEnsureAdmin_Idempotent(t *testing.T) {
	users := newFakeUserRepo()
	svc := service.NewAuthService(users)

	created, err := svc.EnsureAdmin("admin@example.com", "pw")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureAdmin("admin@example.com", "other")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Len(t, users.users, 1)
}

func TestLogin_InactiveUser(t *testing.T) {
	users := newFakeUserRepo()
	u := &model.User{Email: "off@example.com", Role: model.RoleStaff, IsActive: false}
	require.NoError(t, u.SetPassword("pw"))
	require.NoError(t, users.Create(u))

	_, err := service.NewAuthService(users).Login("off@example.com", "pw")
	assert.ErrorIs(t, err, service.ErrUserInactive)
}
