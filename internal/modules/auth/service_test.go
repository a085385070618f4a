package auth

import (
	"context"
	"testing"
	"time"

	"pubdesk/internal/database"
	"pubdesk/internal/domain"
	"pubdesk/internal/pkg/jwt"
	"pubdesk/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := database.Connect("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Profile{}))

	return NewService(
		repository.NewUserRepository(db),
		repository.NewProfileRepository(db),
		jwt.New("test-secret", time.Hour),
	)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	user, profile, token, err := svc.Register(ctx, RegisterRequest{
		FullName:    "Asel Nurlanovna",
		Email:       "Asel@Example.com",
		Password:    "secret123",
		Institution: "KazNU",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "asel@example.com", user.Email)
	assert.Equal(t, domain.RoleAuthor, user.Role)
	assert.Empty(t, user.PasswordHash)
	assert.Equal(t, user.ID, profile.UserID)
	assert.Equal(t, "Asel Nurlanovna", profile.FullName)

	// same email, different casing
	_, _, _, err = svc.Register(ctx, RegisterRequest{
		FullName: "Someone Else",
		Email:    "ASEL@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	logged, token, err := svc.Login(ctx, LoginRequest{Email: "asel@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, logged.ID)

	_, _, err = svc.Login(ctx, LoginRequest{Email: "asel@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetCurrentUserAndUpdateProfile(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	user, _, _, err := svc.Register(ctx, RegisterRequest{
		FullName: "Daniyar Serik",
		Email:    "daniyar@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	got, profile, err := svc.GetCurrentUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)
	require.NotNil(t, profile)
	assert.Equal(t, "Daniyar Serik", profile.FullName)

	updated, err := svc.UpdateProfile(ctx, user.ID, UpdateProfileRequest{
		Institution: "Satbayev University",
		Phone:       "+7 701 000 0000",
	})
	require.NoError(t, err)
	assert.Equal(t, "Daniyar Serik", updated.FullName)
	assert.Equal(t, "Satbayev University", updated.Institution)
	assert.Equal(t, "+7 701 000 0000", updated.Phone)
}
