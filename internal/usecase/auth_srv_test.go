package usecase

import (
	"context"
	"testing"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/request"
	"hotel-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	registered, err := f.service.Auth.Register(ctx, &request.RegisterRequest{
		Name:     "Asha Rao",
		Email:    "Asha@Example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", registered.User.Email)
	assert.Equal(t, entity.RoleUser, registered.User.Role)
	assert.NotEmpty(t, registered.Token)

	claims, err := utils.ParseAccessToken("test-secret", registered.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.UserID)

	_, err = f.service.Auth.Register(ctx, &request.RegisterRequest{
		Name:     "Asha Again",
		Email:    "asha@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrConflict)

	loggedIn, err := f.service.Auth.Login(ctx, &request.LoginRequest{Email: "asha@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)

	_, err = f.service.Auth.Login(ctx, &request.LoginRequest{Email: "asha@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = f.service.Auth.Login(ctx, &request.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = f.service.Auth.Register(ctx, &request.RegisterRequest{Name: "X", Email: "bad", Password: "1"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestEnsureAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.service.Auth.EnsureAdmin(ctx, "root@example.com", "rootpass"))
	require.NoError(t, f.service.Auth.EnsureAdmin(ctx, "root@example.com", "rootpass"))

	admin, err := f.repo.User.FindByEmail(ctx, "root@example.com")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.True(t, utils.CheckPasswordHash("rootpass", admin.PasswordHash))

	// existing accounts are promoted
	require.NoError(t, f.service.Auth.EnsureAdmin(ctx, f.guest.Email, "ignored"))
	profile, err := f.service.User.GetProfile(ctx, f.guest.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, profile.Role)
}
