package services

import (
	"context"
	"testing"

	"fitcenter/internal/adapters/persistence/models"
	"fitcenter/internal/adapters/persistence/repositories"
	"fitcenter/internal/config"
	"fitcenter/internal/core/domain"
	"fitcenter/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-access-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
	}
}

type authFixture struct {
	svc   *AuthService
	users *repositories.Repository[models.User]
	roles *repositories.Repository[models.RoleAssignment]
	admin *models.User
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	db := setupTestDB(t)
	ctx := context.Background()

	f := &authFixture{
		users: repositories.NewRepository[models.User](db),
		roles: repositories.NewRepository[models.RoleAssignment](db),
	}
	f.svc = NewAuthService(f.users, f.roles, testConfig())

	hash, err := password.Hash("admin123456")
	require.NoError(t, err)

	inserted, err := f.users.Insert(ctx, &models.User{
		Email:        "admin@gym.test",
		PasswordHash: hash,
		IsActive:     true,
	})
	require.NoError(t, err)
	f.admin = inserted[0]

	_, err = f.roles.Insert(ctx, &models.RoleAssignment{
		UserID: f.admin.ID,
		Role:   domain.RoleAdministrator,
	})
	require.NoError(t, err)
	return f
}

func TestLoginIssuesTokenPair(t *testing.T) {
	f := newAuthFixture(t)

	result, err := f.svc.Login(context.Background(), &LoginInput{
		Email:    "admin@gym.test",
		Password: "admin123456",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, []domain.Role{domain.RoleAdministrator}, result.Roles)
	assert.Equal(t, f.admin.ID, result.User.ID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.svc.Login(ctx, &LoginInput{Email: "admin@gym.test", Password: "wrong-password"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = f.svc.Login(ctx, &LoginInput{Email: "nobody@gym.test", Password: "admin123456"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRefreshRotatesTokens(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	login, err := f.svc.Login(ctx, &LoginInput{Email: "admin@gym.test", Password: "admin123456"})
	require.NoError(t, err)

	refreshed, err := f.svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEmpty(t, refreshed.RefreshToken)

	_, err = f.svc.Refresh(ctx, "not-a-token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestHasRoleIsAFreshPerCheckQuery(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	ok, err := f.svc.HasRole(ctx, f.admin.ID, domain.RoleAdministrator)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.svc.HasRole(ctx, f.admin.ID, domain.RoleTrainer)
	require.NoError(t, err)
	assert.False(t, ok, "a missing assignment is false, not an error")

	// A revoked assignment is visible on the very next check.
	_, err = f.roles.Delete(ctx, repositories.Filter{"user_id": f.admin.ID})
	require.NoError(t, err)

	ok, err = f.svc.HasRole(ctx, f.admin.ID, domain.RoleAdministrator)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasRoleUnknownUser(t *testing.T) {
	f := newAuthFixture(t)

	ok, err := f.svc.HasRole(context.Background(), uuid.New(), domain.RoleAdministrator)
	require.NoError(t, err)
	assert.False(t, ok)
}
