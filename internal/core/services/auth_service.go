package services

import (
	"context"
	"errors"

	"fitcenter/internal/adapters/persistence/models"
	"fitcenter/internal/adapters/persistence/repositories"
	"fitcenter/internal/config"
	"fitcenter/internal/core/domain"
	"fitcenter/internal/pkg/jwt"
	"fitcenter/internal/pkg/password"

	"github.com/google/uuid"
)

// AuthService handles authentication and the role predicate
type AuthService struct {
	users *repositories.Repository[models.User]
	roles *repositories.Repository[models.RoleAssignment]
	cfg   *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(
	users *repositories.Repository[models.User],
	roles *repositories.Repository[models.RoleAssignment],
	cfg *config.Config,
) *AuthService {
	return &AuthService{users: users, roles: roles, cfg: cfg}
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User         *models.UserResponse `json:"user"`
	Roles        []domain.Role        `json:"roles"`
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token"`
}

// Login verifies credentials and issues a token pair
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	user, err := s.users.Get(ctx, repositories.Filter{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	roles, err := s.RolesOf(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	accessToken, err := jwt.GenerateAccessToken(user.ID, user.Email, s.cfg.JWT.Secret, s.cfg.JWT.AccessTokenMins)
	if err != nil {
		return nil, err
	}
	refreshToken, err := jwt.GenerateRefreshToken(user.ID, s.cfg.JWT.RefreshSecret, s.cfg.JWT.RefreshTokenDays)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		User:         user.ToResponse(),
		Roles:        roles,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh validates a refresh token and issues a fresh token pair
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := jwt.ValidateRefreshToken(refreshToken, s.cfg.JWT.RefreshSecret)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.Get(ctx, repositories.Filter{"id": claims.UserID}, nil)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	roles, err := s.RolesOf(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	accessToken, err := jwt.GenerateAccessToken(user.ID, user.Email, s.cfg.JWT.Secret, s.cfg.JWT.AccessTokenMins)
	if err != nil {
		return nil, err
	}
	newRefresh, err := jwt.GenerateRefreshToken(user.ID, s.cfg.JWT.RefreshSecret, s.cfg.JWT.RefreshTokenDays)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		User:         user.ToResponse(),
		Roles:        roles,
		AccessToken:  accessToken,
		RefreshToken: newRefresh,
	}, nil
}

// HasRole reports whether a role assignment row links the user to the
// required role. Every check is a fresh query against the
// role_assignments relation; results are never cached or memoized.
// This predicate is the sole authorization primitive.
func (s *AuthService) HasRole(ctx context.Context, userID uuid.UUID, role domain.Role) (bool, error) {
	_, err := s.roles.Get(ctx, repositories.Filter{"user_id": userID, "role": role}, nil)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// RolesOf lists every role assigned to the user
func (s *AuthService) RolesOf(ctx context.Context, userID uuid.UUID) ([]domain.Role, error) {
	assignments, err := s.roles.List(ctx, repositories.Filter{"user_id": userID}, nil)
	if err != nil {
		return nil, err
	}

	roles := make([]domain.Role, len(assignments))
	for i, a := range assignments {
		roles[i] = a.Role
	}
	return roles, nil
}
