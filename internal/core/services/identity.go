package services

import (
	"context"

	"fitcenter/internal/adapters/persistence/models"
	"fitcenter/internal/adapters/persistence/repositories"
	"fitcenter/internal/core/domain"
	"fitcenter/internal/pkg/password"

	"github.com/google/uuid"
)

// IdentityProvider is the external authority that creates user
// identities from credentials. It sits outside the data store's
// transaction boundary: a created identity cannot be rolled back by a
// later store failure.
type IdentityProvider interface {
	CreateIdentity(ctx context.Context, email, plainPassword, fullName string) (uuid.UUID, error)
}

// LocalIdentityProvider provisions identities in the local users and
// profiles tables with a bcrypt password hash.
type LocalIdentityProvider struct {
	users    *repositories.Repository[models.User]
	profiles *repositories.Repository[models.Profile]
}

// NewLocalIdentityProvider creates a local identity provider
func NewLocalIdentityProvider(
	users *repositories.Repository[models.User],
	profiles *repositories.Repository[models.Profile],
) *LocalIdentityProvider {
	return &LocalIdentityProvider{users: users, profiles: profiles}
}

// CreateIdentity creates a user identity and its display profile,
// returning the new identity's opaque token.
func (p *LocalIdentityProvider) CreateIdentity(ctx context.Context, email, plainPassword, fullName string) (uuid.UUID, error) {
	if email == "" {
		return uuid.Nil, domain.ValidationError("email is required")
	}
	if !password.Validate(plainPassword) {
		return uuid.Nil, domain.ValidationError("password must be at least %d characters", password.MinLength)
	}

	hash, err := password.Hash(plainPassword)
	if err != nil {
		return uuid.Nil, err
	}

	user := &models.User{Email: email, PasswordHash: hash, IsActive: true}
	if _, err := p.users.Insert(ctx, user); err != nil {
		return uuid.Nil, err
	}

	profile := &models.Profile{ID: user.ID, Email: email, FullName: fullName}
	if _, err := p.profiles.Insert(ctx, profile); err != nil {
		return uuid.Nil, err
	}

	return user.ID, nil
}
