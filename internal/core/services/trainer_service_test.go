package services

import (
	"context"
	"errors"
	"testing"

	"fitcenter/internal/adapters/persistence/models"
	"fitcenter/internal/adapters/persistence/repositories"
	"fitcenter/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeIDP stands in for the identity authority so provisioning failures
// can be produced at each step.
type fakeIDP struct {
	userID uuid.UUID
	err    error
}

func (f *fakeIDP) CreateIdentity(ctx context.Context, email, plainPassword, fullName string) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.Nil, f.err
	}
	return f.userID, nil
}

type trainerFixture struct {
	db       *gorm.DB
	svc      *TrainerService
	trainers *repositories.Repository[models.Trainer]
	roles    *repositories.Repository[models.RoleAssignment]
	idp      *fakeIDP
}

func newTrainerFixture(t *testing.T) *trainerFixture {
	t.Helper()
	db := setupTestDB(t)

	f := &trainerFixture{
		db:       db,
		trainers: repositories.NewRepository[models.Trainer](db),
		roles:    repositories.NewRepository[models.RoleAssignment](db),
		idp:      &fakeIDP{userID: uuid.New()},
	}
	profiles := repositories.NewRepository[models.Profile](db)
	f.svc = NewTrainerService(f.trainers, profiles, f.roles, f.idp)
	return f
}

func provisionInput() *ProvisionInput {
	return &ProvisionInput{
		Email:    "coach@gym.test",
		Password: "supersecret",
		FullName: "Coach",
	}
}

func TestProvisionCompletesAllSteps(t *testing.T) {
	f := newTrainerFixture(t)
	ctx := context.Background()

	result, err := f.svc.Provision(ctx, provisionInput())
	require.NoError(t, err)
	require.NotNil(t, result.Trainer)
	assert.Equal(t, f.idp.userID, result.UserID)

	require.Len(t, result.Steps, 3)
	for _, step := range result.Steps {
		assert.True(t, step.Completed, step.Name)
		assert.Empty(t, step.Error, step.Name)
	}

	ok, err := f.roles.Count(ctx, repositories.Filter{"user_id": f.idp.userID, "role": domain.RoleTrainer})
	require.NoError(t, err)
	assert.Equal(t, int64(1), ok)

	_, err = f.trainers.Get(ctx, repositories.Filter{"user_id": f.idp.userID}, nil)
	assert.NoError(t, err)
}

func TestProvisionStopsAtIdentityFailure(t *testing.T) {
	f := newTrainerFixture(t)
	f.idp.err = errors.New("identity authority unavailable")

	result, err := f.svc.Provision(context.Background(), provisionInput())
	require.Error(t, err)
	require.NotNil(t, result, "step outcomes are returned even on failure")

	require.Len(t, result.Steps, 3)
	assert.False(t, result.Steps[0].Completed)
	assert.Contains(t, result.Steps[0].Error, "identity authority unavailable")
	assert.False(t, result.Steps[1].Completed)
	assert.False(t, result.Steps[2].Completed)

	count, err := f.trainers.Count(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestProvisionLeavesPartialStateOnRoleFailure(t *testing.T) {
	f := newTrainerFixture(t)
	ctx := context.Background()

	// A pre-existing trainer assignment makes step two conflict.
	_, err := f.roles.Insert(ctx, &models.RoleAssignment{
		UserID: f.idp.userID,
		Role:   domain.RoleTrainer,
	})
	require.NoError(t, err)

	result, err := f.svc.Provision(ctx, provisionInput())
	require.ErrorIs(t, err, domain.ErrConflict)

	require.Len(t, result.Steps, 3)
	assert.True(t, result.Steps[0].Completed, "the completed identity step is not rolled back")
	assert.False(t, result.Steps[1].Completed)
	assert.NotEmpty(t, result.Steps[1].Error)
	assert.False(t, result.Steps[2].Completed)

	count, err := f.trainers.Count(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, count, "the trainer step never ran")
}

func TestEditUpdatesTrainerAndProfileIndependently(t *testing.T) {
	f := newTrainerFixture(t)
	ctx := context.Background()

	profiles := repositories.NewRepository[models.Profile](f.db)
	_, err := profiles.Insert(ctx, &models.Profile{
		ID:       f.idp.userID,
		FullName: "Coach",
		Email:    "coach@gym.test",
	})
	require.NoError(t, err)

	result, err := f.svc.Provision(ctx, provisionInput())
	require.NoError(t, err)

	spec := "strength"
	name := "Head Coach"
	edited, err := f.svc.Edit(ctx, result.Trainer.ID, &EditInput{
		Specialization: &spec,
		FullName:       &name,
	})
	require.NoError(t, err)
	require.NotNil(t, edited.Specialization)
	assert.Equal(t, "strength", *edited.Specialization)
	require.NotNil(t, edited.Profile)
	assert.Equal(t, "Head Coach", edited.Profile.FullName)
}

func TestDeleteTrainerKeepsIdentity(t *testing.T) {
	f := newTrainerFixture(t)
	ctx := context.Background()

	result, err := f.svc.Provision(ctx, provisionInput())
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteTrainer(ctx, result.Trainer.ID))

	roles, err := f.roles.Count(ctx, repositories.Filter{"user_id": f.idp.userID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), roles, "role assignment outlives the trainer record")

	assert.ErrorIs(t, f.svc.DeleteTrainer(ctx, result.Trainer.ID), domain.ErrNotFound)
}
