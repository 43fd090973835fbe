package services

import (
	"context"

	"fitcenter/internal/adapters/persistence/models"
	"fitcenter/internal/adapters/persistence/repositories"
	"fitcenter/internal/core/domain"

	"github.com/google/uuid"
)

// Provisioning step names, in execution order.
const (
	StepCreateIdentity = "create_identity"
	StepAssignRole     = "assign_role"
	StepCreateTrainer  = "create_trainer"
)

// StepOutcome records one provisioning step's result.
type StepOutcome struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
	Error     string `json:"error,omitempty"`
}

// ProvisionResult carries the recorded step outcomes alongside whatever
// was created. When provisioning fails midway the completed steps'
// effects remain in place; the outcomes make the partial state
// inspectable.
type ProvisionResult struct {
	UserID  uuid.UUID       `json:"user_id,omitempty"`
	Trainer *models.Trainer `json:"trainer,omitempty"`
	Steps   []StepOutcome   `json:"steps"`
}

// TrainerService handles trainer provisioning and management
type TrainerService struct {
	trainers *repositories.Repository[models.Trainer]
	profiles *repositories.Repository[models.Profile]
	roles    *repositories.Repository[models.RoleAssignment]
	idp      IdentityProvider
}

// NewTrainerService creates a new trainer service
func NewTrainerService(
	trainers *repositories.Repository[models.Trainer],
	profiles *repositories.Repository[models.Profile],
	roles *repositories.Repository[models.RoleAssignment],
	idp IdentityProvider,
) *TrainerService {
	return &TrainerService{trainers: trainers, profiles: profiles, roles: roles, idp: idp}
}

// ProvisionInput represents trainer provisioning input
type ProvisionInput struct {
	Email           string  `json:"email" validate:"required,email"`
	Password        string  `json:"password" validate:"required,min=8"`
	FullName        string  `json:"full_name" validate:"required"`
	Specialization  *string `json:"specialization"`
	ExperienceYears *int    `json:"experience_years"`
	Bio             *string `json:"bio"`
}

// Provision creates a trainer through the three-step composite:
// (1) create a user identity with the external authority, (2) assign it
// the trainer role, (3) create the trainer row referencing it. The
// steps share no transaction — identity creation happens outside the
// store's transaction boundary — so a failure after step 1 leaves an
// identity without a complete trainer record. No compensation runs;
// the first failing step's error is surfaced with the outcomes of every
// step, and callers must treat the result as possibly partially
// applied.
func (s *TrainerService) Provision(ctx context.Context, input *ProvisionInput) (*ProvisionResult, error) {
	result := &ProvisionResult{
		Steps: []StepOutcome{
			{Name: StepCreateIdentity},
			{Name: StepAssignRole},
			{Name: StepCreateTrainer},
		},
	}

	userID, err := s.idp.CreateIdentity(ctx, input.Email, input.Password, input.FullName)
	if err != nil {
		result.Steps[0].Error = err.Error()
		return result, err
	}
	result.Steps[0].Completed = true
	result.UserID = userID

	assignment := &models.RoleAssignment{UserID: userID, Role: domain.RoleTrainer}
	if _, err := s.roles.Insert(ctx, assignment); err != nil {
		result.Steps[1].Error = err.Error()
		return result, err
	}
	result.Steps[1].Completed = true

	trainer := &models.Trainer{
		UserID:          userID,
		Specialization:  input.Specialization,
		ExperienceYears: input.ExperienceYears,
		Bio:             input.Bio,
	}
	inserted, err := s.trainers.Insert(ctx, trainer)
	if err != nil {
		result.Steps[2].Error = err.Error()
		return result, err
	}
	result.Steps[2].Completed = true
	result.Trainer = inserted[0]

	return result, nil
}

// EditInput represents trainer edit input
type EditInput struct {
	Specialization  *string `json:"specialization"`
	ExperienceYears *int    `json:"experience_years"`
	Bio             *string `json:"bio"`
	FullName        *string `json:"full_name"`
}

// Edit updates a trainer's own columns and, separately, the linked
// profile's display name — two independent update calls, not one
// atomic write. The profile is never mutated outside this path.
func (s *TrainerService) Edit(ctx context.Context, trainerID uuid.UUID, input *EditInput) (*models.Trainer, error) {
	trainer, err := s.trainers.Get(ctx, repositories.Filter{"id": trainerID}, nil)
	if err != nil {
		return nil, err
	}

	values := map[string]interface{}{}
	if input.Specialization != nil {
		values["specialization"] = *input.Specialization
	}
	if input.ExperienceYears != nil {
		values["experience_years"] = *input.ExperienceYears
	}
	if input.Bio != nil {
		values["bio"] = *input.Bio
	}
	if len(values) > 0 {
		if _, err := s.trainers.Update(ctx, values, repositories.Filter{"id": trainerID}); err != nil {
			return nil, err
		}
	}

	if input.FullName != nil {
		profileValues := map[string]interface{}{"full_name": *input.FullName}
		if _, err := s.profiles.Update(ctx, profileValues, repositories.Filter{"id": trainer.UserID}); err != nil {
			return nil, err
		}
	}

	return s.trainers.Get(ctx, repositories.Filter{"id": trainerID}, &repositories.ListOptions{
		Preloads: []string{"Profile"},
	})
}

// ListTrainers lists all trainers with their profiles
func (s *TrainerService) ListTrainers(ctx context.Context) ([]models.Trainer, error) {
	return s.trainers.List(ctx, nil, &repositories.ListOptions{
		Preloads: []string{"Profile"},
		Order:    &repositories.Order{Field: "created_at", Desc: true},
	})
}

// GetByUser resolves the trainer record linked to a user identity
func (s *TrainerService) GetByUser(ctx context.Context, userID uuid.UUID) (*models.Trainer, error) {
	return s.trainers.Get(ctx, repositories.Filter{"user_id": userID}, &repositories.ListOptions{
		Preloads: []string{"Profile"},
	})
}

// DeleteTrainer removes a trainer record. The linked identity and role
// assignment stay in place.
func (s *TrainerService) DeleteTrainer(ctx context.Context, id uuid.UUID) error {
	removed, err := s.trainers.Delete(ctx, repositories.Filter{"id": id})
	if err != nil {
		return err
	}
	if len(removed) == 0 {
		return domain.ErrNotFound
	}
	return nil
}
