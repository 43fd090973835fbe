package services

import (
	"context"
	"time"

	"fitcenter/internal/adapters/persistence/models"
	"fitcenter/internal/adapters/persistence/repositories"
	"fitcenter/internal/core/domain"
	"fitcenter/internal/pkg/dateutil"

	"github.com/google/uuid"
)

// PlanService handles workout and diet plans and their assignment to
// memberships
type PlanService struct {
	workouts    *repositories.Repository[models.WorkoutPlan]
	diets       *repositories.Repository[models.DietPlan]
	assignments *repositories.Repository[models.MembershipPlan]
	memberships *repositories.Repository[models.Membership]

	now func() time.Time
}

// NewPlanService creates a new plan service
func NewPlanService(
	workouts *repositories.Repository[models.WorkoutPlan],
	diets *repositories.Repository[models.DietPlan],
	assignments *repositories.Repository[models.MembershipPlan],
	memberships *repositories.Repository[models.Membership],
) *PlanService {
	return &PlanService{
		workouts:    workouts,
		diets:       diets,
		assignments: assignments,
		memberships: memberships,
		now:         time.Now,
	}
}

// WorkoutPlanInput represents workout plan input
type WorkoutPlanInput struct {
	Name            string  `json:"name" validate:"required"`
	Description     *string `json:"description"`
	DurationWeeks   *int    `json:"duration_weeks"`
	DifficultyLevel *string `json:"difficulty_level"`
}

// CreateWorkoutPlan creates a workout plan authored by the given user
func (s *PlanService) CreateWorkoutPlan(ctx context.Context, createdBy uuid.UUID, input *WorkoutPlanInput) (*models.WorkoutPlan, error) {
	plan := &models.WorkoutPlan{
		CreatedBy:       createdBy,
		Name:            input.Name,
		Description:     input.Description,
		DurationWeeks:   input.DurationWeeks,
		DifficultyLevel: input.DifficultyLevel,
	}

	inserted, err := s.workouts.Insert(ctx, plan)
	if err != nil {
		return nil, err
	}
	return inserted[0], nil
}

// ListWorkoutPlans lists the workout plans authored by a user
func (s *PlanService) ListWorkoutPlans(ctx context.Context, createdBy uuid.UUID) ([]models.WorkoutPlan, error) {
	return s.workouts.List(ctx, repositories.Filter{"created_by": createdBy}, &repositories.ListOptions{
		Order: &repositories.Order{Field: "created_at", Desc: true},
	})
}

// UpdateWorkoutPlan applies a partial value set to one workout plan
func (s *PlanService) UpdateWorkoutPlan(ctx context.Context, id uuid.UUID, values map[string]interface{}) (*models.WorkoutPlan, error) {
	updated, err := s.workouts.Update(ctx, values, repositories.Filter{"id": id})
	if err != nil {
		return nil, err
	}
	if len(updated) == 0 {
		return nil, domain.ErrNotFound
	}
	return &updated[0], nil
}

// DeleteWorkoutPlan removes a workout plan
func (s *PlanService) DeleteWorkoutPlan(ctx context.Context, id uuid.UUID) error {
	removed, err := s.workouts.Delete(ctx, repositories.Filter{"id": id})
	if err != nil {
		return err
	}
	if len(removed) == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DietPlanInput represents diet plan input
type DietPlanInput struct {
	Name           string  `json:"name" validate:"required"`
	Description    *string `json:"description"`
	CaloriesPerDay *int    `json:"calories_per_day"`
	MealPlan       *string `json:"meal_plan"`
}

// CreateDietPlan creates a diet plan authored by the given user
func (s *PlanService) CreateDietPlan(ctx context.Context, createdBy uuid.UUID, input *DietPlanInput) (*models.DietPlan, error) {
	plan := &models.DietPlan{
		CreatedBy:      createdBy,
		Name:           input.Name,
		Description:    input.Description,
		CaloriesPerDay: input.CaloriesPerDay,
		MealPlan:       input.MealPlan,
	}

	inserted, err := s.diets.Insert(ctx, plan)
	if err != nil {
		return nil, err
	}
	return inserted[0], nil
}

// ListDietPlans lists the diet plans authored by a user
func (s *PlanService) ListDietPlans(ctx context.Context, createdBy uuid.UUID) ([]models.DietPlan, error) {
	return s.diets.List(ctx, repositories.Filter{"created_by": createdBy}, &repositories.ListOptions{
		Order: &repositories.Order{Field: "created_at", Desc: true},
	})
}

// UpdateDietPlan applies a partial value set to one diet plan
func (s *PlanService) UpdateDietPlan(ctx context.Context, id uuid.UUID, values map[string]interface{}) (*models.DietPlan, error) {
	updated, err := s.diets.Update(ctx, values, repositories.Filter{"id": id})
	if err != nil {
		return nil, err
	}
	if len(updated) == 0 {
		return nil, domain.ErrNotFound
	}
	return &updated[0], nil
}

// DeleteDietPlan removes a diet plan
func (s *PlanService) DeleteDietPlan(ctx context.Context, id uuid.UUID) error {
	removed, err := s.diets.Delete(ctx, repositories.Filter{"id": id})
	if err != nil {
		return err
	}
	if len(removed) == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AssignInput represents a plan assignment
type AssignInput struct {
	MembershipID  uuid.UUID  `json:"membership_id" validate:"required"`
	WorkoutPlanID *uuid.UUID `json:"workout_plan_id"`
	DietPlanID    *uuid.UUID `json:"diet_plan_id"`
}

// Assign pairs at most one workout and one diet plan with a membership
// in a single assignment record
func (s *PlanService) Assign(ctx context.Context, input *AssignInput) (*models.MembershipPlan, error) {
	if input.WorkoutPlanID == nil && input.DietPlanID == nil {
		return nil, domain.ValidationError("an assignment needs a workout plan, a diet plan, or both")
	}

	if _, err := s.memberships.Get(ctx, repositories.Filter{"id": input.MembershipID}, nil); err != nil {
		return nil, err
	}
	if input.WorkoutPlanID != nil {
		if _, err := s.workouts.Get(ctx, repositories.Filter{"id": *input.WorkoutPlanID}, nil); err != nil {
			return nil, err
		}
	}
	if input.DietPlanID != nil {
		if _, err := s.diets.Get(ctx, repositories.Filter{"id": *input.DietPlanID}, nil); err != nil {
			return nil, err
		}
	}

	assignment := &models.MembershipPlan{
		MembershipID:  input.MembershipID,
		WorkoutPlanID: input.WorkoutPlanID,
		DietPlanID:    input.DietPlanID,
		AssignedDate:  dateutil.DateOnly(s.now()),
	}

	inserted, err := s.assignments.Insert(ctx, assignment)
	if err != nil {
		return nil, err
	}
	return inserted[0], nil
}

// ListAssignments lists the plan assignments of one membership
func (s *PlanService) ListAssignments(ctx context.Context, membershipID uuid.UUID) ([]models.MembershipPlan, error) {
	return s.assignments.List(ctx, repositories.Filter{"membership_id": membershipID}, &repositories.ListOptions{
		Preloads: []string{"WorkoutPlan", "DietPlan"},
		Order:    &repositories.Order{Field: "assigned_date", Desc: true},
	})
}

// AssignedMemberships lists the active memberships assigned to a
// trainer, with their members
func (s *PlanService) AssignedMemberships(ctx context.Context, trainerID uuid.UUID) ([]models.Membership, error) {
	return s.memberships.List(ctx, repositories.Filter{
		"trainer_id": trainerID,
		"status":     domain.MembershipStatusActive,
	}, &repositories.ListOptions{
		Preloads: []string{"Member", "MembershipType"},
		Order:    &repositories.Order{Field: "end_date"},
	})
}
