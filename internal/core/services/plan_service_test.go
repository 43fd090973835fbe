package services

import (
	"context"
	"testing"
	"time"

	"fitcenter/internal/adapters/persistence/models"
	"fitcenter/internal/adapters/persistence/repositories"
	"fitcenter/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type planFixture struct {
	svc        *PlanService
	trainerID  uuid.UUID
	membership *models.Membership
}

func newPlanFixture(t *testing.T) *planFixture {
	t.Helper()
	db := setupTestDB(t)
	ctx := context.Background()

	members := repositories.NewRepository[models.Member](db)
	types := repositories.NewRepository[models.MembershipType](db)
	memberships := repositories.NewRepository[models.Membership](db)
	trainers := repositories.NewRepository[models.Trainer](db)

	member, err := members.Insert(ctx, &models.Member{
		FullName: "Plan Member",
		Email:    "plan@gym.test",
		Phone:    "0810000005",
	})
	require.NoError(t, err)

	mType, err := types.Insert(ctx, &models.MembershipType{Name: "Monthly", DurationMonths: 1, Price: 60})
	require.NoError(t, err)

	trainer, err := trainers.Insert(ctx, &models.Trainer{UserID: uuid.New()})
	require.NoError(t, err)

	trainerID := trainer[0].ID
	membership, err := memberships.Insert(ctx, &models.Membership{
		MemberID:         member[0].ID,
		MembershipTypeID: mType[0].ID,
		TrainerID:        &trainerID,
		StartDate:        date(2026, time.January, 1),
		EndDate:          date(2026, time.February, 1),
		PaymentDate:      date(2026, time.January, 1),
		Status:           domain.MembershipStatusActive,
	})
	require.NoError(t, err)

	svc := NewPlanService(
		repositories.NewRepository[models.WorkoutPlan](db),
		repositories.NewRepository[models.DietPlan](db),
		repositories.NewRepository[models.MembershipPlan](db),
		memberships,
	)

	return &planFixture{svc: svc, trainerID: trainerID, membership: membership[0]}
}

func TestAssignRequiresAtLeastOnePlan(t *testing.T) {
	f := newPlanFixture(t)

	_, err := f.svc.Assign(context.Background(), &AssignInput{MembershipID: f.membership.ID})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAssignValidatesReferences(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()
	ghost := uuid.New()

	_, err := f.svc.Assign(ctx, &AssignInput{
		MembershipID:  f.membership.ID,
		WorkoutPlanID: &ghost,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.svc.Assign(ctx, &AssignInput{
		MembershipID:  uuid.New(),
		WorkoutPlanID: &ghost,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAssignAndListAssignments(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()
	authorID := uuid.New()

	workout, err := f.svc.CreateWorkoutPlan(ctx, authorID, &WorkoutPlanInput{Name: "Strength Basics"})
	require.NoError(t, err)
	diet, err := f.svc.CreateDietPlan(ctx, authorID, &DietPlanInput{Name: "Cutting Diet"})
	require.NoError(t, err)

	assignment, err := f.svc.Assign(ctx, &AssignInput{
		MembershipID:  f.membership.ID,
		WorkoutPlanID: &workout.ID,
		DietPlanID:    &diet.ID,
	})
	require.NoError(t, err)
	assert.False(t, assignment.AssignedDate.IsZero())

	assignments, err := f.svc.ListAssignments(ctx, f.membership.ID)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	require.NotNil(t, assignments[0].WorkoutPlan)
	assert.Equal(t, "Strength Basics", assignments[0].WorkoutPlan.Name)
	require.NotNil(t, assignments[0].DietPlan)
	assert.Equal(t, "Cutting Diet", assignments[0].DietPlan.Name)
}

func TestAssignedMembershipsOnlyActive(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()

	active, err := f.svc.AssignedMemberships(ctx, f.trainerID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.NotNil(t, active[0].Member)
	assert.Equal(t, "Plan Member", active[0].Member.FullName)

	_, err = f.svc.memberships.Update(ctx,
		map[string]interface{}{"status": domain.MembershipStatusExpired},
		repositories.Filter{"id": f.membership.ID},
	)
	require.NoError(t, err)

	active, err = f.svc.AssignedMemberships(ctx, f.trainerID)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestWorkoutPlansScopedToAuthor(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	_, err := f.svc.CreateWorkoutPlan(ctx, alice, &WorkoutPlanInput{Name: "Alice Plan"})
	require.NoError(t, err)
	_, err = f.svc.CreateWorkoutPlan(ctx, bob, &WorkoutPlanInput{Name: "Bob Plan"})
	require.NoError(t, err)

	plans, err := f.svc.ListWorkoutPlans(ctx, alice)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "Alice Plan", plans[0].Name)
}
