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
	"gorm.io/gorm"
)

func newMemberService(t *testing.T) (*MemberService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewMemberService(
		repositories.NewRepository[models.Member](db),
		repositories.NewRepository[models.Membership](db),
	), db
}

func TestCreateAndGetMember(t *testing.T) {
	svc, _ := newMemberService(t)
	ctx := context.Background()

	member, err := svc.CreateMember(ctx, &MemberInput{
		FullName: "New Member",
		Email:    "new@gym.test",
		Phone:    "0810000002",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, member.ID)

	got, err := svc.GetMember(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Member", got.FullName)
}

func TestUpdateMemberPartial(t *testing.T) {
	svc, _ := newMemberService(t)
	ctx := context.Background()

	member, err := svc.CreateMember(ctx, &MemberInput{
		FullName: "Before",
		Email:    "partial@gym.test",
		Phone:    "0810000003",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateMember(ctx, member.ID, map[string]interface{}{"full_name": "After"})
	require.NoError(t, err)
	assert.Equal(t, "After", updated.FullName)
	assert.Equal(t, "partial@gym.test", updated.Email, "untouched fields survive a partial update")

	_, err = svc.UpdateMember(ctx, uuid.New(), map[string]interface{}{"full_name": "Ghost"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteMemberBlockedByActiveMembership(t *testing.T) {
	svc, db := newMemberService(t)
	ctx := context.Background()

	member, err := svc.CreateMember(ctx, &MemberInput{
		FullName: "Enrolled",
		Email:    "enrolled@gym.test",
		Phone:    "0810000004",
	})
	require.NoError(t, err)

	types := repositories.NewRepository[models.MembershipType](db)
	mType, err := types.Insert(ctx, &models.MembershipType{Name: "Monthly", DurationMonths: 1, Price: 60})
	require.NoError(t, err)

	memberships := repositories.NewRepository[models.Membership](db)
	_, err = memberships.Insert(ctx, &models.Membership{
		MemberID:         member.ID,
		MembershipTypeID: mType[0].ID,
		StartDate:        date(2026, time.January, 1),
		EndDate:          date(2026, time.February, 1),
		PaymentDate:      date(2026, time.January, 1),
		Status:           domain.MembershipStatusActive,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteMember(ctx, member.ID), domain.ErrConflict)

	// Once the membership is no longer active the delete goes through.
	_, err = memberships.Update(ctx,
		map[string]interface{}{"status": domain.MembershipStatusCancelled},
		repositories.Filter{"member_id": member.ID},
	)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMember(ctx, member.ID))
	assert.ErrorIs(t, svc.DeleteMember(ctx, member.ID), domain.ErrNotFound)
}
