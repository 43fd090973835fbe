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
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// One connection only: every pooled connection to ":memory:" would
	// otherwise see its own empty database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.AutoMigrate(db))
	return db
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

type membershipFixture struct {
	svc         *MembershipService
	members     *repositories.Repository[models.Member]
	types       *repositories.Repository[models.MembershipType]
	memberships *repositories.Repository[models.Membership]
	member      *models.Member
}

func newMembershipFixture(t *testing.T) *membershipFixture {
	t.Helper()
	db := setupTestDB(t)

	f := &membershipFixture{
		members:     repositories.NewRepository[models.Member](db),
		types:       repositories.NewRepository[models.MembershipType](db),
		memberships: repositories.NewRepository[models.Membership](db),
	}
	trainers := repositories.NewRepository[models.Trainer](db)
	f.svc = NewMembershipService(f.memberships, f.types, f.members, trainers)

	inserted, err := f.members.Insert(context.Background(), &models.Member{
		FullName: "Enrollee",
		Email:    "enrollee@gym.test",
		Phone:    "0810000000",
	})
	require.NoError(t, err)
	f.member = inserted[0]
	return f
}

func (f *membershipFixture) newType(t *testing.T, months int, price float64) *models.MembershipType {
	t.Helper()
	inserted, err := f.types.Insert(context.Background(), &models.MembershipType{
		Name:           "Plan",
		DurationMonths: months,
		Price:          price,
	})
	require.NoError(t, err)
	return inserted[0]
}

func TestEnrollClampsMonthEndOverflow(t *testing.T) {
	f := newMembershipFixture(t)
	mType := f.newType(t, 1, 60)

	start := date(2024, time.January, 31)
	membership, err := f.svc.Enroll(context.Background(), &EnrollInput{
		MemberID:         f.member.ID,
		MembershipTypeID: mType.ID,
		PaymentAmount:    60,
		StartDate:        &start,
	})
	require.NoError(t, err)

	// January 31 plus one month lands on leap-day February 29, not
	// March 2.
	assert.Equal(t, date(2024, time.February, 29), membership.EndDate.UTC())
}

func TestEnrollTwelveMonthPlan(t *testing.T) {
	f := newMembershipFixture(t)
	mType := f.newType(t, 12, 600)

	enrolledAt := date(2026, time.March, 15)
	f.svc.now = func() time.Time { return enrolledAt }

	membership, err := f.svc.Enroll(context.Background(), &EnrollInput{
		MemberID:         f.member.ID,
		MembershipTypeID: mType.ID,
		PaymentAmount:    600,
	})
	require.NoError(t, err)

	assert.Equal(t, date(2026, time.March, 15), membership.StartDate.UTC())
	assert.Equal(t, date(2027, time.March, 15), membership.EndDate.UTC())
	assert.Equal(t, date(2026, time.March, 15), membership.PaymentDate.UTC())
	assert.Equal(t, 600.0, membership.PaymentAmount)
	assert.Equal(t, domain.MembershipStatusActive, membership.Status)
}

func TestEnrollUnknownMemberFails(t *testing.T) {
	f := newMembershipFixture(t)
	mType := f.newType(t, 1, 60)

	_, err := f.svc.Enroll(context.Background(), &EnrollInput{
		MemberID:         uuid.New(),
		MembershipTypeID: mType.ID,
		PaymentAmount:    60,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEnrollUnknownTrainerFails(t *testing.T) {
	f := newMembershipFixture(t)
	mType := f.newType(t, 1, 60)
	ghost := uuid.New()

	_, err := f.svc.Enroll(context.Background(), &EnrollInput{
		MemberID:         f.member.ID,
		MembershipTypeID: mType.ID,
		TrainerID:        &ghost,
		PaymentAmount:    60,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEditingTypeDoesNotRecomputeEndDates(t *testing.T) {
	f := newMembershipFixture(t)
	ctx := context.Background()
	mType := f.newType(t, 1, 60)

	start := date(2026, time.June, 1)
	membership, err := f.svc.Enroll(ctx, &EnrollInput{
		MemberID:         f.member.ID,
		MembershipTypeID: mType.ID,
		PaymentAmount:    60,
		StartDate:        &start,
	})
	require.NoError(t, err)
	require.Equal(t, date(2026, time.July, 1), membership.EndDate.UTC())

	_, err = f.svc.UpdateType(ctx, mType.ID, map[string]interface{}{"duration_months": 12})
	require.NoError(t, err)

	reloaded, err := f.memberships.Get(ctx, repositories.Filter{"id": membership.ID}, nil)
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.July, 1), reloaded.EndDate.UTC(), "end_date is derived once at enrollment")
}

func TestSetStatusIsAnOpenTag(t *testing.T) {
	f := newMembershipFixture(t)
	ctx := context.Background()
	mType := f.newType(t, 1, 60)

	membership, err := f.svc.Enroll(ctx, &EnrollInput{
		MemberID:         f.member.ID,
		MembershipTypeID: mType.ID,
		PaymentAmount:    60,
	})
	require.NoError(t, err)

	// No transition rules: any non-empty tag is accepted.
	updated, err := f.svc.SetStatus(ctx, membership.ID, "frozen")
	require.NoError(t, err)
	assert.Equal(t, "frozen", updated.Status)

	_, err = f.svc.SetStatus(ctx, membership.ID, "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.svc.SetStatus(ctx, uuid.New(), "active")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
