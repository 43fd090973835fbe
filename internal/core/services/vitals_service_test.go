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

func TestBMI(t *testing.T) {
	tests := []struct {
		name     string
		heightCm float64
		weightKg float64
		want     float64
	}{
		{"exact quotient", 180, 81, 25.00},
		{"rounds half up", 170, 65, 22.49},
		{"underweight", 175, 50, 16.33},
		{"heavy", 160, 95, 37.11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, BMI(tt.heightCm, tt.weightKg), 0.001)
		})
	}
}

func newVitalsFixture(t *testing.T) (*VitalsService, *models.Member) {
	t.Helper()
	db := setupTestDB(t)

	members := repositories.NewRepository[models.Member](db)
	vitals := repositories.NewRepository[models.MemberVitals](db)
	svc := NewVitalsService(vitals, members)

	inserted, err := members.Insert(context.Background(), &models.Member{
		FullName: "Measured Member",
		Email:    "vitals@gym.test",
		Phone:    "0810000001",
	})
	require.NoError(t, err)
	return svc, inserted[0]
}

func TestRecordStoresDerivedBMI(t *testing.T) {
	svc, member := newVitalsFixture(t)

	record, err := svc.Record(context.Background(), &RecordInput{
		MemberID: member.ID,
		HeightCm: 180,
		WeightKg: 81,
	})
	require.NoError(t, err)
	require.NotNil(t, record.BMI)
	assert.InDelta(t, 25.00, *record.BMI, 0.001)
	assert.False(t, record.RecordedDate.IsZero())
}

func TestRecordRejectsNonPositiveMeasurements(t *testing.T) {
	svc, member := newVitalsFixture(t)
	ctx := context.Background()

	_, err := svc.Record(ctx, &RecordInput{MemberID: member.ID, HeightCm: 0, WeightKg: 70})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Record(ctx, &RecordInput{MemberID: member.ID, HeightCm: 175, WeightKg: -1})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRecordUnknownMemberFails(t *testing.T) {
	svc, _ := newVitalsFixture(t)

	_, err := svc.Record(context.Background(), &RecordInput{
		MemberID: uuid.New(),
		HeightCm: 175,
		WeightKg: 70,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistoryIsNewestFirst(t *testing.T) {
	svc, member := newVitalsFixture(t)
	ctx := context.Background()

	days := []time.Time{
		date(2026, time.January, 5),
		date(2026, time.March, 5),
		date(2026, time.February, 5),
	}
	for i, day := range days {
		day := day
		svc.now = func() time.Time { return day }
		_, err := svc.Record(ctx, &RecordInput{
			MemberID: member.ID,
			HeightCm: 175,
			WeightKg: 70 + float64(i),
		})
		require.NoError(t, err)
	}

	history, err := svc.History(ctx, member.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, date(2026, time.March, 5), history[0].RecordedDate.UTC())
	assert.Equal(t, date(2026, time.January, 5), history[2].RecordedDate.UTC())
}
