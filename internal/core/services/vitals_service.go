package services

import (
	"context"
	"math"
	"time"

	"fitcenter/internal/adapters/persistence/models"
	"fitcenter/internal/adapters/persistence/repositories"
	"fitcenter/internal/core/domain"
	"fitcenter/internal/pkg/dateutil"

	"github.com/google/uuid"
)

// VitalsService records physical measurements and derives BMI
type VitalsService struct {
	vitals  *repositories.Repository[models.MemberVitals]
	members *repositories.Repository[models.Member]

	now func() time.Time
}

// NewVitalsService creates a new vitals service
func NewVitalsService(
	vitals *repositories.Repository[models.MemberVitals],
	members *repositories.Repository[models.Member],
) *VitalsService {
	return &VitalsService{vitals: vitals, members: members, now: time.Now}
}

// RecordInput represents a vitals measurement
type RecordInput struct {
	MemberID uuid.UUID `json:"member_id" validate:"required"`
	HeightCm float64   `json:"height_cm" validate:"required,gt=0"`
	WeightKg float64   `json:"weight_kg" validate:"required,gt=0"`
	Notes    *string   `json:"notes"`
}

// BMI computes weight in kilograms divided by height in meters squared,
// rounded to 2 decimal places.
func BMI(heightCm, weightKg float64) float64 {
	heightM := heightCm / 100
	return math.Round(weightKg/(heightM*heightM)*100) / 100
}

// Record appends a time-stamped measurement to the member's vitals
// history. BMI is computed once from this record's height and weight
// and never recomputed from other rows.
func (s *VitalsService) Record(ctx context.Context, input *RecordInput) (*models.MemberVitals, error) {
	if input.HeightCm <= 0 {
		return nil, domain.ValidationError("height_cm must be positive")
	}
	if input.WeightKg <= 0 {
		return nil, domain.ValidationError("weight_kg must be positive")
	}

	if _, err := s.members.Get(ctx, repositories.Filter{"id": input.MemberID}, nil); err != nil {
		return nil, err
	}

	bmi := BMI(input.HeightCm, input.WeightKg)
	record := &models.MemberVitals{
		MemberID:     input.MemberID,
		HeightCm:     &input.HeightCm,
		WeightKg:     &input.WeightKg,
		BMI:          &bmi,
		Notes:        input.Notes,
		RecordedDate: dateutil.DateOnly(s.now()),
	}

	inserted, err := s.vitals.Insert(ctx, record)
	if err != nil {
		return nil, err
	}
	return inserted[0], nil
}

// History lists a member's vitals ordered by recorded date, newest
// first. The history is unbounded and no aggregation is computed here.
func (s *VitalsService) History(ctx context.Context, memberID uuid.UUID) ([]models.MemberVitals, error) {
	return s.vitals.List(ctx, repositories.Filter{"member_id": memberID}, &repositories.ListOptions{
		Order: &repositories.Order{Field: "recorded_date", Desc: true},
	})
}
