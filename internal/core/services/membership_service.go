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

// MembershipService handles the enrollment lifecycle and membership
// type management
type MembershipService struct {
	memberships *repositories.Repository[models.Membership]
	types       *repositories.Repository[models.MembershipType]
	members     *repositories.Repository[models.Member]
	trainers    *repositories.Repository[models.Trainer]

	now func() time.Time
}

// NewMembershipService creates a new membership service
func NewMembershipService(
	memberships *repositories.Repository[models.Membership],
	types *repositories.Repository[models.MembershipType],
	members *repositories.Repository[models.Member],
	trainers *repositories.Repository[models.Trainer],
) *MembershipService {
	return &MembershipService{
		memberships: memberships,
		types:       types,
		members:     members,
		trainers:    trainers,
		now:         time.Now,
	}
}

// EnrollInput represents enrollment input
type EnrollInput struct {
	MemberID         uuid.UUID  `json:"member_id" validate:"required"`
	MembershipTypeID uuid.UUID  `json:"membership_type_id" validate:"required"`
	TrainerID        *uuid.UUID `json:"trainer_id"`
	PaymentAmount    float64    `json:"payment_amount" validate:"gte=0"`
	// StartDate is optional; enrollment starts now when absent.
	StartDate *time.Time `json:"start_date"`
}

// Enroll creates a membership from a member, a membership type, an
// optional trainer and a payment. The end date is derived once here:
// start date advanced by the type's duration in calendar months, with
// month-end overflow clamped. It is never recomputed, even if the type
// is edited later.
func (s *MembershipService) Enroll(ctx context.Context, input *EnrollInput) (*models.Membership, error) {
	member, err := s.members.Get(ctx, repositories.Filter{"id": input.MemberID}, nil)
	if err != nil {
		return nil, err
	}

	mType, err := s.types.Get(ctx, repositories.Filter{"id": input.MembershipTypeID}, nil)
	if err != nil {
		return nil, err
	}

	if input.TrainerID != nil {
		if _, err := s.trainers.Get(ctx, repositories.Filter{"id": *input.TrainerID}, nil); err != nil {
			return nil, err
		}
	}

	start := dateutil.DateOnly(s.now())
	if input.StartDate != nil {
		start = dateutil.DateOnly(*input.StartDate)
	}

	membership := &models.Membership{
		MemberID:         member.ID,
		MembershipTypeID: mType.ID,
		TrainerID:        input.TrainerID,
		StartDate:        start,
		EndDate:          dateutil.AddMonths(start, mType.DurationMonths),
		PaymentAmount:    input.PaymentAmount,
		PaymentDate:      dateutil.DateOnly(s.now()),
		Status:           domain.MembershipStatusActive,
	}

	inserted, err := s.memberships.Insert(ctx, membership)
	if err != nil {
		return nil, err
	}
	return inserted[0], nil
}

// ListMemberships lists memberships with their relations, optionally
// filtered by status or member
func (s *MembershipService) ListMemberships(ctx context.Context, filter repositories.Filter, limit, offset int) ([]models.Membership, int64, error) {
	opts := &repositories.ListOptions{
		Preloads: []string{"Member", "MembershipType", "Trainer", "Trainer.Profile"},
		Order:    &repositories.Order{Field: "created_at", Desc: true},
		Limit:    limit,
		Offset:   offset,
	}

	rows, err := s.memberships.List(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.memberships.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// SetStatus sets the status tag of one membership. Status is an open
// string tag and caller-set; no transition rules apply.
func (s *MembershipService) SetStatus(ctx context.Context, id uuid.UUID, status string) (*models.Membership, error) {
	if status == "" {
		return nil, domain.ValidationError("status is required")
	}

	updated, err := s.memberships.Update(ctx,
		map[string]interface{}{"status": status},
		repositories.Filter{"id": id},
	)
	if err != nil {
		return nil, err
	}
	if len(updated) == 0 {
		return nil, domain.ErrNotFound
	}
	return &updated[0], nil
}

// DeleteMembership removes a membership
func (s *MembershipService) DeleteMembership(ctx context.Context, id uuid.UUID) error {
	removed, err := s.memberships.Delete(ctx, repositories.Filter{"id": id})
	if err != nil {
		return err
	}
	if len(removed) == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ============================================================
// Membership Types
// ============================================================

// MembershipTypeInput represents membership type create/update input
type MembershipTypeInput struct {
	Name           string  `json:"name" validate:"required"`
	Description    *string `json:"description"`
	DurationMonths int     `json:"duration_months" validate:"required,gt=0"`
	Price          float64 `json:"price" validate:"gte=0"`
}

// CreateType creates a membership type
func (s *MembershipService) CreateType(ctx context.Context, input *MembershipTypeInput) (*models.MembershipType, error) {
	mType := &models.MembershipType{
		Name:           input.Name,
		Description:    input.Description,
		DurationMonths: input.DurationMonths,
		Price:          input.Price,
	}

	inserted, err := s.types.Insert(ctx, mType)
	if err != nil {
		return nil, err
	}
	return inserted[0], nil
}

// ListTypes lists all membership types ordered by price
func (s *MembershipService) ListTypes(ctx context.Context) ([]models.MembershipType, error) {
	return s.types.List(ctx, nil, &repositories.ListOptions{
		Order: &repositories.Order{Field: "price"},
	})
}

// UpdateType updates a membership type. Existing memberships keep the
// end date derived at their enrollment time.
func (s *MembershipService) UpdateType(ctx context.Context, id uuid.UUID, values map[string]interface{}) (*models.MembershipType, error) {
	updated, err := s.types.Update(ctx, values, repositories.Filter{"id": id})
	if err != nil {
		return nil, err
	}
	if len(updated) == 0 {
		return nil, domain.ErrNotFound
	}
	return &updated[0], nil
}

// DeleteType removes a membership type
func (s *MembershipService) DeleteType(ctx context.Context, id uuid.UUID) error {
	removed, err := s.types.Delete(ctx, repositories.Filter{"id": id})
	if err != nil {
		return err
	}
	if len(removed) == 0 {
		return domain.ErrNotFound
	}
	return nil
}
