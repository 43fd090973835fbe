package services

import (
	"context"
	"fmt"
	"time"

	"fitcenter/internal/adapters/persistence/models"
	"fitcenter/internal/adapters/persistence/repositories"
	"fitcenter/internal/core/domain"

	"github.com/google/uuid"
)

// MemberService handles member management
type MemberService struct {
	members     *repositories.Repository[models.Member]
	memberships *repositories.Repository[models.Membership]
}

// NewMemberService creates a new member service
func NewMemberService(
	members *repositories.Repository[models.Member],
	memberships *repositories.Repository[models.Membership],
) *MemberService {
	return &MemberService{members: members, memberships: memberships}
}

// MemberInput represents member create input
type MemberInput struct {
	FullName              string     `json:"full_name" validate:"required"`
	Email                 string     `json:"email" validate:"required,email"`
	Phone                 string     `json:"phone" validate:"required"`
	DateOfBirth           *time.Time `json:"date_of_birth"`
	Gender                *string    `json:"gender"`
	Address               *string    `json:"address"`
	EmergencyContactName  *string    `json:"emergency_contact_name"`
	EmergencyContactPhone *string    `json:"emergency_contact_phone"`
}

// CreateMember creates a member
func (s *MemberService) CreateMember(ctx context.Context, input *MemberInput) (*models.Member, error) {
	member := &models.Member{
		FullName:              input.FullName,
		Email:                 input.Email,
		Phone:                 input.Phone,
		DateOfBirth:           input.DateOfBirth,
		Gender:                input.Gender,
		Address:               input.Address,
		EmergencyContactName:  input.EmergencyContactName,
		EmergencyContactPhone: input.EmergencyContactPhone,
	}

	inserted, err := s.members.Insert(ctx, member)
	if err != nil {
		return nil, err
	}
	return inserted[0], nil
}

// GetMember returns one member by id
func (s *MemberService) GetMember(ctx context.Context, id uuid.UUID) (*models.Member, error) {
	return s.members.Get(ctx, repositories.Filter{"id": id}, nil)
}

// ListMembers lists members, newest first unless the caller orders by
// another column. Order fields are validated against the entity schema
// by the repository.
func (s *MemberService) ListMembers(ctx context.Context, order *repositories.Order, limit, offset int) ([]models.Member, int64, error) {
	if order == nil {
		order = &repositories.Order{Field: "created_at", Desc: true}
	}
	rows, err := s.members.List(ctx, nil, &repositories.ListOptions{
		Order:  order,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, 0, err
	}

	total, err := s.members.Count(ctx, nil)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// UpdateMember applies a partial value set to one member
func (s *MemberService) UpdateMember(ctx context.Context, id uuid.UUID, values map[string]interface{}) (*models.Member, error) {
	updated, err := s.members.Update(ctx, values, repositories.Filter{"id": id})
	if err != nil {
		return nil, err
	}
	if len(updated) == 0 {
		return nil, domain.ErrNotFound
	}
	return &updated[0], nil
}

// DeleteMember removes a member. A member still referenced by an active
// membership is not deleted; the membership has to be ended or removed
// first.
func (s *MemberService) DeleteMember(ctx context.Context, id uuid.UUID) error {
	active, err := s.memberships.Count(ctx, repositories.Filter{
		"member_id": id,
		"status":    domain.MembershipStatusActive,
	})
	if err != nil {
		return err
	}
	if active > 0 {
		return fmt.Errorf("%w: member has %d active membership(s)", domain.ErrConflict, active)
	}

	removed, err := s.members.Delete(ctx, repositories.Filter{"id": id})
	if err != nil {
		return err
	}
	if len(removed) == 0 {
		return domain.ErrNotFound
	}
	return nil
}
