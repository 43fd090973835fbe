package handlers

import (
	"fitcenter/internal/adapters/persistence/repositories"
	"fitcenter/internal/core/services"
	"fitcenter/internal/pkg/pagination"
	"fitcenter/internal/pkg/response"
	"fitcenter/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// MembershipHandler handles membership and membership type endpoints
type MembershipHandler struct {
	membershipService *services.MembershipService
}

// NewMembershipHandler creates a new membership handler
func NewMembershipHandler(membershipService *services.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipService: membershipService}
}

// Enroll creates a membership for a member
func (h *MembershipHandler) Enroll(c *fiber.Ctx) error {
	var input services.EnrollInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	membership, err := h.membershipService.Enroll(c.Context(), &input)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Created(c, "Membership created", membership)
}

// List returns memberships, optionally filtered by member, trainer or status
func (h *MembershipHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	filter := repositories.Filter{}
	if v := c.Query("member_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return response.BadRequest(c, "Invalid member_id filter")
		}
		filter["member_id"] = id
	}
	if v := c.Query("trainer_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return response.BadRequest(c, "Invalid trainer_id filter")
		}
		filter["trainer_id"] = id
	}
	if v := c.Query("status"); v != "" {
		filter["status"] = v
	}

	memberships, total, err := h.membershipService.ListMemberships(c.Context(), filter, params.Limit, params.Offset)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Memberships retrieved", pagination.NewResponse(memberships, params, total))
}

// StatusRequest represents a status change request body
type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SetStatus updates the status tag of a membership
func (h *MembershipHandler) SetStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid membership ID")
	}

	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	membership, err := h.membershipService.SetStatus(c.Context(), id, req.Status)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Membership status updated", membership)
}

// Delete removes a membership
func (h *MembershipHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid membership ID")
	}

	if err := h.membershipService.DeleteMembership(c.Context(), id); err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Membership deleted", nil)
}

// ============================================================================
// Membership types
// ============================================================================

// CreateType creates a membership type
func (h *MembershipHandler) CreateType(c *fiber.Ctx) error {
	var input services.MembershipTypeInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	mt, err := h.membershipService.CreateType(c.Context(), &input)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Created(c, "Membership type created", mt)
}

// ListTypes returns all membership types
func (h *MembershipHandler) ListTypes(c *fiber.Ctx) error {
	types, err := h.membershipService.ListTypes(c.Context())
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Membership types retrieved", types)
}

// UpdateType applies a partial update to a membership type. Existing
// memberships keep the end date derived at enrollment time.
func (h *MembershipHandler) UpdateType(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid membership type ID")
	}

	var values map[string]interface{}
	if err := c.BodyParser(&values); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if len(values) == 0 {
		return response.BadRequest(c, "No fields to update")
	}

	mt, err := h.membershipService.UpdateType(c.Context(), id, values)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Membership type updated", mt)
}

// DeleteType removes a membership type
func (h *MembershipHandler) DeleteType(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid membership type ID")
	}

	if err := h.membershipService.DeleteType(c.Context(), id); err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Membership type deleted", nil)
}
