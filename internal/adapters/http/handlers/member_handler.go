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

// MemberHandler handles member endpoints
type MemberHandler struct {
	memberService *services.MemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService *services.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// Create registers a new member
func (h *MemberHandler) Create(c *fiber.Ctx) error {
	var input services.MemberInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	member, err := h.memberService.CreateMember(c.Context(), &input)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Created(c, "Member created", member)
}

// List returns members with pagination and optional ordering
func (h *MemberHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	var order *repositories.Order
	if params.SortBy != "" {
		order = &repositories.Order{Field: params.SortBy, Desc: params.SortDesc}
	}

	members, total, err := h.memberService.ListMembers(c.Context(), order, params.Limit, params.Offset)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Members retrieved", pagination.NewResponse(members, params, total))
}

// Get returns a single member by id
func (h *MemberHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	member, err := h.memberService.GetMember(c.Context(), id)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Member retrieved", member)
}

// Update applies a partial update to a member
func (h *MemberHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	var values map[string]interface{}
	if err := c.BodyParser(&values); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if len(values) == 0 {
		return response.BadRequest(c, "No fields to update")
	}

	member, err := h.memberService.UpdateMember(c.Context(), id, values)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Member updated", member)
}

// Delete removes a member without active memberships
func (h *MemberHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	if err := h.memberService.DeleteMember(c.Context(), id); err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Member deleted", nil)
}
