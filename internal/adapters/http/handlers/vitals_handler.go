package handlers

import (
	"fitcenter/internal/core/services"
	"fitcenter/internal/pkg/response"
	"fitcenter/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// VitalsHandler handles member vitals endpoints
type VitalsHandler struct {
	vitalsService *services.VitalsService
}

// NewVitalsHandler creates a new vitals handler
func NewVitalsHandler(vitalsService *services.VitalsService) *VitalsHandler {
	return &VitalsHandler{vitalsService: vitalsService}
}

// Record stores a vitals measurement with its derived BMI
func (h *VitalsHandler) Record(c *fiber.Ctx) error {
	var input services.RecordInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	vitals, err := h.vitalsService.Record(c.Context(), &input)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Created(c, "Vitals recorded", vitals)
}

// History returns a member's measurements, newest first
func (h *VitalsHandler) History(c *fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("memberId"))
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	history, err := h.vitalsService.History(c.Context(), memberID)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Vitals history retrieved", history)
}
