package handlers

import (
	"fitcenter/internal/core/services"
	"fitcenter/internal/pkg/response"
	"fitcenter/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// TrainerHandler handles trainer endpoints
type TrainerHandler struct {
	trainerService *services.TrainerService
}

// NewTrainerHandler creates a new trainer handler
func NewTrainerHandler(trainerService *services.TrainerService) *TrainerHandler {
	return &TrainerHandler{trainerService: trainerService}
}

// Provision creates a trainer account through the multi-step flow.
// On failure the per-step outcomes are returned alongside the error so
// operators can see how far provisioning got.
func (h *TrainerHandler) Provision(c *fiber.Ctx) error {
	var input services.ProvisionInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	result, err := h.trainerService.Provision(c.Context(), &input)
	if err != nil {
		return c.Status(response.StatusOf(err)).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"data":    result,
		})
	}

	return response.Created(c, "Trainer provisioned", result)
}

// List returns all trainers with their profiles
func (h *TrainerHandler) List(c *fiber.Ctx) error {
	trainers, err := h.trainerService.ListTrainers(c.Context())
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Trainers retrieved", trainers)
}

// Update edits a trainer and optionally the linked profile name
func (h *TrainerHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid trainer ID")
	}

	var input services.EditInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	trainer, err := h.trainerService.Edit(c.Context(), id, &input)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Trainer updated", trainer)
}

// Delete removes a trainer
func (h *TrainerHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid trainer ID")
	}

	if err := h.trainerService.DeleteTrainer(c.Context(), id); err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Trainer deleted", nil)
}
