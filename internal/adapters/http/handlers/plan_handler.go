package handlers

import (
	"fitcenter/internal/adapters/http/middleware"
	"fitcenter/internal/core/services"
	"fitcenter/internal/pkg/response"
	"fitcenter/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// PlanHandler handles workout plan, diet plan and assignment endpoints
type PlanHandler struct {
	planService    *services.PlanService
	trainerService *services.TrainerService
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(planService *services.PlanService, trainerService *services.TrainerService) *PlanHandler {
	return &PlanHandler{
		planService:    planService,
		trainerService: trainerService,
	}
}

// ============================================================================
// Workout plans
// ============================================================================

// CreateWorkoutPlan creates a workout plan authored by the caller
func (h *PlanHandler) CreateWorkoutPlan(c *fiber.Ctx) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	var input services.WorkoutPlanInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	plan, err := h.planService.CreateWorkoutPlan(c.Context(), userID, &input)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Created(c, "Workout plan created", plan)
}

// ListWorkoutPlans returns the caller's workout plans
func (h *PlanHandler) ListWorkoutPlans(c *fiber.Ctx) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	plans, err := h.planService.ListWorkoutPlans(c.Context(), userID)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Workout plans retrieved", plans)
}

// UpdateWorkoutPlan applies a partial update to a workout plan
func (h *PlanHandler) UpdateWorkoutPlan(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid plan ID")
	}

	var values map[string]interface{}
	if err := c.BodyParser(&values); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if len(values) == 0 {
		return response.BadRequest(c, "No fields to update")
	}

	plan, err := h.planService.UpdateWorkoutPlan(c.Context(), id, values)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Workout plan updated", plan)
}

// DeleteWorkoutPlan removes a workout plan
func (h *PlanHandler) DeleteWorkoutPlan(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid plan ID")
	}

	if err := h.planService.DeleteWorkoutPlan(c.Context(), id); err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Workout plan deleted", nil)
}

// ============================================================================
// Diet plans
// ============================================================================

// CreateDietPlan creates a diet plan authored by the caller
func (h *PlanHandler) CreateDietPlan(c *fiber.Ctx) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	var input services.DietPlanInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	plan, err := h.planService.CreateDietPlan(c.Context(), userID, &input)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Created(c, "Diet plan created", plan)
}

// ListDietPlans returns the caller's diet plans
func (h *PlanHandler) ListDietPlans(c *fiber.Ctx) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	plans, err := h.planService.ListDietPlans(c.Context(), userID)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Diet plans retrieved", plans)
}

// UpdateDietPlan applies a partial update to a diet plan
func (h *PlanHandler) UpdateDietPlan(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid plan ID")
	}

	var values map[string]interface{}
	if err := c.BodyParser(&values); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if len(values) == 0 {
		return response.BadRequest(c, "No fields to update")
	}

	plan, err := h.planService.UpdateDietPlan(c.Context(), id, values)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Diet plan updated", plan)
}

// DeleteDietPlan removes a diet plan
func (h *PlanHandler) DeleteDietPlan(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid plan ID")
	}

	if err := h.planService.DeleteDietPlan(c.Context(), id); err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Diet plan deleted", nil)
}

// ============================================================================
// Assignments
// ============================================================================

// Assign pairs plans with a membership
func (h *PlanHandler) Assign(c *fiber.Ctx) error {
	var input services.AssignInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	assignment, err := h.planService.Assign(c.Context(), &input)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Created(c, "Plans assigned", assignment)
}

// ListAssignments returns the plan assignments of a membership
func (h *PlanHandler) ListAssignments(c *fiber.Ctx) error {
	membershipID, err := uuid.Parse(c.Params("membershipId"))
	if err != nil {
		return response.BadRequest(c, "Invalid membership ID")
	}

	assignments, err := h.planService.ListAssignments(c.Context(), membershipID)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Assignments retrieved", assignments)
}

// MyMembers returns the active memberships assigned to the calling trainer
func (h *PlanHandler) MyMembers(c *fiber.Ctx) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	trainer, err := h.trainerService.GetByUser(c.Context(), userID)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	memberships, err := h.planService.AssignedMemberships(c.Context(), trainer.ID)
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Assigned members retrieved", memberships)
}
