package handlers

import (
	"fitcenter/internal/core/services"
	"fitcenter/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Overview returns aggregate counts and this month's revenue
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	data, err := h.dashboardService.GetOverview(c.Context())
	if err != nil {
		return response.FromDomainError(c, err)
	}

	return response.Success(c, "Dashboard overview retrieved", data)
}
