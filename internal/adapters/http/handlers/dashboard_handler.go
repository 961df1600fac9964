package handlers

import (
	"log/slog"
	"time"

	"kostdesk/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles the overview page
type DashboardHandler struct {
	dashboardService *services.DashboardService
	loc              *time.Location
	logger           *slog.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService, loc *time.Location, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, loc: loc, logger: logger}
}

// GetDashboard returns the overview
// @Summary Get dashboard overview
// @Description Status counts, outstanding and collected amounts, ledger totals and upcoming events
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Param today query string false "Derive at this date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	today, err := todayParam(c, h.loc)
	if err != nil {
		return badInput(c, err)
	}

	data, err := h.dashboardService.Overview(c.Context(), today)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to load dashboard")
	}

	return withWarnings(c, "Dashboard retrieved successfully", data, data.Warnings)
}
