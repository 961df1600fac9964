package handlers

import (
	"log/slog"
	"time"

	"kostdesk/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// CalendarHandler handles the combined event calendar
type CalendarHandler struct {
	calendarService *services.CalendarService
	loc             *time.Location
	logger          *slog.Logger
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(calendarService *services.CalendarService, loc *time.Location, logger *slog.Logger) *CalendarHandler {
	return &CalendarHandler{calendarService: calendarService, loc: loc, logger: logger}
}

// GetCalendar handles the events grouped by day
// @Summary Calendar
// @Description Check-ins, check-outs, maintenance and todos grouped by day in chronological order
// @Tags Calendar
// @Produce json
// @Security BearerAuth
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Param type query string false "check_in, check_out, maintenance, todo or all"
// @Param today query string false "Derive statuses at this date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /calendar [get]
func (h *CalendarHandler) GetCalendar(c *fiber.Ctx) error {
	from, err := optionalDay("from", c.Query("from"), h.loc)
	if err != nil {
		return badInput(c, err)
	}
	to, err := optionalDay("to", c.Query("to"), h.loc)
	if err != nil {
		return badInput(c, err)
	}
	today, err := todayParam(c, h.loc)
	if err != nil {
		return badInput(c, err)
	}

	view, err := h.calendarService.Calendar(c.Context(), services.CalendarQuery{
		From:  from,
		To:    to,
		Today: today,
		Type:  c.Query("type"),
	})
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to load calendar")
	}

	return withWarnings(c, "Calendar retrieved successfully", view, view.Warnings)
}
