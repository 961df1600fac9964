package handlers

import (
	"strconv"
	"strings"
	"time"

	"kostdesk/internal/core/domain"
	"kostdesk/internal/core/lifecycle"
	"kostdesk/internal/core/services"
	"kostdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// parseID reads a positive numeric path parameter
func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || id == 0 {
		return 0, domain.NewValidationError("request", 0, name, "must be a positive number")
	}
	return uint(id), nil
}

// parseDay parses a required date field
func parseDay(field, value string, loc *time.Location) (time.Time, error) {
	return lifecycle.ParseDate("request", 0, field, value, loc)
}

// optionalDay parses a date field, returning the zero time when it is empty
func optionalDay(field, value string, loc *time.Location) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, nil
	}
	return parseDay(field, value, loc)
}

// todayParam reads the ?today=YYYY-MM-DD preview override
func todayParam(c *fiber.Ctx, loc *time.Location) (*time.Time, error) {
	t, err := optionalDay("today", c.Query("today"), loc)
	if err != nil || t.IsZero() {
		return nil, err
	}
	return &t, nil
}

// listQuery reads q, page, limit, today and the named categorical filters
func listQuery(c *fiber.Ctx, loc *time.Location, filters ...string) (services.ListQuery, error) {
	today, err := todayParam(c, loc)
	if err != nil {
		return services.ListQuery{}, err
	}
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	q := services.ListQuery{
		Query:   strings.TrimSpace(c.Query("q")),
		Filters: make(map[string]string, len(filters)),
		Page:    page,
		Limit:   limit,
		Today:   today,
	}
	for _, name := range filters {
		if v := strings.TrimSpace(c.Query(name)); v != "" {
			q.Filters[name] = v
		}
	}
	return q, nil
}

// userID is the authenticated operator set by the auth middleware
func userID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals("userID").(uint)
	return id, ok
}

// withWarnings answers 200 and reports how many records were skipped
func withWarnings(c *fiber.Ctx, message string, data interface{}, warnings int) error {
	return response.SuccessWithWarnings(c, message, data, warnings, lifecycle.WarningMessage(warnings))
}
