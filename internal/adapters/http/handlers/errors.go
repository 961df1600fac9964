package handlers

import (
	"errors"
	"log/slog"

	"kostdesk/internal/core/domain"
	"kostdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// badInput answers 400 for malformed parameters and 422 for rule violations
// raised by the services.
func badInput(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) && verr.Entity == "request" {
		return response.BadRequest(c, verr.Error())
	}
	return response.UnprocessableEntity(c, err.Error())
}

// serviceError maps domain errors to responses; anything unrecognized is
// logged and answered with fallback.
func serviceError(c *fiber.Ctx, logger *slog.Logger, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return badInput(c, err)
	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrUnknownStatus):
		return response.Conflict(c, err.Error())
	}
	logger.Error(fallback,
		slog.String("method", c.Method()),
		slog.String("path", c.Path()),
		slog.String("error", err.Error()),
	)
	return response.InternalServerError(c, fallback)
}
