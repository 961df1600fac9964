package handlers

import (
	"log/slog"
	"time"

	"kostdesk/internal/core/domain"
	"kostdesk/internal/core/services"
	"kostdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// WaitingListHandler handles prospective tenant endpoints
type WaitingListHandler struct {
	waitingService *services.WaitingListService
	loc            *time.Location
	logger         *slog.Logger
}

// NewWaitingListHandler creates a new waiting list handler
func NewWaitingListHandler(waitingService *services.WaitingListService, loc *time.Location, logger *slog.Logger) *WaitingListHandler {
	return &WaitingListHandler{waitingService: waitingService, loc: loc, logger: logger}
}

// CreateWaitingRequest represents create waiting list entry request body
type CreateWaitingRequest struct {
	Name                string       `json:"name"`
	Phone               string       `json:"phone"`
	Email               string       `json:"email"`
	PreferredPropertyID uint         `json:"preferred_property_id"`
	PreferredRoomType   string       `json:"preferred_room_type"`
	DesiredMoveIn       string       `json:"desired_move_in" example:"2025-01-01"`
	Budget              domain.Money `json:"budget" swaggertype:"string" example:"1500000"`
	Notes               string       `json:"notes"`
}

// ConvertRequest represents the contract terms of a conversion
type ConvertRequest struct {
	RoomID      uint         `json:"room_id"`
	StartDate   string       `json:"start_date" example:"2025-01-01"`
	EndDate     string       `json:"end_date" example:"2025-12-31"`
	MonthlyRent domain.Money `json:"monthly_rent" swaggertype:"string" example:"1500000"`
	Deposit     domain.Money `json:"deposit" swaggertype:"string" example:"1500000"`
}

// ListEntries handles listing the waiting list
// @Summary List waiting list
// @Description Each entry carries the actions its status allows
// @Tags Waiting List
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search name, phone, email or notes"
// @Param status query string false "Pending, Approved, Rejected, Converted, unknown or all"
// @Param property_id query int false "Preferred property ID"
// @Param room_type query string false "Preferred room type"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Router /waiting-list [get]
func (h *WaitingListHandler) ListEntries(c *fiber.Ctx) error {
	q, err := listQuery(c, h.loc, "status", "property_id", "room_type")
	if err != nil {
		return badInput(c, err)
	}

	result, err := h.waitingService.List(c.Context(), q)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to list waiting list")
	}

	return withWarnings(c, "Waiting list retrieved successfully", result, result.Warnings)
}

// CreateEntry handles adding a prospect
// @Summary Create waiting list entry
// @Tags Waiting List
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateWaitingRequest true "Prospect data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /waiting-list [post]
func (h *WaitingListHandler) CreateEntry(c *fiber.Ctx) error {
	var req CreateWaitingRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	moveIn, err := optionalDay("desired_move_in", req.DesiredMoveIn, h.loc)
	if err != nil {
		return badInput(c, err)
	}

	entry, err := h.waitingService.Create(c.Context(), &services.CreateWaitingInput{
		Name:                req.Name,
		Phone:               req.Phone,
		Email:               req.Email,
		PreferredPropertyID: req.PreferredPropertyID,
		PreferredRoomType:   req.PreferredRoomType,
		DesiredMoveIn:       moveIn,
		Budget:              req.Budget,
		Notes:               req.Notes,
	})
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to create waiting list entry")
	}

	return response.Created(c, "Waiting list entry created successfully", entry)
}

// Approve handles approving a Pending entry
// @Summary Approve waiting list entry
// @Tags Waiting List
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /waiting-list/{id}/approve [put]
func (h *WaitingListHandler) Approve(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badInput(c, err)
	}

	entry, err := h.waitingService.Approve(c.Context(), id)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to approve waiting list entry")
	}

	return response.Success(c, "Waiting list entry approved", entry)
}

// Reject handles rejecting a Pending entry
// @Summary Reject waiting list entry
// @Tags Waiting List
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /waiting-list/{id}/reject [put]
func (h *WaitingListHandler) Reject(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badInput(c, err)
	}

	entry, err := h.waitingService.Reject(c.Context(), id)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to reject waiting list entry")
	}

	return response.Success(c, "Waiting list entry rejected", entry)
}

// Convert handles turning an Approved entry into a contract
// @Summary Convert waiting list entry
// @Description Creates the contract and marks the entry Converted in one transaction
// @Tags Waiting List
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Param body body ConvertRequest true "Contract terms"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /waiting-list/{id}/convert [post]
func (h *WaitingListHandler) Convert(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badInput(c, err)
	}
	var req ConvertRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.RoomID == 0 {
		return response.BadRequest(c, "room_id is required")
	}
	start, err := optionalDay("start_date", req.StartDate, h.loc)
	if err != nil {
		return badInput(c, err)
	}
	end, err := parseDay("end_date", req.EndDate, h.loc)
	if err != nil {
		return badInput(c, err)
	}

	result, err := h.waitingService.Convert(c.Context(), id, &services.ConvertInput{
		RoomID:      req.RoomID,
		StartDate:   start,
		EndDate:     end,
		MonthlyRent: req.MonthlyRent,
		Deposit:     req.Deposit,
	})
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to convert waiting list entry")
	}

	return response.Created(c, "Waiting list entry converted to contract", result)
}
