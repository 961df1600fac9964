package handlers

import (
	"log/slog"
	"time"

	"kostdesk/internal/core/domain"
	"kostdesk/internal/core/services"
	"kostdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MaintenanceHandler handles maintenance ticket endpoints
type MaintenanceHandler struct {
	maintenanceService *services.MaintenanceService
	loc                *time.Location
	logger             *slog.Logger
}

// NewMaintenanceHandler creates a new maintenance handler
func NewMaintenanceHandler(maintenanceService *services.MaintenanceService, loc *time.Location, logger *slog.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceService: maintenanceService, loc: loc, logger: logger}
}

// CreateTicketRequest represents create ticket request body
type CreateTicketRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Priority    domain.Priority `json:"priority" example:"medium"`
	RoomID      uint            `json:"room_id"`
	Location    string          `json:"location"`
	AssignedTo  string          `json:"assigned_to"`
	ScheduledAt string          `json:"scheduled_at" example:"2024-12-12T10:00:00+07:00"`
	Cost        domain.Money    `json:"cost" swaggertype:"string" example:"250000"`
}

// StatusRequest represents a status change request body
type StatusRequest struct {
	Status string `json:"status"`
}

// ListTickets handles listing maintenance tickets
// @Summary List maintenance tickets
// @Tags Maintenance
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search title, description, location or assignee"
// @Param status query string false "Pending, In Progress, Completed, unknown or all"
// @Param priority query string false "low, medium, high, urgent or all"
// @Param category query string false "Category"
// @Param assigned_to query string false "Assignee"
// @Param room_id query int false "Room ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Router /maintenance [get]
func (h *MaintenanceHandler) ListTickets(c *fiber.Ctx) error {
	q, err := listQuery(c, h.loc, "status", "priority", "category", "assigned_to", "room_id")
	if err != nil {
		return badInput(c, err)
	}

	result, err := h.maintenanceService.List(c.Context(), q)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to list maintenance tickets")
	}

	return withWarnings(c, "Maintenance tickets retrieved successfully", result, result.Warnings)
}

// CreateTicket handles reporting a maintenance ticket
// @Summary Create maintenance ticket
// @Tags Maintenance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateTicketRequest true "Ticket data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /maintenance [post]
func (h *MaintenanceHandler) CreateTicket(c *fiber.Ctx) error {
	var req CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.CreateTicketInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		RoomID:      req.RoomID,
		Location:    req.Location,
		AssignedTo:  req.AssignedTo,
		Cost:        req.Cost,
	}
	scheduled, err := optionalDay("scheduled_at", req.ScheduledAt, h.loc)
	if err != nil {
		return badInput(c, err)
	}
	if !scheduled.IsZero() {
		input.ScheduledAt = &scheduled
	}

	ticket, err := h.maintenanceService.Create(c.Context(), input)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to create maintenance ticket")
	}

	return response.Created(c, "Maintenance ticket created successfully", ticket)
}

// UpdateStatus handles moving a ticket to any status
// @Summary Update maintenance ticket status
// @Tags Maintenance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param body body StatusRequest true "New status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /maintenance/{id}/status [put]
func (h *MaintenanceHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badInput(c, err)
	}
	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	ticket, err := h.maintenanceService.UpdateStatus(c.Context(), id, domain.TicketStatus(req.Status))
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to update maintenance ticket")
	}

	return response.Success(c, "Maintenance ticket updated successfully", ticket)
}

// Summary handles the ticket breakdown
// @Summary Maintenance summary
// @Tags Maintenance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /maintenance/summary [get]
func (h *MaintenanceHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.maintenanceService.Summary(c.Context())
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to summarize maintenance tickets")
	}
	return response.Success(c, "Maintenance summary retrieved successfully", summary)
}
