package handlers

import (
	"log/slog"
	"time"

	"kostdesk/internal/core/domain"
	"kostdesk/internal/core/services"
	"kostdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PropertyHandler handles property and room endpoints
type PropertyHandler struct {
	propertyService *services.PropertyService
	loc             *time.Location
	logger          *slog.Logger
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(propertyService *services.PropertyService, loc *time.Location, logger *slog.Logger) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService, loc: loc, logger: logger}
}

// CreateRoomRequest represents create room request body
type CreateRoomRequest struct {
	Number      string       `json:"number"`
	Floor       int          `json:"floor"`
	Type        string       `json:"type"`
	MonthlyRent domain.Money `json:"monthly_rent" swaggertype:"string" example:"1500000"`
}

// MaintenanceFlagRequest represents a room maintenance toggle
type MaintenanceFlagRequest struct {
	UnderMaintenance bool `json:"under_maintenance"`
}

// ListProperties handles listing properties with occupancy
// @Summary List properties
// @Tags Properties
// @Produce json
// @Security BearerAuth
// @Param today query string false "Derive occupancy at this date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Router /properties [get]
func (h *PropertyHandler) ListProperties(c *fiber.Ctx) error {
	today, err := todayParam(c, h.loc)
	if err != nil {
		return badInput(c, err)
	}

	properties, err := h.propertyService.List(c.Context(), today)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to list properties")
	}

	return response.Success(c, "Properties retrieved successfully", fiber.Map{
		"properties": properties,
	})
}

// CreateProperty handles creating a property
// @Summary Create property
// @Tags Properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreatePropertyInput true "Property data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c *fiber.Ctx) error {
	var req services.CreatePropertyInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	property, err := h.propertyService.Create(c.Context(), &req)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to create property")
	}

	return response.Created(c, "Property created successfully", property)
}

// ListRooms handles listing the rooms of a property
// @Summary List rooms
// @Tags Properties
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Param q query string false "Search room number or type"
// @Param occupancy query string false "available, occupied, maintenance or all"
// @Param type query string false "Room type"
// @Param today query string false "Derive occupancy at this date (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /properties/{id}/rooms [get]
func (h *PropertyHandler) ListRooms(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badInput(c, err)
	}
	q, err := listQuery(c, h.loc, "occupancy", "type")
	if err != nil {
		return badInput(c, err)
	}

	result, err := h.propertyService.ListRooms(c.Context(), id, q)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to list rooms")
	}

	return withWarnings(c, "Rooms retrieved successfully", result, result.Warnings)
}

// CreateRoom handles adding a room to a property
// @Summary Create room
// @Tags Properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Param body body CreateRoomRequest true "Room data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /properties/{id}/rooms [post]
func (h *PropertyHandler) CreateRoom(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badInput(c, err)
	}
	var req CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	room, err := h.propertyService.CreateRoom(c.Context(), id, &services.CreateRoomInput{
		Number:      req.Number,
		Floor:       req.Floor,
		Type:        req.Type,
		MonthlyRent: req.MonthlyRent,
	})
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to create room")
	}

	return response.Created(c, "Room created successfully", room)
}

// SetMaintenance handles flagging a room as under maintenance
// @Summary Set room maintenance flag
// @Tags Properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Param body body MaintenanceFlagRequest true "Flag"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /rooms/{id}/maintenance [put]
func (h *PropertyHandler) SetMaintenance(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badInput(c, err)
	}
	var req MaintenanceFlagRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	room, err := h.propertyService.SetMaintenance(c.Context(), id, req.UnderMaintenance)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to update room")
	}

	return response.Success(c, "Room updated successfully", room)
}
