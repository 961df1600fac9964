package handlers

import (
	"log/slog"
	"time"

	"kostdesk/internal/core/domain"
	"kostdesk/internal/core/services"
	"kostdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ContractHandler handles tenant contract endpoints
type ContractHandler struct {
	contractService *services.ContractService
	loc             *time.Location
	logger          *slog.Logger
}

// NewContractHandler creates a new contract handler
func NewContractHandler(contractService *services.ContractService, loc *time.Location, logger *slog.Logger) *ContractHandler {
	return &ContractHandler{contractService: contractService, loc: loc, logger: logger}
}

// CreateContractRequest represents create contract request body
type CreateContractRequest struct {
	TenantName  string       `json:"tenant_name"`
	TenantPhone string       `json:"tenant_phone"`
	RoomID      uint         `json:"room_id"`
	StartDate   string       `json:"start_date" example:"2025-01-01"`
	EndDate     string       `json:"end_date" example:"2025-12-31"`
	MonthlyRent domain.Money `json:"monthly_rent" swaggertype:"string" example:"1500000"`
	Deposit     domain.Money `json:"deposit" swaggertype:"string" example:"1500000"`
	Notes       string       `json:"notes"`
}

// ListContracts handles listing contracts with derived statuses
// @Summary List contracts
// @Description Contracts with status and days remaining derived at today
// @Tags Contracts
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search tenant, phone, room or notes"
// @Param status query string false "active, expiring, expired or all"
// @Param property_id query int false "Property ID"
// @Param room_id query int false "Room ID"
// @Param today query string false "Derive at this date (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /contracts [get]
func (h *ContractHandler) ListContracts(c *fiber.Ctx) error {
	q, err := listQuery(c, h.loc, "status", "property_id", "room_id")
	if err != nil {
		return badInput(c, err)
	}

	result, err := h.contractService.List(c.Context(), q)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to list contracts")
	}

	return withWarnings(c, "Contracts retrieved successfully", result, result.Warnings)
}

// GetContract handles getting a contract by ID
// @Summary Get contract
// @Tags Contracts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contract ID"
// @Param today query string false "Derive at this date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /contracts/{id} [get]
func (h *ContractHandler) GetContract(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badInput(c, err)
	}
	today, err := todayParam(c, h.loc)
	if err != nil {
		return badInput(c, err)
	}

	contract, err := h.contractService.Get(c.Context(), id, today)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to get contract")
	}

	return response.Success(c, "Contract retrieved successfully", contract)
}

// CreateContract handles creating a contract
// @Summary Create contract
// @Description Monthly rent defaults to the room's rent
// @Tags Contracts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateContractRequest true "Contract data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /contracts [post]
func (h *ContractHandler) CreateContract(c *fiber.Ctx) error {
	var req CreateContractRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.RoomID == 0 {
		return response.BadRequest(c, "room_id is required")
	}

	start, err := parseDay("start_date", req.StartDate, h.loc)
	if err != nil {
		return badInput(c, err)
	}
	end, err := parseDay("end_date", req.EndDate, h.loc)
	if err != nil {
		return badInput(c, err)
	}

	contract, err := h.contractService.Create(c.Context(), &services.CreateContractInput{
		TenantName:  req.TenantName,
		TenantPhone: req.TenantPhone,
		RoomID:      req.RoomID,
		StartDate:   start,
		EndDate:     end,
		MonthlyRent: req.MonthlyRent,
		Deposit:     req.Deposit,
		Notes:       req.Notes,
	})
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to create contract")
	}

	return response.Created(c, "Contract created successfully", contract)
}

// Summary handles the contract status breakdown
// @Summary Contract summary
// @Tags Contracts
// @Produce json
// @Security BearerAuth
// @Param today query string false "Derive at this date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Router /contracts/summary [get]
func (h *ContractHandler) Summary(c *fiber.Ctx) error {
	today, err := todayParam(c, h.loc)
	if err != nil {
		return badInput(c, err)
	}

	summary, err := h.contractService.Summary(c.Context(), today)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to summarize contracts")
	}

	return withWarnings(c, "Contract summary retrieved successfully", summary, summary.Warnings)
}
