package handlers

import (
	"log/slog"
	"time"

	"kostdesk/internal/core/domain"
	"kostdesk/internal/core/services"
	"kostdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CashFlowHandler handles income and expense ledger endpoints
type CashFlowHandler struct {
	cashFlowService *services.CashFlowService
	loc             *time.Location
	logger          *slog.Logger
}

// NewCashFlowHandler creates a new cash flow handler
func NewCashFlowHandler(cashFlowService *services.CashFlowService, loc *time.Location, logger *slog.Logger) *CashFlowHandler {
	return &CashFlowHandler{cashFlowService: cashFlowService, loc: loc, logger: logger}
}

// CreateCashFlowRequest represents create ledger entry request body
type CreateCashFlowRequest struct {
	Kind        domain.CashFlowKind   `json:"kind" example:"income"`
	Category    string                `json:"category"`
	Description string                `json:"description"`
	Amount      domain.Money          `json:"amount" swaggertype:"string" example:"1500000"`
	Date        string                `json:"date" example:"2024-12-11"`
	Status      domain.CashFlowStatus `json:"status" example:"Completed"`
}

// ListEntries handles listing the ledger
// @Summary List cash flow entries
// @Tags Cash Flow
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search description or category"
// @Param kind query string false "income, expense or all"
// @Param status query string false "Completed, Pending or all"
// @Param category query string false "Category"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Router /cash-flow [get]
func (h *CashFlowHandler) ListEntries(c *fiber.Ctx) error {
	q, err := listQuery(c, h.loc, "kind", "status", "category")
	if err != nil {
		return badInput(c, err)
	}

	result, err := h.cashFlowService.List(c.Context(), q)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to list cash flow")
	}

	return withWarnings(c, "Cash flow retrieved successfully", result, result.Warnings)
}

// CreateEntry handles recording income or expense
// @Summary Create cash flow entry
// @Tags Cash Flow
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateCashFlowRequest true "Entry data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /cash-flow [post]
func (h *CashFlowHandler) CreateEntry(c *fiber.Ctx) error {
	var req CreateCashFlowRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	date, err := optionalDay("date", req.Date, h.loc)
	if err != nil {
		return badInput(c, err)
	}

	entry, err := h.cashFlowService.Create(c.Context(), &services.CreateCashFlowInput{
		Kind:        req.Kind,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        date,
		Status:      req.Status,
	})
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to create cash flow entry")
	}

	return response.Created(c, "Cash flow entry created successfully", entry)
}

// Summary handles the completed totals of a date range
// @Summary Cash flow summary
// @Description Income and expense count Completed entries only; from and to are inclusive
// @Tags Cash Flow
// @Produce json
// @Security BearerAuth
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /cash-flow/summary [get]
func (h *CashFlowHandler) Summary(c *fiber.Ctx) error {
	from, err := optionalDay("from", c.Query("from"), h.loc)
	if err != nil {
		return badInput(c, err)
	}
	to, err := optionalDay("to", c.Query("to"), h.loc)
	if err != nil {
		return badInput(c, err)
	}

	summary, err := h.cashFlowService.Summary(c.Context(), from, to)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to summarize cash flow")
	}

	return response.Success(c, "Cash flow summary retrieved successfully", summary)
}
