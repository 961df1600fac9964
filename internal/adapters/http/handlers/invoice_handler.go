package handlers

import (
	"log/slog"
	"time"

	"kostdesk/internal/core/domain"
	"kostdesk/internal/core/services"
	"kostdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// InvoiceHandler handles billing endpoints
type InvoiceHandler struct {
	invoiceService *services.InvoiceService
	loc            *time.Location
	logger         *slog.Logger
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *services.InvoiceService, loc *time.Location, logger *slog.Logger) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService, loc: loc, logger: logger}
}

// CreateInvoiceRequest represents create invoice request body
type CreateInvoiceRequest struct {
	ContractID  uint         `json:"contract_id"`
	Description string       `json:"description"`
	Amount      domain.Money `json:"amount" swaggertype:"string" example:"1500000"`
	IssueDate   string       `json:"issue_date" example:"2024-12-01"`
	DueDate     string       `json:"due_date" example:"2024-12-10"`
}

// ListInvoices handles listing invoices with derived statuses
// @Summary List invoices
// @Description Pending invoices past their due date are reported as Overdue
// @Tags Invoices
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search number, tenant or description"
// @Param status query string false "Paid, Pending, Overdue, Cancelled, unknown or all"
// @Param contract_id query int false "Contract ID"
// @Param today query string false "Derive at this date (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Router /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *fiber.Ctx) error {
	q, err := listQuery(c, h.loc, "status", "contract_id")
	if err != nil {
		return badInput(c, err)
	}

	result, err := h.invoiceService.List(c.Context(), q)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to list invoices")
	}

	return withWarnings(c, "Invoices retrieved successfully", result, result.Warnings)
}

// CreateInvoice handles issuing an invoice
// @Summary Create invoice
// @Description Amount defaults to the contract's monthly rent, issue date to today
// @Tags Invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateInvoiceRequest true "Invoice data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *fiber.Ctx) error {
	var req CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.ContractID == 0 {
		return response.BadRequest(c, "contract_id is required")
	}

	issue, err := optionalDay("issue_date", req.IssueDate, h.loc)
	if err != nil {
		return badInput(c, err)
	}
	due, err := parseDay("due_date", req.DueDate, h.loc)
	if err != nil {
		return badInput(c, err)
	}

	invoice, err := h.invoiceService.Create(c.Context(), &services.CreateInvoiceInput{
		ContractID:  req.ContractID,
		Description: req.Description,
		Amount:      req.Amount,
		IssueDate:   issue,
		DueDate:     due,
	})
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to create invoice")
	}

	return response.Created(c, "Invoice created successfully", invoice)
}

// PayInvoice handles marking an invoice paid
// @Summary Pay invoice
// @Tags Invoices
// @Produce json
// @Security BearerAuth
// @Param id path int true "Invoice ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /invoices/{id}/pay [put]
func (h *InvoiceHandler) PayInvoice(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badInput(c, err)
	}

	invoice, err := h.invoiceService.Pay(c.Context(), id)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to pay invoice")
	}

	return response.Success(c, "Invoice paid successfully", invoice)
}

// CancelInvoice handles cancelling an invoice
// @Summary Cancel invoice
// @Tags Invoices
// @Produce json
// @Security BearerAuth
// @Param id path int true "Invoice ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /invoices/{id}/cancel [put]
func (h *InvoiceHandler) CancelInvoice(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badInput(c, err)
	}

	invoice, err := h.invoiceService.Cancel(c.Context(), id)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to cancel invoice")
	}

	return response.Success(c, "Invoice cancelled successfully", invoice)
}

// Summary handles outstanding and collected totals
// @Summary Invoice summary
// @Tags Invoices
// @Produce json
// @Security BearerAuth
// @Param today query string false "Derive at this date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Router /invoices/summary [get]
func (h *InvoiceHandler) Summary(c *fiber.Ctx) error {
	today, err := todayParam(c, h.loc)
	if err != nil {
		return badInput(c, err)
	}

	summary, err := h.invoiceService.Summary(c.Context(), today)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to summarize invoices")
	}

	return withWarnings(c, "Invoice summary retrieved successfully", summary, summary.Warnings)
}
