package handlers

import (
	"log/slog"
	"time"

	"kostdesk/internal/core/domain"
	"kostdesk/internal/core/services"
	"kostdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// TodoHandler handles operator todo endpoints
type TodoHandler struct {
	todoService *services.TodoService
	loc         *time.Location
	logger      *slog.Logger
}

// NewTodoHandler creates a new todo handler
func NewTodoHandler(todoService *services.TodoService, loc *time.Location, logger *slog.Logger) *TodoHandler {
	return &TodoHandler{todoService: todoService, loc: loc, logger: logger}
}

// CreateTodoRequest represents create todo request body
type CreateTodoRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Priority    domain.Priority `json:"priority" example:"medium"`
	DueDate     string          `json:"due_date" example:"2024-12-14"`
	AssignedTo  string          `json:"assigned_to"`
}

// ListTodos handles listing todos
// @Summary List todos
// @Tags Todos
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search title, description or assignee"
// @Param status query string false "Todo, In Progress, Done, unknown or all"
// @Param priority query string false "low, medium, high, urgent or all"
// @Param assigned_to query string false "Assignee"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Router /todos [get]
func (h *TodoHandler) ListTodos(c *fiber.Ctx) error {
	q, err := listQuery(c, h.loc, "status", "priority", "assigned_to")
	if err != nil {
		return badInput(c, err)
	}

	result, err := h.todoService.List(c.Context(), q)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to list todos")
	}

	return withWarnings(c, "Todos retrieved successfully", result, result.Warnings)
}

// CreateTodo handles creating a todo
// @Summary Create todo
// @Tags Todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateTodoRequest true "Todo data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /todos [post]
func (h *TodoHandler) CreateTodo(c *fiber.Ctx) error {
	var req CreateTodoRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	due, err := parseDay("due_date", req.DueDate, h.loc)
	if err != nil {
		return badInput(c, err)
	}

	todo, err := h.todoService.Create(c.Context(), &services.CreateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     due,
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to create todo")
	}

	return response.Created(c, "Todo created successfully", todo)
}

// UpdateStatus handles moving a todo to any status
// @Summary Update todo status
// @Tags Todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Todo ID"
// @Param body body StatusRequest true "New status"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /todos/{id}/status [put]
func (h *TodoHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badInput(c, err)
	}
	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	todo, err := h.todoService.UpdateStatus(c.Context(), id, domain.TodoStatus(req.Status))
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to update todo")
	}

	return response.Success(c, "Todo updated successfully", todo)
}
