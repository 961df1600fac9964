package handlers

import (
	"errors"
	"log/slog"

	"kostdesk/internal/core/domain"
	"kostdesk/internal/core/services"
	"kostdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles operator account endpoints
type UserHandler struct {
	userService *services.UserService
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// userError maps user service errors
func (h *UserHandler) userError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return response.NotFound(c, "User not found")
	case errors.Is(err, services.ErrUserAlreadyExists):
		return response.Conflict(c, "Username already exists")
	case errors.Is(err, services.ErrEmailAlreadyExists):
		return response.Conflict(c, "Email already exists")
	case errors.Is(err, services.ErrWeakPassword),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrOldPasswordWrong),
		errors.Is(err, services.ErrCannotDeleteSelf),
		errors.Is(err, services.ErrCannotChangeOwnRole):
		return response.BadRequest(c, err.Error())
	}
	return serviceError(c, h.logger, err, fallback)
}

// ListUsers handles listing all users (Admin only)
// @Summary List all users
// @Description Get a paginated list of all users (Admin only)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search username, email or full name"
// @Param role query string false "ADMIN, MANAGER, STAFF or all"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	q, err := listQuery(c, nil, "role")
	if err != nil {
		return badInput(c, err)
	}

	result, err := h.userService.ListUsers(c.Context(), q)
	if err != nil {
		return h.userError(c, err, "Failed to list users")
	}

	return response.Success(c, "Users retrieved successfully", result)
}

// GetUser handles getting a user by ID (Admin only)
// @Summary Get user by ID
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badInput(c, err)
	}

	user, err := h.userService.GetUserByID(c.Context(), id)
	if err != nil {
		return h.userError(c, err, "Failed to get user")
	}

	return response.Success(c, "User retrieved successfully", fiber.Map{
		"user": user,
	})
}

// CreateUser handles creating an operator account (Admin only)
// @Summary Create user
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateUserInput true "User data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req services.CreateUserInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Email == "" {
		return response.BadRequest(c, "Email is required")
	}

	user, err := h.userService.CreateUser(c.Context(), &req)
	if err != nil {
		return h.userError(c, err, "Failed to create user")
	}

	return response.Created(c, "User created successfully", fiber.Map{
		"user": user,
	})
}

// UpdateUser handles updating a user (Admin only)
// @Summary Update user
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param body body services.UpdateUserInput true "Update data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badInput(c, err)
	}

	var req services.UpdateUserInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, err := h.userService.UpdateUser(c.Context(), id, &req)
	if err != nil {
		return h.userError(c, err, "Failed to update user")
	}

	return response.Success(c, "User updated successfully", fiber.Map{
		"user": user,
	})
}

// SetUserRoleRequest represents set user role request
type SetUserRoleRequest struct {
	Role string `json:"role" example:"MANAGER"`
}

// SetUserRole handles setting user role (Admin only)
// @Summary Set user role
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param body body SetUserRoleRequest true "Role data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id}/role [put]
func (h *UserHandler) SetUserRole(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badInput(c, err)
	}

	var req SetUserRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	adminID, _ := userID(c)
	user, err := h.userService.UpdateRole(c.Context(), id, adminID, domain.Role(req.Role))
	if err != nil {
		return h.userError(c, err, "Failed to set user role")
	}

	return response.Success(c, "User role updated successfully", fiber.Map{
		"user": user,
	})
}

// DeleteUser handles deleting a user (Admin only)
// @Summary Delete user
// @Description Delete a user (soft delete) (Admin only)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badInput(c, err)
	}

	adminID, _ := userID(c)
	if err := h.userService.DeleteUser(c.Context(), id, adminID); err != nil {
		return h.userError(c, err, "Failed to delete user")
	}

	return response.Success(c, "User deleted successfully", nil)
}

// ChangePassword handles changing the caller's password
// @Summary Change password
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.ChangePasswordInput true "Password data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /profile/password [put]
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	id, ok := userID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req services.ChangePasswordInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.OldPassword == "" || req.NewPassword == "" {
		return response.BadRequest(c, "Old and new password are required")
	}

	if err := h.userService.ChangePassword(c.Context(), id, &req); err != nil {
		return h.userError(c, err, "Failed to change password")
	}

	return response.Success(c, "Password changed successfully", nil)
}
