package handlers

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"kostdesk/internal/adapters/persistence/models"
	"kostdesk/internal/config"
	"kostdesk/internal/core/services"
	"kostdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const (
	accessCookie  = "access_token"
	refreshCookie = "refresh_token"
)

// AuthHandler signs dashboard operators in and out
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
		logger:      logger,
	}
}

// LoginRequest is an operator's credentials
type LoginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"admin123456"`
}

// missing names the first empty credential, or "" when both are present
func (r *LoginRequest) missing() string {
	r.Username = strings.TrimSpace(r.Username)
	switch {
	case r.Username == "":
		return "Username is required"
	case r.Password == "":
		return "Password is required"
	}
	return ""
}

// RefreshRequest carries the refresh token for clients that do not keep cookies
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// SessionResponse is the body of a successful login or refresh
type SessionResponse struct {
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token"`
	ExpiresIn    int                  `json:"expires_in"`
	User         *models.UserResponse `json:"user"`
}

// sessionFailure maps an auth service error onto its answer
type sessionFailure struct {
	err     error
	status  int
	message string
}

var sessionFailures = []sessionFailure{
	{services.ErrInvalidCredentials, fiber.StatusUnauthorized, "Invalid username or password"},
	{services.ErrUserInactive, fiber.StatusForbidden, "Operator account is inactive"},
	{services.ErrTokenExpired, fiber.StatusUnauthorized, "Session expired, please login again"},
	{services.ErrTokenRevoked, fiber.StatusUnauthorized, "Session was signed out, please login again"},
	{services.ErrInvalidToken, fiber.StatusUnauthorized, "Invalid refresh token"},
	{services.ErrUserNotFound, fiber.StatusUnauthorized, "Operator no longer exists"},
}

// Login handles operator login
// @Summary Operator login
// @Description Check an operator's credentials and open a session. Tokens are returned in the body and as HTTP-only cookies.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} response.Response{data=SessionResponse}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if msg := req.missing(); msg != "" {
		return response.BadRequest(c, msg)
	}

	session, err := h.authService.Login(c.Context(), &services.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return h.rejectSession(c, err, false, "Failed to login")
	}
	return h.openSession(c, "Login successful", session)
}

// RefreshToken rotates the refresh token
// @Summary Refresh session
// @Description Trade a refresh token, from the cookie or the body, for a new token pair. The old refresh token is revoked.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RefreshRequest false "Refresh token when no cookie is sent"
// @Success 200 {object} response.Response{data=SessionResponse}
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	token := h.refreshTokenFrom(c)
	if token == "" {
		return response.Unauthorized(c, "Refresh token not found")
	}

	session, err := h.authService.RefreshToken(c.Context(), token)
	if err != nil {
		return h.rejectSession(c, err, true, "Failed to refresh token")
	}
	return h.openSession(c, "Session refreshed", session)
}

// Logout ends the current session
// @Summary Logout
// @Description Revoke the presented refresh token and clear the auth cookies
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if token := h.refreshTokenFrom(c); token != "" {
		if err := h.authService.Logout(c.Context(), token); err != nil {
			h.logger.Warn("revoke refresh token", slog.Any("error", err))
		}
	}
	h.clearCookies(c)
	return response.Success(c, "Logged out successfully", nil)
}

// LogoutAll ends every session of the current operator
// @Summary Logout from all devices
// @Description Revoke every refresh token of the authenticated operator
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/logout-all [post]
func (h *AuthHandler) LogoutAll(c *fiber.Ctx) error {
	id, ok := userID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	if err := h.authService.LogoutAll(c.Context(), id); err != nil {
		return serviceError(c, h.logger, err, "Failed to logout from all devices")
	}
	h.clearCookies(c)
	return response.Success(c, "Logged out from all devices", nil)
}

// Me returns the authenticated operator
// @Summary Current operator
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	id, ok := userID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	user, err := h.authService.GetUserByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return response.NotFound(c, "Operator not found")
		}
		return serviceError(c, h.logger, err, "Failed to get operator")
	}
	return response.Success(c, "Operator retrieved successfully", fiber.Map{
		"user": user.ToResponse(),
	})
}

// openSession sets the auth cookies and answers with the token pair
func (h *AuthHandler) openSession(c *fiber.Ctx, message string, session *services.AuthResponse) error {
	h.setCookies(c, session.AccessToken, session.RefreshToken)
	return response.Success(c, message, SessionResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		ExpiresIn:    h.cfg.JWT.AccessTokenMins * 60,
		User:         session.User,
	})
}

// rejectSession answers a failed login or refresh, expiring the cookies when
// dropCookies is set
func (h *AuthHandler) rejectSession(c *fiber.Ctx, err error, dropCookies bool, fallback string) error {
	for _, f := range sessionFailures {
		if errors.Is(err, f.err) {
			if dropCookies {
				h.clearCookies(c)
			}
			h.logger.Info("session rejected", slog.String("path", c.Path()), slog.String("reason", f.err.Error()))
			return response.Error(c, f.status, f.message)
		}
	}
	return serviceError(c, h.logger, err, fallback)
}

// refreshTokenFrom reads the refresh token from the cookie, then the body
func (h *AuthHandler) refreshTokenFrom(c *fiber.Ctx) string {
	if token := c.Cookies(refreshCookie); token != "" {
		return token
	}
	var req RefreshRequest
	if len(c.Body()) > 0 && c.BodyParser(&req) == nil {
		return strings.TrimSpace(req.RefreshToken)
	}
	return ""
}

// setCookies writes both auth cookies
func (h *AuthHandler) setCookies(c *fiber.Ctx, access, refresh string) {
	c.Cookie(h.cookie(accessCookie, access, h.cfg.JWT.AccessTokenMins*60))
	c.Cookie(h.cookie(refreshCookie, refresh, h.cfg.JWT.RefreshTokenDays*24*60*60))
}

func (h *AuthHandler) clearCookies(c *fiber.Ctx) {
	h.setCookies(c, "", "")
}

// cookie builds an HTTP-only auth cookie; an empty value expires it
func (h *AuthHandler) cookie(name, value string, maxAge int) *fiber.Cookie {
	ck := &fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	}
	if value == "" {
		ck.MaxAge = -1
		ck.Expires = time.Now().Add(-time.Hour)
	}
	return ck
}
