package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kostdesk/internal/config"
	"kostdesk/internal/pkg/jwt"
)

func testApp(cfg *config.Config, gates ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := append([]fiber.Handler{AuthMiddleware(cfg)}, gates...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("username").(string))
	})
	app.Get("/", handlers...)
	return app
}

func get(t *testing.T, app *fiber.App, setup func(*http.Request)) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if setup != nil {
		setup(req)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "s"}}
	staff, err := jwt.GenerateAccessToken(2, "wati", "STAFF", "s", 5)
	require.NoError(t, err)
	manager, err := jwt.GenerateAccessToken(3, "joko", "MANAGER", "s", 5)
	require.NoError(t, err)
	foreign, err := jwt.GenerateAccessToken(3, "joko", "ADMIN", "other", 5)
	require.NoError(t, err)

	bearer := func(tok string) func(*http.Request) {
		return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+tok) }
	}

	app := testApp(cfg)
	assert.Equal(t, http.StatusUnauthorized, get(t, app, nil))
	assert.Equal(t, http.StatusUnauthorized, get(t, app, bearer(foreign)))
	assert.Equal(t, http.StatusOK, get(t, app, bearer(staff)))
	assert.Equal(t, http.StatusOK, get(t, app, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "access_token", Value: staff})
	}))

	gated := testApp(cfg, ManagerOrAdmin())
	assert.Equal(t, http.StatusForbidden, get(t, gated, bearer(staff)))
	assert.Equal(t, http.StatusOK, get(t, gated, bearer(manager)))

	admin := testApp(cfg, AdminOnly())
	assert.Equal(t, http.StatusForbidden, get(t, admin, bearer(manager)))
}
