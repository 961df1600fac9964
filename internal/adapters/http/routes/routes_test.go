package routes_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kostdesk/internal/adapters/http/middleware"
	"kostdesk/internal/adapters/http/routes"
	"kostdesk/internal/adapters/persistence/models"
	"kostdesk/internal/config"
	"kostdesk/internal/core/domain"
	"kostdesk/internal/core/services"
	"kostdesk/internal/pkg/password"
	"kostdesk/internal/pkg/testdb"
)

var testNow = time.Date(2024, 12, 11, 9, 30, 0, 0, time.UTC)

func day(offset int) time.Time {
	y, m, d := testNow.Date()
	return time.Date(y, m, d+offset, 0, 0, 0, 0, time.UTC)
}

type envelope struct {
	Success        bool            `json:"success"`
	Message        string          `json:"message"`
	Error          string          `json:"error"`
	Data           json.RawMessage `json:"data"`
	Warnings       int             `json:"warnings"`
	WarningMessage string          `json:"warning_message"`
}

type server struct {
	app *fiber.App
	db  *gorm.DB
	svc *services.Services
}

func newServer(t *testing.T) *server {
	t.Helper()
	password.Cost = bcrypt.MinCost
	t.Cleanup(func() { password.Cost = password.DefaultCost })

	db := testdb.Open(t)
	cfg := &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
		Rules: config.RulesConfig{ExpiringThresholdDays: 30, UpcomingWindowDays: 7},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := services.New(db, cfg, logger, func() time.Time { return testNow })

	app := fiber.New(fiber.Config{ErrorHandler: middleware.CustomErrorHandler})
	routes.Setup(app, db, cfg, svc, logger)

	ctx := context.Background()
	_, err := svc.User.CreateUser(ctx, &services.CreateUserInput{Username: "admin", Email: "admin@kostdesk.id", Password: "kamar123", Role: domain.RoleAdmin})
	require.NoError(t, err)
	_, err = svc.User.CreateUser(ctx, &services.CreateUserInput{Username: "staff", Email: "staff@kostdesk.id", Password: "kamar123", Role: domain.RoleStaff})
	require.NoError(t, err)

	return &server{app: app, db: db, svc: svc}
}

func (s *server) do(t *testing.T, method, path, token, body string) (int, envelope) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func (s *server) login(t *testing.T, username string) string {
	t.Helper()
	status, env := s.do(t, http.MethodPost, "/api/v1/auth/login", "", `{"username":"`+username+`","password":"kamar123"}`)
	require.Equal(t, http.StatusOK, status, env.Error)

	var data struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.AccessToken)
	return data.AccessToken
}

func (s *server) seedContracts(t *testing.T) (*models.Contract, *models.Invoice) {
	t.Helper()
	p := &models.Property{Name: "Kost Melati", Address: "Jl. Melati 5"}
	require.NoError(t, s.db.Create(p).Error)
	room := &models.Room{PropertyID: p.ID, Number: "A1", Floor: 1, MonthlyRent: 150_000_000}
	require.NoError(t, s.db.Create(room).Error)

	budi := &models.Contract{TenantName: "Budi", RoomID: room.ID, StartDate: day(-100), EndDate: day(10), MonthlyRent: room.MonthlyRent}
	require.NoError(t, s.db.Create(budi).Error)
	backwards := &models.Contract{TenantName: "Backwards", RoomID: room.ID, StartDate: day(10), EndDate: day(-10), MonthlyRent: 1}
	require.NoError(t, s.db.Create(backwards).Error)

	paid := &models.Invoice{Number: "INV-202412-P", ContractID: budi.ID, Amount: 150_000_000, IssueDate: day(-20), DueDate: day(-10), Status: "Paid", PaidAt: ptr(day(-12))}
	require.NoError(t, s.db.Create(paid).Error)
	return budi, paid
}

func ptr(t time.Time) *time.Time { return &t }

func TestHealthCheck(t *testing.T) {
	s := newServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "healthy", body.Checks["database"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newServer(t)

	status, env := s.do(t, http.MethodGet, "/api/v1/contracts", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, env.Success)

	status, _ = s.do(t, http.MethodGet, "/api/v1/contracts", "not-a-jwt", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, env = s.do(t, http.MethodPost, "/api/v1/auth/login", "", `{"username":"admin","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, env.Success)
}

func TestRoleGates(t *testing.T) {
	s := newServer(t)
	staff := s.login(t, "staff")
	admin := s.login(t, "admin")

	status, _ := s.do(t, http.MethodGet, "/api/v1/users", staff, "")
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = s.do(t, http.MethodGet, "/api/v1/cash-flow", staff, "")
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = s.do(t, http.MethodPost, "/api/v1/properties", staff, `{"name":"Kost Mawar"}`)
	assert.Equal(t, http.StatusForbidden, status)

	status, env := s.do(t, http.MethodGet, "/api/v1/users", admin, "")
	assert.Equal(t, http.StatusOK, status, env.Error)

	status, _ = s.do(t, http.MethodGet, "/api/v1/auth/me", staff, "")
	assert.Equal(t, http.StatusOK, status)
}

func TestListContractsReportsWarnings(t *testing.T) {
	s := newServer(t)
	s.seedContracts(t)
	token := s.login(t, "staff")

	status, env := s.do(t, http.MethodGet, "/api/v1/contracts", token, "")
	require.Equal(t, http.StatusOK, status, env.Error)
	assert.Equal(t, 1, env.Warnings)
	assert.Equal(t, "1 record could not be processed", env.WarningMessage)

	var data struct {
		Items []struct {
			TenantName    string `json:"tenant_name"`
			Status        string `json:"status"`
			DaysRemaining int    `json:"days_remaining"`
			MonthlyRent   string `json:"monthly_rent"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Items, 1)
	assert.Equal(t, "Budi", data.Items[0].TenantName)
	assert.Equal(t, "expiring", data.Items[0].Status)
	assert.Equal(t, 10, data.Items[0].DaysRemaining)
	assert.Equal(t, "1500000.00", data.Items[0].MonthlyRent)

	status, env = s.do(t, http.MethodGet, "/api/v1/contracts?today=2025-03-01", token, "")
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Items, 1)
	assert.Equal(t, "expired", data.Items[0].Status)

	status, env = s.do(t, http.MethodGet, "/api/v1/contracts?status=active", token, "")
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Empty(t, data.Items)
}

func TestBadInputStatusCodes(t *testing.T) {
	s := newServer(t)
	budi, _ := s.seedContracts(t)
	token := s.login(t, "admin")

	status, env := s.do(t, http.MethodGet, "/api/v1/contracts?today=2024-13-45", token, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, env.Error, "today")

	status, _ = s.do(t, http.MethodGet, "/api/v1/contracts/abc", token, "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.do(t, http.MethodGet, "/api/v1/contracts/999", token, "")
	assert.Equal(t, http.StatusNotFound, status)

	body := `{"tenant_name":"Sari","room_id":` + itoa(budi.RoomID) + `,"start_date":"2025-02-01","end_date":"2025-01-01","monthly_rent":"1500000"}`
	status, env = s.do(t, http.MethodPost, "/api/v1/contracts", token, body)
	assert.Equal(t, http.StatusUnprocessableEntity, status, env.Error)
}

func TestPayInvoiceTwiceConflicts(t *testing.T) {
	s := newServer(t)
	_, paid := s.seedContracts(t)
	token := s.login(t, "staff")

	status, env := s.do(t, http.MethodPut, "/api/v1/invoices/"+itoa(paid.ID)+"/pay", token, "")
	assert.Equal(t, http.StatusConflict, status)
	assert.False(t, env.Success)

	var stored models.Invoice
	require.NoError(t, s.db.First(&stored, paid.ID).Error)
	assert.Equal(t, "Paid", stored.Status)
}

func TestCreateAndPayInvoice(t *testing.T) {
	s := newServer(t)
	budi, _ := s.seedContracts(t)
	token := s.login(t, "admin")

	body := `{"contract_id":` + itoa(budi.ID) + `,"amount":"1500000","issue_date":"2024-11-25","due_date":"2024-12-05","description":"Sewa Desember"}`
	status, env := s.do(t, http.MethodPost, "/api/v1/invoices", token, body)
	require.Equal(t, http.StatusCreated, status, env.Error)

	var created struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
		Amount string `json:"amount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "Overdue", created.Status)
	assert.Equal(t, "1500000.00", created.Amount)

	status, env = s.do(t, http.MethodPut, "/api/v1/invoices/"+itoa(created.ID)+"/pay", token, "")
	require.Equal(t, http.StatusOK, status, env.Error)
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "Paid", created.Status)
}

func TestDashboardIsPrivatelyCached(t *testing.T) {
	s := newServer(t)
	s.seedContracts(t)
	token := s.login(t, "staff")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Cache-Control"), "private")
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func TestListHugePageIsEmpty(t *testing.T) {
	s := newServer(t)
	s.seedContracts(t)
	token := s.login(t, "staff")

	status, env := s.do(t, http.MethodGet, "/api/v1/contracts?page=92233720368547760", token, "")
	require.Equal(t, http.StatusOK, status, env.Error)

	var data struct {
		Items []json.RawMessage `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Empty(t, data.Items)
}

func TestRefreshRotatesSession(t *testing.T) {
	s := newServer(t)

	status, env := s.do(t, http.MethodPost, "/api/v1/auth/login", "", `{"username":" staff ","password":"kamar123"}`)
	require.Equal(t, http.StatusOK, status, env.Error)

	var session struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    int    `json:"expires_in"`
		User         struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &session))
	assert.Equal(t, 15*60, session.ExpiresIn)
	assert.Equal(t, "staff", session.User.Username)
	first := session.RefreshToken

	status, env = s.do(t, http.MethodPost, "/api/v1/auth/refresh", "", `{"refresh_token":"`+first+`"}`)
	require.Equal(t, http.StatusOK, status, env.Error)
	require.NoError(t, json.Unmarshal(env.Data, &session))
	assert.NotEqual(t, first, session.RefreshToken)

	status, env = s.do(t, http.MethodPost, "/api/v1/auth/refresh", "", `{"refresh_token":"`+first+`"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Session was signed out, please login again", env.Error)

	status, env = s.do(t, http.MethodPost, "/api/v1/auth/refresh", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Refresh token not found", env.Error)
}

func TestLoginRejectsMissingCredentials(t *testing.T) {
	s := newServer(t)

	status, env := s.do(t, http.MethodPost, "/api/v1/auth/login", "", `{"username":"  ","password":"kamar123"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Username is required", env.Error)

	status, env = s.do(t, http.MethodPost, "/api/v1/auth/login", "", `{"username":"staff"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Password is required", env.Error)
}
