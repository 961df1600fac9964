package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kostdesk/internal/adapters/persistence/models"
	"kostdesk/internal/adapters/persistence/repositories"
	"kostdesk/internal/config"
	"kostdesk/internal/core/lifecycle"
	"kostdesk/internal/pkg/password"
	"kostdesk/internal/pkg/testdb"
)

var testNow = time.Date(2024, 12, 11, 9, 30, 0, 0, time.UTC)

func day(offset int) time.Time {
	y, m, d := testNow.Date()
	return time.Date(y, m, d+offset, 0, 0, 0, 0, time.UTC)
}

func testClock() time.Time { return testNow }

type fixture struct {
	db     *gorm.DB
	cfg    *config.Config
	logger *slog.Logger

	users       repositories.UserRepository
	tokens      repositories.RefreshTokenRepository
	properties  repositories.PropertyRepository
	contractsDB repositories.ContractRepository
	invoicesDB  repositories.InvoiceRepository
	waitingDB   repositories.WaitingListRepository
	ticketsDB   repositories.MaintenanceRepository
	todosDB     repositories.TodoRepository
	cashDB      repositories.CashFlowRepository

	contracts   *ContractService
	invoices    *InvoiceService
	maintenance *MaintenanceService
	todos       *TodoService
	waiting     *WaitingListService
	props       *PropertyService
	cash        *CashFlowService
	calendar    *CalendarService
	dashboard   *DashboardService
	auth        *AuthService
	userSvc     *UserService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	password.Cost = bcrypt.MinCost
	t.Cleanup(func() { password.Cost = password.DefaultCost })

	db := testdb.Open(t)
	policy := lifecycle.DefaultPolicy()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
	}

	f := &fixture{
		db:          db,
		cfg:         cfg,
		logger:      logger,
		users:       repositories.NewUserRepository(db),
		tokens:      repositories.NewRefreshTokenRepository(db),
		properties:  repositories.NewPropertyRepository(db),
		contractsDB: repositories.NewContractRepository(db),
		invoicesDB:  repositories.NewInvoiceRepository(db),
		waitingDB:   repositories.NewWaitingListRepository(db),
		ticketsDB:   repositories.NewMaintenanceRepository(db),
		todosDB:     repositories.NewTodoRepository(db),
		cashDB:      repositories.NewCashFlowRepository(db),
	}
	f.contracts = NewContractService(f.contractsDB, f.properties, policy, testClock, logger)
	f.invoices = NewInvoiceService(f.invoicesDB, f.contractsDB, policy, testClock, logger)
	f.maintenance = NewMaintenanceService(f.ticketsDB, testClock, logger)
	f.todos = NewTodoService(f.todosDB, logger)
	f.waiting = NewWaitingListService(f.waitingDB, f.properties, policy, testClock, logger)
	f.props = NewPropertyService(f.properties, f.contractsDB, policy, testClock, logger)
	f.cash = NewCashFlowService(f.cashDB, policy, testClock, logger)
	f.calendar = NewCalendarService(f.contractsDB, f.ticketsDB, f.todosDB, policy, testClock, logger)
	f.dashboard = NewDashboardService(f.contracts, f.invoices, f.maintenance, f.cash, f.calendar, f.users, 7, testClock)
	f.auth = NewAuthService(f.users, f.tokens, cfg, SystemClock)
	f.userSvc = NewUserService(f.users)
	return f
}

func (f *fixture) room(t *testing.T, number string) *models.Room {
	t.Helper()
	ctx := context.Background()
	props, err := f.properties.List(ctx)
	require.NoError(t, err)

	var propertyID uint
	if len(props) > 0 {
		propertyID = props[0].ID
	} else {
		p := &models.Property{Name: "Kost Melati", Address: "Jl. Melati 5"}
		require.NoError(t, f.properties.Create(ctx, p))
		propertyID = p.ID
	}
	r := &models.Room{PropertyID: propertyID, Number: number, Floor: 1, Type: "standard", MonthlyRent: 150_000_000}
	require.NoError(t, f.properties.CreateRoom(ctx, r))
	return r
}

func (f *fixture) contract(t *testing.T, room *models.Room, tenant string, start, end time.Time) *models.Contract {
	t.Helper()
	c := &models.Contract{TenantName: tenant, RoomID: room.ID, StartDate: start, EndDate: end, MonthlyRent: room.MonthlyRent}
	require.NoError(t, f.contractsDB.Create(context.Background(), c))
	return c
}

func (f *fixture) invoice(t *testing.T, c *models.Contract, number, status string, due time.Time) *models.Invoice {
	t.Helper()
	inv := &models.Invoice{Number: number, ContractID: c.ID, Amount: 150_000_000, IssueDate: due.AddDate(0, 0, -10), DueDate: due, Status: status}
	require.NoError(t, f.invoicesDB.Create(context.Background(), inv))
	return inv
}
