package services

import (
	"log/slog"

	"kostdesk/internal/adapters/persistence/repositories"
	"kostdesk/internal/config"

	"gorm.io/gorm"
)

// Services is every service of the application wired to one database
type Services struct {
	Auth         *AuthService
	User         *UserService
	Property     *PropertyService
	Contract     *ContractService
	Invoice      *InvoiceService
	Maintenance  *MaintenanceService
	Todo         *TodoService
	WaitingList  *WaitingListService
	CashFlow     *CashFlowService
	Calendar     *CalendarService
	Dashboard    *DashboardService
	Notification *NotificationService
	Reminder     *ReminderService
}

// New builds the repositories and services. A nil clock means SystemClock.
func New(db *gorm.DB, cfg *config.Config, logger *slog.Logger, clock Clock) *Services {
	clock = orClock(clock)
	logger = orDefault(logger)
	policy := cfg.Policy()

	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepositoryWithClock(db, clock)
	propertyRepo := repositories.NewPropertyRepository(db)
	contractRepo := repositories.NewContractRepository(db)
	invoiceRepo := repositories.NewInvoiceRepository(db)
	waitingRepo := repositories.NewWaitingListRepository(db)
	maintenanceRepo := repositories.NewMaintenanceRepository(db)
	todoRepo := repositories.NewTodoRepository(db)
	cashFlowRepo := repositories.NewCashFlowRepository(db)

	s := &Services{
		Auth:         NewAuthService(userRepo, refreshTokenRepo, cfg, clock),
		User:         NewUserService(userRepo),
		Property:     NewPropertyService(propertyRepo, contractRepo, policy, clock, logger),
		Contract:     NewContractService(contractRepo, propertyRepo, policy, clock, logger),
		Invoice:      NewInvoiceService(invoiceRepo, contractRepo, policy, clock, logger),
		Maintenance:  NewMaintenanceService(maintenanceRepo, clock, logger),
		Todo:         NewTodoService(todoRepo, logger),
		WaitingList:  NewWaitingListService(waitingRepo, propertyRepo, policy, clock, logger),
		CashFlow:     NewCashFlowService(cashFlowRepo, policy, clock, logger),
		Calendar:     NewCalendarService(contractRepo, maintenanceRepo, todoRepo, policy, clock, logger),
		Notification: NewNotificationService(cfg.Reminder.LineNotifyToken, logger),
	}
	s.Dashboard = NewDashboardService(s.Contract, s.Invoice, s.Maintenance, s.CashFlow, s.Calendar, userRepo, cfg.Rules.UpcomingWindowDays, clock)
	s.Reminder = NewReminderService(s.Contract, s.Invoice, s.Notification, cfg.Reminder.Schedule, policy.Location, clock, logger)
	return s
}
