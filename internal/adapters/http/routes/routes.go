package routes

import (
	"log/slog"
	"time"

	"kostdesk/internal/adapters/http/handlers"
	"kostdesk/internal/adapters/http/middleware"
	"kostdesk/internal/config"
	"kostdesk/internal/core/services"
	"kostdesk/internal/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, svc *services.Services, logger *slog.Logger) {
	loc := cfg.Policy().Location

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg, db)
	authHandler := handlers.NewAuthHandler(svc.Auth, cfg, logger)
	userHandler := handlers.NewUserHandler(svc.User, logger)
	propertyHandler := handlers.NewPropertyHandler(svc.Property, loc, logger)
	contractHandler := handlers.NewContractHandler(svc.Contract, loc, logger)
	invoiceHandler := handlers.NewInvoiceHandler(svc.Invoice, loc, logger)
	maintenanceHandler := handlers.NewMaintenanceHandler(svc.Maintenance, loc, logger)
	todoHandler := handlers.NewTodoHandler(svc.Todo, loc, logger)
	waitingHandler := handlers.NewWaitingListHandler(svc.WaitingList, loc, logger)
	cashFlowHandler := handlers.NewCashFlowHandler(svc.CashFlow, loc, logger)
	calendarHandler := handlers.NewCalendarHandler(svc.Calendar, loc, logger)
	dashboardHandler := handlers.NewDashboardHandler(svc.Dashboard, loc, logger)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)
	app.Get("/metrics", metrics.Handler())

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api/v1")
	api.Get("/", healthHandler.APIInfo)

	// ============================================================
	// Auth
	// ============================================================
	auth := api.Group("/auth")
	auth.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	auth.Post("/refresh", middleware.AuthRateLimiter(), authHandler.RefreshToken)
	auth.Post("/logout", authHandler.Logout)

	protected := api.Group("", middleware.AuthMiddleware(cfg), middleware.NoCacheHeaders())
	protected.Post("/auth/logout-all", authHandler.LogoutAll)
	protected.Get("/auth/me", authHandler.Me)
	protected.Put("/profile/password", userHandler.ChangePassword)

	// ============================================================
	// Users (ADMIN)
	// ============================================================
	users := protected.Group("/users", middleware.AdminOnly())
	users.Get("/", userHandler.ListUsers)
	users.Post("/", userHandler.CreateUser)
	users.Get("/:id", userHandler.GetUser)
	users.Put("/:id", userHandler.UpdateUser)
	users.Put("/:id/role", userHandler.SetUserRole)
	users.Delete("/:id", userHandler.DeleteUser)

	managers := middleware.ManagerOrAdmin()

	// ============================================================
	// Properties & rooms
	// ============================================================
	protected.Get("/properties", propertyHandler.ListProperties)
	protected.Post("/properties", managers, propertyHandler.CreateProperty)
	protected.Get("/properties/:id/rooms", propertyHandler.ListRooms)
	protected.Post("/properties/:id/rooms", managers, propertyHandler.CreateRoom)
	protected.Put("/rooms/:id/maintenance", propertyHandler.SetMaintenance)

	// ============================================================
	// Contracts & invoices
	// ============================================================
	protected.Get("/contracts", contractHandler.ListContracts)
	protected.Get("/contracts/summary", contractHandler.Summary)
	protected.Get("/contracts/:id", contractHandler.GetContract)
	protected.Post("/contracts", managers, contractHandler.CreateContract)

	protected.Get("/invoices", invoiceHandler.ListInvoices)
	protected.Get("/invoices/summary", invoiceHandler.Summary)
	protected.Post("/invoices", managers, invoiceHandler.CreateInvoice)
	protected.Put("/invoices/:id/pay", invoiceHandler.PayInvoice)
	protected.Put("/invoices/:id/cancel", managers, invoiceHandler.CancelInvoice)

	// ============================================================
	// Operations
	// ============================================================
	protected.Get("/maintenance", maintenanceHandler.ListTickets)
	protected.Get("/maintenance/summary", maintenanceHandler.Summary)
	protected.Post("/maintenance", maintenanceHandler.CreateTicket)
	protected.Put("/maintenance/:id/status", maintenanceHandler.UpdateStatus)

	protected.Get("/todos", todoHandler.ListTodos)
	protected.Post("/todos", todoHandler.CreateTodo)
	protected.Put("/todos/:id/status", todoHandler.UpdateStatus)

	protected.Get("/waiting-list", waitingHandler.ListEntries)
	protected.Post("/waiting-list", waitingHandler.CreateEntry)
	protected.Put("/waiting-list/:id/approve", managers, waitingHandler.Approve)
	protected.Put("/waiting-list/:id/reject", managers, waitingHandler.Reject)
	protected.Post("/waiting-list/:id/convert", managers, waitingHandler.Convert)

	// ============================================================
	// Finance (MANAGER, ADMIN)
	// ============================================================
	cash := protected.Group("/cash-flow", managers)
	cash.Get("/", cashFlowHandler.ListEntries)
	cash.Get("/summary", cashFlowHandler.Summary)
	cash.Post("/", cashFlowHandler.CreateEntry)

	// ============================================================
	// Overview
	// ============================================================
	protected.Get("/calendar", calendarHandler.GetCalendar)
	protected.Get("/dashboard", middleware.PrivateCacheHeaders(30*time.Second), dashboardHandler.GetDashboard)
}
