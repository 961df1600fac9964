package main

import (
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kostdesk/internal/adapters/http/middleware"
	"kostdesk/internal/adapters/http/routes"
	"kostdesk/internal/config"
	"kostdesk/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "kostdesk/docs" // Swagger docs
)

// @title kostdesk API
// @version 1.0
// @description Property and tenant management dashboard API
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@kostdesk.id

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}
	logger := config.NewLogger(cfg.Log)

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	if err := config.Migrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}

	if err := config.NewSeeder(db, cfg, time.Now()).Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed data: %v", err)
	}

	svc := services.New(db, cfg, logger, services.SystemClock)

	// Daily reminder sweep for expiring contracts and overdue invoices
	if err := svc.Reminder.Start(); err != nil {
		log.Fatalf("❌ Failed to start reminder scheduler: %v", err)
	}
	defer svc.Reminder.Stop()
	if !svc.Notification.IsEnabled() {
		logger.Warn("LINE_NOTIFY_TOKEN not set, reminders are logged only")
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "kostdesk API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, db, cfg, svc, logger)

	// Graceful shutdown
	go gracefulShutdown(app, logger)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App, logger *slog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("error during shutdown", slog.String("error", err.Error()))
	}
	log.Println("✅ Server stopped gracefully")
}
