package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"

	"kostdesk/internal/core/lifecycle"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	Database DatabaseConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	Rules    RulesConfig
	Reminder ReminderConfig
	Log      LogConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	Path     string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	RefreshSecret    string
	AccessTokenMins  int
	RefreshTokenDays int
}

// CookieConfig holds refresh-token cookie configuration
type CookieConfig struct {
	Secure   bool
	SameSite string
	Domain   string
}

// RulesConfig holds the lifecycle policy constants
type RulesConfig struct {
	ExpiringThresholdDays int
	UpcomingWindowDays    int
	Timezone              string
	Location              *time.Location
}

// ReminderConfig holds the daily reminder sweep configuration
type ReminderConfig struct {
	Schedule        string
	LineNotifyToken string
}

// LogConfig holds structured logger configuration
type LogConfig struct {
	Level  string
	Format string
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	config, err := FromEnv()
	if err != nil {
		return nil, err
	}

	// Set global config
	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s, DB: %s, TZ: %s]",
		config.AppMode, config.Database.Driver, config.Rules.Timezone)
	return config, nil
}

// FromEnv builds the config from the current environment without touching .env
func FromEnv() (*Config, error) {
	// Get APP_MODE (default to "dev") - trim spaces for Windows compatibility
	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	database, err := loadDatabaseConfig(appMode)
	if err != nil {
		return nil, err
	}
	jwt, err := loadJWTConfig(appMode)
	if err != nil {
		return nil, err
	}
	rules, err := loadRulesConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "3000"),
		Database: database,
		JWT:      jwt,
		Cookie:   loadCookieConfig(appMode),
		Rules:    rules,
		Reminder: ReminderConfig{
			Schedule:        getEnv("REMINDER_CRON", "30 8 * * *"),
			LineNotifyToken: getEnv("LINE_NOTIFY_TOKEN", ""),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", defaultLogFormat(appMode)),
		},
	}, nil
}

// loadDatabaseConfig loads database config based on mode.
// Mode-prefixed keys (DEV_DB_HOST, PROD_DB_HOST) win over unprefixed ones.
func loadDatabaseConfig(mode string) (DatabaseConfig, error) {
	driver := strings.ToLower(getModeEnv(mode, "DB_DRIVER", "sqlite"))
	switch driver {
	case "mysql", "postgres", "sqlite":
	default:
		return DatabaseConfig{}, fmt.Errorf("invalid DB_DRIVER: '%s' (must be 'mysql', 'postgres' or 'sqlite')", driver)
	}

	defaultPort := "3306"
	if driver == "postgres" {
		defaultPort = "5432"
	}

	return DatabaseConfig{
		Driver:   driver,
		Host:     getModeEnv(mode, "DB_HOST", "localhost"),
		Port:     getModeEnv(mode, "DB_PORT", defaultPort),
		User:     getModeEnv(mode, "DB_USER", "root"),
		Password: getModeEnv(mode, "DB_PASS", ""),
		DBName:   getModeEnv(mode, "DB_NAME", "kostdesk"),
		Path:     getModeEnv(mode, "DB_PATH", "kostdesk.db"),
	}, nil
}

// loadJWTConfig loads JWT config based on mode
func loadJWTConfig(mode string) (JWTConfig, error) {
	accessMins, err := getEnvInt("ACCESS_TOKEN_MINUTES", 15)
	if err != nil {
		return JWTConfig{}, err
	}
	refreshDays, err := getEnvInt("REFRESH_TOKEN_DAYS", 7)
	if err != nil {
		return JWTConfig{}, err
	}

	cfg := JWTConfig{
		Secret:           getModeEnv(mode, "JWT_SECRET", "default_secret"),
		RefreshSecret:    getModeEnv(mode, "JWT_REFRESH_SECRET", "default_refresh_secret"),
		AccessTokenMins:  accessMins,
		RefreshTokenDays: refreshDays,
	}
	if mode == "prod" && (cfg.Secret == "default_secret" || cfg.RefreshSecret == "default_refresh_secret") {
		return JWTConfig{}, fmt.Errorf("JWT_SECRET and JWT_REFRESH_SECRET must be set in prod mode")
	}
	return cfg, nil
}

// loadCookieConfig loads cookie config based on mode
func loadCookieConfig(mode string) CookieConfig {
	secure, _ := strconv.ParseBool(getModeEnv(mode, "COOKIE_SECURE", "false"))

	return CookieConfig{
		Secure:   secure,
		SameSite: getEnv("COOKIE_SAMESITE", "lax"),
		Domain:   getEnv("COOKIE_DOMAIN", ""),
	}
}

// loadRulesConfig loads the lifecycle policy constants
func loadRulesConfig() (RulesConfig, error) {
	threshold, err := getEnvInt("EXPIRING_THRESHOLD_DAYS", lifecycle.DefaultExpiringThresholdDays)
	if err != nil {
		return RulesConfig{}, err
	}
	if threshold <= 0 {
		return RulesConfig{}, fmt.Errorf("invalid EXPIRING_THRESHOLD_DAYS: %d (must be positive)", threshold)
	}

	window, err := getEnvInt("UPCOMING_WINDOW_DAYS", 7)
	if err != nil {
		return RulesConfig{}, err
	}
	if window < 0 {
		return RulesConfig{}, fmt.Errorf("invalid UPCOMING_WINDOW_DAYS: %d (must not be negative)", window)
	}

	tz := getEnv("TIMEZONE", "Asia/Jakarta")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return RulesConfig{}, fmt.Errorf("invalid TIMEZONE '%s': %w", tz, err)
	}

	return RulesConfig{
		ExpiringThresholdDays: threshold,
		UpcomingWindowDays:    window,
		Timezone:              tz,
		Location:              loc,
	}, nil
}

func defaultLogFormat(mode string) string {
	if mode == "prod" {
		return "json"
	}
	return "text"
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getModeEnv prefers DEV_<key> or PROD_<key> and falls back to <key>
func getModeEnv(mode, key, defaultValue string) string {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}
	if value := os.Getenv(prefix + key); value != "" {
		return value
	}
	return getEnv(key, defaultValue)
}

// getEnvInt gets an integer environment variable with default value
func getEnvInt(key string, defaultValue int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: '%s' (must be an integer)", key, raw)
	}
	return v, nil
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		// Default production origins
		return "https://dashboard.kostdesk.id"
	}
	return origins
}

// Policy returns the lifecycle policy built from the rules config
func (c *Config) Policy() lifecycle.Policy {
	p := lifecycle.DefaultPolicy()
	p.ExpiringThresholdDays = c.Rules.ExpiringThresholdDays
	if c.Rules.Location != nil {
		p.Location = c.Rules.Location
	}
	return p
}
