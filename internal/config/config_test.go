package config

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"kostdesk/internal/adapters/persistence/models"
	"kostdesk/internal/pkg/password"
	"kostdesk/internal/pkg/testdb"
)

var envKeys = []string{
	"APP_MODE", "PORT", "TIMEZONE", "LOG_LEVEL", "LOG_FORMAT",
	"DB_DRIVER", "DEV_DB_DRIVER", "PROD_DB_DRIVER", "DB_HOST", "DEV_DB_HOST", "PROD_DB_HOST",
	"DB_PORT", "DEV_DB_PORT", "PROD_DB_PORT", "DB_NAME", "DB_PATH",
	"JWT_SECRET", "DEV_JWT_SECRET", "PROD_JWT_SECRET",
	"JWT_REFRESH_SECRET", "DEV_JWT_REFRESH_SECRET", "PROD_JWT_REFRESH_SECRET",
	"ACCESS_TOKEN_MINUTES", "REFRESH_TOKEN_DAYS",
	"EXPIRING_THRESHOLD_DAYS", "UPCOMING_WINDOW_DAYS",
	"REMINDER_CRON", "LINE_NOTIFY_TOKEN",
	"SEED_ADMIN_PASSWORD", "SEED_ADMIN_EMAIL",
}

// clearEnv blanks every key FromEnv reads; empty counts as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppMode)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "kostdesk.db", cfg.Database.Path)
	assert.Equal(t, 15, cfg.JWT.AccessTokenMins)
	assert.Equal(t, 7, cfg.JWT.RefreshTokenDays)
	assert.Equal(t, 30, cfg.Rules.ExpiringThresholdDays)
	assert.Equal(t, 7, cfg.Rules.UpcomingWindowDays)
	assert.Equal(t, "Asia/Jakarta", cfg.Rules.Timezone)
	assert.Equal(t, "30 8 * * *", cfg.Reminder.Schedule)
	assert.Equal(t, "text", cfg.Log.Format)

	p := cfg.Policy()
	assert.Equal(t, 30, p.ExpiringThresholdDays)
	assert.Equal(t, "Asia/Jakarta", p.Location.String())
}

func TestFromEnv_ModePrefixWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DEV_DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db.internal")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
}

func TestFromEnv_Errors(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"mode", map[string]string{"APP_MODE": "staging"}, "APP_MODE"},
		{"driver", map[string]string{"DB_DRIVER": "oracle"}, "DB_DRIVER"},
		{"threshold not a number", map[string]string{"EXPIRING_THRESHOLD_DAYS": "soon"}, "EXPIRING_THRESHOLD_DAYS"},
		{"threshold zero", map[string]string{"EXPIRING_THRESHOLD_DAYS": "0"}, "must be positive"},
		{"window negative", map[string]string{"UPCOMING_WINDOW_DAYS": "-1"}, "UPCOMING_WINDOW_DAYS"},
		{"timezone", map[string]string{"TIMEZONE": "Mars/Olympus"}, "TIMEZONE"},
		{"prod secrets", map[string]string{"APP_MODE": "prod"}, "JWT_SECRET"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestFromEnv_Prod(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_MODE", "prod")
	t.Setenv("PROD_JWT_SECRET", "s1")
	t.Setenv("PROD_JWT_REFRESH_SECRET", "s2")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.IsProd())
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "s1", cfg.JWT.Secret)
}

func TestNewLogger(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	logger := newLogger(&buf, LogConfig{Level: "warn", Format: "json"})
	logger.Info("hidden")
	logger.Warn("shown", slog.String("room", "A1"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"room":"A1"`)

	assert.Equal(t, slog.LevelDebug, parseLevel(" DEBUG "))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestSeeder_IsIdempotent(t *testing.T) {
	clearEnv(t)
	password.Cost = bcrypt.MinCost
	t.Cleanup(func() { password.Cost = password.DefaultCost })

	db := testdb.Open(t)
	cfg, err := FromEnv()
	require.NoError(t, err)

	now := time.Date(2024, 12, 11, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 2; i++ {
		require.NoError(t, NewSeeder(db, cfg, now).Run())
	}

	var admins, properties, rooms, invoices int64
	require.NoError(t, db.Model(&models.User{}).Where("role = ?", "ADMIN").Count(&admins).Error)
	require.NoError(t, db.Model(&models.Property{}).Count(&properties).Error)
	require.NoError(t, db.Model(&models.Room{}).Count(&rooms).Error)
	require.NoError(t, db.Model(&models.Invoice{}).Count(&invoices).Error)
	assert.Equal(t, int64(1), admins)
	assert.Equal(t, int64(1), properties)
	assert.Equal(t, int64(3), rooms)
	assert.Equal(t, int64(3), invoices)

	var admin models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.True(t, password.Verify("admin123456", admin.Password))
	assert.True(t, strings.HasSuffix(admin.Email, "@kostdesk.id"))
}

func TestSeeder_ProdSkipsAdminWithoutPassword(t *testing.T) {
	clearEnv(t)
	db := testdb.Open(t)
	cfg := &Config{AppMode: "prod"}

	require.NoError(t, NewSeeder(db, cfg, time.Now()).Run())

	var users, properties int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Property{}).Count(&properties).Error)
	assert.Zero(t, users)
	assert.Zero(t, properties, "demo data is dev only")
}
