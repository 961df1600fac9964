package middleware

import (
	"time"

	"kostdesk/internal/config"
	"kostdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const (
	apiRequestsPerMinute  = 100
	authRequestsPerMinute = 5
	corsMethods           = "GET,POST,PUT,PATCH,DELETE,OPTIONS"
	corsHeaders           = "Origin,Content-Type,Accept,Authorization"
)

var securityHeaders = helmet.Config{
	XSSProtection:             "1; mode=block",
	ContentTypeNosniff:        "nosniff",
	XFrameOptions:             "SAMEORIGIN",
	ReferrerPolicy:            "strict-origin-when-cross-origin",
	CrossOriginEmbedderPolicy: "require-corp",
	CrossOriginOpenerPolicy:   "same-origin",
	CrossOriginResourcePolicy: "same-origin",
	PermissionPolicy:          "geolocation=(), microphone=(), camera=()",
}

// Setup installs the global middleware chain: recover, compression,
// security headers, rate limiting, metrics, access log and CORS
func Setup(app *fiber.App, cfg *config.Config) {
	app.Use(recover.New())
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))
	app.Use(helmet.New(securityHeaders))
	app.Use(perIPLimiter(apiRequestsPerMinute, "api", "Too many requests, please slow down"))
	app.Use(Metrics())
	app.Use(logger.New(accessLogConfig(cfg)))
	app.Use(cors.New(corsConfig(cfg)))
}

// AuthRateLimiter throttles login and refresh per IP
func AuthRateLimiter() fiber.Handler {
	return perIPLimiter(authRequestsPerMinute, "auth", "Too many login attempts, wait a minute")
}

// perIPLimiter allows perMinute requests per minute from one IP within bucket
func perIPLimiter(perMinute int, bucket, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        perMinute,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "-" + bucket
		},
		LimitReached: func(c *fiber.Ctx) error {
			return response.Error(c, fiber.StatusTooManyRequests, message)
		},
	})
}

func accessLogConfig(cfg *config.Config) logger.Config {
	if cfg.IsDev() {
		return logger.Config{Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n"}
	}
	return logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}
}

// corsConfig opens CORS to every origin in dev. Elsewhere only the
// configured origins may call, with credentials.
func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowOrigins: "*",
		AllowMethods: corsMethods,
		AllowHeaders: corsHeaders,
	}
	if !cfg.IsDev() {
		c.AllowOrigins = cfg.GetAllowedOrigins()
		c.AllowCredentials = true
	}
	return c
}

// CustomErrorHandler answers errors that escape a handler in the response envelope
func CustomErrorHandler(c *fiber.Ctx, err error) error {
	if e, ok := err.(*fiber.Error); ok {
		return response.Error(c, e.Code, e.Message)
	}
	return response.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
}
