// Package webapi exposes the dashboard over HTTP. It is organized into
// sub-packages:
//   - analytics: summary, listings and aggregate endpoints
//   - signals: simulated cloud status and job endpoints
//   - common: problem details and request binding helpers
package webapi

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/amirasaad/bankdash/pkg/app"
	analyticsweb "github.com/amirasaad/bankdash/webapi/analytics"
	"github.com/amirasaad/bankdash/webapi/common"
	signalsweb "github.com/amirasaad/bankdash/webapi/signals"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/amirasaad/bankdash/cmd/server/swagger"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(a *app.App) *fiber.App {
	cfg := a.Config

	fiberApp := fiber.New(fiber.Config{
		AppName: "Banking Analytics API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled: true,
	}))

	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	origins := "*"
	if cfg.Cors != nil && cfg.Cors.Origins != "" {
		origins = cfg.Cors.Origins
	}
	fiberApp.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,OPTIONS",
	}))

	if cfg.RateLimit != nil && cfg.RateLimit.MaxRequests > 0 {
		fiberApp.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit.MaxRequests,
			Expiration: cfg.RateLimit.Window,
			KeyGenerator: func(c *fiber.Ctx) string {
				// first hop of X-Forwarded-For, then X-Real-IP, then the peer
				if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
					first, _, _ := strings.Cut(forwardedFor, ",")
					return strings.TrimSpace(first)
				}
				if realIP := c.Get("X-Real-IP"); realIP != "" {
					return realIP
				}
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return common.ProblemDetailsJSON(
					c,
					"Too Many Requests",
					errors.New("rate limit exceeded"),
					fiber.StatusTooManyRequests,
				)
			},
		}))
	}

	if a.Deps.Metrics != nil {
		fiberApp.Get("/metrics", adaptor.HTTPHandler(
			promhttp.HandlerFor(a.Deps.Metrics.Registry, promhttp.HandlerOpts{}),
		))
	}
	fiberApp.Get("/healthz", Health(a))

	api := fiberApp.Group("/api")
	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Banking Analytics API"})
	})
	analyticsweb.Routes(api, a.AnalyticsService)
	signalsweb.Routes(api, a.SignalsService)

	return fiberApp
}

// Health reports whether the store answers a ping within two seconds.
func Health(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := a.Deps.Store.Ping(ctx); err != nil {
			return common.ProblemDetailsJSON(c, "Store unavailable", err, fiber.StatusServiceUnavailable)
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}
