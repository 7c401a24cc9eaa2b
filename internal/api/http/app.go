package http

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/staff-directory/internal/observability"
)

// NewApp builds the Fiber application with global middleware and routes.
func NewApp(name string, logger *zap.Logger, metrics *observability.Metrics, mw MiddlewareConfig, routes RouteConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               name,
		DisableStartupMessage: true,
	})
	RegisterMiddlewares(app, logger, metrics, mw)
	RegisterRoutes(app, routes)
	return app
}
