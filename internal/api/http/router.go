package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-directory/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health *handlers.HealthHandler
	Staff  *handlers.StaffHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Health.Metrics)

	staff := app.Group("/staff")
	staff.Get("", cfg.Staff.ListStaff)
	staff.Post("", cfg.Staff.CreateStaff)
	staff.Get("/:id", cfg.Staff.GetStaff)
	staff.Put("/:id", cfg.Staff.UpdateStaff)
	staff.Delete("/:id", cfg.Staff.DeleteStaff)
}
