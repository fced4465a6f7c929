package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-simulator/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Simulations *handlers.SimulationsHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Post("/simulations", cfg.Simulations.Run)
}
