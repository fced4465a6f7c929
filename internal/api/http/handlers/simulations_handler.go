package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-simulator/internal/api/dto"
	"github.com/spec-kit/ticket-simulator/internal/engine"
	"github.com/spec-kit/ticket-simulator/internal/observability"
	"github.com/spec-kit/ticket-simulator/internal/repository"
)

// SimulationsHandler replays command batches over HTTP. Each request gets a
// fresh store, so concurrent simulations never share state.
type SimulationsHandler struct {
	logger  *zap.Logger
	metrics *observability.Metrics
}

// NewSimulationsHandler constructs handler.
func NewSimulationsHandler(logger *zap.Logger, metrics *observability.Metrics) *SimulationsHandler {
	return &SimulationsHandler{logger: logger, metrics: metrics}
}

// Run POST /simulations.
func (h *SimulationsHandler) Run(c *fiber.Ctx) error {
	var req dto.SimulationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "VALIDATION_FAILED",
				"message": "invalid payload",
			},
		})
	}

	store := repository.NewStore()
	store.SetUsers(req.Users)

	eng := engine.New(engine.Dependencies{
		Store:   store,
		Logger:  h.logger,
		Metrics: h.metrics,
	})
	outputs := eng.Run(req.Commands)

	return c.JSON(dto.SimulationResponse{Output: outputs})
}
