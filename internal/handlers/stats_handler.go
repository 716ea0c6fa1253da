package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shiftwell-app/backend/internal/analytics"
	"github.com/shiftwell-app/backend/internal/auth"
	"github.com/shiftwell-app/backend/internal/dto"
)

// StatsHandler exposes the analytics engine. Every request runs one full
// compute cycle over a fresh snapshot; nothing is cached server-side.
type StatsHandler struct {
	engine *analytics.Engine
}

func NewStatsHandler(engine *analytics.Engine) *StatsHandler {
	return &StatsHandler{engine: engine}
}

// GetStats handles GET /stats.
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	userID, err := auth.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	return c.JSON(h.engine.Compute(c.UserContext(), userID))
}
