package controllers

import (
	"github.com/gofiber/fiber/v2"

	"reportshub/internal/services"
)

type StatsController struct {
	stats *services.StatsService
}

func NewStatsController(stats *services.StatsService) *StatsController {
	return &StatsController{stats: stats}
}

// Stats godoc
// @Summary Platform statistics
// @Tags admin-stats
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Security BearerAuth
// @Router /admin/stats [get]
func (h *StatsController) Stats(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	res, err := h.stats.Stats(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

func (h *StatsController) Analytics(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	res, err := h.stats.Analytics(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}
