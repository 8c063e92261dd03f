package controllers

import (
	"github.com/gofiber/fiber/v2"

	"reportshub/dto"
	"reportshub/internal/middleware"
	"reportshub/internal/services"
)

type ReportController struct {
	reports *services.ReportService
	review  *services.ReviewService
}

func NewReportController(reports *services.ReportService, review *services.ReviewService) *ReportController {
	return &ReportController{reports: reports, review: review}
}

// Upsert godoc
// @Summary Create or update a report
// @Description One submission exists per (user, template, period); resubmitting the same period overwrites it
// @Tags reports
// @Accept json
// @Produce json
// @Param request body dto.ReportSubmit true "Report payload"
// @Success 200 {object} models.ReportSubmission
// @Failure 404 {object} map[string]interface{}
// @Router /reports [post]
func (h *ReportController) Upsert(c *fiber.Ctx) error {
	var req dto.ReportSubmit
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	sub, err := h.reports.Upsert(ctx, middleware.CurrentUser(c), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(sub)
}

func (h *ReportController) ListMine(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	subs, err := h.reports.ListForUser(ctx, middleware.CurrentUser(c).ID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.review.EnrichAll(ctx, subs))
}

func (h *ReportController) Get(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	sub, err := h.reports.Get(ctx, c.Params("id"), middleware.CurrentUser(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.review.Enrich(ctx, *sub))
}
