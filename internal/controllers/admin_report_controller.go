package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"reportshub/dto"
	"reportshub/internal/middleware"
	"reportshub/internal/services"
)

type AdminReportController struct {
	reports *services.ReportService
	review  *services.ReviewService
}

func NewAdminReportController(reports *services.ReportService, review *services.ReviewService) *AdminReportController {
	return &AdminReportController{reports: reports, review: review}
}

func (h *AdminReportController) ListAll(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	subs, err := h.reports.ListAll(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.review.EnrichAll(ctx, subs))
}

// parseDate accepts an RFC 3339 timestamp, tolerating a bare date.
func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		t, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, err
		}
	}
	return &t, nil
}

// Search godoc
// @Summary Search report submissions
// @Description Filter by free text, status, template, user, location and creation date range; paginated, newest first
// @Tags admin-reports
// @Produce json
// @Param search_term query string false "Free text search"
// @Param status query string false "Status filter"
// @Param template_id query string false "Template filter"
// @Param user_id query string false "User filter"
// @Param location_id query string false "Location filter"
// @Param date_from query string false "Inclusive creation lower bound"
// @Param date_to query string false "Inclusive creation upper bound"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.SearchResult
// @Router /admin/reports/search [get]
func (h *AdminReportController) Search(c *fiber.Ctx) error {
	dateFrom, err := parseDate(c.Query("date_from"))
	if err != nil {
		return badRequest(c, "Invalid date_from")
	}
	dateTo, err := parseDate(c.Query("date_to"))
	if err != nil {
		return badRequest(c, "Invalid date_to")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	result, err := h.review.Search(ctx, dto.SearchQuery{
		SearchTerm: c.Query("search_term"),
		Status:     c.Query("status"),
		TemplateID: c.Query("template_id"),
		UserID:     c.Query("user_id"),
		LocationID: c.Query("location_id"),
		DateFrom:   dateFrom,
		DateTo:     dateTo,
		Page:       c.QueryInt("page", 1),
		Limit:      c.QueryInt("limit", 20),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(result)
}

func (h *AdminReportController) BulkAction(c *fiber.Ctx) error {
	var req dto.BulkActionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	message, err := h.review.BulkAction(ctx, middleware.CurrentUser(c), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": message})
}

// Export streams an xlsx workbook, or returns the flattened record
// set tagged csv/json for the caller to serialize.
func (h *AdminReportController) Export(c *fiber.Ctx) error {
	dateFrom, err := parseDate(c.Query("date_from"))
	if err != nil {
		return badRequest(c, "Invalid date_from")
	}
	dateTo, err := parseDate(c.Query("date_to"))
	if err != nil {
		return badRequest(c, "Invalid date_to")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	result, err := h.review.Export(ctx, dto.ExportQuery{
		Format:     c.Query("format", "csv"),
		Status:     c.Query("status"),
		TemplateID: c.Query("template_id"),
		UserID:     c.Query("user_id"),
		DateFrom:   dateFrom,
		DateTo:     dateTo,
	})
	if err != nil {
		return writeError(c, err)
	}

	if strings.EqualFold(result.Format, "xlsx") {
		book, err := services.BuildWorkbook(result.Data)
		if err != nil {
			return writeError(c, err)
		}
		buf, err := book.WriteToBuffer()
		if err != nil {
			return writeError(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+result.Filename+`"`)
		return c.Send(buf.Bytes())
	}
	return c.JSON(result)
}
