package controllers

import (
	"github.com/gofiber/fiber/v2"

	"reportshub/dto"
	"reportshub/internal/middleware"
	"reportshub/internal/services"
)

type TemplateController struct {
	templates *services.TemplateService
}

func NewTemplateController(templates *services.TemplateService) *TemplateController {
	return &TemplateController{templates: templates}
}

func (h *TemplateController) ListAll(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	templates, err := h.templates.ListAll(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(templates)
}

// ListActive serves the user-visible template list.
func (h *TemplateController) ListActive(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	templates, err := h.templates.ListActive(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(templates)
}

func (h *TemplateController) GetActive(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	tpl, err := h.templates.GetActive(ctx, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(tpl)
}

func (h *TemplateController) Create(c *fiber.Ctx) error {
	var req dto.TemplateCreate
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	tpl, err := h.templates.Create(ctx, middleware.CurrentUser(c).ID, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(tpl)
}

// CreateFromFields godoc
// @Summary Build a template from registry fields
// @Description Snapshots the selected dynamic fields into a new template, in the order given
// @Tags report-templates
// @Accept json
// @Produce json
// @Param request body dto.TemplateFromFields true "Template definition"
// @Success 200 {object} models.ReportTemplate
// @Failure 400 {object} map[string]interface{}
// @Router /admin/report-templates/from-fields [post]
func (h *TemplateController) CreateFromFields(c *fiber.Ctx) error {
	var req dto.TemplateFromFields
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	tpl, err := h.templates.CreateFromFields(ctx, middleware.CurrentUser(c).ID, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(tpl)
}

func (h *TemplateController) Update(c *fiber.Ctx) error {
	var req dto.TemplateUpdate
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	tpl, err := h.templates.Update(ctx, c.Params("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(tpl)
}

func (h *TemplateController) Delete(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.templates.Delete(ctx, c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Report template deleted successfully"})
}

// Preview renders a draft template without saving it.
func (h *TemplateController) Preview(c *fiber.Ctx) error {
	var req dto.TemplatePreview
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	result, err := h.templates.Preview(req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(result)
}
