package controllers

import (
	"github.com/gofiber/fiber/v2"

	"reportshub/dto"
	"reportshub/internal/middleware"
	"reportshub/internal/services"
)

type FieldController struct {
	fields *services.FieldService
}

func NewFieldController(fields *services.FieldService) *FieldController {
	return &FieldController{fields: fields}
}

// List godoc
// @Summary List dynamic fields
// @Description Lists field definitions; soft-deleted ones only with include_deleted=true
// @Tags dynamic-fields
// @Produce json
// @Param include_deleted query bool false "Include soft-deleted fields"
// @Success 200 {array} models.DynamicField
// @Router /admin/dynamic-fields [get]
func (h *FieldController) List(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	fields, err := h.fields.List(ctx, c.QueryBool("include_deleted"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fields)
}

func (h *FieldController) Sections(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	sections, err := h.fields.Sections(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"sections": sections})
}

func (h *FieldController) Create(c *fiber.Ctx) error {
	var req dto.DynamicFieldCreate
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	field, err := h.fields.Create(ctx, middleware.CurrentUser(c).ID, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(field)
}

func (h *FieldController) Update(c *fiber.Ctx) error {
	var req dto.DynamicFieldUpdate
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	field, err := h.fields.Update(ctx, c.Params("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(field)
}

func (h *FieldController) SoftDelete(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.fields.SoftDelete(ctx, c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Dynamic field deleted successfully"})
}

func (h *FieldController) Restore(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.fields.Restore(ctx, c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Dynamic field restored successfully"})
}

// FieldTypes serves the static capability descriptor table.
func (h *FieldController) FieldTypes(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"field_types": services.FieldTypes()})
}
