package controllers

import (
	"github.com/gofiber/fiber/v2"

	"reportshub/dto"
	"reportshub/internal/services"
)

type LocationController struct {
	locations *services.LocationService
}

func NewLocationController(locations *services.LocationService) *LocationController {
	return &LocationController{locations: locations}
}

func (h *LocationController) List(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	locations, err := h.locations.List(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(locations)
}

func (h *LocationController) Create(c *fiber.Ctx) error {
	var req dto.LocationCreate
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	loc, err := h.locations.Create(ctx, req.Name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(loc)
}

func (h *LocationController) Update(c *fiber.Ctx) error {
	var req dto.LocationCreate
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.locations.Rename(ctx, c.Params("id"), req.Name); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Location updated successfully"})
}

func (h *LocationController) Delete(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.locations.Delete(ctx, c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Location deleted successfully"})
}
