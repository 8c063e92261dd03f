package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"reportshub/dto"
	"reportshub/internal/middleware"
	"reportshub/internal/services"
)

type UserAdminController struct {
	users *services.UserAdminService
}

func NewUserAdminController(users *services.UserAdminService) *UserAdminController {
	return &UserAdminController{users: users}
}

func (h *UserAdminController) List(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	users, err := h.users.List(ctx)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.NewUserResponse(u))
	}
	return c.JSON(out)
}

func (h *UserAdminController) Approve(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.users.Approve(ctx, c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User approved successfully"})
}

func (h *UserAdminController) SetRole(c *fiber.Ctx) error {
	var req dto.RoleUpdate
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.users.SetRole(ctx, c.Params("id"), req.Role); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("User role updated to %s successfully", req.Role),
	})
}

func (h *UserAdminController) Delete(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.users.Delete(ctx, c.Params("id"), middleware.CurrentUser(c)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}
