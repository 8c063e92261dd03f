package controllers

import (
	"github.com/gofiber/fiber/v2"

	"reportshub/dto"
	"reportshub/internal/middleware"
	"reportshub/internal/services"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register godoc
// @Summary Register a new account
// @Description Creates an unapproved account; an admin must approve it before login works
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} map[string]interface{}
// @Router /auth/register [post]
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.auth.Register(ctx, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewUserResponse(*user))
}

// Login godoc
// @Summary Log in
// @Description Issues a bearer token; unapproved accounts are rejected with 403
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /auth/login [post]
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, token, err := h.auth.Login(ctx, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        dto.NewUserResponse(*user),
	})
}

// Me returns the authenticated user.
func (h *AuthController) Me(c *fiber.Ctx) error {
	return c.JSON(dto.NewUserResponse(middleware.CurrentUser(c)))
}
