package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"reportshub/internal/models"
	"reportshub/internal/repository"
)

const userLocal = "current_user"

// RequireAuth parses the bearer token, resolves the user behind its
// subject claim and stores the document in Locals for downstream
// handlers.
func RequireAuth(users repository.UserRepository, secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return unauthorized(c)
		}
		tokenStr := strings.TrimSpace(auth[7:])

		var claims jwt.RegisteredClaims
		token, err := jwt.ParseWithClaims(
			tokenStr,
			&claims,
			func(t *jwt.Token) (any, error) {
				if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, fiber.NewError(fiber.StatusUnauthorized, "unsupported alg")
				}
				return []byte(secret), nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid || claims.Subject == "" {
			return unauthorized(c)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		user, err := users.FindByUsername(ctx, claims.Subject)
		if err != nil {
			return unauthorized(c)
		}

		c.Locals(userLocal, *user)
		return c.Next()
	}
}

// RequireAdmin gates a route on the ADMIN role. Must run after
// RequireAuth.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals(userLocal).(models.User)
		if !ok {
			return unauthorized(c)
		}
		if !user.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Not enough permissions",
			})
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated user stored by RequireAuth.
func CurrentUser(c *fiber.Ctx) models.User {
	user, _ := c.Locals(userLocal).(models.User)
	return user
}

func unauthorized(c *fiber.Ctx) error {
	c.Set("WWW-Authenticate", "Bearer")
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Could not validate credentials",
	})
}
