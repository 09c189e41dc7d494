package middleware

import (
	"strings"

	"go-business-ws/internal/model"
	"go-business-ws/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// TokenValidator resolves a bearer token to the user it belongs to
type TokenValidator interface {
	ValidateToken(tokenString string) (*model.User, error)
}

// RequireAuth is middleware that validates JWT token and sets user info in context
func RequireAuth(auth TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := jwt.FromHeader(c.Get("Authorization"))
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": err.Error()})
		}

		user, err := auth.ValidateToken(token)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": err.Error()})
		}

		// Set user info in context for downstream handlers
		c.Locals("user_id", user.ID.String())
		c.Locals("user_email", user.Email)
		c.Locals("user_name", user.FullName)
		c.Locals("user_role", user.Role)

		return c.Next()
	}
}

// RequireRole checks that the authenticated user has one of the given roles
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("user_role").(string)
		if !ok {
			return c.Status(403).JSON(fiber.Map{"error": "No role found"})
		}

		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}

		return c.Status(403).JSON(fiber.Map{
			"error": "Forbidden: requires one of " + strings.Join(roles, ", ") + " roles",
		})
	}
}
