package handler

import (
	"errors"
	"log"

	"go-business-ws/internal/service"
	"go-business-ws/pkg/jwt"
	"go-business-ws/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ValidateTokenRequest struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token. A successful login
// invalidates every token issued to the same account before it.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := validator.FirstError(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	response, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		return authError(c, err)
	}
	return c.JSON(response)
}

// ValidateToken lets other services check a token without calling a protected route.
// POST /api/v1/auth/validate-token
func (h *AuthHandler) ValidateToken(c *fiber.Ctx) error {
	var req ValidateTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Token == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Token is required"})
	}

	user, err := h.authService.ValidateToken(req.Token)
	if err != nil {
		return authError(c, err)
	}
	return c.JSON(fiber.Map{"valid": true, "user": user})
}

// Me echoes the identity the auth middleware resolved for this request.
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	actor := getActor(c)
	role, _ := c.Locals("user_role").(string)
	return c.JSON(fiber.Map{
		"id":        actor.ID,
		"email":     actor.Email,
		"full_name": actor.Name,
		"role":      role,
	})
}

func authError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrUserInactive):
		return c.Status(403).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrSessionReplaced),
		errors.Is(err, jwt.ErrInvalidToken),
		errors.Is(err, jwt.ErrMissingToken):
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	log.Printf("auth %s failed: %v", c.Path(), err)
	return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
}
