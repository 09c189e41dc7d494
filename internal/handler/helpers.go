package handler

import (
	"errors"
	"log"
	"strconv"

	"go-business-ws/internal/service"
	"go-business-ws/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// Helper untuk ambil User Info dari JWT Context (set by auth middleware)
func getActor(c *fiber.Ctx) service.Actor {
	actor := service.Actor{ID: "system", Name: "Unknown"}
	if id, ok := c.Locals("user_id").(string); ok && id != "" {
		actor.ID = id
	}
	if name, ok := c.Locals("user_name").(string); ok && name != "" {
		actor.Name = name
	}
	if email, ok := c.Locals("user_email").(string); ok {
		actor.Email = email
	}
	return actor
}

// parseID reads a positive integer route parameter
func parseID(c *fiber.Ctx, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(param), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func badID(c *fiber.Ctx, what string) error {
	return c.Status(400).JSON(fiber.Map{"error": "Invalid " + what + " ID"})
}

// respondError maps service errors onto HTTP status codes
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrWarehouseNotFound),
		errors.Is(err, service.ErrCustomerNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, validator.ErrValidation),
		errors.Is(err, service.ErrUnknownProduct),
		errors.Is(err, service.ErrUnknownCustomer),
		errors.Is(err, service.ErrDuplicateCode),
		errors.Is(err, service.ErrDuplicateName),
		errors.Is(err, service.ErrDuplicateEmail),
		errors.Is(err, service.ErrEmailExists),
		errors.Is(err, service.ErrCannotDeleteSelf),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidQuantity):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, service.ErrOrderClosed):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	}

	log.Printf("%s %s failed: %v", c.Method(), c.Path(), err)
	return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
}
