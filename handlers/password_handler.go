package handlers

import (
	"github.com/anjiri1684/cyber_evolve/services"
	"github.com/gofiber/fiber/v2"
)

type PasswordCheckRequest struct {
	Password string `json:"password" validate:"max=256"`
}

func CheckPassword(c *fiber.Ctx) error {
	var req PasswordCheckRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(services.CheckPassword(req.Password))
}
