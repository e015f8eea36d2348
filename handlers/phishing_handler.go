package handlers

import (
	"errors"

	"github.com/anjiri1684/cyber_evolve/services"
	"github.com/gofiber/fiber/v2"
)

type PhishingCheckRequest struct {
	EmailID  string   `json:"email_id" validate:"required,max=64"`
	Selected []string `json:"selected" validate:"required,min=1,max=16,dive,oneof=suspicious_sender urgency suspicious_link threat authority unusual_request no_verification fake_attachment"`
}

func ListPhishingScenarios(c *fiber.Ctx) error {
	return c.JSON(services.PhishingScenarios())
}

func CheckPhishing(c *fiber.Ctx) error {
	var req PhishingCheckRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := services.CheckPhishing(req.EmailID, req.Selected)
	if errors.Is(err, services.ErrUnknownPhishingEmail) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Phishing email not found"})
	}
	if err != nil {
		return err
	}
	return c.JSON(result)
}
