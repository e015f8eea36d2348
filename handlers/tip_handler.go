package handlers

import (
	"time"

	"github.com/anjiri1684/cyber_evolve/database"
	"github.com/anjiri1684/cyber_evolve/services"
	"github.com/gofiber/fiber/v2"
)

func GetTip(c *fiber.Ctx, lease *database.Lease) error {
	db, err := lease.DB()
	if err != nil {
		return err
	}
	tip, err := services.TipOfTheDay(db, time.Now())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"tip": tip})
}
