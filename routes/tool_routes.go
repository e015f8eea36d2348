package routes

import (
	"github.com/anjiri1684/cyber_evolve/handlers"
	"github.com/gofiber/fiber/v2"
)

func ToolRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/password/check", handlers.CheckPassword)

	phishing := api.Group("/phishing")
	phishing.Get("/scenarios", handlers.ListPhishingScenarios)
	phishing.Post("/check", handlers.CheckPhishing)
}
