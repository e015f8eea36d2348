package routes

import (
	"github.com/anjiri1684/cyber_evolve/handlers"
	"github.com/gofiber/fiber/v2"
)

func PageRoutes(app *fiber.App) {
	app.Get("/", handlers.HomePage)
	app.Get("/learn", handlers.LearnPage)
	app.Get("/quiz", handlers.QuizPage)
	app.Get("/daily-tip", handlers.DailyTipPage)
	app.Get("/phishing", handlers.PhishingPage)
}
