package handlers

import "github.com/gofiber/fiber/v2"

func renderPage(name, title string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render(name, fiber.Map{"Title": title})
	}
}

var (
	HomePage     = renderPage("home", "Home")
	LearnPage    = renderPage("learn", "Learn")
	QuizPage     = renderPage("quiz", "Quiz")
	DailyTipPage = renderPage("daily_tip", "Daily Tip")
	PhishingPage = renderPage("phishing", "Phishing Simulator")
)
