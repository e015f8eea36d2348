package routes

import (
	"github.com/anjiri1684/cyber_evolve/handlers"
	"github.com/anjiri1684/cyber_evolve/middleware"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func QuizRoutes(app *fiber.App, db *gorm.DB, log *zap.Logger) {
	quiz := app.Group("/api/quiz")

	quiz.Get("/questions", middleware.WithLease(db, log, handlers.ListQuestions))
	quiz.Post("/submit", middleware.WithLease(db, log, handlers.SubmitQuiz))
}
