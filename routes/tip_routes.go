package routes

import (
	"github.com/anjiri1684/cyber_evolve/handlers"
	"github.com/anjiri1684/cyber_evolve/middleware"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TipRoutes(app *fiber.App, db *gorm.DB, log *zap.Logger) {
	app.Get("/api/tip", middleware.WithLease(db, log, handlers.GetTip))
}
