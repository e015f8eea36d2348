package routes

import (
	"time"

	"github.com/anjiri1684/cyber_evolve/middleware"
	"github.com/anjiri1684/cyber_evolve/views"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewApp wires the page, API and static routes over db.
func NewApp(db *gorm.DB, log *zap.Logger) *fiber.App {
	if log == nil {
		log = zap.NewNop()
	}

	engine := html.NewFileSystem(views.Templates(), ".html")

	app := fiber.New(fiber.Config{
		AppName:               "Cyber Evolve",
		CaseSensitive:         true,
		StrictRouting:         true,
		DisableStartupMessage: true,
		Views:                 engine,
		ViewsLayout:           "layouts/main",
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          15 * time.Second,
		IdleTimeout:           60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Error("request failed",
				zap.Error(err),
				zap.Int("code", code),
				zap.String("path", c.Path()),
				zap.String("method", c.Method()),
			)
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(middleware.Recovery())
	app.Use(middleware.RequestID())
	app.Use(middleware.AccessLog())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   views.Static(),
		MaxAge: 3600,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	PageRoutes(app)
	QuizRoutes(app, db, log)
	TipRoutes(app, db, log)
	ToolRoutes(app)

	return app
}
