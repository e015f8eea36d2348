package middleware

import (
	"github.com/anjiri1684/cyber_evolve/database"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LeasedHandler is a fiber handler that receives the request's store lease.
type LeasedHandler func(c *fiber.Ctx, lease *database.Lease) error

// WithLease gives h a fresh lease on db and releases it when h returns,
// errors or panics.
func WithLease(db *gorm.DB, log *zap.Logger, h LeasedHandler) fiber.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *fiber.Ctx) error {
		lease := database.NewLease(c.UserContext(), db)
		defer func() {
			if err := lease.Release(); err != nil {
				log.Warn("release db lease", zap.String("path", c.Path()), zap.Error(err))
			}
		}()
		return h(c, lease)
	}
}
