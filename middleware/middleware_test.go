package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/anjiri1684/cyber_evolve/database"
	"github.com/anjiri1684/cyber_evolve/models"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(database.DriverSQLite, filepath.Join(t.TempDir(), "middleware.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	require.NoError(t, database.Init(db, nil))
	return db
}

func inUse(t *testing.T, db *gorm.DB) int {
	t.Helper()
	sqlDB, err := db.DB()
	require.NoError(t, err)
	return sqlDB.Stats().InUse
}

func TestWithLease_ReleasesAfterSuccess(t *testing.T) {
	db := newTestDB(t)
	app := fiber.New()

	var seen *database.Lease
	app.Get("/count", WithLease(db, zap.NewNop(), func(c *fiber.Ctx, lease *database.Lease) error {
		seen = lease
		conn, err := lease.DB()
		if err != nil {
			return err
		}
		again, err := lease.DB()
		if err != nil {
			return err
		}
		if conn != again {
			return errors.New("lease handed out two connections")
		}
		var count int64
		if err := conn.Model(&models.Tip{}).Count(&count).Error; err != nil {
			return err
		}
		return c.JSON(fiber.Map{"count": count})
	}))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/count", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NotNil(t, seen)
	require.False(t, seen.Acquired())
	require.Zero(t, inUse(t, db))
}

func TestWithLease_ReleasesOnError(t *testing.T) {
	db := newTestDB(t)
	app := fiber.New()

	var seen *database.Lease
	app.Get("/fail", WithLease(db, nil, func(c *fiber.Ctx, lease *database.Lease) error {
		seen = lease
		if _, err := lease.DB(); err != nil {
			return err
		}
		return fiber.NewError(fiber.StatusTeapot, "boom")
	}))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusTeapot, resp.StatusCode)

	require.False(t, seen.Acquired())
	require.Zero(t, inUse(t, db))
}

func TestWithLease_ReleasesOnPanic(t *testing.T) {
	db := newTestDB(t)
	app := fiber.New()
	app.Use(Recovery())

	app.Get("/panic", WithLease(db, nil, func(c *fiber.Ctx, lease *database.Lease) error {
		if _, err := lease.DB(); err != nil {
			return err
		}
		panic("handler exploded")
	}))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Zero(t, inUse(t, db))
}

func TestWithLease_NoAcquireWhenUnused(t *testing.T) {
	db := newTestDB(t)
	app := fiber.New()

	app.Get("/static", WithLease(db, nil, func(c *fiber.Ctx, lease *database.Lease) error {
		return c.SendString("ok")
	}))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/static", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Zero(t, inUse(t, db))
}

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c *fiber.Ctx) error {
		id, _ := c.Locals(RequestIDKey).(string)
		return c.SendString(id)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	require.Len(t, resp.Header.Get(fiber.HeaderXRequestID), 36)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderXRequestID, "abc-123")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, "abc-123", resp.Header.Get(fiber.HeaderXRequestID))
}
