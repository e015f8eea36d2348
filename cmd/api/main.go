package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/anjiri1684/cyber_evolve/configs"
	"github.com/anjiri1684/cyber_evolve/database"
	"github.com/anjiri1684/cyber_evolve/jobs"
	"github.com/anjiri1684/cyber_evolve/logger"
	"github.com/anjiri1684/cyber_evolve/routes"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	db, err := database.Open(cfg.DBDriver, cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}
	if err := database.Init(db, log); err != nil {
		log.Fatal("failed to initialise database", zap.Error(err))
	}
	log.Info("database ready", zap.String("driver", cfg.DBDriver))

	if cfg.TipCron != "" {
		c, err := jobs.ScheduleDailyTip(cfg.TipCron, db, log)
		if err != nil {
			log.Fatal("invalid TIP_CRON schedule", zap.String("spec", cfg.TipCron), zap.Error(err))
		}
		c.Start()
		defer c.Stop()
		log.Info("daily tip job scheduled", zap.String("spec", cfg.TipCron))
	}

	app := routes.NewApp(db, log)

	go func() {
		log.Info("server is running", zap.String("port", cfg.Port))
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Warn("server shutdown", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
