package jobs

import (
	"context"
	"time"

	"github.com/anjiri1684/cyber_evolve/database"
	"github.com/anjiri1684/cyber_evolve/services"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AnnounceDailyTip logs the tip selected for the current local date.
func AnnounceDailyTip(db *gorm.DB, log *zap.Logger, now func() time.Time) func() {
	if log == nil {
		log = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}

	return func() {
		lease := database.NewLease(context.Background(), db)
		defer func() {
			if err := lease.Release(); err != nil {
				log.Warn("release db lease", zap.Error(err))
			}
		}()

		conn, err := lease.DB()
		if err != nil {
			log.Error("daily tip job: lease connection", zap.Error(err))
			return
		}

		today := now()
		tip, err := services.TipOfTheDay(conn, today)
		if err != nil {
			log.Error("daily tip job: select tip", zap.Error(err))
			return
		}

		log.Info("tip of the day",
			zap.String("date", today.Format("2006-01-02")),
			zap.String("tip", tip),
		)
	}
}

// ScheduleDailyTip registers AnnounceDailyTip on a new cron at spec. The
// caller starts and stops the returned scheduler.
func ScheduleDailyTip(spec string, db *gorm.DB, log *zap.Logger) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(spec, AnnounceDailyTip(db, log, time.Now)); err != nil {
		return nil, err
	}
	return c, nil
}
