package services

import (
	"fmt"
	"time"

	"github.com/anjiri1684/cyber_evolve/models"
	"github.com/anjiri1684/cyber_evolve/utils"
	"gorm.io/gorm"
)

const FallbackTip = "Stay curious and keep learning about cyber safety!"

func ListTips(db *gorm.DB) ([]models.Tip, error) {
	var tips []models.Tip
	if err := db.Order("id").Find(&tips).Error; err != nil {
		return nil, fmt.Errorf("list tips: %w", err)
	}
	return tips, nil
}

// SelectTip picks the tip for day's calendar date: the day ordinal modulo the
// number of tips, over tips in id order.
func SelectTip(tips []models.Tip, day time.Time) string {
	if len(tips) == 0 {
		return FallbackTip
	}
	n := int64(len(tips))
	idx := utils.DayOrdinal(day) % n
	if idx < 0 {
		idx += n
	}
	return tips[idx].Text
}

func TipOfTheDay(db *gorm.DB, now time.Time) (string, error) {
	tips, err := ListTips(db)
	if err != nil {
		return "", err
	}
	return SelectTip(tips, now), nil
}
