package database

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/anjiri1684/cyber_evolve/models"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed seed/starter.json
var starterData []byte

var validate = validator.New()

type starterSet struct {
	Questions []models.Question `json:"questions"`
	Tips      []models.Tip      `json:"tips"`
}

func loadStarterSet() (starterSet, error) {
	var set starterSet
	if err := json.Unmarshal(starterData, &set); err != nil {
		return starterSet{}, fmt.Errorf("decode starter data: %w", err)
	}
	for i := range set.Questions {
		if err := validate.Struct(set.Questions[i]); err != nil {
			return starterSet{}, fmt.Errorf("starter question %d: %w", i+1, err)
		}
	}
	for i := range set.Tips {
		if err := validate.Struct(set.Tips[i]); err != nil {
			return starterSet{}, fmt.Errorf("starter tip %d: %w", i+1, err)
		}
	}
	return set, nil
}

// Seed inserts the starter questions and tips into whichever of the two
// tables is empty. Populated tables are not touched.
func Seed(db *gorm.DB, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}

	set, err := loadStarterSet()
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Question{}).Count(&count).Error; err != nil {
			return fmt.Errorf("count questions: %w", err)
		}
		if count == 0 {
			if err := tx.Create(&set.Questions).Error; err != nil {
				return fmt.Errorf("seed questions: %w", err)
			}
			log.Info("starter questions seeded", zap.Int("count", len(set.Questions)))
		} else {
			log.Info("questions already present, skipping seed", zap.Int64("count", count))
		}

		count = 0
		if err := tx.Model(&models.Tip{}).Count(&count).Error; err != nil {
			return fmt.Errorf("count tips: %w", err)
		}
		if count == 0 {
			if err := tx.Create(&set.Tips).Error; err != nil {
				return fmt.Errorf("seed tips: %w", err)
			}
			log.Info("starter tips seeded", zap.Int("count", len(set.Tips)))
		} else {
			log.Info("tips already present, skipping seed", zap.Int64("count", count))
		}
		return nil
	})
}
