package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

// ProgressDelta is a signed contribution applied to the tracker row on a
// ledger mutation: positive on append, negative on a same-day delete.
type ProgressDelta struct {
	Calories   float64
	Protein    float64
	SleepHours float64
}

// todayLocal is the calendar day ledger dates are compared against when
// deciding whether a delete reverses its tracker contribution.
func todayLocal() string {
	return time.Now().Format("2006-01-02")
}

// GetOrCreateProgress returns the user's tracker row, creating the zero row
// when absent. The freshly created row is returned in the same call.
func GetOrCreateProgress(userID uint) (*models.CurrentProgress, error) {
	var p models.CurrentProgress
	err := config.DB.Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		p = models.CurrentProgress{UserID: userID}
		if err := config.DB.Create(&p).Error; err != nil {
			return nil, err
		}
		return &p, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ApplyProgressDelta adds the delta to the tracker's fields using atomic
// per-field increments. It runs on the caller's handle so ledger write and
// delta commit or roll back together. The row is created first if the user
// never read their progress.
func ApplyProgressDelta(tx *gorm.DB, userID uint, d ProgressDelta) error {
	var p models.CurrentProgress
	err := tx.Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		p = models.CurrentProgress{UserID: userID}
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	return tx.Model(&models.CurrentProgress{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"total_calories": gorm.Expr("total_calories + ?", d.Calories),
			"total_protein":  gorm.Expr("total_protein + ?", d.Protein),
			"sleep_duration": gorm.Expr("sleep_duration + ?", d.SleepHours),
		}).Error
}

// ResetProgress unconditionally zeros all three tracker fields.
func ResetProgress(userID uint) error {
	err := config.DB.Model(&models.CurrentProgress{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"total_calories": 0,
			"total_protein":  0,
			"sleep_duration": 0,
		}).Error
	if err != nil {
		return err
	}
	publishProgress(userID)
	return nil
}
