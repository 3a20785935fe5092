package services

import (
	"math"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

// AddSleep appends a sleep record and credits its duration to the tracker.
// Duration is taken verbatim from the client. Record and delta commit in one
// transaction.
func AddSleep(userID uint, date, startTime, endTime string, duration float64) (*models.SleepRecord, error) {
	rec := &models.SleepRecord{
		UserID:    userID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Duration:  duration,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rec).Error; err != nil {
			return err
		}
		return ApplyProgressDelta(tx, userID, ProgressDelta{SleepHours: duration})
	})
	if err != nil {
		return nil, err
	}

	publishProgress(userID)
	return rec, nil
}

func ListSleep(userID uint) ([]models.SleepRecord, error) {
	var records []models.SleepRecord
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&records).Error
	return records, err
}

// DeleteSleep removes the record after an ownership check and, only when the
// record is dated today, debits its duration from the tracker. Stale-dated
// deletions leave the tracker alone: it tracks today's accumulation only.
func DeleteSleep(userID, id uint) error {
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var rec models.SleepRecord
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&rec).Error; err != nil {
			return err
		}

		if err := tx.Delete(&rec).Error; err != nil {
			return err
		}

		if rec.Date == todayLocal() {
			return ApplyProgressDelta(tx, userID, ProgressDelta{SleepHours: -math.Abs(rec.Duration)})
		}
		return nil
	})
	if err != nil {
		return err
	}

	publishProgress(userID)
	return nil
}
