package services

import (
	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

// Workouts are ledger-only: they never contribute to the tracker.

func AddWorkout(userID uint, date string, exercises []models.Exercise) (*models.Workout, error) {
	workout := &models.Workout{
		UserID:    userID,
		Date:      date,
		Exercises: exercises,
	}
	if err := config.DB.Create(workout).Error; err != nil {
		return nil, err
	}
	return workout, nil
}

func ListWorkouts(userID uint) ([]models.Workout, error) {
	var workouts []models.Workout
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&workouts).Error
	return workouts, err
}

func DeleteWorkout(userID, id uint) error {
	res := config.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Workout{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
