package services

import (
	"errors"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

type SettingsInput struct {
	Height            int    `json:"height"`
	Weight            int    `json:"weight"`
	Age               int    `json:"age"`
	Gender            string `json:"gender"`
	DailyCaloriesGoal int    `json:"dailyCaloriesGoal"`
	DailyProteinGoal  int    `json:"dailyProteinGoal"`
	Plan              string `json:"plan"`
}

// GetSettings returns the user's profile, or nil when it was never set.
func GetSettings(userID uint) (*models.Settings, error) {
	var s models.Settings
	err := config.DB.Where("user_id = ?", userID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// UpsertSettings inserts the profile or overwrites every field of the
// existing row. There is no partial merge: whatever the caller sent, missing
// fields included, becomes the new profile. Returns whether a row was
// created, so the handler can answer 201 vs 200.
func UpsertSettings(userID uint, input SettingsInput) (*models.Settings, bool, error) {
	var s models.Settings
	err := config.DB.Where("user_id = ?", userID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s = models.Settings{
			UserID:            userID,
			Height:            input.Height,
			Weight:            input.Weight,
			Age:               input.Age,
			Gender:            input.Gender,
			DailyCaloriesGoal: input.DailyCaloriesGoal,
			DailyProteinGoal:  input.DailyProteinGoal,
			Plan:              input.Plan,
		}
		if err := config.DB.Create(&s).Error; err != nil {
			return nil, false, err
		}
		return &s, true, nil
	}
	if err != nil {
		return nil, false, err
	}

	s.Height = input.Height
	s.Weight = input.Weight
	s.Age = input.Age
	s.Gender = input.Gender
	s.DailyCaloriesGoal = input.DailyCaloriesGoal
	s.DailyProteinGoal = input.DailyProteinGoal
	s.Plan = input.Plan

	if err := config.DB.Save(&s).Error; err != nil {
		return nil, false, err
	}
	return &s, false, nil
}
