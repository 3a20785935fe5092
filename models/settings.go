package models

import "gorm.io/gorm"

// Settings holds each user's body metrics and computed daily targets.
// One row per user; every upsert overwrites all fields.
type Settings struct {
	gorm.Model
	UserID            uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	Height            int    `json:"height"` // cm
	Weight            int    `json:"weight"` // kg
	Age               int    `json:"age"`
	Gender            string `json:"gender"` // "male" | "female"
	DailyCaloriesGoal int    `json:"dailyCaloriesGoal"`
	DailyProteinGoal  int    `json:"dailyProteinGoal"`
	Plan              string `json:"plan"` // "weight-loss" | "weight-maintenance" | "muscle-gain" | "recomposition"
}
