package models

import "gorm.io/gorm"

// CurrentProgress is the per-user running total for "today": the sum of
// same-day sleep and meal contributions since the last reset. It is a
// denormalized view of the ledger tables, maintained by signed deltas on
// every ledger mutation. Nothing rolls it over at midnight; an explicit
// reset is the only zeroing mechanism.
type CurrentProgress struct {
	gorm.Model
	UserID        uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	TotalCalories float64 `gorm:"default:0" json:"totalCalories"`
	TotalProtein  float64 `gorm:"default:0" json:"totalProtein"`
	SleepDuration float64 `gorm:"default:0" json:"sleepDuration"`
}
