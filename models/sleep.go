package models

import "gorm.io/gorm"

// SleepRecord is one night of sleep as reported by the client. Date is a
// YYYY-MM-DD string; history is ordered by lexicographic comparison of it.
// Duration is client-supplied and not re-derived from StartTime/EndTime.
type SleepRecord struct {
	gorm.Model
	UserID    uint    `gorm:"index;not null" json:"user_id"`
	Date      string  `gorm:"not null" json:"date"`
	StartTime string  `gorm:"not null" json:"startTime"`
	EndTime   string  `gorm:"not null" json:"endTime"`
	Duration  float64 `gorm:"not null" json:"duration"`
}
