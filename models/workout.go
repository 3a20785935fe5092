package models

import "gorm.io/gorm"

type Series struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

type Exercise struct {
	Name   string   `json:"name"`
	Series []Series `json:"series"`
}

type Workout struct {
	gorm.Model
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	Date      string     `gorm:"not null" json:"date"`
	Exercises []Exercise `gorm:"serializer:json;not null" json:"exercises"`
}
