package models

import "gorm.io/gorm"

// Product is one item of a meal. All nutrition fields are the client's raw
// form input; calorie/protein totals are taken from a leading-integer parse
// of Calories and Protein, never recomputed from Mass.
type Product struct {
	Name     string `json:"name"`
	Mass     string `json:"mass"`
	Calories string `json:"calories"`
	Protein  string `json:"protein"`
}

type Meal struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null" json:"user_id"`
	Name     string    `gorm:"not null" json:"name"`
	Date     string    `gorm:"not null" json:"date"` // stamped server-side at creation
	Products []Product `gorm:"serializer:json;not null" json:"products"`
}
