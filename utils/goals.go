package utils

import (
	"errors"
	"math"
)

// Activity multipliers applied to BMR.
var activityFactors = map[string]float64{
	"sedentary":         1.5,
	"lightly_active":    1.6,
	"moderately_active": 1.8,
	"very_active":       2.0,
	"super_active":      2.2,
}

type planAdjustment struct {
	calories      func(tdee float64) float64
	proteinFactor float64
}

var planAdjustments = map[string]planAdjustment{
	"weight-loss":        {func(t float64) float64 { return t * 0.85 }, 1.0},
	"weight-maintenance": {func(t float64) float64 { return t }, 1.0},
	"muscle-gain":        {func(t float64) float64 { return t + 500 }, 1.6},
	"recomposition":      {func(t float64) float64 { return t - 200 }, 1.6},
}

// CalculateDailyGoals computes the daily calorie and protein targets.
// BMR uses Mifflin-St Jeor (weight kg, height cm); TDEE = BMR x activity
// factor; the plan then shifts calories and scales protein per kg of body
// weight. Both results are rounded to the nearest integer.
func CalculateDailyGoals(weightKg, heightCm float64, age int, gender, activityLevel, plan string) (calories, protein int, err error) {
	if weightKg <= 0 || heightCm <= 0 || age <= 0 {
		return 0, 0, errors.New("weight, height and age must be positive")
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch gender {
	case "male":
		bmr += 5
	case "female":
		bmr -= 161
	default:
		return 0, 0, errors.New("gender must be \"male\" or \"female\"")
	}

	factor, ok := activityFactors[activityLevel]
	if !ok {
		return 0, 0, errors.New("unknown activity level")
	}
	tdee := bmr * factor

	adj, ok := planAdjustments[plan]
	if !ok {
		return 0, 0, errors.New("unknown plan")
	}

	calories = int(math.Round(adj.calories(tdee)))
	protein = int(math.Round(weightKg * adj.proteinFactor))
	return calories, protein, nil
}
