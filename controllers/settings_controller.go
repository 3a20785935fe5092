package controllers

import (
	"net/http"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

func GetSettings(c *gin.Context) {
	userID := c.GetUint("userID")

	settings, err := services.GetSettings(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
		return
	}

	// nil when the profile was never set; the client treats that as "empty"
	c.JSON(http.StatusOK, settings)
}

func UpdateSettings(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.SettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, created, err := services.UpsertSettings(userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save settings"})
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"message": "settings saved", "settings": settings})
}

type ComputeGoalsInput struct {
	Weight        float64 `json:"weight" binding:"required"`
	Height        float64 `json:"height" binding:"required"`
	Age           int     `json:"age" binding:"required"`
	Gender        string  `json:"gender" binding:"required"`
	ActivityLevel string  `json:"activityLevel" binding:"required"`
	Plan          string  `json:"plan" binding:"required"`
}

// ComputeGoals runs the calorie/protein target formula server-side so
// clients do not have to duplicate it. It does not persist anything.
func ComputeGoals(c *gin.Context) {
	var input ComputeGoalsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	calories, protein, err := utils.CalculateDailyGoals(
		input.Weight, input.Height, input.Age,
		input.Gender, input.ActivityLevel, input.Plan,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dailyCaloriesGoal": calories,
		"dailyProteinGoal":  protein,
	})
}
