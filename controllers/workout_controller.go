package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type WorkoutInput struct {
	Date      string            `json:"date" binding:"required"`
	Exercises []models.Exercise `json:"exercises" binding:"required"`
}

func AddWorkout(c *gin.Context) {
	var input WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and exercises are required"})
		return
	}

	userID := c.GetUint("userID")
	workout, err := services.AddWorkout(userID, input.Date, input.Exercises)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add workout"})
		return
	}

	c.JSON(http.StatusCreated, workout)
}

func ListWorkouts(c *gin.Context) {
	userID := c.GetUint("userID")

	workouts, err := services.ListWorkouts(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load workouts"})
		return
	}

	c.JSON(http.StatusOK, workouts)
}

func DeleteWorkout(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "workout not found"})
		return
	}

	userID := c.GetUint("userID")
	if err := services.DeleteWorkout(userID, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "workout not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete workout"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "workout deleted"})
}
