package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SleepInput struct {
	Date      string  `json:"date" binding:"required"`
	StartTime string  `json:"startTime" binding:"required"`
	EndTime   string  `json:"endTime" binding:"required"`
	Duration  float64 `json:"duration" binding:"required"`
}

func AddSleep(c *gin.Context) {
	var input SleepInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("userID")
	record, err := services.AddSleep(userID, input.Date, input.StartTime, input.EndTime, input.Duration)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add sleep record"})
		return
	}

	c.JSON(http.StatusCreated, record)
}

func ListSleep(c *gin.Context) {
	userID := c.GetUint("userID")

	records, err := services.ListSleep(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load sleep history"})
		return
	}

	c.JSON(http.StatusOK, records)
}

func DeleteSleep(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "sleep record not found"})
		return
	}

	userID := c.GetUint("userID")
	if err := services.DeleteSleep(userID, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "sleep record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete sleep record"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "sleep record deleted"})
}
