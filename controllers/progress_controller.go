package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func GetCurrentProgress(c *gin.Context) {
	userID := c.GetUint("userID")

	progress, err := services.GetOrCreateProgress(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load progress"})
		return
	}

	c.JSON(http.StatusOK, progress)
}

func ResetCurrentProgress(c *gin.Context) {
	userID := c.GetUint("userID")

	if err := services.ResetProgress(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset progress"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "progress reset"})
}
