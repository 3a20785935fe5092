package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func SearchFood(c *gin.Context) {
	query := c.Query("query")

	body, err := services.NewFoodService().Search(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch food data"})
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}
