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

type MealInput struct {
	Name     string           `json:"name" binding:"required"`
	Products []models.Product `json:"products" binding:"required"`
}

func AddMeal(c *gin.Context) {
	var input MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "meal name and products are required"})
		return
	}

	userID := c.GetUint("userID")
	meal, err := services.AddMeal(userID, input.Name, input.Products)
	if err != nil {
		if errors.Is(err, services.ErrInvalidProduct) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add meal"})
		return
	}

	c.JSON(http.StatusCreated, meal)
}

func ListMeals(c *gin.Context) {
	userID := c.GetUint("userID")

	meals, err := services.ListMeals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load meals"})
		return
	}

	c.JSON(http.StatusOK, meals)
}

func DeleteMeal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}

	userID := c.GetUint("userID")
	if err := services.DeleteMeal(userID, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete meal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "meal deleted"})
}
