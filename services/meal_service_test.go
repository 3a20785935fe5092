package services

import (
	"testing"
	"time"

	"backend/config"
	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAddMealCreditsTracker(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "a@example.com")

	meal, err := AddMeal(user.ID, "Lunch", []models.Product{
		{Name: "Chicken", Mass: "200", Calories: "500", Protein: "30"},
	})
	require.NoError(t, err)
	assert.Equal(t, todayLocal(), meal.Date)

	p := loadProgress(t, user.ID)
	assert.Equal(t, 500.0, p.TotalCalories)
	assert.Equal(t, 30.0, p.TotalProtein)
}

func TestMealTotalsTruncateLikeParseInt(t *testing.T) {
	calories, protein, err := MealTotals([]models.Product{
		{Calories: "500", Protein: "30"},
		{Calories: "120.9", Protein: "12.7"},
		{Calories: " 42kcal", Protein: " 5g"},
	})
	require.NoError(t, err)
	assert.Equal(t, 500+120+42, calories)
	assert.Equal(t, 30+12+5, protein)
}

func TestAddMealRejectsNonNumericProducts(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "a@example.com")

	_, err := AddMeal(user.ID, "Lunch", []models.Product{
		{Name: "Mystery", Calories: "lots", Protein: "some"},
	})
	assert.ErrorIs(t, err, ErrInvalidProduct)

	// the rejected meal never reached the ledger or the tracker
	var count int64
	config.DB.Model(&models.Meal{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Zero(t, count)

	var progressCount int64
	config.DB.Model(&models.CurrentProgress{}).Where("user_id = ?", user.ID).Count(&progressCount)
	assert.Zero(t, progressCount)
}

func TestDeleteMealSameDayReverts(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "a@example.com")

	meal, err := AddMeal(user.ID, "Lunch", []models.Product{
		{Calories: "500", Protein: "30"},
		{Calories: "200", Protein: "10"},
	})
	require.NoError(t, err)

	require.NoError(t, DeleteMeal(user.ID, meal.ID))

	p := loadProgress(t, user.ID)
	assert.Zero(t, p.TotalCalories)
	assert.Zero(t, p.TotalProtein)
}

func TestDeleteMealStaleDateLeavesTracker(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "a@example.com")

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	stale := models.Meal{
		UserID:   user.ID,
		Name:     "Old dinner",
		Date:     yesterday,
		Products: []models.Product{{Calories: "800", Protein: "40"}},
	}
	require.NoError(t, config.DB.Create(&stale).Error)

	// seed some of today's accumulation so the no-op is observable
	require.NoError(t, ApplyProgressDelta(config.DB, user.ID, ProgressDelta{Calories: 300, Protein: 20}))

	require.NoError(t, DeleteMeal(user.ID, stale.ID))

	p := loadProgress(t, user.ID)
	assert.Equal(t, 300.0, p.TotalCalories)
	assert.Equal(t, 20.0, p.TotalProtein)
}

func TestDeleteMealUnownedIsNotFound(t *testing.T) {
	setupTestDB(t)
	owner := createTestUser(t, "owner@example.com")
	other := createTestUser(t, "other@example.com")

	meal, err := AddMeal(owner.ID, "Lunch", []models.Product{{Calories: "500", Protein: "30"}})
	require.NoError(t, err)

	assert.ErrorIs(t, DeleteMeal(other.ID, meal.ID), gorm.ErrRecordNotFound)
	assert.Equal(t, 500.0, loadProgress(t, owner.ID).TotalCalories)
}

func TestListMealsOrderedByDateDescending(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "a@example.com")

	// AddMeal stamps today, so insert history rows directly
	for _, date := range []string{"2024-01-05", "2024-03-01", "2024-02-10"} {
		meal := models.Meal{
			UserID:   user.ID,
			Name:     "Meal " + date,
			Date:     date,
			Products: []models.Product{{Calories: "300", Protein: "20"}},
		}
		require.NoError(t, config.DB.Create(&meal).Error)
	}

	meals, err := ListMeals(user.ID)
	require.NoError(t, err)
	require.Len(t, meals, 3)
	assert.Equal(t, "2024-03-01", meals[0].Date)
	assert.Equal(t, "2024-02-10", meals[1].Date)
	assert.Equal(t, "2024-01-05", meals[2].Date)
}

func TestListMealsRoundTripsProducts(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "a@example.com")

	_, err := AddMeal(user.ID, "Breakfast", []models.Product{
		{Name: "Oats", Mass: "60", Calories: "220", Protein: "8"},
		{Name: "Milk", Mass: "250", Calories: "110", Protein: "9"},
	})
	require.NoError(t, err)

	meals, err := ListMeals(user.ID)
	require.NoError(t, err)
	require.Len(t, meals, 1)
	require.Len(t, meals[0].Products, 2)
	assert.Equal(t, "Oats", meals[0].Products[0].Name)
	assert.Equal(t, "9", meals[0].Products[1].Protein)
}
