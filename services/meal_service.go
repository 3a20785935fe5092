package services

import (
	"errors"

	"backend/config"
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

var ErrInvalidProduct = errors.New("product calories and protein must be numeric")

// MealTotals sums the leading-integer parse of every product's calories and
// protein. The sums cover the parseable products; err is non-nil if any
// product failed to parse, so callers can reject at input or tolerate legacy
// rows on the delete path.
func MealTotals(products []models.Product) (calories, protein int, err error) {
	for _, p := range products {
		c, cErr := utils.ParseLeadingInt(p.Calories)
		if cErr != nil {
			err = ErrInvalidProduct
		} else {
			calories += c
		}

		pr, pErr := utils.ParseLeadingInt(p.Protein)
		if pErr != nil {
			err = ErrInvalidProduct
		} else {
			protein += pr
		}
	}
	return calories, protein, err
}

// AddMeal appends a meal stamped with the server's current local date and
// credits its totals to the tracker. Meals with unparseable nutrition fields
// never reach the ledger.
func AddMeal(userID uint, name string, products []models.Product) (*models.Meal, error) {
	calories, protein, err := MealTotals(products)
	if err != nil {
		return nil, err
	}

	meal := &models.Meal{
		UserID:   userID,
		Name:     name,
		Date:     todayLocal(),
		Products: products,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(meal).Error; err != nil {
			return err
		}
		return ApplyProgressDelta(tx, userID, ProgressDelta{
			Calories: float64(calories),
			Protein:  float64(protein),
		})
	})
	if err != nil {
		return nil, err
	}

	publishProgress(userID)
	return meal, nil
}

func ListMeals(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&meals).Error
	return meals, err
}

// DeleteMeal removes the meal after an ownership check and reverses its
// contribution only when it is dated today.
func DeleteMeal(userID, id uint) error {
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var meal models.Meal
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&meal).Error; err != nil {
			return err
		}

		if err := tx.Delete(&meal).Error; err != nil {
			return err
		}

		if meal.Date == todayLocal() {
			calories, protein, _ := MealTotals(meal.Products)
			return ApplyProgressDelta(tx, userID, ProgressDelta{
				Calories: -float64(calories),
				Protein:  -float64(protein),
			})
		}
		return nil
	})
	if err != nil {
		return err
	}

	publishProgress(userID)
	return nil
}
