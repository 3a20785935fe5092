package services

import (
	"fmt"
	"strings"
	"testing"

	"backend/config"
	"backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points config.DB at a fresh in-memory database with the full
// schema. Each test gets its own database, named after the test.
func setupTestDB(t *testing.T) {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	config.DB = db
	config.App.JWTSecret = "test-secret"
}

func createTestUser(t *testing.T, email string) *models.User {
	t.Helper()

	user := &models.User{Email: email, Password: "x"}
	require.NoError(t, config.DB.Create(user).Error)
	return user
}

func loadProgress(t *testing.T, userID uint) models.CurrentProgress {
	t.Helper()

	var p models.CurrentProgress
	require.NoError(t, config.DB.Where("user_id = ?", userID).First(&p).Error)
	return p
}
