package services

import (
	"testing"

	"backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateProgress(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "a@example.com")

	// first read creates and returns the zero row in the same call
	p, err := GetOrCreateProgress(user.ID)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, user.ID, p.UserID)
	assert.Zero(t, p.TotalCalories)
	assert.Zero(t, p.TotalProtein)
	assert.Zero(t, p.SleepDuration)

	// second read returns the same row, not a second one
	again, err := GetOrCreateProgress(user.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, again.ID)
}

func TestApplyProgressDeltaAccumulates(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "a@example.com")

	require.NoError(t, ApplyProgressDelta(config.DB, user.ID, ProgressDelta{Calories: 500, Protein: 30, SleepHours: 7.5}))
	require.NoError(t, ApplyProgressDelta(config.DB, user.ID, ProgressDelta{Calories: 250, Protein: 10}))

	p := loadProgress(t, user.ID)
	assert.Equal(t, 750.0, p.TotalCalories)
	assert.Equal(t, 40.0, p.TotalProtein)
	assert.Equal(t, 7.5, p.SleepDuration)
}

func TestResetProgressIsIdempotent(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "a@example.com")

	require.NoError(t, ApplyProgressDelta(config.DB, user.ID, ProgressDelta{Calories: 900, Protein: 45, SleepHours: 8}))

	require.NoError(t, ResetProgress(user.ID))
	p := loadProgress(t, user.ID)
	assert.Zero(t, p.TotalCalories)
	assert.Zero(t, p.TotalProtein)
	assert.Zero(t, p.SleepDuration)

	// resetting an already-zero tracker changes nothing
	require.NoError(t, ResetProgress(user.ID))
	p = loadProgress(t, user.ID)
	assert.Zero(t, p.TotalCalories)
	assert.Zero(t, p.TotalProtein)
	assert.Zero(t, p.SleepDuration)
}
