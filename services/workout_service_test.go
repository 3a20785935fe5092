package services

import (
	"testing"

	"backend/config"
	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestWorkoutLifecycle(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "a@example.com")

	workout, err := AddWorkout(user.ID, "2024-06-01", []models.Exercise{
		{Name: "Squat", Series: []models.Series{{Reps: 5, Weight: 100}, {Reps: 5, Weight: 105}}},
		{Name: "Bench", Series: []models.Series{{Reps: 8, Weight: 60}}},
	})
	require.NoError(t, err)
	assert.NotZero(t, workout.ID)

	workouts, err := ListWorkouts(user.ID)
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	require.Len(t, workouts[0].Exercises, 2)
	assert.Equal(t, 105.0, workouts[0].Exercises[0].Series[1].Weight)

	require.NoError(t, DeleteWorkout(user.ID, workout.ID))

	workouts, err = ListWorkouts(user.ID)
	require.NoError(t, err)
	assert.Empty(t, workouts)
}

func TestWorkoutsNeverTouchTracker(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "a@example.com")

	workout, err := AddWorkout(user.ID, todayLocal(), []models.Exercise{
		{Name: "Deadlift", Series: []models.Series{{Reps: 3, Weight: 140}}},
	})
	require.NoError(t, err)
	require.NoError(t, DeleteWorkout(user.ID, workout.ID))

	var count int64
	config.DB.Model(&models.CurrentProgress{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Zero(t, count)
}

func TestDeleteWorkoutMissingOrUnownedIsNotFound(t *testing.T) {
	setupTestDB(t)
	owner := createTestUser(t, "owner@example.com")
	other := createTestUser(t, "other@example.com")

	assert.ErrorIs(t, DeleteWorkout(owner.ID, 12345), gorm.ErrRecordNotFound)

	workout, err := AddWorkout(owner.ID, "2024-06-01", []models.Exercise{{Name: "Row"}})
	require.NoError(t, err)
	assert.ErrorIs(t, DeleteWorkout(other.ID, workout.ID), gorm.ErrRecordNotFound)

	workouts, err := ListWorkouts(owner.ID)
	require.NoError(t, err)
	assert.Len(t, workouts, 1)
}
