package models

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, db.AutoMigrate(All()...))
	return db
}

func TestUserBeforeCreateAssignsID(t *testing.T) {
	db := setupTestDB(t)
	user := &User{Name: "Test", Email: "test@example.com", Height: 180, Weight: 80, Age: 30, Gender: "male", BodyGoal: "lose_weight", Timeframe: 12}

	require.NoError(t, db.Create(user).Error)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUserBeforeCreateKeepsID(t *testing.T) {
	db := setupTestDB(t)
	id := uuid.New()
	user := &User{ID: id, Name: "Test", Email: "keep@example.com", Gender: "female", BodyGoal: "maintain"}

	require.NoError(t, db.Create(user).Error)
	assert.Equal(t, id, user.ID)
}

func TestUserEmailIsUnique(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&User{Name: "A", Email: "dup@example.com", Gender: "male", BodyGoal: "maintain"}).Error)

	err := db.Create(&User{Name: "B", Email: "dup@example.com", Gender: "male", BodyGoal: "maintain"}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestWorkoutPlanCreatesExercises(t *testing.T) {
	db := setupTestDB(t)
	plan := &WorkoutPlan{
		Name:       "Push day",
		Duration:   45,
		Difficulty: "intermediate",
		BodyFocus:  "upper",
		Exercises: []Exercise{
			{Name: "Bench Press", Sets: 4, Reps: 8, RestTime: 90, BodyPart: "chest"},
			{Name: "Overhead Press", Sets: 3, Reps: 10, RestTime: 60, BodyPart: "shoulders"},
		},
	}

	require.NoError(t, db.Create(plan).Error)

	var loaded WorkoutPlan
	require.NoError(t, db.Preload("Exercises").First(&loaded, "id = ?", plan.ID).Error)
	require.Len(t, loaded.Exercises, 2)
	for _, e := range loaded.Exercises {
		assert.Equal(t, plan.ID, e.WorkoutPlanID)
		assert.NotEqual(t, uuid.Nil, e.ID)
	}
	assert.Nil(t, loaded.Description)
	assert.Nil(t, loaded.UserID)
}

func TestDietPlanCreatesMeals(t *testing.T) {
	db := setupTestDB(t)
	calories := 2000
	recipe := "Mix and serve"
	plan := &DietPlan{
		Name:        "Lean",
		CalorieGoal: &calories,
		Meals: []Meal{
			{Name: "Oats", Calories: 400, Protein: 20, Carbs: 60, Fat: 8, PrepTime: 5, Recipe: &recipe},
		},
	}

	require.NoError(t, db.Create(plan).Error)

	var loaded DietPlan
	require.NoError(t, db.Preload("Meals").First(&loaded, "id = ?", plan.ID).Error)
	require.Len(t, loaded.Meals, 1)
	assert.Equal(t, plan.ID, loaded.Meals[0].DietPlanID)
	require.NotNil(t, loaded.CalorieGoal)
	assert.Equal(t, 2000, *loaded.CalorieGoal)
	assert.Nil(t, loaded.ProteinGoal)
	require.NotNil(t, loaded.Meals[0].Recipe)
	assert.Equal(t, recipe, *loaded.Meals[0].Recipe)
}
