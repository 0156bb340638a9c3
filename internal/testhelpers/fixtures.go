package testhelpers

import (
	"github.com/brianvoe/gofakeit/v6"

	"github.com/pageza/fitplan/backend/internal/types"
)

// FakeUserRequest returns a valid profile submission with the given goal.
func FakeUserRequest(bodyGoal string) *types.CreateUserRequest {
	return &types.CreateUserRequest{
		Name:      gofakeit.Name(),
		Email:     gofakeit.Email(),
		Height:    gofakeit.Float64Range(150, 200),
		Weight:    gofakeit.Float64Range(50, 110),
		Age:       gofakeit.Number(18, 70),
		Gender:    gofakeit.RandomString([]string{"male", "female"}),
		BodyGoal:  bodyGoal,
		Timeframe: gofakeit.Number(4, 52),
	}
}

// FakeWorkoutPlanRequest returns a plan with n exercises.
func FakeWorkoutPlanRequest(n int) *types.CreateWorkoutPlanRequest {
	req := &types.CreateWorkoutPlanRequest{
		Name:       gofakeit.AppName(),
		Duration:   gofakeit.Number(20, 90),
		Difficulty: gofakeit.RandomString([]string{"beginner", "intermediate", "advanced"}),
		BodyFocus:  gofakeit.RandomString([]string{"full body", "upper", "lower", "core"}),
	}
	for i := 0; i < n; i++ {
		req.Exercises = append(req.Exercises, types.CreateExerciseRequest{
			Name:     gofakeit.Verb() + " " + gofakeit.Noun(),
			Sets:     gofakeit.Number(2, 5),
			Reps:     gofakeit.Number(6, 15),
			RestTime: gofakeit.Number(30, 120),
			BodyPart: gofakeit.RandomString([]string{"chest", "back", "legs", "arms", "core"}),
		})
	}
	return req
}

// FakeDietPlanRequest returns a plan with n meals.
func FakeDietPlanRequest(n int) *types.CreateDietPlanRequest {
	calories := gofakeit.Number(1500, 3000)
	req := &types.CreateDietPlanRequest{
		Name:        gofakeit.AppName(),
		CalorieGoal: &calories,
	}
	for i := 0; i < n; i++ {
		req.Meals = append(req.Meals, types.CreateMealRequest{
			Name:     gofakeit.Dessert(),
			Calories: gofakeit.Number(200, 800),
			Protein:  gofakeit.Number(10, 60),
			Carbs:    gofakeit.Number(10, 100),
			Fat:      gofakeit.Number(5, 40),
			PrepTime: gofakeit.Number(5, 45),
		})
	}
	return req
}
