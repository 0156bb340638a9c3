package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/pageza/fitplan/backend/internal/models"
	"github.com/pageza/fitplan/backend/internal/recommendation"
)

// CreateUserRequest is the body of POST /api/users. BodyGoal is not restricted
// to the known goals; unknown values fall back to the maintenance plans.
type CreateUserRequest struct {
	Name      string  `json:"name" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Height    float64 `json:"height" binding:"required,gt=0"`
	Weight    float64 `json:"weight" binding:"required,gt=0"`
	Age       int     `json:"age" binding:"required,gt=0"`
	Gender    string  `json:"gender"`
	BodyGoal  string  `json:"bodyGoal" binding:"required"`
	Timeframe int     `json:"timeframe" binding:"required,gt=0"`
}

// UserSummary is one row of GET /api/users.
type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	BodyGoal  string    `json:"bodyGoal"`
	Timeframe int       `json:"timeframe"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateUserResponse flattens the stored profile and its plan summary into one object.
type CreateUserResponse struct {
	*models.User
	recommendation.PlanSummary
}

// RecommendationRequest derives a recommendation without storing a profile.
type RecommendationRequest struct {
	BodyGoal string  `json:"bodyGoal" binding:"required"`
	Gender   string  `json:"gender"`
	Weight   float64 `json:"weight" binding:"required,gt=0"`
}

type ExportResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type CreateExerciseRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Sets        int     `json:"sets" binding:"gte=0"`
	Reps        int     `json:"reps" binding:"gte=0"`
	RestTime    int     `json:"restTime" binding:"gte=0"`
	BodyPart    string  `json:"bodyPart" binding:"required"`
}

type CreateWorkoutPlanRequest struct {
	Name        string                  `json:"name" binding:"required"`
	Description *string                 `json:"description"`
	Duration    int                     `json:"duration" binding:"gte=0"`
	Difficulty  string                  `json:"difficulty" binding:"required"`
	BodyFocus   string                  `json:"bodyFocus" binding:"required"`
	UserID      *uuid.UUID              `json:"userId"`
	Exercises   []CreateExerciseRequest `json:"exercises" binding:"dive"`
}

type CreateMealRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Calories    int     `json:"calories" binding:"gte=0"`
	Protein     int     `json:"protein" binding:"gte=0"`
	Carbs       int     `json:"carbs" binding:"gte=0"`
	Fat         int     `json:"fat" binding:"gte=0"`
	PrepTime    int     `json:"prepTime" binding:"gte=0"`
	Recipe      *string `json:"recipe"`
}

type CreateDietPlanRequest struct {
	Name        string              `json:"name" binding:"required"`
	Description *string             `json:"description"`
	CalorieGoal *int                `json:"calorieGoal"`
	ProteinGoal *int                `json:"proteinGoal"`
	CarbGoal    *int                `json:"carbGoal"`
	FatGoal     *int                `json:"fatGoal"`
	UserID      *uuid.UUID          `json:"userId"`
	Meals       []CreateMealRequest `json:"meals" binding:"dive"`
}
