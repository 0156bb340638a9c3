// Package recommendation derives the workout and diet plan recommended for a
// profile. Workouts are static per goal; diets are scaled from body weight.
package recommendation

// Recommendation is the personalized plan shown after a profile is created.
type Recommendation struct {
	BodyGoal BodyGoal        `json:"bodyGoal"`
	Headline string          `json:"headline"`
	Workout  WorkoutTemplate `json:"workout"`
	Diet     DietTemplate    `json:"diet"`
}

// Derive builds the recommendation for a raw body goal, gender and weight in kg.
// Unrecognized goals get the maintenance workout and numbers, but only an exact
// maintain goal is presented as maintenance; anything else reads as general fitness.
func Derive(bodyGoal, gender string, weight float64) Recommendation {
	goal := Normalize(bodyGoal)
	raw := BodyGoal(bodyGoal)
	return Recommendation{
		BodyGoal: goal,
		Headline: raw.Headline(),
		Workout:  WorkoutFor(goal),
		Diet:     DietFor(raw, gender, weight),
	}
}

// PlanSummary is the short description of a recommendation returned when a
// profile is created.
type PlanSummary struct {
	WorkoutPlanName        string `json:"workoutPlanName"`
	WorkoutPlanDescription string `json:"workoutPlanDescription"`
	WorkoutDifficulty      string `json:"workoutDifficulty"`
	DietPlanName           string `json:"dietPlanName"`
}

// Summarize returns the plan summary for a raw body goal.
func Summarize(bodyGoal string) PlanSummary {
	goal := Normalize(bodyGoal)
	w := WorkoutFor(goal)
	return PlanSummary{
		WorkoutPlanName:        w.Name,
		WorkoutPlanDescription: w.Description,
		WorkoutDifficulty:      w.Difficulty,
		DietPlanName:           summaryDietName(goal),
	}
}

// summaryDietName differs from the computed diet names; clients key off these.
func summaryDietName(goal BodyGoal) string {
	switch goal {
	case LoseWeight:
		return "Calorie Deficit Diet Plan"
	case BuildMuscle:
		return "High Protein Diet Plan"
	case ImproveFitness:
		return "Balanced Nutrition Plan"
	case Maintain:
		return "Maintenance Diet Plan"
	default:
		return "Maintenance Diet Plan"
	}
}
