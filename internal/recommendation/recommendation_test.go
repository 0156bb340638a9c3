package recommendation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBodyGoal(t *testing.T) {
	for _, g := range Goals {
		parsed, ok := ParseBodyGoal(string(g))
		assert.True(t, ok, g)
		assert.Equal(t, g, parsed)
	}

	_, ok := ParseBodyGoal("unknown")
	assert.False(t, ok)
	_, ok = ParseBodyGoal("")
	assert.False(t, ok)
	_, ok = ParseBodyGoal("LOSE_WEIGHT")
	assert.False(t, ok)
}

func TestNormalizeFallsBackToMaintain(t *testing.T) {
	assert.Equal(t, LoseWeight, Normalize("lose_weight"))
	assert.Equal(t, Maintain, Normalize("unknown"))
	assert.Equal(t, Maintain, Normalize(""))
}

func TestWorkoutForEachGoal(t *testing.T) {
	tests := []struct {
		goal       BodyGoal
		name       string
		frequency  string
		difficulty string
		sessions   []string
		exercises  int
	}{
		{LoseWeight, "Fat Loss Program", "4-5 days per week", "intermediate", []string{"Cardio + HIIT", "Full Body Strength"}, 8},
		{BuildMuscle, "Muscle Building Program", "4 days per week (2 upper, 2 lower)", "advanced", []string{"Upper Body", "Lower Body"}, 9},
		{ImproveFitness, "Overall Fitness Program", "3-4 days per week", "beginner", []string{"Strength Circuit", "Cardio & Mobility"}, 9},
		{Maintain, "Maintenance Program", "3 days per week", "beginner", []string{"Full Body Workout", "Cardio Session"}, 7},
	}

	seen := map[string]BodyGoal{}
	for _, tt := range tests {
		t.Run(string(tt.goal), func(t *testing.T) {
			w := WorkoutFor(tt.goal)
			assert.Equal(t, tt.name, w.Name)
			assert.Equal(t, tt.frequency, w.Frequency)
			assert.Equal(t, tt.difficulty, w.Difficulty)
			assert.NotEmpty(t, w.Description)
			assert.NotEmpty(t, w.Notes)

			require.Len(t, w.Workouts, len(tt.sessions))
			total := 0
			for i, session := range w.Workouts {
				assert.Equal(t, tt.sessions[i], session.Name)
				total += len(session.Exercises)
			}
			assert.Equal(t, tt.exercises, total)

			prev, dup := seen[w.Name]
			assert.False(t, dup, "template %q shared by %s and %s", w.Name, prev, tt.goal)
			seen[w.Name] = tt.goal
		})
	}
}

func TestWorkoutForReturnsCopy(t *testing.T) {
	w := WorkoutFor(BuildMuscle)
	w.Workouts[0].Exercises[0].Name = "Changed"
	w.Workouts[0].Name = "Changed"

	fresh := WorkoutFor(BuildMuscle)
	assert.Equal(t, "Bench Press", fresh.Workouts[0].Exercises[0].Name)
	assert.Equal(t, "Upper Body", fresh.Workouts[0].Name)
}

func TestDietForLoseWeightMale(t *testing.T) {
	d := DietFor(LoseWeight, "male", 80)

	assert.Equal(t, "Fat Loss Diet Plan", d.Name)
	assert.Equal(t, 1536, d.Calories)
	assert.Equal(t, Macros{Protein: 160, Fat: 43, Carbs: 127}, d.Macros)
}

func TestDietForBuildMuscleFemale(t *testing.T) {
	d := DietFor(BuildMuscle, "female", 60)

	assert.Equal(t, "Muscle Building Diet Plan", d.Name)
	assert.Equal(t, 1452, d.Calories)
	assert.Equal(t, Macros{Protein: 132, Fat: 40, Carbs: 141}, d.Macros)
}

func TestDietForMaintenance(t *testing.T) {
	// base 70*22 = 1540, protein 112, fat round(462/9) = 51,
	// carbs round((1540-448-459)/4) = round(158.25) = 158
	d := DietFor(Maintain, "female", 70)

	assert.Equal(t, "Maintenance Diet Plan", d.Name)
	assert.Equal(t, 1540, d.Calories)
	assert.Equal(t, Macros{Protein: 112, Fat: 51, Carbs: 158}, d.Macros)
}

func TestDietForImproveFitnessSharesMaintenanceNumbers(t *testing.T) {
	fitness := DietFor(ImproveFitness, "male", 75)
	maintain := DietFor(Maintain, "male", 75)

	assert.Equal(t, "Balanced Fitness Diet Plan", fitness.Name)
	assert.Equal(t, "Maintenance Diet Plan", maintain.Name)
	assert.Equal(t, maintain.Calories, fitness.Calories)
	assert.Equal(t, maintain.Macros, fitness.Macros)
	assert.Equal(t, maintain.Meals, fitness.Meals)
}

func TestDietGenderOnlyMaleChangesBase(t *testing.T) {
	assert.Equal(t, 1920.0, BaseCalories("male", 80))
	assert.Equal(t, 1760.0, BaseCalories("female", 80))
	assert.Equal(t, 1760.0, BaseCalories("other", 80))
	assert.Equal(t, 1760.0, BaseCalories("Male", 80))
}

func TestDietMealSharesSumToOne(t *testing.T) {
	for _, g := range Goals {
		table := dietTableFor(g)
		sum := 0.0
		for _, m := range table.meals {
			sum += m.share
		}
		assert.InDelta(t, 1.0, sum, 1e-9, g)
		assert.GreaterOrEqual(t, len(table.meals), 3, g)
		assert.LessOrEqual(t, len(table.meals), 4, g)
	}
}

func TestDietMealCaloriesMatchTotal(t *testing.T) {
	for _, g := range Goals {
		for _, weight := range []float64{45, 62.5, 80, 110} {
			d := DietFor(g, "male", weight)
			sum := 0
			for _, m := range d.Meals {
				sum += m.Calories
			}
			// each meal is rounded independently
			assert.LessOrEqual(t, int(math.Abs(float64(sum-d.Calories))), len(d.Meals), "%s %.1f", g, weight)
		}
	}
}

func TestDietCarbsAreNotClamped(t *testing.T) {
	// 1kg: calories round(22*0.8) = 18, protein 2, fat round(18*0.25/9) = 1,
	// carbs round((18-8-9)/4) = round(0.25) = 0
	d := DietFor(LoseWeight, "female", 1)
	assert.Equal(t, 0, d.Macros.Carbs)

	// calories -192, protein -20, fat round(-5.33) = -5,
	// carbs round((-192+80+45)/4) = round(-16.75) = -17
	d = DietFor(LoseWeight, "male", -10)
	assert.Equal(t, -17, d.Macros.Carbs)
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 3, round(2.5))
	assert.Equal(t, -2, round(-2.5))
	assert.Equal(t, -3, round(-2.6))
	assert.Equal(t, 127, round(127.25))
}

func TestDeriveUnknownGoalUsesMaintenance(t *testing.T) {
	rec := Derive("unknown", "male", 80)
	maintain := Derive("maintain", "male", 80)

	assert.Equal(t, Maintain, rec.BodyGoal)
	assert.Equal(t, maintain.Workout, rec.Workout)
	assert.Equal(t, "Maintenance Program", rec.Workout.Name)

	assert.Equal(t, maintain.Diet.Calories, rec.Diet.Calories)
	assert.Equal(t, maintain.Diet.Macros, rec.Diet.Macros)
	assert.Equal(t, maintain.Diet.Meals, rec.Diet.Meals)

	// only an exact maintain goal is presented as maintenance
	assert.Equal(t, "Balanced Fitness Diet Plan", rec.Diet.Name)
	assert.Equal(t, "improve your overall fitness", rec.Headline)
	assert.Equal(t, "Maintenance Diet Plan", maintain.Diet.Name)
	assert.Equal(t, "maintain your current physique", maintain.Headline)

	assert.Equal(t, Derive("improve_fitness", "male", 80).Diet, Derive("", "male", 80).Diet)
}

func TestDerive(t *testing.T) {
	rec := Derive("lose_weight", "male", 80)

	assert.Equal(t, LoseWeight, rec.BodyGoal)
	assert.Equal(t, "lose weight", rec.Headline)
	assert.Equal(t, "Fat Loss Program", rec.Workout.Name)
	assert.Equal(t, 1536, rec.Diet.Calories)
	require.Len(t, rec.Diet.Meals, 4)
	assert.Equal(t, 384, rec.Diet.Meals[0].Calories)
	assert.Equal(t, 538, rec.Diet.Meals[1].Calories)
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		goal string
		want PlanSummary
	}{
		{"lose_weight", PlanSummary{
			WorkoutPlanName:        "Fat Loss Program",
			WorkoutPlanDescription: "A balanced program focused on calorie burning and muscle maintenance.",
			WorkoutDifficulty:      "intermediate",
			DietPlanName:           "Calorie Deficit Diet Plan",
		}},
		{"build_muscle", PlanSummary{
			WorkoutPlanName:        "Muscle Building Program",
			WorkoutPlanDescription: "Progressive overload training split to maximize muscle growth.",
			WorkoutDifficulty:      "advanced",
			DietPlanName:           "High Protein Diet Plan",
		}},
		{"improve_fitness", PlanSummary{
			WorkoutPlanName:        "Overall Fitness Program",
			WorkoutPlanDescription: "Balanced approach to improve strength, endurance, and mobility.",
			WorkoutDifficulty:      "beginner",
			DietPlanName:           "Balanced Nutrition Plan",
		}},
		{"maintain", PlanSummary{
			WorkoutPlanName:        "Maintenance Program",
			WorkoutPlanDescription: "Balanced routine to maintain current physique and fitness levels.",
			WorkoutDifficulty:      "beginner",
			DietPlanName:           "Maintenance Diet Plan",
		}},
		{"something_else", PlanSummary{
			WorkoutPlanName:        "Maintenance Program",
			WorkoutPlanDescription: "Balanced routine to maintain current physique and fitness levels.",
			WorkoutDifficulty:      "beginner",
			DietPlanName:           "Maintenance Diet Plan",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.goal, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.goal))
		})
	}
}

func TestHeadline(t *testing.T) {
	assert.Equal(t, "build muscle", BuildMuscle.Headline())
	assert.Equal(t, "maintain your current physique", Maintain.Headline())
	assert.Equal(t, "improve your overall fitness", ImproveFitness.Headline())
	assert.Equal(t, "improve your overall fitness", BodyGoal("x").Headline())
}
