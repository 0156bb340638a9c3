package recommendation

// Exercise is a single row of a workout block. Sets is zero for
// instruction-only rows such as "Repeat circuit 2-3 times".
type Exercise struct {
	Name string `json:"name"`
	Sets int    `json:"sets,omitempty"`
	Reps string `json:"reps"`
	Rest string `json:"rest"`
}

// Workout is one session of a workout template.
type Workout struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Exercises   []Exercise `json:"exercises"`
}

// WorkoutTemplate is the static workout program recommended for a goal.
type WorkoutTemplate struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Difficulty  string    `json:"difficulty"`
	Frequency   string    `json:"frequency"`
	Notes       string    `json:"notes"`
	Workouts    []Workout `json:"workouts"`
}

// WorkoutFor returns a copy of the workout template for goal.
func WorkoutFor(goal BodyGoal) WorkoutTemplate {
	switch goal {
	case LoseWeight:
		return fatLossProgram.clone()
	case BuildMuscle:
		return muscleBuildingProgram.clone()
	case ImproveFitness:
		return overallFitnessProgram.clone()
	case Maintain:
		return maintenanceProgram.clone()
	default:
		return maintenanceProgram.clone()
	}
}

func (t WorkoutTemplate) clone() WorkoutTemplate {
	out := t
	out.Workouts = make([]Workout, len(t.Workouts))
	for i, w := range t.Workouts {
		out.Workouts[i] = w
		out.Workouts[i].Exercises = append([]Exercise(nil), w.Exercises...)
	}
	return out
}

var fatLossProgram = WorkoutTemplate{
	Name:        "Fat Loss Program",
	Description: "A balanced program focused on calorie burning and muscle maintenance.",
	Difficulty:  "intermediate",
	Frequency:   "4-5 days per week",
	Notes:       "Focus on maintaining a calorie deficit through diet while preserving muscle mass with strength training.",
	Workouts: []Workout{
		{
			Name:        "Cardio + HIIT",
			Description: "High-intensity interval training combined with moderate cardio",
			Exercises: []Exercise{
				{Name: "Jumping Jacks", Sets: 3, Reps: "30 seconds", Rest: "15 seconds"},
				{Name: "Mountain Climbers", Sets: 3, Reps: "30 seconds", Rest: "15 seconds"},
				{Name: "Burpees", Sets: 3, Reps: "30 seconds", Rest: "15 seconds"},
				{Name: "Jogging/Running", Sets: 1, Reps: "20 minutes", Rest: "N/A"},
			},
		},
		{
			Name:        "Full Body Strength",
			Description: "Compound movements to maintain muscle while burning calories",
			Exercises: []Exercise{
				{Name: "Squats", Sets: 3, Reps: "15", Rest: "60 seconds"},
				{Name: "Push-ups", Sets: 3, Reps: "10-15", Rest: "60 seconds"},
				{Name: "Dumbbell Rows", Sets: 3, Reps: "12 per arm", Rest: "60 seconds"},
				{Name: "Lunges", Sets: 3, Reps: "10 per leg", Rest: "60 seconds"},
			},
		},
	},
}

var muscleBuildingProgram = WorkoutTemplate{
	Name:        "Muscle Building Program",
	Description: "Progressive overload training split to maximize muscle growth.",
	Difficulty:  "advanced",
	Frequency:   "4 days per week (2 upper, 2 lower)",
	Notes:       "Maintain a moderate calorie surplus and ensure adequate protein intake (1.6-2g per kg of bodyweight).",
	Workouts: []Workout{
		{
			Name:        "Upper Body",
			Description: "Focus on chest, back, shoulders and arms",
			Exercises: []Exercise{
				{Name: "Bench Press", Sets: 4, Reps: "8-10", Rest: "90 seconds"},
				{Name: "Rows", Sets: 4, Reps: "8-10", Rest: "90 seconds"},
				{Name: "Overhead Press", Sets: 3, Reps: "8-10", Rest: "90 seconds"},
				{Name: "Bicep Curls", Sets: 3, Reps: "10-12", Rest: "60 seconds"},
				{Name: "Tricep Extensions", Sets: 3, Reps: "10-12", Rest: "60 seconds"},
			},
		},
		{
			Name:        "Lower Body",
			Description: "Focus on quadriceps, hamstrings, glutes and calves",
			Exercises: []Exercise{
				{Name: "Squats", Sets: 4, Reps: "8-10", Rest: "120 seconds"},
				{Name: "Romanian Deadlifts", Sets: 4, Reps: "8-10", Rest: "120 seconds"},
				{Name: "Leg Press", Sets: 3, Reps: "10-12", Rest: "90 seconds"},
				{Name: "Calf Raises", Sets: 4, Reps: "15-20", Rest: "60 seconds"},
			},
		},
	},
}

var overallFitnessProgram = WorkoutTemplate{
	Name:        "Overall Fitness Program",
	Description: "Balanced approach to improve strength, endurance, and mobility.",
	Difficulty:  "beginner",
	Frequency:   "3-4 days per week",
	Notes:       "Balance between strength, cardio, and recovery. Focus on proper form and gradual progression.",
	Workouts: []Workout{
		{
			Name:        "Strength Circuit",
			Description: "Full-body circuit to build functional strength",
			Exercises: []Exercise{
				{Name: "Goblet Squats", Sets: 3, Reps: "12", Rest: "30 seconds"},
				{Name: "Push-ups", Sets: 3, Reps: "10-15", Rest: "30 seconds"},
				{Name: "Dumbbell Rows", Sets: 3, Reps: "12 per side", Rest: "30 seconds"},
				{Name: "Plank", Sets: 3, Reps: "30-45 seconds", Rest: "30 seconds"},
				{Name: "Rest", Sets: 1, Reps: "2 minutes", Rest: "N/A"},
				{Name: "Repeat circuit 2-3 times"},
			},
		},
		{
			Name:        "Cardio & Mobility",
			Description: "Improve cardiovascular fitness and joint mobility",
			Exercises: []Exercise{
				{Name: "Light Jogging/Cycling", Sets: 1, Reps: "15-20 minutes", Rest: "N/A"},
				{Name: "Dynamic Stretching", Sets: 1, Reps: "5-10 minutes", Rest: "N/A"},
				{Name: "Yoga Flow", Sets: 1, Reps: "15-20 minutes", Rest: "N/A"},
			},
		},
	},
}

var maintenanceProgram = WorkoutTemplate{
	Name:        "Maintenance Program",
	Description: "Balanced routine to maintain current physique and fitness levels.",
	Difficulty:  "beginner",
	Frequency:   "3 days per week",
	Notes:       "Focus on consistency rather than intensity. Maintain current calorie intake and activity levels.",
	Workouts: []Workout{
		{
			Name:        "Full Body Workout",
			Description: "Comprehensive workout targeting all major muscle groups",
			Exercises: []Exercise{
				{Name: "Squats", Sets: 3, Reps: "10-12", Rest: "60 seconds"},
				{Name: "Push-ups/Bench Press", Sets: 3, Reps: "10-12", Rest: "60 seconds"},
				{Name: "Rows", Sets: 3, Reps: "10-12", Rest: "60 seconds"},
				{Name: "Lunges", Sets: 2, Reps: "10 per leg", Rest: "60 seconds"},
				{Name: "Planks", Sets: 2, Reps: "45 seconds", Rest: "45 seconds"},
			},
		},
		{
			Name:        "Cardio Session",
			Description: "Moderate intensity cardio to maintain heart health",
			Exercises: []Exercise{
				{Name: "Brisk Walking/Jogging", Sets: 1, Reps: "30 minutes", Rest: "N/A"},
				{Name: "Or Cycling/Swimming", Sets: 1, Reps: "20-25 minutes", Rest: "N/A"},
			},
		},
	},
}
