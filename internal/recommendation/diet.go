package recommendation

import "math"

const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// Macros holds daily macronutrient targets in grams.
type Macros struct {
	Protein int `json:"protein"`
	Fat     int `json:"fat"`
	Carbs   int `json:"carbs"`
}

// Meal is one meal of a diet template with its share of the daily calories.
type Meal struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Calories    int      `json:"calories"`
	PrepTime    string   `json:"prepTime"`
	Ingredients []string `json:"ingredients"`
}

// DietTemplate is a diet plan computed for a specific body weight and gender.
type DietTemplate struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Calories    int      `json:"calories"`
	Macros      Macros   `json:"macros"`
	Meals       []Meal   `json:"meals"`
	Tips        []string `json:"tips"`
}

// dietFactors are the per-goal multipliers applied to the base calories and weight.
type dietFactors struct {
	calories    float64 // multiplier on the base estimate
	proteinPerK float64 // grams of protein per kg of bodyweight
	fatShare    float64 // share of calories from fat
}

// staticMeal is a static meal whose calories are a fixed share of the daily total.
type staticMeal struct {
	name        string
	description string
	share       float64
	prepTime    string
	ingredients []string
}

type dietTable struct {
	name        string
	description string
	factors     dietFactors
	meals       []staticMeal
	tips        []string
}

// BaseCalories is the crude weight-based daily energy estimate every diet starts from.
func BaseCalories(gender string, weight float64) float64 {
	if gender == "male" {
		return weight * 24
	}
	return weight * 22
}

// DietFor computes the diet template for goal, gender and weight in kg. Unknown
// goals get the maintenance numbers under the improve_fitness name.
func DietFor(goal BodyGoal, gender string, weight float64) DietTemplate {
	table := dietTableFor(goal)
	f := table.factors

	calories := round(BaseCalories(gender, weight) * f.calories)
	protein := round(weight * f.proteinPerK)
	fat := round(float64(calories) * f.fatShare / kcalPerGramFat)
	// Carbs take whatever is left; very low weights can drive this negative.
	carbs := round(float64(calories-protein*kcalPerGramProtein-fat*kcalPerGramFat) / kcalPerGramCarbs)

	meals := make([]Meal, len(table.meals))
	for i, m := range table.meals {
		meals[i] = Meal{
			Name:        m.name,
			Description: m.description,
			Calories:    round(float64(calories) * m.share),
			PrepTime:    m.prepTime,
			Ingredients: append([]string(nil), m.ingredients...),
		}
	}

	return DietTemplate{
		Name:        table.name,
		Description: table.description,
		Calories:    calories,
		Macros:      Macros{Protein: protein, Fat: fat, Carbs: carbs},
		Meals:       meals,
		Tips:        append([]string(nil), table.tips...),
	}
}

func dietTableFor(goal BodyGoal) dietTable {
	switch goal {
	case LoseWeight:
		return fatLossDiet
	case BuildMuscle:
		return muscleBuildingDiet
	case Maintain:
		return maintenanceDiet
	default:
		table := maintenanceDiet
		table.name = "Balanced Fitness Diet Plan"
		return table
	}
}

// round rounds half up, so -2.5 becomes -2.
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

var fatLossDiet = dietTable{
	name:        "Fat Loss Diet Plan",
	description: "Calorie-controlled diet with high protein to preserve muscle while losing fat.",
	factors:     dietFactors{calories: 0.8, proteinPerK: 2.0, fatShare: 0.25},
	meals: []staticMeal{
		{
			name:        "Protein-Packed Breakfast",
			description: "Greek yogurt with berries and a sprinkle of nuts",
			share:       0.25,
			prepTime:    "5 minutes",
			ingredients: []string{"1 cup Greek yogurt", "1/2 cup mixed berries", "1 tablespoon honey", "1 tablespoon mixed nuts"},
		},
		{
			name:        "Lean Lunch",
			description: "Grilled chicken salad with mixed greens",
			share:       0.35,
			prepTime:    "15 minutes",
			ingredients: []string{"120g grilled chicken breast", "2 cups mixed salad greens", "1/2 cucumber, sliced", "1 tablespoon olive oil", "Lemon juice to taste"},
		},
		{
			name:        "Balanced Dinner",
			description: "Baked fish with steamed vegetables",
			share:       0.30,
			prepTime:    "20 minutes",
			ingredients: []string{"150g white fish fillet", "1 cup broccoli", "1 cup cauliflower", "1 tablespoon olive oil", "Herbs and spices to taste"},
		},
		{
			name:        "Smart Snack",
			description: "Protein shake with a piece of fruit",
			share:       0.10,
			prepTime:    "2 minutes",
			ingredients: []string{"1 scoop protein powder", "Water or almond milk", "1 medium apple or banana"},
		},
	},
	tips: []string{
		"Stay hydrated by drinking at least 2-3 liters of water daily",
		"Avoid sugary drinks and processed foods",
		"Eat slowly and mindfully to help with portion control",
		"Prepare meals in advance when possible to avoid unhealthy choices",
	},
}

var muscleBuildingDiet = dietTable{
	name:        "Muscle Building Diet Plan",
	description: "Higher calorie diet with adequate protein to support muscle growth.",
	factors:     dietFactors{calories: 1.1, proteinPerK: 2.2, fatShare: 0.25},
	meals: []staticMeal{
		{
			name:        "Protein-Rich Breakfast",
			description: "Scrambled eggs with toast and avocado",
			share:       0.25,
			prepTime:    "10 minutes",
			ingredients: []string{"3-4 whole eggs", "2 slices whole grain bread", "1/2 avocado", "Salt and pepper to taste"},
		},
		{
			name:        "Protein & Carb Lunch",
			description: "Chicken and rice bowl with vegetables",
			share:       0.30,
			prepTime:    "15 minutes (faster if meal prepped)",
			ingredients: []string{"150g chicken breast", "1 cup cooked brown rice", "1 cup mixed vegetables", "1 tablespoon olive oil", "Seasonings of choice"},
		},
		{
			name:        "Post-Workout Shake",
			description: "Protein shake with banana and peanut butter",
			share:       0.15,
			prepTime:    "3 minutes",
			ingredients: []string{"1-2 scoops protein powder", "1 banana", "1 tablespoon peanut butter", "Milk or water", "Ice cubes (optional)"},
		},
		{
			name:        "Hearty Dinner",
			description: "Lean steak with sweet potato and greens",
			share:       0.30,
			prepTime:    "20 minutes",
			ingredients: []string{"150-200g lean steak", "1 medium sweet potato", "2 cups leafy greens", "1 tablespoon olive oil", "Herbs and spices to taste"},
		},
	},
	tips: []string{
		"Distribute protein intake evenly throughout the day",
		"Consume a meal or shake within 1-2 hours after workout",
		"Focus on quality whole foods rather than supplements",
		"Ensure adequate sleep (7-9 hours) to optimize recovery and growth",
	},
}

var maintenanceDiet = dietTable{
	name:        "Maintenance Diet Plan",
	description: "Well-balanced nutrition to support overall health and activity levels.",
	factors:     dietFactors{calories: 1.0, proteinPerK: 1.6, fatShare: 0.30},
	meals: []staticMeal{
		{
			name:        "Balanced Breakfast",
			description: "Oatmeal with fruit, nuts, and a boiled egg",
			share:       0.25,
			prepTime:    "10 minutes",
			ingredients: []string{"1/2 cup oats", "1 cup milk of choice", "1 tablespoon honey", "1/4 cup mixed berries", "1 tablespoon mixed nuts", "1 boiled egg"},
		},
		{
			name:        "Wholesome Lunch",
			description: "Quinoa bowl with vegetables and lean protein",
			share:       0.35,
			prepTime:    "15 minutes",
			ingredients: []string{"1/2 cup cooked quinoa", "100g chicken/tofu/fish", "1 cup roasted vegetables", "1/4 avocado", "1 tablespoon olive oil", "Lemon juice and herbs to taste"},
		},
		{
			name:        "Balanced Dinner",
			description: "Stir-fry with lean protein and vegetables",
			share:       0.30,
			prepTime:    "15 minutes",
			ingredients: []string{"100g lean meat or tofu", "2 cups mixed vegetables", "1/2 cup brown rice or whole grain noodles", "1 tablespoon olive oil", "Stir-fry sauce (low sodium)"},
		},
		{
			name:        "Healthy Snack",
			description: "Greek yogurt with honey or a handful of nuts",
			share:       0.10,
			prepTime:    "2 minutes",
			ingredients: []string{"1/2 cup Greek yogurt", "1 teaspoon honey", "OR 1/4 cup mixed nuts"},
		},
	},
	tips: []string{
		"Focus on whole, minimally processed foods",
		"Maintain consistent meal timing when possible",
		"Stay hydrated throughout the day",
		"Listen to your body's hunger and fullness cues",
	},
}
