package recommendation

// BodyGoal is the fitness objective a profile is created with.
type BodyGoal string

const (
	LoseWeight     BodyGoal = "lose_weight"
	BuildMuscle    BodyGoal = "build_muscle"
	Maintain       BodyGoal = "maintain"
	ImproveFitness BodyGoal = "improve_fitness"
)

// Goals lists every supported body goal.
var Goals = []BodyGoal{LoseWeight, BuildMuscle, Maintain, ImproveFitness}

// ParseBodyGoal reports whether s names one of the supported goals.
func ParseBodyGoal(s string) (BodyGoal, bool) {
	switch g := BodyGoal(s); g {
	case LoseWeight, BuildMuscle, Maintain, ImproveFitness:
		return g, true
	default:
		return "", false
	}
}

// Normalize maps s to a supported goal. Unknown values fall back to Maintain,
// which is how profiles with a free-form goal have always been served.
func Normalize(s string) BodyGoal {
	if g, ok := ParseBodyGoal(s); ok {
		return g
	}
	return Maintain
}

func (g BodyGoal) String() string {
	return string(g)
}

// Headline completes the sentence "... to help you <headline>." Unknown goals
// read as improve_fitness.
func (g BodyGoal) Headline() string {
	switch g {
	case LoseWeight:
		return "lose weight"
	case BuildMuscle:
		return "build muscle"
	case Maintain:
		return "maintain your current physique"
	default:
		return "improve your overall fitness"
	}
}
