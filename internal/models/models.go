// Package models holds the gorm-mapped records persisted by the API.
package models

// All lists every persisted model in dependency order for auto-migration.
func All() []interface{} {
	return []interface{}{
		&User{},
		&WorkoutPlan{},
		&Exercise{},
		&DietPlan{},
		&Meal{},
	}
}
