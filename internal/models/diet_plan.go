package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DietPlan goals are optional daily targets; calories in kcal, the rest in grams.
type DietPlan struct {
	ID          uuid.UUID  `gorm:"type:varchar(36);primarykey" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	Description *string    `gorm:"type:text" json:"description"`
	CalorieGoal *int       `json:"calorieGoal"`
	ProteinGoal *int       `json:"proteinGoal"`
	CarbGoal    *int       `json:"carbGoal"`
	FatGoal     *int       `json:"fatGoal"`
	UserID      *uuid.UUID `gorm:"type:varchar(36);index" json:"userId"`
	Meals       []Meal     `gorm:"foreignKey:DietPlanID;constraint:OnDelete:CASCADE" json:"meals"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (p *DietPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type Meal struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	DietPlanID  uuid.UUID `gorm:"type:varchar(36);not null;index" json:"dietPlanId"`
	Name        string    `gorm:"not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	Calories    int       `gorm:"not null" json:"calories"`
	Protein     int       `gorm:"not null" json:"protein"`
	Carbs       int       `gorm:"not null" json:"carbs"`
	Fat         int       `gorm:"not null" json:"fat"`
	PrepTime    int       `gorm:"not null" json:"prepTime"`
	Recipe      *string   `gorm:"type:text" json:"recipe"`
}

func (m *Meal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
