package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkoutPlan struct {
	ID          uuid.UUID  `gorm:"type:varchar(36);primarykey" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	Description *string    `gorm:"type:text" json:"description"`
	Duration    int        `gorm:"not null" json:"duration"`
	Difficulty  string     `gorm:"not null" json:"difficulty"`
	BodyFocus   string     `gorm:"not null" json:"bodyFocus"`
	UserID      *uuid.UUID `gorm:"type:varchar(36);index" json:"userId"`
	Exercises   []Exercise `gorm:"foreignKey:WorkoutPlanID;constraint:OnDelete:CASCADE" json:"exercises"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (p *WorkoutPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Exercise belongs to exactly one workout plan. RestTime is in seconds.
type Exercise struct {
	ID            uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	WorkoutPlanID uuid.UUID `gorm:"type:varchar(36);not null;index" json:"workoutPlanId"`
	Name          string    `gorm:"not null" json:"name"`
	Description   *string   `gorm:"type:text" json:"description"`
	Sets          int       `gorm:"not null" json:"sets"`
	Reps          int       `gorm:"not null" json:"reps"`
	RestTime      int       `gorm:"not null" json:"restTime"`
	BodyPart      string    `gorm:"not null" json:"bodyPart"`
}

func (e *Exercise) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
