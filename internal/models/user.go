package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a submitted fitness profile. BodyGoal keeps the raw submitted value.
type User struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Height    float64   `gorm:"not null" json:"height"`
	Weight    float64   `gorm:"not null" json:"weight"`
	Age       int       `gorm:"not null" json:"age"`
	Gender    string    `gorm:"not null" json:"gender"`
	BodyGoal  string    `gorm:"not null" json:"bodyGoal"`
	Timeframe int       `gorm:"not null" json:"timeframe"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
