package models

import (
	"time"

	"gorm.io/gorm"
)

// DayProgress tracks slot completion for one day of a meal plan.
// DayFullyCompleted is derived: true iff all four slot flags are true.
// CompletedAt is written exactly once, on the transition to fully completed.
type DayProgress struct {
	gorm.Model
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	MealPlanID uint      `gorm:"index;not null" json:"meal_plan_id"`
	Date       time.Time `gorm:"index;not null" json:"date"`

	BreakfastCompleted bool `json:"breakfast_completed"`
	LunchCompleted     bool `json:"lunch_completed"`
	DinnerCompleted    bool `json:"dinner_completed"`
	SnacksCompleted    bool `json:"snacks_completed"`

	DayFullyCompleted bool       `json:"day_fully_completed"`
	CompletedAt       *time.Time `json:"completed_at"`
}
