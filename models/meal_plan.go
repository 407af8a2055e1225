package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MealItem is one dish inside a meal slot.
type MealItem struct {
	Name            string   `json:"name"`
	Calories        int      `json:"calories"`
	Protein         float64  `json:"protein"`
	Carbs           float64  `json:"carbs"`
	Fat             float64  `json:"fat"`
	Fiber           *float64 `json:"fiber,omitempty"`
	Description     string   `json:"description,omitempty"`
	PreparationTime *int     `json:"preparation_time,omitempty"`
	Ingredients     []string `json:"ingredients"`
	Instructions    string   `json:"instructions,omitempty"`
}

// DayMealPlan groups the four fixed slots of one calendar day plus the day's
// aggregated totals.
type DayMealPlan struct {
	Breakfast     []MealItem `json:"breakfast"`
	Lunch         []MealItem `json:"lunch"`
	Dinner        []MealItem `json:"dinner"`
	Snacks        []MealItem `json:"snacks"`
	TotalCalories int        `json:"total_calories"`
	TotalProtein  float64    `json:"total_protein"`
	TotalCarbs    float64    `json:"total_carbs"`
	TotalFat      float64    `json:"total_fat"`
}

// WeekPlanData is the seven-day payload stored in the Days JSON column,
// keyed Monday through Sunday.
type WeekPlanData struct {
	Monday    DayMealPlan `json:"monday"`
	Tuesday   DayMealPlan `json:"tuesday"`
	Wednesday DayMealPlan `json:"wednesday"`
	Thursday  DayMealPlan `json:"thursday"`
	Friday    DayMealPlan `json:"friday"`
	Saturday  DayMealPlan `json:"saturday"`
	Sunday    DayMealPlan `json:"sunday"`
}

// Day returns the plan for a weekday (time.Monday..time.Sunday).
func (w *WeekPlanData) Day(d time.Weekday) DayMealPlan {
	switch d {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	default:
		return w.Sunday
	}
}

// WeeklyMealPlan is one generated plan. Plans are immutable once stored;
// regenerating inserts a new row.
type WeeklyMealPlan struct {
	gorm.Model
	PlanID        uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null" json:"plan_id"`
	UserID        uint           `gorm:"index;not null" json:"user_id"`
	WeekStartDate time.Time      `gorm:"index;not null" json:"week_start_date"`
	Days          datatypes.JSON `gorm:"not null" json:"days"`
}
