package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// User is the canonical profile record. The six calculated fields are always
// derived from the current inputs by the metrics engine; they are never
// accepted from a client.
type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`

	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Gender      Gender    `gorm:"type:varchar(16);not null" json:"gender"`
	Age         int       `json:"age"`

	HeightCm float64 `gorm:"not null" json:"height_cm"`
	WeightKg float64 `gorm:"not null" json:"weight_kg"`

	Goal           Goal       `gorm:"type:varchar(32);not null" json:"goal"`
	TargetWeightKg *float64   `json:"target_weight_kg"`
	TargetDate     *time.Time `json:"target_date"`

	ActivityLevel ActivityLevel `gorm:"type:varchar(16);not null" json:"activity_level"`
	GymType       GymType       `gorm:"type:varchar(16)" json:"gym_type"`

	DayStreak int `gorm:"default:0" json:"day_streak"`

	MedicalConditions   pq.StringArray `gorm:"type:text[]" json:"medical_conditions"`
	Allergies           pq.StringArray `gorm:"type:text[]" json:"allergies"`
	Medications         pq.StringArray `gorm:"type:text[]" json:"medications"`
	DietaryRestrictions pq.StringArray `gorm:"type:text[]" json:"dietary_restrictions"`
	DailyCalorieGoal    *int           `json:"daily_calorie_goal"`

	// Calculated fields, consistent with the inputs above at the moment of
	// the last write.
	BMI                      float64   `json:"bmi"`
	BMIStatus                BMIStatus `gorm:"type:varchar(16)" json:"bmi_status"`
	RecommendedWeightChange  float64   `json:"recommended_weight_change"`
	RecommendedDailyCalories int       `json:"recommended_daily_calories"`
	BMR                      float64   `json:"bmr"`
	TDEE                     float64   `json:"tdee"`

	LastLogin *time.Time `json:"last_login"`
	IsActive  bool       `gorm:"default:true" json:"is_active"`
}
