package services

import (
	"time"

	"github.com/ICE-TOOLS/icefit/models"
	"github.com/ICE-TOOLS/icefit/utils"
)

// ProfileUpdate is a partial profile mutation. Every field is optional; nil
// means "leave as is". This replaces the loose key/value map the API used to
// accept, so the recompute decision below is checked at compile time against
// named fields instead of strings.
type ProfileUpdate struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`

	WeightKg      *float64              `json:"weight_kg"`
	HeightCm      *float64              `json:"height_cm"`
	Age           *int                  `json:"age"`
	Gender        *models.Gender        `json:"gender" binding:"omitempty,oneof=male female other"`
	ActivityLevel *models.ActivityLevel `json:"activity_level" binding:"omitempty,oneof=sedentary light moderate active very_active"`
	Goal          *models.Goal          `json:"goal" binding:"omitempty,oneof=lose_weight gain_weight maintain_weight build_muscle improve_endurance"`

	TargetWeightKg *float64        `json:"target_weight_kg"`
	TargetDate     *time.Time      `json:"target_date"`
	GymType        *models.GymType `json:"gym_type" binding:"omitempty,oneof=without_gym home_garage small_gym medium_gym big_gym"`

	DayStreak           *int      `json:"day_streak"`
	MedicalConditions   *[]string `json:"medical_conditions"`
	Allergies           *[]string `json:"allergies"`
	Medications         *[]string `json:"medications"`
	DietaryRestrictions *[]string `json:"dietary_restrictions"`
	DailyCalorieGoal    *int      `json:"daily_calorie_goal"`
}

// TouchesMetrics reports whether the update names a metric-affecting field.
// The check is presence, not value change: setting weight_kg to its current
// value still recomputes. Recomputation is idempotent so this stays correct,
// and the behavior is kept observable on purpose.
func (u *ProfileUpdate) TouchesMetrics() bool {
	return u.WeightKg != nil ||
		u.HeightCm != nil ||
		u.Age != nil ||
		u.Gender != nil ||
		u.ActivityLevel != nil ||
		u.Goal != nil
}

// ReconcileProfile merges a partial update into a stored profile and
// re-derives the calculated fields exactly when a trigger field is present.
// UpdatedAt is always refreshed. The returned record is ready to persist; no
// profile is ever written with calculated fields computed from stale inputs.
func ReconcileProfile(user models.User, upd ProfileUpdate, now time.Time) (models.User, error) {
	if upd.FirstName != nil {
		user.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		user.LastName = *upd.LastName
	}
	if upd.WeightKg != nil {
		user.WeightKg = *upd.WeightKg
	}
	if upd.HeightCm != nil {
		user.HeightCm = *upd.HeightCm
	}
	if upd.Age != nil {
		user.Age = *upd.Age
	}
	if upd.Gender != nil {
		user.Gender = *upd.Gender
	}
	if upd.ActivityLevel != nil {
		user.ActivityLevel = *upd.ActivityLevel
	}
	if upd.Goal != nil {
		user.Goal = *upd.Goal
	}
	if upd.TargetWeightKg != nil {
		user.TargetWeightKg = upd.TargetWeightKg
	}
	if upd.TargetDate != nil {
		user.TargetDate = upd.TargetDate
	}
	if upd.GymType != nil {
		user.GymType = *upd.GymType
	}
	if upd.DayStreak != nil {
		user.DayStreak = *upd.DayStreak
	}
	if upd.MedicalConditions != nil {
		user.MedicalConditions = *upd.MedicalConditions
	}
	if upd.Allergies != nil {
		user.Allergies = *upd.Allergies
	}
	if upd.Medications != nil {
		user.Medications = *upd.Medications
	}
	if upd.DietaryRestrictions != nil {
		user.DietaryRestrictions = *upd.DietaryRestrictions
	}
	if upd.DailyCalorieGoal != nil {
		user.DailyCalorieGoal = upd.DailyCalorieGoal
	}

	if upd.TouchesMetrics() {
		metrics, err := utils.CalculateAllMetrics(utils.MetricInputs{
			WeightKg:       user.WeightKg,
			HeightCm:       user.HeightCm,
			Age:            user.Age,
			Gender:         user.Gender,
			ActivityLevel:  user.ActivityLevel,
			Goal:           user.Goal,
			TargetWeightKg: user.TargetWeightKg,
		})
		if err != nil {
			return models.User{}, err
		}
		applyMetrics(&user, metrics)
	}

	user.UpdatedAt = now
	return user, nil
}

func applyMetrics(user *models.User, m utils.Metrics) {
	user.BMI = m.BMI
	user.BMIStatus = m.BMIStatus
	user.RecommendedWeightChange = m.RecommendedWeightChange
	user.RecommendedDailyCalories = m.RecommendedDailyCalories
	user.BMR = m.BMR
	user.TDEE = m.TDEE
}
