package utils

import (
	"errors"
	"math"

	"github.com/ICE-TOOLS/icefit/models"
)

// ErrInvalidInput flags a primitive that should have been rejected by request
// validation (e.g. a non-positive height). The engine fails loudly instead of
// producing NaN.
var ErrInvalidInput = errors.New("invalid metric input")

// Activity multipliers for TDEE. Unknown levels fall back to sedentary.
var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

// MetricInputs are the profile fields the engine derives from.
type MetricInputs struct {
	WeightKg       float64
	HeightCm       float64
	Age            int
	Gender         models.Gender
	ActivityLevel  models.ActivityLevel
	Goal           models.Goal
	TargetWeightKg *float64
}

// Metrics is the full derived set stored on the profile.
type Metrics struct {
	BMI                      float64
	BMIStatus                models.BMIStatus
	RecommendedWeightChange  float64
	RecommendedDailyCalories int
	BMR                      float64
	TDEE                     float64
}

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(weightKg, heightCm float64) (float64, error) {
	if heightCm <= 0 {
		return 0, ErrInvalidInput
	}
	h := heightCm / 100.0
	return round2(weightKg / (h * h)), nil
}

// BMIStatusFor buckets a BMI value. Boundary values belong to the upper
// bracket (18.5 is normal, 25 is overweight, 30 is obese).
func BMIStatusFor(bmi float64) models.BMIStatus {
	switch {
	case bmi < 18.5:
		return models.BMIUnderweight
	case bmi < 25:
		return models.BMINormal
	case bmi < 30:
		return models.BMIOverweight
	default:
		return models.BMIObese
	}
}

// RecommendedWeight returns the weight a user should move toward given their
// BMI bracket: BMI 20 when underweight, BMI 24 when overweight or obese.
// needed is false for the normal bracket, where no change is called for.
func RecommendedWeight(heightCm float64, status models.BMIStatus) (kg float64, needed bool) {
	h := heightCm / 100.0
	switch status {
	case models.BMIUnderweight:
		return round2(20 * h * h), true
	case models.BMINormal:
		return 0, false
	default:
		return round2(24 * h * h), true
	}
}

// CalculateBMR uses the Mifflin-St Jeor equation. Non-male genders all use
// the female constant; this mirrors the product's documented behavior and is
// deliberately not a three-way branch.
func CalculateBMR(weightKg, heightCm float64, age int, gender models.Gender) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == models.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return round2(bmr)
}

// CalculateTDEE scales BMR by the activity multiplier.
func CalculateTDEE(bmr float64, level models.ActivityLevel) float64 {
	m, ok := activityMultipliers[level]
	if !ok {
		m = activityMultipliers[models.ActivitySedentary]
	}
	return round2(bmr * m)
}

// CalorieGoal derives the daily calorie target from TDEE and the fitness
// goal. Weight loss uses a 750 kcal deficit when more than 10 kg separate
// current and target weight, 500 otherwise; gaining and muscle building add
// a 400 kcal surplus. The result is truncated toward zero, not rounded.
func CalorieGoal(tdee float64, goal models.Goal, targetWeightKg, currentWeightKg float64) int {
	switch goal {
	case models.GoalLoseWeight:
		if currentWeightKg-targetWeightKg > 10 {
			return int(tdee - 750)
		}
		return int(tdee - 500)
	case models.GoalGainWeight, models.GoalBuildMuscle:
		return int(tdee + 400)
	default:
		return int(tdee)
	}
}

// CalculateAllMetrics composes the engine in order: bmi, status, recommended
// weight, weight change, bmr, tdee, calorie goal. When no explicit target
// weight exists the current weight stands in as its own target, which pushes
// the lose/gain branches toward maintenance. A stored weight change of 0
// means "no change needed" for the normal bracket; callers wanting the
// unambiguous form should use RecommendedWeight directly.
func CalculateAllMetrics(in MetricInputs) (Metrics, error) {
	bmi, err := CalculateBMI(in.WeightKg, in.HeightCm)
	if err != nil {
		return Metrics{}, err
	}
	status := BMIStatusFor(bmi)

	var change float64
	if rec, needed := RecommendedWeight(in.HeightCm, status); needed {
		change = round2(rec - in.WeightKg)
	}

	bmr := CalculateBMR(in.WeightKg, in.HeightCm, in.Age, in.Gender)
	tdee := CalculateTDEE(bmr, in.ActivityLevel)

	target := in.WeightKg
	if in.TargetWeightKg != nil {
		target = *in.TargetWeightKg
	}
	calories := CalorieGoal(tdee, in.Goal, target, in.WeightKg)

	return Metrics{
		BMI:                      bmi,
		BMIStatus:                status,
		RecommendedWeightChange:  change,
		RecommendedDailyCalories: calories,
		BMR:                      bmr,
		TDEE:                     tdee,
	}, nil
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
