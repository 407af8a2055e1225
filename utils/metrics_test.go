package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ICE-TOOLS/icefit/models"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(70, 175)
	require.NoError(t, err)
	assert.Equal(t, 22.86, bmi)

	bmi, err = CalculateBMI(90, 180)
	require.NoError(t, err)
	assert.Equal(t, 27.78, bmi)
}

func TestCalculateBMIRejectsNonPositiveHeight(t *testing.T) {
	_, err := CalculateBMI(70, 0)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = CalculateBMI(70, -175)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestBMIStatusBoundaries(t *testing.T) {
	tests := []struct {
		bmi  float64
		want models.BMIStatus
	}{
		{18.49, models.BMIUnderweight},
		{18.5, models.BMINormal},
		{24.99, models.BMINormal},
		{25, models.BMIOverweight},
		{29.99, models.BMIOverweight},
		{30, models.BMIObese},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BMIStatusFor(tt.bmi), "bmi=%v", tt.bmi)
	}
}

func TestRecommendedWeight(t *testing.T) {
	kg, needed := RecommendedWeight(175, models.BMIUnderweight)
	assert.True(t, needed)
	assert.Equal(t, 61.25, kg) // 20 * 1.75^2

	kg, needed = RecommendedWeight(175, models.BMINormal)
	assert.False(t, needed)
	assert.Zero(t, kg)

	kg, needed = RecommendedWeight(175, models.BMIObese)
	assert.True(t, needed)
	assert.Equal(t, 73.5, kg) // 24 * 1.75^2
}

func TestCalculateBMR(t *testing.T) {
	assert.Equal(t, 1673.75, CalculateBMR(70, 175, 25, models.GenderMale))
	assert.Equal(t, 1507.75, CalculateBMR(70, 175, 25, models.GenderFemale))
	// "other" shares the female constant.
	assert.Equal(t,
		CalculateBMR(70, 175, 25, models.GenderFemale),
		CalculateBMR(70, 175, 25, models.GenderOther))
}

func TestCalculateTDEE(t *testing.T) {
	assert.Equal(t, 2594.31, CalculateTDEE(1673.75, models.ActivityModerate))
	assert.Equal(t, 2008.5, CalculateTDEE(1673.75, models.ActivitySedentary))
	// Unknown levels fall back to the sedentary multiplier.
	assert.Equal(t,
		CalculateTDEE(1673.75, models.ActivitySedentary),
		CalculateTDEE(1673.75, models.ActivityLevel("unknown_value")))
}

func TestCalorieGoal(t *testing.T) {
	tests := []struct {
		name    string
		goal    models.Goal
		target  float64
		current float64
		want    int
	}{
		{"lose aggressive", models.GoalLoseWeight, 75, 90, 1844},
		{"lose moderate", models.GoalLoseWeight, 85, 90, 2094},
		{"gain", models.GoalGainWeight, 95, 90, 2994},
		{"build muscle", models.GoalBuildMuscle, 95, 90, 2994},
		{"maintain", models.GoalMaintainWeight, 90, 90, 2594},
		{"endurance", models.GoalImproveEndurance, 90, 90, 2594},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalorieGoal(2594, tt.goal, tt.target, tt.current))
		})
	}
}

func TestCalorieGoalTruncatesTowardZero(t *testing.T) {
	assert.Equal(t, 2094, CalorieGoal(2594.99, models.GoalLoseWeight, 85, 90))
}

func TestCalculateAllMetrics(t *testing.T) {
	target := 75.0
	m, err := CalculateAllMetrics(MetricInputs{
		WeightKg:       90,
		HeightCm:       175,
		Age:            30,
		Gender:         models.GenderMale,
		ActivityLevel:  models.ActivityModerate,
		Goal:           models.GoalLoseWeight,
		TargetWeightKg: &target,
	})
	require.NoError(t, err)

	assert.Equal(t, 29.39, m.BMI)
	assert.Equal(t, models.BMIOverweight, m.BMIStatus)
	assert.Equal(t, 73.5-90, m.RecommendedWeightChange)
	assert.Equal(t, 1848.75, m.BMR) // 900 + 1093.75 - 150 + 5
	assert.Equal(t, 2865.56, m.TDEE)
	// 90-75 > 10, so the aggressive deficit applies.
	wantCalories := 2865.56 - 750
	assert.Equal(t, int(wantCalories), m.RecommendedDailyCalories)
}

func TestCalculateAllMetricsNormalStatusKeepsZeroChange(t *testing.T) {
	m, err := CalculateAllMetrics(MetricInputs{
		WeightKg:      70,
		HeightCm:      175,
		Age:           25,
		Gender:        models.GenderFemale,
		ActivityLevel: models.ActivityLight,
		Goal:          models.GoalMaintainWeight,
	})
	require.NoError(t, err)
	assert.Equal(t, models.BMINormal, m.BMIStatus)
	assert.Zero(t, m.RecommendedWeightChange)
}

func TestCalculateAllMetricsMissingTargetDefaultsToCurrentWeight(t *testing.T) {
	// With no explicit target the lose_weight branch sees a zero gap and
	// takes the moderate deficit.
	m, err := CalculateAllMetrics(MetricInputs{
		WeightKg:      90,
		HeightCm:      175,
		Age:           30,
		Gender:        models.GenderMale,
		ActivityLevel: models.ActivityModerate,
		Goal:          models.GoalLoseWeight,
	})
	require.NoError(t, err)
	assert.Equal(t, int(m.TDEE-500), m.RecommendedDailyCalories)
}
