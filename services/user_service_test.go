package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ICE-TOOLS/icefit/models"
	"github.com/ICE-TOOLS/icefit/utils"
)

func TestDefaultTargetWeight(t *testing.T) {
	tests := []struct {
		goal models.Goal
		want float64
	}{
		{models.GoalLoseWeight, 70},
		{models.GoalGainWeight, 90},
		{models.GoalBuildMuscle, 85},
		{models.GoalMaintainWeight, 80},
		{models.GoalImproveEndurance, 80},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, defaultTargetWeight(tt.goal, 80), "goal=%s", tt.goal)
	}
}

func TestPrepareUserAssemblesCompleteRecord(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	input := RegisterInput{
		Email:         "john@example.com",
		Username:      "john",
		Password:      "secret123",
		FirstName:     "John",
		LastName:      "Smith",
		DateOfBirth:   time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC),
		Gender:        models.GenderMale,
		HeightCm:      180,
		WeightKg:      80,
		Goal:          models.GoalLoseWeight,
		ActivityLevel: models.ActivityActive,
		GymType:       models.GymBig,
	}

	user, err := PrepareUser(input, now)
	require.NoError(t, err)

	// Birthday (June 15) hasn't happened yet on June 2.
	assert.Equal(t, 24, user.Age)

	require.NotNil(t, user.TargetWeightKg)
	assert.Equal(t, 70.0, *user.TargetWeightKg)

	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, input.Password, user.PasswordHash)
	assert.True(t, utils.CheckPasswordHash(input.Password, user.PasswordHash))

	assert.Equal(t, now, user.CreatedAt)
	assert.Equal(t, now, user.UpdatedAt)
	assert.True(t, user.IsActive)

	want, err := utils.CalculateAllMetrics(utils.MetricInputs{
		WeightKg:       80,
		HeightCm:       180,
		Age:            24,
		Gender:         models.GenderMale,
		ActivityLevel:  models.ActivityActive,
		Goal:           models.GoalLoseWeight,
		TargetWeightKg: user.TargetWeightKg,
	})
	require.NoError(t, err)
	assert.Equal(t, want.BMI, user.BMI)
	assert.Equal(t, want.BMIStatus, user.BMIStatus)
	assert.Equal(t, want.RecommendedWeightChange, user.RecommendedWeightChange)
	assert.Equal(t, want.RecommendedDailyCalories, user.RecommendedDailyCalories)
	assert.Equal(t, want.BMR, user.BMR)
	assert.Equal(t, want.TDEE, user.TDEE)
}

func TestPrepareUserKeepsExplicitTargetWeight(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	target := 72.5
	input := RegisterInput{
		Email:          "ann@example.com",
		Username:       "ann",
		Password:       "secret123",
		FirstName:      "Ann",
		LastName:       "Lee",
		DateOfBirth:    time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Gender:         models.GenderFemale,
		HeightCm:       165,
		WeightKg:       85,
		Goal:           models.GoalLoseWeight,
		TargetWeightKg: &target,
		ActivityLevel:  models.ActivityLight,
		GymType:        models.GymNone,
	}

	user, err := PrepareUser(input, now)
	require.NoError(t, err)
	require.NotNil(t, user.TargetWeightKg)
	assert.Equal(t, 72.5, *user.TargetWeightKg)
}
