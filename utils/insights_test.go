package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ICE-TOOLS/icefit/models"
)

func TestBuildHealthInsights(t *testing.T) {
	user := &models.User{
		BMIStatus:                models.BMIOverweight,
		Goal:                     models.GoalLoseWeight,
		RecommendedDailyCalories: 2115,
		RecommendedWeightChange:  -16.5,
	}

	out := BuildHealthInsights(user)
	assert.Contains(t, out.BMIInterpretation, "overweight")
	assert.Contains(t, out.CalorieGuidance, "2115")
	assert.Contains(t, out.WeightGuidance, "losing 16.5 kg")
}

func TestWeightGuidanceNearZeroChange(t *testing.T) {
	user := &models.User{
		BMIStatus: models.BMINormal,
		Goal:      models.GoalMaintainWeight,
	}
	out := BuildHealthInsights(user)
	assert.Contains(t, out.WeightGuidance, "healthy range")
}

func TestWeightGuidancePositiveChange(t *testing.T) {
	user := &models.User{
		BMIStatus:               models.BMIUnderweight,
		Goal:                    models.GoalGainWeight,
		RecommendedWeightChange: 4.2,
	}
	out := BuildHealthInsights(user)
	assert.Contains(t, out.WeightGuidance, "gaining 4.2 kg")
}
