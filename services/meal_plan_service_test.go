package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ICE-TOOLS/icefit/models"
)

func TestExtractPlanJSONFencedBlock(t *testing.T) {
	text := "Here you go:\n```json\n{\"monday\": {\"total_calories\": 2000}}\n```\nEnjoy!"
	payload, err := ExtractPlanJSON(text)
	require.NoError(t, err)
	assert.Equal(t, `{"monday": {"total_calories": 2000}}`, payload)
}

func TestExtractPlanJSONBraceSpan(t *testing.T) {
	text := `Your plan: {"monday": {}} hope it helps`
	payload, err := ExtractPlanJSON(text)
	require.NoError(t, err)
	assert.Equal(t, `{"monday": {}}`, payload)
}

func TestExtractPlanJSONNoBraces(t *testing.T) {
	_, err := ExtractPlanJSON("Sorry, I cannot help with that.")
	assert.ErrorIs(t, err, ErrMalformedPlanResponse)
}

func TestAssembleWeekPlanRejectsUnparseablePayload(t *testing.T) {
	_, err := AssembleWeekPlan(`{"monday": `)
	assert.ErrorIs(t, err, ErrMalformedPlanResponse)
}

func TestAssembleWeekPlanDefaultsMissingDays(t *testing.T) {
	payload := `{
		"monday": {
			"breakfast": [{"name": "Oatmeal", "calories": 350, "protein": 12, "carbs": 60, "fat": 7, "ingredients": ["oats", "milk"]}],
			"lunch": [{"name": "Chicken salad", "calories": 550, "protein": 40, "carbs": 20, "fat": 30, "ingredients": ["chicken", "greens"]}],
			"total_calories": 2000,
			"total_protein": 120,
			"total_carbs": 250,
			"total_fat": 65
		}
	}`
	week, err := AssembleWeekPlan(payload)
	require.NoError(t, err)

	require.Len(t, week.Monday.Breakfast, 1)
	assert.Equal(t, "Oatmeal", week.Monday.Breakfast[0].Name)
	assert.Equal(t, 350, week.Monday.Breakfast[0].Calories)
	assert.Equal(t, 2000, week.Monday.TotalCalories)
	// Missing slots default to empty sequences, not nil.
	assert.NotNil(t, week.Monday.Dinner)
	assert.Empty(t, week.Monday.Dinner)

	// Missing days default to all-empty day plans with zero totals.
	assert.Empty(t, week.Friday.Breakfast)
	assert.Empty(t, week.Friday.Snacks)
	assert.Zero(t, week.Friday.TotalCalories)
	assert.Zero(t, week.Friday.TotalProtein)
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		now  time.Time
		want time.Time
	}{
		// Wednesday.
		{time.Date(2025, 6, 4, 15, 30, 0, 0, time.UTC), time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)},
		// Sunday still belongs to the week begun the previous Monday.
		{time.Date(2025, 6, 8, 23, 59, 0, 0, time.UTC), time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)},
		// A Monday is its own week start.
		{time.Date(2025, 6, 2, 0, 0, 1, 0, time.UTC), time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WeekStart(tt.now), "now=%v", tt.now)
	}
}

func TestApplyMealCompletion(t *testing.T) {
	now := time.Date(2025, 6, 4, 20, 0, 0, 0, time.UTC)
	dp := models.DayProgress{}

	for _, slot := range []models.MealSlot{models.SlotBreakfast, models.SlotLunch, models.SlotDinner} {
		require.NoError(t, applyMealCompletion(&dp, slot, true, now))
		assert.False(t, dp.DayFullyCompleted)
		assert.Nil(t, dp.CompletedAt)
	}

	require.NoError(t, applyMealCompletion(&dp, models.SlotSnacks, true, now))
	assert.True(t, dp.DayFullyCompleted)
	require.NotNil(t, dp.CompletedAt)
	assert.Equal(t, now, *dp.CompletedAt)

	// Un-completing a slot clears the derived flag but CompletedAt stays.
	require.NoError(t, applyMealCompletion(&dp, models.SlotLunch, false, now.Add(time.Hour)))
	assert.False(t, dp.DayFullyCompleted)
	require.NotNil(t, dp.CompletedAt)
	assert.Equal(t, now, *dp.CompletedAt)

	// Completing again does not rewrite the original completion time.
	require.NoError(t, applyMealCompletion(&dp, models.SlotLunch, true, now.Add(2*time.Hour)))
	assert.True(t, dp.DayFullyCompleted)
	assert.Equal(t, now, *dp.CompletedAt)
}

func TestApplyMealCompletionRejectsUnknownSlot(t *testing.T) {
	dp := models.DayProgress{}
	err := applyMealCompletion(&dp, models.MealSlot("brunch"), true, time.Now())
	assert.ErrorIs(t, err, ErrUnknownMealSlot)
}
