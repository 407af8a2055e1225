package utils

import (
	"fmt"
	"math"

	"github.com/ICE-TOOLS/icefit/models"
)

// HealthInsights is the human-readable reading of a profile's calculated
// fields, returned alongside the profile on register and fetch.
type HealthInsights struct {
	BMIInterpretation string `json:"bmi_interpretation"`
	CalorieGuidance   string `json:"calorie_guidance"`
	WeightGuidance    string `json:"weight_guidance"`
}

var bmiInterpretations = map[models.BMIStatus]string{
	models.BMIUnderweight: "Your BMI indicates you're underweight. Consider consulting with a healthcare provider about healthy weight gain strategies.",
	models.BMINormal:      "Great! Your BMI is in the healthy range. Maintain your current lifestyle with regular exercise and balanced nutrition.",
	models.BMIOverweight:  "Your BMI indicates you're overweight. Consider a balanced approach with regular exercise and portion control.",
	models.BMIObese:       "Your BMI indicates obesity. We recommend consulting with a healthcare provider for a comprehensive weight management plan.",
}

// BuildHealthInsights derives guidance from the goal and calculated fields.
func BuildHealthInsights(user *models.User) HealthInsights {
	return HealthInsights{
		BMIInterpretation: bmiInterpretation(user.BMIStatus),
		CalorieGuidance:   calorieGuidance(user.Goal, user.RecommendedDailyCalories),
		WeightGuidance:    weightGuidance(user.RecommendedWeightChange),
	}
}

func bmiInterpretation(status models.BMIStatus) string {
	if msg, ok := bmiInterpretations[status]; ok {
		return msg
	}
	return "BMI status unknown"
}

func calorieGuidance(goal models.Goal, calories int) string {
	switch goal {
	case models.GoalLoseWeight:
		return fmt.Sprintf("To lose weight safely, aim for %d calories per day. This creates a moderate deficit for sustainable weight loss.", calories)
	case models.GoalGainWeight:
		return fmt.Sprintf("To gain weight healthily, aim for %d calories per day. Focus on nutrient-dense foods and strength training.", calories)
	case models.GoalBuildMuscle:
		return fmt.Sprintf("To build muscle, aim for %d calories per day with adequate protein (1.6-2.2g per kg body weight).", calories)
	case models.GoalMaintainWeight:
		return fmt.Sprintf("To maintain your current weight, aim for %d calories per day.", calories)
	case models.GoalImproveEndurance:
		return fmt.Sprintf("For endurance training, aim for %d calories per day, focusing on carbohydrates for energy.", calories)
	default:
		return fmt.Sprintf("Aim for %d calories per day based on your goals.", calories)
	}
}

func weightGuidance(recommendedChange float64) string {
	if math.Abs(recommendedChange) < 1 {
		return "Your current weight is in a healthy range for your height."
	}
	if recommendedChange > 0 {
		return fmt.Sprintf("For optimal health, consider gaining %.1f kg through healthy nutrition and strength training.", math.Abs(recommendedChange))
	}
	return fmt.Sprintf("For optimal health, consider losing %.1f kg through a balanced diet and regular exercise.", math.Abs(recommendedChange))
}
