package models

// Enumerated values stored as plain strings in postgres. The HTTP layer
// enforces membership via binding tags; everything below storage trusts them.

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type Goal string

const (
	GoalLoseWeight       Goal = "lose_weight"
	GoalGainWeight       Goal = "gain_weight"
	GoalMaintainWeight   Goal = "maintain_weight"
	GoalBuildMuscle      Goal = "build_muscle"
	GoalImproveEndurance Goal = "improve_endurance"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

type GymType string

const (
	GymNone   GymType = "without_gym"
	GymGarage GymType = "home_garage"
	GymSmall  GymType = "small_gym"
	GymMedium GymType = "medium_gym"
	GymBig    GymType = "big_gym"
)

type BMIStatus string

const (
	BMIUnderweight BMIStatus = "underweight"
	BMINormal      BMIStatus = "normal"
	BMIOverweight  BMIStatus = "overweight"
	BMIObese       BMIStatus = "obese"
)

// MealSlot names the four fixed slots of a day plan.
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
	SlotSnacks    MealSlot = "snacks"
)

// MealSlots lists the slots in serving order.
var MealSlots = []MealSlot{SlotBreakfast, SlotLunch, SlotDinner, SlotSnacks}
