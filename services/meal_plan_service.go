package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ICE-TOOLS/icefit/models"
)

var (
	ErrPlanNotFound    = errors.New("meal plan not found")
	ErrUnknownMealSlot = errors.New("unknown meal slot")
	ErrDateOutsidePlan = errors.New("date outside the plan's week")
)

// weekPayload mirrors the JSON the model is asked to produce. Day pointers
// distinguish "day missing" from "day present but sparse" so missing days can
// default without failing the whole assembly.
type weekPayload struct {
	Monday    *rawDay `json:"monday"`
	Tuesday   *rawDay `json:"tuesday"`
	Wednesday *rawDay `json:"wednesday"`
	Thursday  *rawDay `json:"thursday"`
	Friday    *rawDay `json:"friday"`
	Saturday  *rawDay `json:"saturday"`
	Sunday    *rawDay `json:"sunday"`
}

type rawDay struct {
	Breakfast     []models.MealItem `json:"breakfast"`
	Lunch         []models.MealItem `json:"lunch"`
	Dinner        []models.MealItem `json:"dinner"`
	Snacks        []models.MealItem `json:"snacks"`
	TotalCalories int               `json:"total_calories"`
	TotalProtein  float64           `json:"total_protein"`
	TotalCarbs    float64           `json:"total_carbs"`
	TotalFat      float64           `json:"total_fat"`
}

// WeekStart returns the most recent Monday on or before the given time,
// truncated to a date. The model's output never influences this.
func WeekStart(now time.Time) time.Time {
	t := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return t.AddDate(0, 0, -offset)
}

// AssembleWeekPlan decodes an extracted JSON payload into the fixed weekly
// shape. An undecodable payload fails with ErrMalformedPlanResponse; missing
// days and slots degrade to empty values instead.
func AssembleWeekPlan(payload string) (models.WeekPlanData, error) {
	var wp weekPayload
	if err := json.Unmarshal([]byte(payload), &wp); err != nil {
		return models.WeekPlanData{}, ErrMalformedPlanResponse
	}
	return models.WeekPlanData{
		Monday:    buildDay(wp.Monday),
		Tuesday:   buildDay(wp.Tuesday),
		Wednesday: buildDay(wp.Wednesday),
		Thursday:  buildDay(wp.Thursday),
		Friday:    buildDay(wp.Friday),
		Saturday:  buildDay(wp.Saturday),
		Sunday:    buildDay(wp.Sunday),
	}, nil
}

func buildDay(d *rawDay) models.DayMealPlan {
	if d == nil {
		d = &rawDay{}
	}
	return models.DayMealPlan{
		Breakfast:     orEmpty(d.Breakfast),
		Lunch:         orEmpty(d.Lunch),
		Dinner:        orEmpty(d.Dinner),
		Snacks:        orEmpty(d.Snacks),
		TotalCalories: d.TotalCalories,
		TotalProtein:  d.TotalProtein,
		TotalCarbs:    d.TotalCarbs,
		TotalFat:      d.TotalFat,
	}
}

func orEmpty(items []models.MealItem) []models.MealItem {
	if items == nil {
		return []models.MealItem{}
	}
	return items
}

type MealPlanService struct {
	db     *gorm.DB
	gemini *GeminiService
	log    *zap.Logger
}

func NewMealPlanService(db *gorm.DB, gemini *GeminiService, log *zap.Logger) *MealPlanService {
	return &MealPlanService{db: db, gemini: gemini, log: log}
}

// GenerateWeeklyPlan asks the model for a plan, assembles it and stores it.
// Plans are immutable; each call inserts a new row for the current week.
func (s *MealPlanService) GenerateWeeklyPlan(ctx context.Context, user *models.User, prefs MealPlanPreferences) (*models.WeeklyMealPlan, *models.WeekPlanData, error) {
	prompt := BuildMealPlanPrompt(user, prefs)

	text, err := s.gemini.GenerateText(ctx, prompt)
	if err != nil {
		return nil, nil, fmt.Errorf("meal plan generation failed: %w", err)
	}

	payload, err := ExtractPlanJSON(text)
	if err != nil {
		return nil, nil, err
	}
	week, err := AssembleWeekPlan(payload)
	if err != nil {
		return nil, nil, err
	}

	days, err := json.Marshal(week)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode week plan: %w", err)
	}

	plan := models.WeeklyMealPlan{
		PlanID:        uuid.New(),
		UserID:        user.ID,
		WeekStartDate: WeekStart(time.Now().UTC()),
		Days:          datatypes.JSON(days),
	}
	if err := s.db.Create(&plan).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to store meal plan: %w", err)
	}

	s.log.Info("weekly meal plan generated",
		zap.Uint("user_id", user.ID),
		zap.String("plan_id", plan.PlanID.String()),
		zap.Time("week_start", plan.WeekStartDate))
	return &plan, &week, nil
}

// CurrentPlan returns the newest plan for the week containing now.
func (s *MealPlanService) CurrentPlan(userID uint, now time.Time) (*models.WeeklyMealPlan, error) {
	var plan models.WeeklyMealPlan
	err := s.db.
		Where("user_id = ? AND week_start_date = ?", userID, WeekStart(now)).
		Order("created_at DESC").
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// FindPlan resolves a plan by its public id, scoped to the owner.
func (s *MealPlanService) FindPlan(userID uint, planID uuid.UUID) (*models.WeeklyMealPlan, error) {
	var plan models.WeeklyMealPlan
	err := s.db.Where("user_id = ? AND plan_id = ?", userID, planID).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// applyMealCompletion flips one slot flag and re-derives DayFullyCompleted.
// CompletedAt is written only on the transition into fully completed and is
// never cleared afterwards.
func applyMealCompletion(dp *models.DayProgress, slot models.MealSlot, completed bool, now time.Time) error {
	switch slot {
	case models.SlotBreakfast:
		dp.BreakfastCompleted = completed
	case models.SlotLunch:
		dp.LunchCompleted = completed
	case models.SlotDinner:
		dp.DinnerCompleted = completed
	case models.SlotSnacks:
		dp.SnacksCompleted = completed
	default:
		return ErrUnknownMealSlot
	}

	wasComplete := dp.DayFullyCompleted
	dp.DayFullyCompleted = dp.BreakfastCompleted && dp.LunchCompleted &&
		dp.DinnerCompleted && dp.SnacksCompleted
	if dp.DayFullyCompleted && !wasComplete && dp.CompletedAt == nil {
		dp.CompletedAt = &now
	}
	return nil
}

// CompleteMeal records completion of one slot for one day of a plan,
// creating the day's progress row on first touch.
func (s *MealPlanService) CompleteMeal(userID uint, planID uuid.UUID, date time.Time, slot models.MealSlot, completed bool) (*models.DayProgress, error) {
	plan, err := s.FindPlan(userID, planID)
	if err != nil {
		return nil, err
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(plan.WeekStartDate) || !day.Before(plan.WeekStartDate.AddDate(0, 0, 7)) {
		return nil, ErrDateOutsidePlan
	}

	var dp models.DayProgress
	err = s.db.Where("user_id = ? AND meal_plan_id = ? AND date = ?", userID, plan.ID, day).First(&dp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		dp = models.DayProgress{UserID: userID, MealPlanID: plan.ID, Date: day}
	} else if err != nil {
		return nil, err
	}

	if err := applyMealCompletion(&dp, slot, completed, time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := s.db.Save(&dp).Error; err != nil {
		return nil, fmt.Errorf("failed to save day progress: %w", err)
	}
	return &dp, nil
}

// Progress lists the per-day completion rows for a plan.
func (s *MealPlanService) Progress(userID uint, planID uuid.UUID) ([]models.DayProgress, error) {
	plan, err := s.FindPlan(userID, planID)
	if err != nil {
		return nil, err
	}
	var rows []models.DayProgress
	if err := s.db.Where("user_id = ? AND meal_plan_id = ?", userID, plan.ID).
		Order("date ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
