package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ICE-TOOLS/icefit/middlewares"
	"github.com/ICE-TOOLS/icefit/models"
	"github.com/ICE-TOOLS/icefit/services"
)

type MealPlanController struct {
	plans *services.MealPlanService
}

func NewMealPlanController(plans *services.MealPlanService) *MealPlanController {
	return &MealPlanController{plans: plans}
}

type CompleteMealInput struct {
	MealType  models.MealSlot `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snacks"`
	Completed *bool           `json:"completed"`
}

// Generate creates a fresh plan for the current week from the user's profile
// and request preferences.
func (mc *MealPlanController) Generate(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var prefs services.MealPlanPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, week, err := mc.plans.GenerateWeeklyPlan(c.Request.Context(), user, prefs)
	if err != nil {
		if errors.Is(err, services.ErrMalformedPlanResponse) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "meal plan generation returned no usable plan"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":         "Meal plan generated",
		"plan_id":         plan.PlanID,
		"week_start_date": plan.WeekStartDate.Format("2006-01-02"),
		"days":            week,
	})
}

// Current returns the newest plan covering this week.
func (mc *MealPlanController) Current(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	plan, err := mc.plans.CurrentPlan(user.ID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, services.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no meal plan for this week"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var week models.WeekPlanData
	if err := json.Unmarshal(plan.Days, &week); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stored plan is unreadable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"plan_id":         plan.PlanID,
		"week_start_date": plan.WeekStartDate.Format("2006-01-02"),
		"days":            week,
	})
}

// CompleteMeal marks one slot of one day complete (or not).
func (mc *MealPlanController) CompleteMeal(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, want YYYY-MM-DD"})
		return
	}

	var input CompleteMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	completed := true
	if input.Completed != nil {
		completed = *input.Completed
	}

	progress, err := mc.plans.CompleteMeal(user.ID, planID, date, input.MealType, completed)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPlanNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrDateOutsidePlan), errors.Is(err, services.ErrUnknownMealSlot):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Progress updated",
		"progress": progress,
	})
}

// Progress lists per-day completion for a plan.
func (mc *MealPlanController) Progress(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	rows, err := mc.plans.Progress(user.ID, planID)
	if err != nil {
		if errors.Is(err, services.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress": rows})
}
