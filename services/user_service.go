package services

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ICE-TOOLS/icefit/models"
	"github.com/ICE-TOOLS/icefit/utils"
)

var (
	ErrDuplicateEmail     = errors.New("user with this email already exists")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// RegisterInput is the validated registration payload. Enumeration and range
// constraints live in the binding tags; the assembler below assumes they held.
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`

	FirstName   string        `json:"first_name" binding:"required,max=50"`
	LastName    string        `json:"last_name" binding:"required,max=50"`
	DateOfBirth time.Time     `json:"date_of_birth" binding:"required"`
	Gender      models.Gender `json:"gender" binding:"required,oneof=male female other"`

	HeightCm float64 `json:"height_cm" binding:"required,gt=50,lt=300"`
	WeightKg float64 `json:"weight_kg" binding:"required,gt=20,lt=500"`

	Goal           models.Goal `json:"goal" binding:"required,oneof=lose_weight gain_weight maintain_weight build_muscle improve_endurance"`
	TargetWeightKg *float64    `json:"target_weight_kg"`
	TargetDate     *time.Time  `json:"target_date"`

	ActivityLevel models.ActivityLevel `json:"activity_level" binding:"required,oneof=sedentary light moderate active very_active"`
	GymType       models.GymType       `json:"gym_type" binding:"required,oneof=without_gym home_garage small_gym medium_gym big_gym"`

	DayStreak           int      `json:"day_streak" binding:"gte=0"`
	MedicalConditions   []string `json:"medical_conditions"`
	Allergies           []string `json:"allergies"`
	Medications         []string `json:"medications"`
	DietaryRestrictions []string `json:"dietary_restrictions" binding:"dive,oneof=vegetarian vegan gluten_free dairy_free keto paleo halal kosher"`
	DailyCalorieGoal    *int     `json:"daily_calorie_goal"`
}

type UserService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewUserService(db *gorm.DB, log *zap.Logger) *UserService {
	return &UserService{db: db, log: log}
}

// defaultTargetWeight fills the target when the client left it out: lose 10,
// gain 10, build +5, otherwise hold current weight.
func defaultTargetWeight(goal models.Goal, weightKg float64) float64 {
	switch goal {
	case models.GoalLoseWeight:
		return weightKg - 10
	case models.GoalGainWeight:
		return weightKg + 10
	case models.GoalBuildMuscle:
		return weightKg + 5
	default:
		return weightKg
	}
}

// PrepareUser assembles a persistable profile from validated registration
// input: derives age, defaults the target weight, computes every metric,
// hashes the password and stamps timestamps. Pure assembly; duplicate
// checking belongs to the caller.
func PrepareUser(input RegisterInput, now time.Time) (models.User, error) {
	age := utils.CalculateAge(input.DateOfBirth, now)

	target := input.TargetWeightKg
	if target == nil {
		t := defaultTargetWeight(input.Goal, input.WeightKg)
		target = &t
	}

	metrics, err := utils.CalculateAllMetrics(utils.MetricInputs{
		WeightKg:       input.WeightKg,
		HeightCm:       input.HeightCm,
		Age:            age,
		Gender:         input.Gender,
		ActivityLevel:  input.ActivityLevel,
		Goal:           input.Goal,
		TargetWeightKg: target,
	})
	if err != nil {
		return models.User{}, err
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Email:               input.Email,
		Username:            input.Username,
		PasswordHash:        hash,
		FirstName:           input.FirstName,
		LastName:            input.LastName,
		DateOfBirth:         input.DateOfBirth,
		Gender:              input.Gender,
		Age:                 age,
		HeightCm:            input.HeightCm,
		WeightKg:            input.WeightKg,
		Goal:                input.Goal,
		TargetWeightKg:      target,
		TargetDate:          input.TargetDate,
		ActivityLevel:       input.ActivityLevel,
		GymType:             input.GymType,
		DayStreak:           input.DayStreak,
		MedicalConditions:   input.MedicalConditions,
		Allergies:           input.Allergies,
		Medications:         input.Medications,
		DietaryRestrictions: input.DietaryRestrictions,
		DailyCalorieGoal:    input.DailyCalorieGoal,
		IsActive:            true,
	}
	user.CreatedAt = now
	user.UpdatedAt = now
	applyMetrics(&user, metrics)

	return user, nil
}

// Register checks identity uniqueness, assembles the profile and inserts it.
func (s *UserService) Register(input RegisterInput) (*models.User, error) {
	var existing models.User
	if err := s.db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err := s.db.Where("username = ?", input.Username).First(&existing).Error; err == nil {
		return nil, ErrDuplicateUsername
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user, err := PrepareUser(input, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	s.log.Info("user registered",
		zap.Uint("user_id", user.ID),
		zap.String("goal", string(user.Goal)))
	return &user, nil
}

// Authenticate verifies credentials and stamps last_login.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ? AND is_active = ?", email, true).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	user.LastLogin = &now
	if err := s.db.Model(&user).Update("last_login", now).Error; err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}
	return &user, nil
}

func (s *UserService) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// UpdateProfile reconciles a partial update against the stored record and
// persists the merged result.
func (s *UserService) UpdateProfile(userID uint, upd ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	merged, err := ReconcileProfile(user, upd, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.db.Save(&merged).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	if upd.TouchesMetrics() {
		s.log.Info("profile metrics recalculated",
			zap.Uint("user_id", merged.ID),
			zap.Float64("bmi", merged.BMI),
			zap.Int("recommended_daily_calories", merged.RecommendedDailyCalories))
	}
	return &merged, nil
}

// Deactivate flips is_active; records are never hard-deleted here.
func (s *UserService) Deactivate(userID uint) error {
	res := s.db.Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{"is_active": false, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
