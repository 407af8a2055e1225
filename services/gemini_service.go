package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ICE-TOOLS/icefit/models"
)

// ErrMalformedPlanResponse means the model returned text with no extractable
// JSON payload, or a payload that failed to decode. Not retried here; retry
// policy belongs to the caller.
var ErrMalformedPlanResponse = errors.New("no valid meal plan JSON in model response")

// MealPlanPreferences narrow the generation request beyond the profile.
type MealPlanPreferences struct {
	CuisinePreferences    []string `json:"cuisine_preferences"`
	CookingTimePreference string   `json:"cooking_time_preference" binding:"omitempty,oneof=quick moderate elaborate"`
	BudgetLevel           string   `json:"budget_level" binding:"omitempty,oneof=budget moderate premium"`
}

// GeminiService talks to the generative AI endpoint that writes meal plans.
// The response is treated as opaque text expected to contain JSON.
type GeminiService struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

func NewGeminiService(apiKey, model, baseURL string, log *zap.Logger) *GeminiService {
	return &GeminiService{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 60 * time.Second},
		log:     log,
	}
}

// BuildMealPlanPrompt renders the full nutritionist prompt from the profile
// and request preferences.
func BuildMealPlanPrompt(user *models.User, prefs MealPlanPreferences) string {
	var sb strings.Builder
	sb.WriteString("You are a professional nutritionist and meal planning expert. Create a detailed 7-day meal plan for a user with the following profile:\n\n")

	sb.WriteString("**USER PROFILE:**\n")
	fmt.Fprintf(&sb, "- Age: %d\n", user.Age)
	fmt.Fprintf(&sb, "- Gender: %s\n", user.Gender)
	fmt.Fprintf(&sb, "- Weight: %.1f kg\n", user.WeightKg)
	fmt.Fprintf(&sb, "- Height: %.1f cm\n", user.HeightCm)
	fmt.Fprintf(&sb, "- BMI: %.2f\n", user.BMI)
	fmt.Fprintf(&sb, "- Activity Level: %s\n", user.ActivityLevel)
	fmt.Fprintf(&sb, "- Fitness Goal: %s\n", user.Goal)
	if user.TargetWeightKg != nil {
		fmt.Fprintf(&sb, "- Target Weight: %.1f kg\n", *user.TargetWeightKg)
	}
	fmt.Fprintf(&sb, "- Daily Calorie Goal: %d calories\n", user.RecommendedDailyCalories)
	fmt.Fprintf(&sb, "- BMR: %.2f calories\n", user.BMR)
	fmt.Fprintf(&sb, "- TDEE: %.2f calories\n", user.TDEE)
	fmt.Fprintf(&sb, "- Gym Type: %s\n\n", user.GymType)

	sb.WriteString("**DIETARY PREFERENCES & RESTRICTIONS:**\n")
	fmt.Fprintf(&sb, "- Dietary Restrictions: %s\n", strings.Join(user.DietaryRestrictions, ", "))
	fmt.Fprintf(&sb, "- Medical Conditions: %s\n", strings.Join(user.MedicalConditions, ", "))
	fmt.Fprintf(&sb, "- Allergies: %s\n", strings.Join(user.Allergies, ", "))
	fmt.Fprintf(&sb, "- Cuisine Preferences: %s\n", strings.Join(prefs.CuisinePreferences, ", "))
	fmt.Fprintf(&sb, "- Cooking Time Preference: %s\n", prefs.CookingTimePreference)
	fmt.Fprintf(&sb, "- Budget Level: %s\n\n", prefs.BudgetLevel)

	sb.WriteString(`**REQUIREMENTS:**
1. Create a complete 7-day meal plan (Monday to Sunday)
2. Each day should include: breakfast, lunch, dinner, and 1-2 healthy snacks
3. Each meal should include: name, estimated calories, protein, carbs, fat and fiber in grams, a brief description, preparation time in minutes, main ingredients and simple cooking instructions
4. Ensure the daily calorie intake aligns with the user's goals
5. Provide variety throughout the week
6. Respect all dietary restrictions and allergies

**OUTPUT FORMAT:**
Respond in valid JSON only, shaped as {"monday": {"breakfast": [{"name": "...", "calories": 400, "protein": 25.0, "carbs": 45.0, "fat": 12.0, "fiber": 8.0, "description": "...", "preparation_time": 15, "ingredients": ["..."], "instructions": "..."}], "lunch": [...], "dinner": [...], "snacks": [...], "total_calories": 2000, "total_protein": 120.0, "total_carbs": 250.0, "total_fat": 65.0}, "tuesday": {...}, ..., "sunday": {...}}.
Ensure the JSON is valid and complete.`)

	return sb.String()
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// GenerateText sends the prompt and returns the raw model text, with no
// structural guarantees.
func (s *GeminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("gemini api key not configured")
	}

	payload := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal gemini payload: %w", err)
	}

	s.log.Debug("calling generative model", zap.String("model", s.model))

	u := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call gemini API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read gemini response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API error %d: %s", resp.StatusCode, string(body))
	}

	var gr geminiResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return "", fmt.Errorf("failed to parse gemini JSON: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty gemini response")
	}
	return gr.Candidates[0].Content.Parts[0].Text, nil
}

// ExtractPlanJSON pulls the structured payload out of opaque model text.
// Preference order: interior of a ```json fenced block, then the span from
// the first '{' to the last '}', otherwise ErrMalformedPlanResponse.
func ExtractPlanJSON(text string) (string, error) {
	if idx := strings.Index(text, "```json"); idx >= 0 {
		start := idx + len("```json")
		if end := strings.Index(text[start:], "```"); end >= 0 {
			return strings.TrimSpace(text[start : start+end]), nil
		}
	}
	start := strings.Index(text, "{")
	if start < 0 {
		return "", ErrMalformedPlanResponse
	}
	end := strings.LastIndex(text, "}")
	if end < start {
		return "", ErrMalformedPlanResponse
	}
	return text[start : end+1], nil
}
