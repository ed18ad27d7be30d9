package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack/backend/aiclient"
	"fittrack/backend/mealplan"
	"fittrack/backend/models"
	"fittrack/backend/services"
)

type stubProfiles struct{ profile *models.UserProfile }

func (s stubProfiles) GetProfile(context.Context, uuid.UUID) (*models.UserProfile, error) {
	if s.profile == nil {
		return nil, services.ErrProfileNotFound
	}
	return s.profile, nil
}

type stubWeights struct{}

func (stubWeights) LatestEntry(context.Context, uuid.UUID) (*models.WeightEntry, error) {
	return nil, services.ErrWeightEntryNotFound
}

type stubPreferences struct{}

func (stubPreferences) GetPreferences(_ context.Context, userID uuid.UUID) (*models.MealPreferences, error) {
	p := models.DefaultMealPreferences(userID)
	return &p, nil
}

type failingAI struct{}

func (failingAI) GenerateMealPlan(context.Context, aiclient.PlanRequest) (*models.AIPlanResponse, error) {
	return nil, &aiclient.ServiceError{StatusCode: 500, Message: "rate limited"}
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Details string          `json:"details"`
}

func setupMealPlanApp(t *testing.T, profile *models.UserProfile) (*fiber.App, uuid.UUID) {
	t.Helper()
	userID := uuid.New()
	if profile != nil {
		profile.UserID = userID
	}

	generator := mealplan.NewGenerator()
	planService := services.NewPlanService(services.PlanDeps{
		Profiles:    stubProfiles{profile: profile},
		Weights:     stubWeights{},
		Preferences: stubPreferences{},
		AI:          failingAI{},
		Local:       generator,
	})

	app := fiber.New()
	fakeAuth := func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	}
	SetupMealPlanRoutes(app.Group("/api/v1"), planService, generator, fakeAuth)
	return app, userID
}

func workedExample() *models.UserProfile {
	return &models.UserProfile{Goal: models.GoalLoseWeight, CurrentWeight: 80, TargetWeight: 72, Height: 175, Age: 30, Gender: models.GenderMale}
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body any) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestGetTarget(t *testing.T) {
	app, _ := setupMealPlanApp(t, workedExample())

	status, env := doRequest(t, app, http.MethodGet, "/api/v1/nutrition/target", nil)
	require.Equal(t, http.StatusOK, status)
	var target models.NutritionalTarget
	require.NoError(t, json.Unmarshal(env.Data, &target))
	assert.Equal(t, models.NutritionalTarget{Calories: 2211, Protein: 193, Carbs: 193, Fats: 74, Strategy: "mifflin_st_jeor"}, target)

	status, _ = doRequest(t, app, http.MethodGet, "/api/v1/nutrition/target?strategy=weight_based", nil)
	assert.Equal(t, http.StatusOK, status)

	status, env = doRequest(t, app, http.MethodGet, "/api/v1/nutrition/target?strategy=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "error", env.Status)
}

func TestGetTarget_NoProfile(t *testing.T) {
	app, _ := setupMealPlanApp(t, nil)

	status, env := doRequest(t, app, http.MethodGet, "/api/v1/nutrition/target", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "profile not found", env.Message)
}

func TestGenerate_FallsBackAndStoresLatest(t *testing.T) {
	app, _ := setupMealPlanApp(t, workedExample())

	status, _ := doRequest(t, app, http.MethodGet, "/api/v1/meal-plans/latest", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, env := doRequest(t, app, http.MethodPost, "/api/v1/meal-plans/generate", nil)
	require.Equal(t, http.StatusOK, status)
	var plan models.GeneratedPlan
	require.NoError(t, json.Unmarshal(env.Data, &plan))
	assert.Equal(t, models.PlanSourceLocal, plan.Source)
	assert.Contains(t, plan.FallbackReason, "rate limited")
	assert.Len(t, plan.WeeklyPlan, 7)

	status, env = doRequest(t, app, http.MethodGet, "/api/v1/meal-plans/latest/shopping-list", nil)
	require.Equal(t, http.StatusOK, status)
	var list models.ShoppingList
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, plan.ShoppingList, list)
}

func TestGenerateAI_ReportsErrorAndDetails(t *testing.T) {
	app, _ := setupMealPlanApp(t, workedExample())

	status, env := doRequest(t, app, http.MethodPost, "/api/v1/meal-plans/ai", nil)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Failed to generate meal plan", env.Error)
	assert.Contains(t, env.Details, "rate limited")
}

func TestGenerateAI_InputErrorsUseServiceStatus(t *testing.T) {
	app, _ := setupMealPlanApp(t, nil)
	status, env := doRequest(t, app, http.MethodPost, "/api/v1/meal-plans/ai", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, services.ErrProfileNotFound.Error(), env.Message)
	assert.Empty(t, env.Error)

	invalid := workedExample()
	invalid.Height = 0
	app, _ = setupMealPlanApp(t, invalid)
	status, env = doRequest(t, app, http.MethodPost, "/api/v1/meal-plans/ai", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Empty(t, env.Details)
}

func TestGenerateLocal(t *testing.T) {
	app, _ := setupMealPlanApp(t, nil)

	status, env := doRequest(t, app, http.MethodPost, "/api/v1/meal-plans/local", models.LocalPlanRequest{
		DailyCalories: 2000,
		SnacksPerDay:  2,
		DietaryType:   models.DietaryVegan,
	})
	require.Equal(t, http.StatusOK, status)
	var resp models.LocalPlanResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Len(t, resp.WeeklyPlan, 7)
	for _, day := range resp.WeeklyPlan {
		assert.Len(t, day.Snacks, 2)
	}
	assert.NotEmpty(t, resp.ShoppingList)

	status, _ = doRequest(t, app, http.MethodPost, "/api/v1/meal-plans/local", models.LocalPlanRequest{DailyCalories: 0})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doRequest(t, app, http.MethodPost, "/api/v1/meal-plans/local", models.LocalPlanRequest{DailyCalories: 2000, SnacksPerDay: 7})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGenerateDaily(t *testing.T) {
	app, _ := setupMealPlanApp(t, workedExample())

	status, env := doRequest(t, app, http.MethodPost, "/api/v1/meal-plans/daily", nil)
	require.Equal(t, http.StatusOK, status)
	var plan models.DailyPlan
	require.NoError(t, json.Unmarshal(env.Data, &plan))
	assert.Equal(t, models.CatalogStandard, plan.Diet)
	assert.Equal(t, 2120, plan.Totals.Calories)

	status, _ = doRequest(t, app, http.MethodPost, "/api/v1/meal-plans/daily", models.DailyPlanRequest{Diet: "carnivore"})
	assert.Equal(t, http.StatusBadRequest, status)
}
