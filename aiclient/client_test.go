package aiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack/backend/mealplan"
	"fittrack/backend/models"
)

func samplePlanRequest() PlanRequest {
	return PlanRequest{
		Goal:          models.GoalLoseWeight,
		CurrentWeight: 80,
		TargetWeight:  72,
		Height:        175,
		Age:           30,
		Gender:        models.GenderMale,
		DailyCalories: 2211,
		Protein:       193,
		Carbs:         193,
		Fats:          74,
		DietaryType:   models.DietaryVegetarian,
		Allergies:     []string{"arachides"},
		Dislikes:      []string{"brocoli", "champignons"},
		DailyMeals:    3,
		SnacksPerDay:  2,
		CookingTime:   models.CookingQuick,
		BudgetLevel:   models.BudgetLow,
	}
}

func completionBody(t *testing.T, content string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	})
	require.NoError(t, err)
	return body
}

func validPlanJSON(t *testing.T) string {
	t.Helper()
	week := mealplan.NewGenerator().GenerateWeeklyMealPlan(2211, 3, 2, models.DietaryVegetarian)
	raw, err := json.Marshal(models.AIPlanResponse{
		WeeklyPlan:   week,
		ShoppingList: mealplan.GenerateShoppingList(week),
	})
	require.NoError(t, err)
	return string(raw)
}

func newTestClient(url string) *Client {
	return NewClient(Config{APIKey: "test-key", BaseURL: url, Model: "test-model"})
}

func TestGenerateMealPlan_Success(t *testing.T) {
	body := completionBody(t, "```json\n"+validPlanJSON(t)+"\n```")
	var captured chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	plan, err := newTestClient(srv.URL).GenerateMealPlan(context.Background(), samplePlanRequest())
	require.NoError(t, err)
	require.NotNil(t, plan)

	assert.Len(t, plan.WeeklyPlan, 7)
	assert.NotEmpty(t, plan.ShoppingList)
	for day, d := range plan.WeeklyPlan {
		assert.NotNil(t, d.Breakfast, day)
		assert.NotNil(t, d.Lunch, day)
		assert.NotNil(t, d.Dinner, day)
	}

	assert.Equal(t, "test-model", captured.Model)
	assert.Equal(t, "json_object", captured.ResponseFormat.Type)
	assert.Greater(t, captured.Temperature, 0.0)
	require.Len(t, captured.Messages, 2)
	prompt := captured.Messages[1].Content
	for _, want := range []string{"lose_weight", "2211", "193", "74", "vegetarian", "arachides", "brocoli, champignons", "Snacks per day: 2", "quick", "low", "weeklyPlan", "shoppingList"} {
		assert.Contains(t, prompt, want)
	}
}

func TestGenerateMealPlan_ServiceErrors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"flat error", http.StatusInternalServerError, `{"error":"rate limited"}`, "rate limited"},
		{"nested error", http.StatusUnauthorized, `{"error":{"message":"invalid api key","type":"auth"}}`, "invalid api key"},
		{"message field", http.StatusBadGateway, `{"message":"upstream down"}`, "upstream down"},
		{"opaque body", http.StatusServiceUnavailable, `<html>oops</html>`, "AI service returned status 503"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			plan, err := newTestClient(srv.URL).GenerateMealPlan(context.Background(), samplePlanRequest())
			assert.Nil(t, plan)
			require.Error(t, err)

			var svcErr *ServiceError
			require.True(t, errors.As(err, &svcErr))
			assert.Equal(t, tc.status, svcErr.StatusCode)
			assert.Equal(t, tc.want, svcErr.Message)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestGenerateMealPlan_MissingAPIKey(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	_, err := NewClient(Config{BaseURL: srv.URL}).GenerateMealPlan(context.Background(), samplePlanRequest())
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestGenerateMealPlan_InvalidFormat(t *testing.T) {
	sixDays := validPlanJSON(t)
	var doc map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(sixDays), &doc))
	delete(doc["weeklyPlan"], "Dimanche")
	trimmed, err := json.Marshal(doc)
	require.NoError(t, err)

	cases := []struct {
		name    string
		body    []byte
		invalid bool
	}{
		{"body not json", []byte("not json at all"), false},
		{"no choices", []byte(`{"choices":[]}`), false},
		{"content not json", completionBody(t, "Voici votre plan !"), false},
		{"six days", completionBody(t, string(trimmed)), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write(tc.body)
			}))
			defer srv.Close()

			_, err := newTestClient(srv.URL).GenerateMealPlan(context.Background(), samplePlanRequest())
			assert.ErrorIs(t, err, ErrInvalidResponseFormat)
			if tc.invalid {
				assert.ErrorIs(t, err, mealplan.ErrInvalidPlan)
			}
		})
	}
}

func TestGenerateMealPlan_RateLimited(t *testing.T) {
	body := completionBody(t, validPlanJSON(t))
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "k", BaseURL: srv.URL, RatePerMinute: 1, Burst: 1})

	_, err := client.GenerateMealPlan(context.Background(), samplePlanRequest())
	require.NoError(t, err)

	_, err = client.GenerateMealPlan(context.Background(), samplePlanRequest())
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGenerateMealPlan_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(srv.URL).GenerateMealPlan(ctx, samplePlanRequest())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateMealPlan_OversizedResponse(t *testing.T) {
	body := completionBody(t, validPlanJSON(t))
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	defer server.Close()

	small := NewClient(Config{APIKey: "test-key", BaseURL: server.URL, MaxResponseBytes: int64(len(body) - 1)})
	_, err := small.GenerateMealPlan(context.Background(), samplePlanRequest())
	assert.ErrorIs(t, err, ErrInvalidResponseFormat)

	exact := NewClient(Config{APIKey: "test-key", BaseURL: server.URL, MaxResponseBytes: int64(len(body))})
	resp, err := exact.GenerateMealPlan(context.Background(), samplePlanRequest())
	require.NoError(t, err)
	assert.Len(t, resp.WeeklyPlan, 7)
}

func TestCleanResponse(t *testing.T) {
	assert.Equal(t, `{"a":1}`, cleanResponse("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":{"b":2}}`, cleanResponse("Sure! {\"a\":{\"b\":2}} Enjoy."))
	assert.Equal(t, "no braces", cleanResponse("  no braces "))
}

func TestBuildPrompt_EmptyListsSayNone(t *testing.T) {
	req := samplePlanRequest()
	req.Allergies = nil
	req.Dislikes = nil
	prompt := buildPrompt(req)
	assert.True(t, strings.Contains(prompt, "Allergies (never use): none"))
	assert.True(t, strings.Contains(prompt, "Dislikes (avoid): none"))
}
