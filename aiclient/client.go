// Package aiclient requests weekly meal plans from an OpenAI-compatible chat
// completion service.
package aiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"fittrack/backend/mealplan"
	"fittrack/backend/models"
)

const (
	DefaultBaseURL     = "https://api.openai.com/v1"
	DefaultModel       = "gpt-4o-mini"
	DefaultTemperature = 0.7
	DefaultTimeout     = 60 * time.Second

	// DefaultMaxResponseBytes caps how much of a response body is read.
	DefaultMaxResponseBytes = 4 << 20
)

// Config holds the connection settings of the completion service.
// A zero RatePerMinute disables local throttling.
type Config struct {
	APIKey        string
	BaseURL       string
	Model         string
	Temperature   float64
	Timeout       time.Duration
	RatePerMinute int
	Burst         int

	MaxResponseBytes int64
}

// PlanRequest carries everything the prompt needs.
type PlanRequest struct {
	Goal          models.Goal
	CurrentWeight float64
	TargetWeight  float64
	Height        float64
	Age           int
	Gender        models.Gender
	DailyCalories int
	Protein       int
	Carbs         int
	Fats          int
	DietaryType   models.DietaryType
	Allergies     []string
	Dislikes      []string
	DailyMeals    int
	SnacksPerDay  int
	CookingTime   models.CookingTime
	BudgetLevel   models.BudgetLevel
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	Temperature    float64        `json:"temperature"`
	ResponseFormat responseFormat `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Client talks to the completion service. It is safe for concurrent use.
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	client      *http.Client
	limiter     *rate.Limiter
	maxBody     int64
}

// NewClient fills unset fields of cfg with defaults.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxResponseBytes <= 0 {
		cfg.MaxResponseBytes = DefaultMaxResponseBytes
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RatePerMinute > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RatePerMinute)), burst)
	}

	return &Client{
		apiKey:      cfg.APIKey,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		client:      &http.Client{Timeout: cfg.Timeout},
		limiter:     limiter,
		maxBody:     cfg.MaxResponseBytes,
	}
}

// GenerateMealPlan makes a single attempt, without retry, and returns the
// plan only if it passes shape validation.
func (c *Client) GenerateMealPlan(ctx context.Context, req PlanRequest) (*models.AIPlanResponse, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if !c.limiter.Allow() {
		return nil, ErrRateLimited
	}

	content, err := c.complete(ctx, buildPrompt(req))
	if err != nil {
		return nil, err
	}

	var plan models.AIPlanResponse
	if err := json.Unmarshal([]byte(cleanResponse(content)), &plan); err != nil {
		log.Printf("AI plan content is not valid JSON: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponseFormat, err)
	}
	if err := mealplan.ValidateWeeklyPlan(plan.WeeklyPlan); err != nil {
		log.Printf("AI plan failed validation: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponseFormat, err)
	}

	log.Printf("AI meal plan generated (%d days)", len(plan.WeeklyPlan))
	return &plan, nil
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature:    c.temperature,
		ResponseFormat: responseFormat{Type: "json_object"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		log.Printf("AI request failed: %v", err)
		return "", fmt.Errorf("AI request failed: %w", err)
	}
	defer resp.Body.Close()

	// One extra byte tells an oversized body apart from one of exactly maxBody
	respBody, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return "", fmt.Errorf("failed to read AI response: %w", err)
	}
	if int64(len(respBody)) > c.maxBody {
		log.Printf("AI response exceeds %d bytes, discarding", c.maxBody)
		return "", fmt.Errorf("%w: response larger than %d bytes", ErrInvalidResponseFormat, c.maxBody)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		svcErr := newServiceError(resp.StatusCode, respBody)
		log.Printf("AI service returned status %d: %s", resp.StatusCode, svcErr.Message)
		return "", svcErr
	}

	var chat chatResponse
	if err := json.Unmarshal(respBody, &chat); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidResponseFormat, err)
	}
	if len(chat.Choices) == 0 || strings.TrimSpace(chat.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("%w: no completion content", ErrInvalidResponseFormat)
	}
	return chat.Choices[0].Message.Content, nil
}
