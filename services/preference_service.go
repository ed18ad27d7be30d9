package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"fittrack/backend/database"
	"fittrack/backend/models"
)

// PreferenceService reads and upserts meal preferences.
type PreferenceService struct {
	validator *validator.Validate
	db        database.DBPool
}

func NewPreferenceService(db database.DBPool) *PreferenceService {
	return &PreferenceService{
		validator: validator.New(),
		db:        db,
	}
}

// GetPreferences returns the stored preferences, or the defaults when the
// user never saved any.
func (s *PreferenceService) GetPreferences(ctx context.Context, userID uuid.UUID) (*models.MealPreferences, error) {
	query := `
		SELECT id, user_id, dietary_type, allergies, dislikes, daily_meals, snacks_per_day, cooking_time_preference, budget_level, created_at, updated_at
		FROM meal_preferences WHERE user_id = $1
	`
	var p models.MealPreferences
	err := s.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.DietaryType, &p.Allergies, &p.Dislikes, &p.DailyMeals, &p.SnacksPerDay,
		&p.CookingTimePreference, &p.BudgetLevel, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("No meal preferences for user %s, using defaults", userID)
			defaults := models.DefaultMealPreferences(userID)
			return &defaults, nil
		}
		log.Printf("Error fetching meal preferences for user %s: %v", userID, err)
		return nil, fmt.Errorf("database error fetching preferences: %w", err)
	}
	if p.Allergies == nil {
		p.Allergies = []string{}
	}
	if p.Dislikes == nil {
		p.Dislikes = []string{}
	}
	return &p, nil
}

// UpsertPreferences replaces the user's preferences.
func (s *PreferenceService) UpsertPreferences(ctx context.Context, userID uuid.UUID, req models.UpsertMealPreferencesRequest) (*models.MealPreferences, error) {
	if err := s.validator.Struct(req); err != nil {
		log.Printf("Validation error saving preferences for user %s: %v", userID, err)
		return nil, fmt.Errorf("invalid preferences data: %w", err)
	}

	p := &models.MealPreferences{
		UserID:                userID,
		DietaryType:           req.DietaryType,
		Allergies:             req.Allergies,
		Dislikes:              req.Dislikes,
		DailyMeals:            req.DailyMeals,
		SnacksPerDay:          req.SnacksPerDay,
		CookingTimePreference: req.CookingTimePreference,
		BudgetLevel:           req.BudgetLevel,
	}
	if p.Allergies == nil {
		p.Allergies = []string{}
	}
	if p.Dislikes == nil {
		p.Dislikes = []string{}
	}

	query := `
		INSERT INTO meal_preferences (id, user_id, dietary_type, allergies, dislikes, daily_meals, snacks_per_day, cooking_time_preference, budget_level)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO UPDATE SET
			dietary_type = EXCLUDED.dietary_type,
			allergies = EXCLUDED.allergies,
			dislikes = EXCLUDED.dislikes,
			daily_meals = EXCLUDED.daily_meals,
			snacks_per_day = EXCLUDED.snacks_per_day,
			cooking_time_preference = EXCLUDED.cooking_time_preference,
			budget_level = EXCLUDED.budget_level,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`
	err := s.db.QueryRow(ctx, query,
		uuid.New(), userID, p.DietaryType, p.Allergies, p.Dislikes, p.DailyMeals, p.SnacksPerDay,
		p.CookingTimePreference, p.BudgetLevel,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		log.Printf("Error upserting meal preferences for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to save preferences: %w", err)
	}

	log.Printf("Meal preferences saved for user %s (%s, %d meals, %d snacks)", userID, p.DietaryType, p.DailyMeals, p.SnacksPerDay)
	return p, nil
}
