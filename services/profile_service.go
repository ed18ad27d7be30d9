package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"fittrack/backend/database"
	"fittrack/backend/models"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("onboarding already completed")
	ErrNoUpdateData         = errors.New("no update data provided")
)

const profileColumns = `id, user_id, goal, current_weight, target_weight, height, age, gender, onboarding_completed, onboarding_completed_at, created_at, updated_at`

// ProfileService handles the user profile created at onboarding.
type ProfileService struct {
	validator *validator.Validate
	db        database.DBPool
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(db database.DBPool) *ProfileService {
	return &ProfileService{
		validator: validator.New(),
		db:        db,
	}
}

func scanProfile(row pgx.Row) (*models.UserProfile, error) {
	var p models.UserProfile
	err := row.Scan(
		&p.ID, &p.UserID, &p.Goal, &p.CurrentWeight, &p.TargetWeight, &p.Height, &p.Age, &p.Gender,
		&p.OnboardingCompleted, &p.OnboardingCompletedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CompleteOnboarding creates the profile and the first weight history entry
// in a single transaction.
func (s *ProfileService) CompleteOnboarding(ctx context.Context, userID uuid.UUID, req models.OnboardingRequest) (*models.UserProfile, error) {
	if err := s.validator.Struct(req); err != nil {
		log.Printf("Validation error during onboarding for user %s: %v", userID, err)
		return nil, fmt.Errorf("invalid onboarding data: %w", err)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("Error starting onboarding transaction for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx) // No-op once committed

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM user_profiles WHERE user_id = $1)`, userID).Scan(&exists)
	if err != nil {
		log.Printf("Error checking existing profile for user %s: %v", userID, err)
		return nil, fmt.Errorf("database error checking profile: %w", err)
	}
	if exists {
		log.Printf("Onboarding rejected for user %s: profile already exists", userID)
		return nil, ErrProfileAlreadyExists
	}

	now := time.Now().UTC()
	profile := &models.UserProfile{
		ID:                    uuid.New(),
		UserID:                userID,
		Goal:                  req.Goal,
		CurrentWeight:         req.CurrentWeight,
		TargetWeight:          req.TargetWeight,
		Height:                req.Height,
		Age:                   req.Age,
		Gender:                req.Gender,
		OnboardingCompleted:   true,
		OnboardingCompletedAt: &now,
	}

	insertProfile := `
		INSERT INTO user_profiles (id, user_id, goal, current_weight, target_weight, height, age, gender, onboarding_completed, onboarding_completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`
	err = tx.QueryRow(ctx, insertProfile,
		profile.ID, profile.UserID, profile.Goal, profile.CurrentWeight, profile.TargetWeight,
		profile.Height, profile.Age, profile.Gender, profile.OnboardingCompleted, profile.OnboardingCompletedAt,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		log.Printf("Error inserting profile for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	insertWeight := `
		INSERT INTO weight_history (id, user_id, weight, date, notes)
		VALUES ($1, $2, $3, $4, $5)
	`
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if _, err = tx.Exec(ctx, insertWeight, uuid.New(), userID, req.CurrentWeight, today, nil); err != nil {
		log.Printf("Error inserting initial weight entry for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to record initial weight: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		log.Printf("Error committing onboarding for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to commit onboarding: %w", err)
	}

	log.Printf("Onboarding completed for user %s (goal %s)", userID, profile.Goal)
	return profile, nil
}

// GetProfile retrieves the profile of a user.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM user_profiles WHERE user_id = $1`
	profile, err := scanProfile(s.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		log.Printf("Error fetching profile for user %s: %v", userID, err)
		return nil, fmt.Errorf("database error fetching profile: %w", err)
	}
	return profile, nil
}

// UpdateProfile changes only the provided fields.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req models.UpdateProfileRequest) (*models.UserProfile, error) {
	if err := s.validator.Struct(req); err != nil {
		log.Printf("Validation error during profile update for user %s: %v", userID, err)
		return nil, fmt.Errorf("invalid profile data: %w", err)
	}

	query := "UPDATE user_profiles SET updated_at = NOW()"
	args := []any{}
	argID := 1

	set := func(column string, value any) {
		query += fmt.Sprintf(", %s = $%d", column, argID)
		args = append(args, value)
		argID++
	}
	if req.Goal != nil {
		set("goal", *req.Goal)
	}
	if req.CurrentWeight != nil {
		set("current_weight", *req.CurrentWeight)
	}
	if req.TargetWeight != nil {
		set("target_weight", *req.TargetWeight)
	}
	if req.Height != nil {
		set("height", *req.Height)
	}
	if req.Age != nil {
		set("age", *req.Age)
	}
	if req.Gender != nil {
		set("gender", *req.Gender)
	}

	if len(args) == 0 {
		log.Printf("No fields provided for profile update for user %s", userID)
		return nil, ErrNoUpdateData
	}

	query += fmt.Sprintf(" WHERE user_id = $%d RETURNING %s", argID, profileColumns)
	args = append(args, userID)

	profile, err := scanProfile(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Profile update failed: no profile for user %s", userID)
			return nil, ErrProfileNotFound
		}
		log.Printf("Error updating profile for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to update profile in database: %w", err)
	}

	log.Printf("Profile updated successfully for user %s", userID)
	return profile, nil
}
