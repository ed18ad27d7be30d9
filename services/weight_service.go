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

var ErrWeightEntryNotFound = errors.New("weight entry not found")

const weightColumns = `id, user_id, weight, date, notes, created_at, updated_at`

// WeightService manages the weight history of a user.
type WeightService struct {
	validator *validator.Validate
	db        database.DBPool
}

func NewWeightService(db database.DBPool) *WeightService {
	return &WeightService{
		validator: validator.New(),
		db:        db,
	}
}

func scanWeightEntry(row pgx.Row) (*models.WeightEntry, error) {
	var e models.WeightEntry
	if err := row.Scan(&e.ID, &e.UserID, &e.Weight, &e.Date, &e.Notes, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

// AddEntry logs a new measurement.
func (s *WeightService) AddEntry(ctx context.Context, userID uuid.UUID, req models.CreateWeightEntryRequest) (*models.WeightEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		log.Printf("Validation error adding weight entry for user %s: %v", userID, err)
		return nil, fmt.Errorf("invalid weight entry data: %w", err)
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date format (use YYYY-MM-DD): %w", err)
	}

	entry := &models.WeightEntry{
		ID:     uuid.New(),
		UserID: userID,
		Weight: req.Weight,
		Date:   date,
		Notes:  req.Notes,
	}
	query := `
		INSERT INTO weight_history (id, user_id, weight, date, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	err = s.db.QueryRow(ctx, query, entry.ID, entry.UserID, entry.Weight, entry.Date, entry.Notes).
		Scan(&entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		log.Printf("Error inserting weight entry for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to create weight entry: %w", err)
	}

	log.Printf("Weight entry %s (%.1f kg) added for user %s", entry.ID, entry.Weight, userID)
	return entry, nil
}

// ListEntries returns the history, most recent first.
func (s *WeightService) ListEntries(ctx context.Context, userID uuid.UUID) ([]models.WeightEntry, error) {
	entries := []models.WeightEntry{}
	query := `SELECT ` + weightColumns + ` FROM weight_history WHERE user_id = $1 ORDER BY date DESC, created_at DESC`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		log.Printf("Error querying weight history for user %s: %v", userID, err)
		return nil, fmt.Errorf("database error fetching weight history: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		entry, err := scanWeightEntry(rows)
		if err != nil {
			log.Printf("Error scanning weight entry row: %v", err)
			return nil, fmt.Errorf("error processing weight entry data: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err = rows.Err(); err != nil {
		log.Printf("Error after iterating weight rows: %v", err)
		return nil, fmt.Errorf("database iteration error: %w", err)
	}

	log.Printf("Fetched %d weight entries for user %s", len(entries), userID)
	return entries, nil
}

// LatestEntry returns the most recent entry by date, ties broken by creation time.
func (s *WeightService) LatestEntry(ctx context.Context, userID uuid.UUID) (*models.WeightEntry, error) {
	query := `SELECT ` + weightColumns + ` FROM weight_history WHERE user_id = $1 ORDER BY date DESC, created_at DESC LIMIT 1`
	entry, err := scanWeightEntry(s.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWeightEntryNotFound
		}
		log.Printf("Error fetching latest weight for user %s: %v", userID, err)
		return nil, fmt.Errorf("database error fetching latest weight: %w", err)
	}
	return entry, nil
}

// UpdateEntry edits an entry owned by userID.
func (s *WeightService) UpdateEntry(ctx context.Context, userID, entryID uuid.UUID, req models.UpdateWeightEntryRequest) (*models.WeightEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		log.Printf("Validation error updating weight entry %s: %v", entryID, err)
		return nil, fmt.Errorf("invalid weight entry data: %w", err)
	}

	query := "UPDATE weight_history SET updated_at = NOW()"
	args := []any{}
	argID := 1

	if req.Weight != nil {
		query += fmt.Sprintf(", weight = $%d", argID)
		args = append(args, *req.Weight)
		argID++
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date format (use YYYY-MM-DD): %w", err)
		}
		query += fmt.Sprintf(", date = $%d", argID)
		args = append(args, date)
		argID++
	}
	if req.Notes != nil {
		query += fmt.Sprintf(", notes = $%d", argID)
		args = append(args, *req.Notes)
		argID++
	}
	if len(args) == 0 {
		return nil, ErrNoUpdateData
	}

	query += fmt.Sprintf(" WHERE id = $%d AND user_id = $%d RETURNING %s", argID, argID+1, weightColumns)
	args = append(args, entryID, userID)

	entry, err := scanWeightEntry(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Weight entry %s not found for user %s", entryID, userID)
			return nil, ErrWeightEntryNotFound
		}
		log.Printf("Error updating weight entry %s: %v", entryID, err)
		return nil, fmt.Errorf("failed to update weight entry: %w", err)
	}

	log.Printf("Weight entry %s updated for user %s", entryID, userID)
	return entry, nil
}

// DeleteEntry removes an entry owned by userID.
func (s *WeightService) DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM weight_history WHERE id = $1 AND user_id = $2`, entryID, userID)
	if err != nil {
		log.Printf("Error deleting weight entry %s: %v", entryID, err)
		return fmt.Errorf("failed to delete weight entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrWeightEntryNotFound
	}
	log.Printf("Weight entry %s deleted for user %s", entryID, userID)
	return nil
}
