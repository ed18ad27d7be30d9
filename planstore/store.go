// Package planstore keeps the latest accepted meal plan of each user.
package planstore

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"fittrack/backend/models"
)

var ErrPlanNotFound = errors.New("no meal plan generated yet")

// PlanStore holds one plan per user. Save replaces the previous plan wholesale.
type PlanStore interface {
	Save(ctx context.Context, plan *models.GeneratedPlan) error
	Latest(ctx context.Context, userID uuid.UUID) (*models.GeneratedPlan, error)
}

// MemoryStore is the in-process PlanStore used when no Redis URL is configured.
type MemoryStore struct {
	mu    sync.RWMutex
	plans map[uuid.UUID]models.GeneratedPlan
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{plans: make(map[uuid.UUID]models.GeneratedPlan)}
}

func (s *MemoryStore) Save(_ context.Context, plan *models.GeneratedPlan) error {
	if plan == nil {
		return errors.New("cannot save nil plan")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plans[plan.UserID] = *plan
	return nil
}

func (s *MemoryStore) Latest(_ context.Context, userID uuid.UUID) (*models.GeneratedPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	plan, ok := s.plans[userID]
	if !ok {
		return nil, ErrPlanNotFound
	}
	return &plan, nil
}
