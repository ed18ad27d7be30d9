package planstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"fittrack/backend/models"
)

const keyPrefix = "mealplan:latest:"

// RedisStore keeps plans as JSON under mealplan:latest:<user id>.
type RedisStore struct {
	conn *redis.Client
	ttl  time.Duration
}

// NewRedisStore parses url (redis://...) and pings the server.
func NewRedisStore(ctx context.Context, url string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	conn := redis.NewClient(opts)
	if err := conn.Ping(ctx).Err(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("unable to reach redis: %w", err)
	}
	log.Println("Connected to Redis plan store")
	return &RedisStore{conn: conn, ttl: ttl}, nil
}

func key(userID uuid.UUID) string {
	return keyPrefix + userID.String()
}

func (s *RedisStore) Save(ctx context.Context, plan *models.GeneratedPlan) error {
	if plan == nil {
		return errors.New("cannot save nil plan")
	}
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	if err := s.conn.Set(ctx, key(plan.UserID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store plan: %w", err)
	}
	return nil
}

func (s *RedisStore) Latest(ctx context.Context, userID uuid.UUID) (*models.GeneratedPlan, error) {
	val, err := s.conn.Get(ctx, key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	var plan models.GeneratedPlan
	if err := json.Unmarshal(val, &plan); err != nil {
		return nil, fmt.Errorf("failed to decode plan: %w", err)
	}
	return &plan, nil
}

func (s *RedisStore) Close() error {
	return s.conn.Close()
}
