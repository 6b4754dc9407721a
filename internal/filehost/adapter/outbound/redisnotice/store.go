package redisnotice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anthanhphan/go-file-board/internal/filehost/port"
	"github.com/anthanhphan/go-file-board/pkg/resilience"
	"github.com/redis/go-redis/v9"
)

// Store persists the notice text under a single Redis key.
// Calls go through a circuit breaker so an unreachable Redis fails fast.
type Store struct {
	client  *redis.Client
	key     string
	breaker *resilience.CircuitBreaker
}

// Ensure Store implements port.NoticeStore.
var _ port.NoticeStore = (*Store)(nil)

func NewStore(client *redis.Client, key string) *Store {
	return &Store{
		client: client,
		key:    key,
		breaker: resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
			Name:             "redis-notice",
			FailureThreshold: 3,
			OpenTimeout:      10 * time.Second,
		}),
	}
}

// Load returns the stored notice, or "" when none was saved yet.
func (s *Store) Load(ctx context.Context) (string, error) {
	var content string
	err := s.breaker.Execute(ctx, func(ctx context.Context) error {
		v, err := s.client.Get(ctx, s.key).Result()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		if err != nil {
			return err
		}
		content = v
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("load notice %s: %w", s.key, err)
	}
	return content, nil
}

func (s *Store) Save(ctx context.Context, content string) error {
	err := s.breaker.Execute(ctx, func(ctx context.Context) error {
		return s.client.Set(ctx, s.key, content, 0).Err()
	})
	if err != nil {
		return fmt.Errorf("save notice %s: %w", s.key, err)
	}
	return nil
}
