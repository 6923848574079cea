package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Store maps opaque session tokens to account ids.
type Store interface {
	Create(ctx context.Context, accountID string) (string, error)
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
	Close() error
}

const keyPrefix = "session:"

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *redisStore) Create(ctx context.Context, accountID string) (string, error) {
	token := uuid.New().String()

	if err := s.client.Set(ctx, keyPrefix+token, accountID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return token, nil
}

// Get returns the account id for a token, or "" when the session does not exist.
func (s *redisStore) Get(ctx context.Context, token string) (string, error) {
	accountID, err := s.client.Get(ctx, keyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load session: %w", err)
	}

	return accountID, nil
}

func (s *redisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

func (s *redisStore) Close() error {
	return s.client.Close()
}
