// Package session implements the server-side session store backing the
// cookie-authenticated API. Session state lives in Redis so it survives
// process restarts for the full 30-day cookie lifetime.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNotFound indicates the presented token has no live session.
var ErrNotFound = errors.New("session not found")

const keyPrefix = "session:"

// Store binds opaque session tokens to user ids with a sliding expiry.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore constructs a session store on top of the given Redis client.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}

	return &Store{client: client, ttl: ttl}
}

// TTL returns the configured session lifetime.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Create establishes a new session for the user and returns its opaque token.
func (s *Store) Create(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()
	if err := s.client.Set(ctx, keyPrefix+token, userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to persist session: %w", err)
	}

	return token, nil
}

// Get resolves a token to the owning user id and slides the expiry forward.
func (s *Store) Get(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrNotFound
	}

	userID, err := s.client.GetEx(ctx, keyPrefix+token, s.ttl).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session: %w", err)
	}

	return userID, nil
}

// Destroy removes the session. Destroying an unknown token is not an error.
func (s *Store) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}

	return nil
}

// Close releases the underlying Redis connection.
func (s *Store) Close() error {
	return s.client.Close()
}
