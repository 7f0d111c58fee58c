package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResponseStore caches rendered catalog responses. The catalog snapshot is
// immutable for a term, so entries only need a TTL, never invalidation.
type ResponseStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResponseStore wraps a redis client with a fixed TTL.
func NewResponseStore(client *redis.Client, ttl time.Duration) *ResponseStore {
	return &ResponseStore{client: client, ttl: ttl}
}

// Get returns the cached body for a key, or (nil, false) on a miss.
func (s *ResponseStore) Get(ctx context.Context, key string) ([]byte, bool) {
	if s == nil || s.client == nil {
		return nil, false
	}
	body, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			// Treat transport errors as misses; the origin still answers.
			return nil, false
		}
		return nil, false
	}
	return body, true
}

// Set stores a rendered body under the key for the configured TTL.
func (s *ResponseStore) Set(ctx context.Context, key string, body []byte) {
	if s == nil || s.client == nil {
		return
	}
	_ = s.client.Set(ctx, key, body, s.ttl).Err()
}
