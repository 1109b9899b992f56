package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	appErrors "github.com/noah-isme/eduverse-api/pkg/errors"
)

// KVRepository stores small JSON documents in Redis. A nil client makes every read a miss
// and every write a no-op.
type KVRepository struct {
	client *redis.Client
}

// NewKVRepository constructs a key-value repository.
func NewKVRepository(client *redis.Client) *KVRepository {
	return &KVRepository{client: client}
}

// Enabled reports whether a Redis client backs the repository.
func (r *KVRepository) Enabled() bool {
	return r != nil && r.client != nil
}

// Get unmarshals the stored value into dest or returns appErrors.ErrCacheMiss.
func (r *KVRepository) Get(ctx context.Context, key string, dest interface{}) error {
	if !r.Enabled() {
		return appErrors.ErrCacheMiss
	}

	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return appErrors.ErrCacheMiss
		}
		return fmt.Errorf("redis get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("unmarshal value for %s: %w", key, err)
	}
	return nil
}

// Set stores value under key. A zero ttl keeps the key until it is overwritten.
func (r *KVRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if !r.Enabled() {
		return nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal value for %s: %w", key, err)
	}

	if err := r.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete removes a key.
func (r *KVRepository) Delete(ctx context.Context, key string) error {
	if !r.Enabled() {
		return nil
	}
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis delete %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying Redis connection if present.
func (r *KVRepository) Close() error {
	if !r.Enabled() {
		return nil
	}
	return r.client.Close()
}
