package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore backs the key space with a Redis instance. Values are kept
// without a TTL; the storefront owns key lifecycle explicitly.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore wraps the given client. The optional prefix namespaces all
// keys so several storefront sessions can share one Redis database.
func NewRedisStore(client *redis.Client, prefix string) (*RedisStore, error) {
	if client == nil {
		return nil, errors.New("kvstore: redis client is required")
	}
	return &RedisStore{client: client, prefix: prefix}, nil
}

// Get implements the Store interface.
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kvstore: redis get failed: %w", err)
	}
	return value, true, nil
}

// Set implements the Store interface.
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("kvstore: redis set failed: %w", err)
	}
	return nil
}

// Delete implements the Store interface.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("kvstore: redis delete failed: %w", err)
	}
	return nil
}

func (s *RedisStore) key(key string) string {
	if s.prefix == "" {
		return key
	}
	return fmt.Sprintf("%s:%s", s.prefix, key)
}
