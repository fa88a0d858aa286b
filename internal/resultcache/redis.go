package resultcache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "hrload-result||"

var _ Store = (*RedisStore)(nil)

// RedisStore shares entries between recompute runs and hosts.
type RedisStore struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRedisStore(redisClient *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func redisKey(key string) string {
	return redisKeyPrefix + key
}

func (s *RedisStore) Get(ctx context.Context, key string) (Entry, bool, error) {
	cmd := s.redisClient.Get(ctx, redisKey(key))
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return Entry{}, false, nil
		}
		return Entry{}, false, fmt.Errorf("redis get %s: %w", key, err)
	}

	entry, err := decode([]byte(cmd.Val()))
	if err != nil {
		return Entry{}, false, fmt.Errorf("decode redis entry %s: %w", key, err)
	}
	return entry, true, nil
}

func (s *RedisStore) Put(ctx context.Context, key string, entry Entry) error {
	raw, err := encode(entry)
	if err != nil {
		return fmt.Errorf("encode entry %s: %w", key, err)
	}
	if err := s.redisClient.Set(ctx, redisKey(key), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Invalidate(ctx context.Context, key string) error {
	if err := s.redisClient.Del(ctx, redisKey(key)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
