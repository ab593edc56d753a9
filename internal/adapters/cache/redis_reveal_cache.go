package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"appointment-prep-service/internal/domain"
)

// RedisRevealCache is a read-through cache for reveal responses, keyed by
// appointment id. It exists so the reveal-day traffic spike does not hit the
// store for a candidate set that never changes between preps; entries are
// invalidated whenever a new prep supersedes the old one.
type RedisRevealCache struct {
	client *redis.Client
	ttl    time.Duration
}

const defaultRevealTTL = 10 * time.Minute

func NewRedisRevealCache(client *redis.Client, ttl time.Duration) *RedisRevealCache {
	if ttl <= 0 {
		ttl = defaultRevealTTL
	}
	return &RedisRevealCache{client: client, ttl: ttl}
}

func revealKey(appointmentID string) string {
	return "reveal:" + appointmentID
}

func (c *RedisRevealCache) Get(ctx context.Context, appointmentID string) (*domain.PrepWithCandidates, error) {
	raw, err := c.client.Get(ctx, revealKey(appointmentID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("reveal cache: get %q: %w", appointmentID, err)
	}

	var v domain.PrepWithCandidates
	if err := json.Unmarshal(raw, &v); err != nil {
		// A corrupt entry is a miss; the next Put overwrites it.
		return nil, nil
	}
	return &v, nil
}

func (c *RedisRevealCache) Put(ctx context.Context, appointmentID string, v *domain.PrepWithCandidates) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("reveal cache: encode %q: %w", appointmentID, err)
	}

	if err := c.client.Set(ctx, revealKey(appointmentID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("reveal cache: set %q: %w", appointmentID, err)
	}
	return nil
}

func (c *RedisRevealCache) Invalidate(ctx context.Context, appointmentID string) error {
	if err := c.client.Del(ctx, revealKey(appointmentID)).Err(); err != nil {
		return fmt.Errorf("reveal cache: del %q: %w", appointmentID, err)
	}
	return nil
}
