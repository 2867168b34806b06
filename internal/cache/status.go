package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/wavehouse/studio-booking/internal/dto"
)

const keyPrefix = "verification:status:"

// StatusCache keeps recent verification status answers keyed by email.
// Get reports a miss as nil, nil.
type StatusCache interface {
	Get(ctx context.Context, email string) (*dto.VerificationStatusDTO, error)
	Set(ctx context.Context, email string, status *dto.VerificationStatusDTO) error
	Invalidate(ctx context.Context, email string) error
	Close() error
}

func Key(email string) string {
	return keyPrefix + email
}

// redisClient is the subset of *redis.Client the cache uses.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Close() error
}

type RedisStatusCache struct {
	client redisClient
	ttl    time.Duration
}

// NewRedisStatusCache connects to url and pings the server before returning.
func NewRedisStatusCache(ctx context.Context, url string, ttl time.Duration) (*RedisStatusCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStatusCache{client: client, ttl: ttl}, nil
}

func (c *RedisStatusCache) Get(ctx context.Context, email string) (*dto.VerificationStatusDTO, error) {
	raw, err := c.client.Get(ctx, Key(email)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get status from Redis: %w", err)
	}

	var status dto.VerificationStatusDTO
	if err := json.Unmarshal(raw, &status); err != nil {
		return nil, fmt.Errorf("corrupt cached status: %w", err)
	}
	return &status, nil
}

func (c *RedisStatusCache) Set(ctx context.Context, email string, status *dto.VerificationStatusDTO) error {
	raw, err := json.Marshal(status)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, Key(email), raw, c.ttl).Err()
}

func (c *RedisStatusCache) Invalidate(ctx context.Context, email string) error {
	return c.client.Del(ctx, Key(email)).Err()
}

func (c *RedisStatusCache) Close() error {
	return c.client.Close()
}

// Noop is used when Redis is not configured. Every lookup misses.
type Noop struct{}

func (Noop) Get(context.Context, string) (*dto.VerificationStatusDTO, error) { return nil, nil }
func (Noop) Set(context.Context, string, *dto.VerificationStatusDTO) error  { return nil }
func (Noop) Invalidate(context.Context, string) error                       { return nil }
func (Noop) Close() error                                                   { return nil }

var (
	_ redisClient = (*redis.Client)(nil)
	_ StatusCache = (*RedisStatusCache)(nil)
	_ StatusCache = Noop{}
)
