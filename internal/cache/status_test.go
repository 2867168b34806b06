package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/wavehouse/studio-booking/internal/dto"
)

func TestKey(t *testing.T) {
	if got := Key("a@x.com"); got != "verification:status:a@x.com" {
		t.Errorf("unexpected key %s", got)
	}
}

func TestNoopAlwaysMisses(t *testing.T) {
	var c StatusCache = Noop{}
	ctx := context.Background()

	if err := c.Set(ctx, "a@x.com", &dto.VerificationStatusDTO{Exists: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := c.Get(ctx, "a@x.com")
	if err != nil || got != nil {
		t.Errorf("expected miss, got %+v %v", got, err)
	}
}

func TestNewRedisStatusCacheRejectsBadURL(t *testing.T) {
	if _, err := NewRedisStatusCache(context.Background(), "http://nope", time.Second); err == nil {
		t.Error("expected error for non-redis url")
	}
}

type mockRedis struct {
	getFunc func(ctx context.Context, key string) *redis.StringCmd
	setFunc func(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd
	delFunc func(ctx context.Context, keys ...string) *redis.IntCmd
}

func (m *mockRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	return m.getFunc(ctx, key)
}

func (m *mockRedis) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	return m.setFunc(ctx, key, value, ttl)
}

func (m *mockRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	return m.delFunc(ctx, keys...)
}

func (m *mockRedis) Close() error { return nil }

// newMemoryRedis stores raw values in a map and records the TTL of each Set.
func newMemoryRedis() (*mockRedis, map[string]string, map[string]time.Duration) {
	data := map[string]string{}
	ttls := map[string]time.Duration{}

	return &mockRedis{
		getFunc: func(_ context.Context, key string) *redis.StringCmd {
			v, ok := data[key]
			if !ok {
				return redis.NewStringResult("", redis.Nil)
			}
			return redis.NewStringResult(v, nil)
		},
		setFunc: func(_ context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
			data[key] = string(value.([]byte))
			ttls[key] = ttl
			return redis.NewStatusResult("OK", nil)
		},
		delFunc: func(_ context.Context, keys ...string) *redis.IntCmd {
			var n int64
			for _, k := range keys {
				if _, ok := data[k]; ok {
					delete(data, k)
					n++
				}
			}
			return redis.NewIntResult(n, nil)
		},
	}, data, ttls
}

func TestRedisStatusCacheRoundTrip(t *testing.T) {
	client, data, ttls := newMemoryRedis()
	c := &RedisStatusCache{client: client, ttl: 30 * time.Second}
	ctx := context.Background()

	want := &dto.VerificationStatusDTO{Exists: true, IsVerified: true, VerificationStatus: "verified", TotalBookings: 4}
	if err := c.Set(ctx, "a@x.com", want); err != nil {
		t.Fatalf("set: %v", err)
	}
	if ttls[Key("a@x.com")] != 30*time.Second {
		t.Errorf("expected ttl 30s, got %s", ttls[Key("a@x.com")])
	}
	if _, ok := data[Key("a@x.com")]; !ok {
		t.Fatalf("expected value under %s, got %v", Key("a@x.com"), data)
	}

	got, err := c.Get(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || *got != *want {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	if err := c.Invalidate(ctx, "a@x.com"); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	got, err = c.Get(ctx, "a@x.com")
	if err != nil || got != nil {
		t.Errorf("expected miss after invalidate, got %+v %v", got, err)
	}
}

func TestRedisStatusCacheGet(t *testing.T) {
	tests := []struct {
		name      string
		result    *redis.StringCmd
		expectHit bool
		expectErr bool
	}{
		{
			name:   "miss",
			result: redis.NewStringResult("", redis.Nil),
		},
		{
			name:      "hit",
			result:    redis.NewStringResult(`{"exists":true,"is_verified":true,"verification_status":"verified","total_bookings":1}`, nil),
			expectHit: true,
		},
		{
			name:      "corrupt_entry",
			result:    redis.NewStringResult("{not json", nil),
			expectErr: true,
		},
		{
			name:      "server_error",
			result:    redis.NewStringResult("", errors.New("connection refused")),
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockRedis{
				getFunc: func(_ context.Context, key string) *redis.StringCmd {
					if key != Key("a@x.com") {
						t.Errorf("unexpected key %s", key)
					}
					return tt.result
				},
			}
			c := &RedisStatusCache{client: client, ttl: time.Second}

			got, err := c.Get(context.Background(), "a@x.com")
			if tt.expectErr != (err != nil) {
				t.Fatalf("expected error=%v, got %v", tt.expectErr, err)
			}
			if tt.expectHit != (got != nil) {
				t.Errorf("expected hit=%v, got %+v", tt.expectHit, got)
			}
		})
	}
}

func TestRedisStatusCacheWriteErrors(t *testing.T) {
	client := &mockRedis{
		setFunc: func(context.Context, string, interface{}, time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("", errors.New("READONLY"))
		},
		delFunc: func(context.Context, ...string) *redis.IntCmd {
			return redis.NewIntResult(0, errors.New("READONLY"))
		},
	}
	c := &RedisStatusCache{client: client, ttl: time.Second}
	ctx := context.Background()

	if err := c.Set(ctx, "a@x.com", &dto.VerificationStatusDTO{}); err == nil {
		t.Error("expected set error")
	}
	if err := c.Invalidate(ctx, "a@x.com"); err == nil {
		t.Error("expected invalidate error")
	}
}
