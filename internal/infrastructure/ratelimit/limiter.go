package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Result carries the outcome of one rate limit check.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Limiter is the sliding-window rate limiter contract. Implementations must
// be safe for concurrent use; the router and the HTTP middleware share one
// instance across all requests.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int) (*Result, error)
}

// RedisLimiter implements the sliding window over Redis sorted sets, so the
// window is shared across processes.
type RedisLimiter struct {
	client *redis.Client
	window time.Duration
}

func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{client: client, window: time.Minute}
}

// Allow records the request and checks it against the window.
func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int) (*Result, error) {
	now := time.Now()
	windowStart := now.Add(-l.window)

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart.UnixNano()))
	countCmd := pipe.ZCard(ctx, key)
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: fmt.Sprintf("%d", now.UnixNano()),
	})
	pipe.Expire(ctx, key, l.window+time.Second)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("redis pipeline failed: %w", err)
	}

	count := int(countCmd.Val())
	res := &Result{
		Allowed:   count < limit,
		Limit:     limit,
		Remaining: max(limit-count-1, 0),
		ResetAt:   now.Add(l.window),
	}
	if !res.Allowed {
		// Drop the entry just recorded, the newest member, so a rejected
		// request does not extend the caller's window.
		l.client.ZPopMax(ctx, key)
		res.Remaining = 0
	}
	return res, nil
}

// MemoryLimiter keeps the sliding window in process memory. Suitable for
// single-instance deployments and tests.
type MemoryLimiter struct {
	mu       sync.Mutex
	requests map[string][]time.Time
	window   time.Duration
}

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{
		requests: make(map[string][]time.Time),
		window:   time.Minute,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string, limit int) (*Result, error) {
	now := time.Now()
	windowStart := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.requests[key][:0]
	for _, ts := range l.requests[key] {
		if ts.After(windowStart) {
			kept = append(kept, ts)
		}
	}

	count := len(kept)
	allowed := count < limit
	if allowed {
		kept = append(kept, now)
	}
	l.requests[key] = kept

	remaining := max(limit-count-1, 0)
	if !allowed {
		remaining = 0
	}

	return &Result{
		Allowed:   allowed,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   now.Add(l.window),
	}, nil
}

// RouterAdapter exposes a Limiter through the router's boolean contract.
type RouterAdapter struct {
	Limiter Limiter
}

func (a RouterAdapter) Allow(ctx context.Context, key string, limit int) (bool, error) {
	res, err := a.Limiter.Allow(ctx, key, limit)
	if err != nil {
		return false, err
	}
	return res.Allowed, nil
}
