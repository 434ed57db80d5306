package ratelimit

import (
	"context"
	"sync"
	"testing"
)

func TestMemoryLimiterAllowsUpToLimit(t *testing.T) {
	limiter := NewMemoryLimiter()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		res, err := limiter.Allow(ctx, "client-1", 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
		if res.Remaining != 5-i-1 {
			t.Errorf("request %d remaining = %d, want %d", i+1, res.Remaining, 5-i-1)
		}
	}

	res, err := limiter.Allow(ctx, "client-1", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Allowed {
		t.Error("sixth request should be rejected")
	}
	if res.Remaining != 0 {
		t.Errorf("remaining = %d, want 0", res.Remaining)
	}
}

func TestMemoryLimiterKeysIndependent(t *testing.T) {
	limiter := NewMemoryLimiter()
	ctx := context.Background()

	if res, _ := limiter.Allow(ctx, "client-1", 1); !res.Allowed {
		t.Fatal("first client should be allowed")
	}
	if res, _ := limiter.Allow(ctx, "client-1", 1); res.Allowed {
		t.Fatal("first client should now be limited")
	}
	if res, _ := limiter.Allow(ctx, "client-2", 1); !res.Allowed {
		t.Error("second client must not share the first client's window")
	}
}

func TestMemoryLimiterConcurrent(t *testing.T) {
	limiter := NewMemoryLimiter()
	ctx := context.Background()

	const workers = 20
	allowed := make(chan bool, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := limiter.Allow(ctx, "shared", 10)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			allowed <- res.Allowed
		}()
	}
	wg.Wait()
	close(allowed)

	count := 0
	for ok := range allowed {
		if ok {
			count++
		}
	}
	if count != 10 {
		t.Errorf("exactly 10 of %d requests should pass, got %d", workers, count)
	}
}

func TestRouterAdapter(t *testing.T) {
	adapter := RouterAdapter{Limiter: NewMemoryLimiter()}
	ctx := context.Background()

	ok, err := adapter.Allow(ctx, "client-1", 1)
	if err != nil || !ok {
		t.Fatalf("first request should pass: %v, %v", ok, err)
	}
	ok, err = adapter.Allow(ctx, "client-1", 1)
	if err != nil || ok {
		t.Fatalf("second request should be limited: %v, %v", ok, err)
	}
}
