package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucket_BurstThenDeny(t *testing.T) {
	bucket := newTokenBucket(4, 0.5)

	for i := 0; i < 4; i++ {
		assert.True(t, bucket.allow(), "request %d should fit within burst", i+1)
	}
	assert.False(t, bucket.allow(), "bucket should be empty after burst")
}

func TestTokenBucket_Refill(t *testing.T) {
	// 20 tokens/sec so the test does not need a full second of sleep.
	bucket := newTokenBucket(2, 20.0)
	bucket.allow()
	bucket.allow()
	require.False(t, bucket.allow())

	time.Sleep(80 * time.Millisecond)

	assert.True(t, bucket.allow(), "token should have refilled")
}

func TestTokenBucket_GetStatus(t *testing.T) {
	bucket := newTokenBucket(6, 1.0)
	bucket.allow()
	bucket.allow()

	remaining, resetTime := bucket.getStatus()
	assert.Equal(t, 4, remaining)
	assert.False(t, resetTime.Before(time.Now()), "reset time should not be in the past")
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	tests := []struct {
		name      string
		path      string
		method    string
		wantLimit int
		wantNil   bool
	}{
		{"match endpoint exact", "/match", "POST", 60, false},
		{"candidate ranking via prefix", "/jobs/9d2c/candidates", "GET", 120, false},
		{"recommendations via prefix", "/candidates/17aa/recommendations", "GET", 120, false},
		{"health check unlimited", "/health", "GET", 0, false},
		{"method mismatch", "/match", "GET", 0, true},
		{"unknown path", "/admin", "POST", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantLimit, got.Limit)
		})
	}
}

func TestLimiter_DefaultLimit(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  3,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := limiter.Allow("10.0.0.7", "/unmapped", "GET")
		require.True(t, allowed, "request %d should be allowed", i+1)
		assert.Equal(t, 3, info.Limit)
		assert.Equal(t, 2-i, info.Remaining)
	}

	allowed, info := limiter.Allow("10.0.0.7", "/unmapped", "GET")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ScoringEndpointStricterThanDefault(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  500,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/match", Method: "POST", Limit: 60, Window: time.Minute, Burst: 2},
		},
	})
	defer limiter.Stop()

	client := "10.0.0.8"

	// Burst of 2, then the scoring endpoint throttles.
	allowed, _ := limiter.Allow(client, "/match", "POST")
	require.True(t, allowed)
	allowed, _ = limiter.Allow(client, "/match", "POST")
	require.True(t, allowed)
	allowed, info := limiter.Allow(client, "/match", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 60, info.Limit)

	// Other endpoints still run on the roomier default.
	allowed, info = limiter.Allow(client, "/jobs/abc/candidates", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 500, info.Limit)
}

func TestLimiter_HealthCheckUnlimited(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    1,
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(),
	})
	defer limiter.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := limiter.Allow("10.0.0.9", "/health", "GET")
		require.True(t, allowed, "health check %d should bypass limiting", i+1)
	}
}

func TestLimiter_Whitelist(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"10.1.1.1": true},
	})
	defer limiter.Stop()

	for i := 0; i < 20; i++ {
		allowed, info := limiter.Allow("10.1.1.1", "/match", "POST")
		require.True(t, allowed, "whitelisted client %d should be allowed", i+1)
		assert.Equal(t, 0, info.Limit)
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Blacklist:     map[string]bool{"203.0.113.5": true},
	})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("203.0.113.5", "/match", "POST")
	assert.False(t, allowed, "blacklisted client should be denied")
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 20; i++ {
		allowed, info := limiter.Allow("10.0.0.1", "/match", "POST")
		require.True(t, allowed)
		assert.Equal(t, 0, info.Limit)
	}
}

func TestLimiter_ClientsIsolated(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("10.2.0.1", "/match", "POST")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("10.2.0.1", "/match", "POST")
	require.False(t, allowed, "first client exhausted its bucket")

	allowed, _ = limiter.Allow("10.2.0.2", "/match", "POST")
	assert.True(t, allowed, "second client has its own bucket")
}

func TestLimiter_Concurrent(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  40,
		DefaultWindow: time.Hour, // no meaningful refill during the test
	})
	defer limiter.Stop()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 120; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, _ := limiter.Allow("10.3.0.1", "/match", "POST")
			if ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 40, allowed, "exactly the bucket capacity should pass")
}

func TestLimiter_CleanupKeepsActiveBuckets(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    10,
		DefaultWindow:   time.Minute,
		CleanupInterval: 50 * time.Millisecond,
	})
	defer limiter.Stop()

	for i := 0; i < 4; i++ {
		client := fmt.Sprintf("10.4.0.%d", i+1)
		allowed, _ := limiter.Allow(client, "/match", "POST")
		require.True(t, allowed)
	}

	// Recently accessed buckets survive a cleanup cycle.
	time.Sleep(80 * time.Millisecond)
	for i := 0; i < 4; i++ {
		client := fmt.Sprintf("10.4.0.%d", i+1)
		allowed, _ := limiter.Allow(client, "/match", "POST")
		assert.True(t, allowed, "client %s should still be tracked", client)
	}
}

func TestNewLimiter_NilConfig(t *testing.T) {
	limiter := NewLimiter(nil)
	defer limiter.Stop()

	require.NotNil(t, limiter)

	allowed, info := limiter.Allow("10.5.0.1", "/match", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 1000, info.Limit)
}
