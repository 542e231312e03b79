package chat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tantsahamarket/chatbot/internal/models"
	"github.com/tantsahamarket/chatbot/internal/store"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	s, err := store.New(store.DriverMemory)
	require.NoError(t, err)
	return s
}

func TestRateLimiterWindow(t *testing.T) {
	rl := NewRateLimiter(newTestStore(t))
	ctx := context.Background()

	for i := 0; i < models.RateLimitMax; i++ {
		res, err := rl.Check(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, res.Allowed, "request %d should pass", i+1)
		assert.Equal(t, models.RateLimitMax-i-1, res.Remaining)
	}

	res, err := rl.Check(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Zero(t, res.Remaining)
	assert.True(t, res.ResetTime.After(time.Now()))
}

func TestRateLimiterPerIP(t *testing.T) {
	rl := NewRateLimiter(newTestStore(t))
	ctx := context.Background()

	for i := 0; i < models.RateLimitMax; i++ {
		_, err := rl.Check(ctx, "10.0.0.1")
		require.NoError(t, err)
	}

	res, err := rl.Check(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, res.Allowed, "another IP gets its own window")
}

func TestRateLimiterWindowReset(t *testing.T) {
	rl := &RateLimiter{store: newTestStore(t), window: 20 * time.Millisecond, max: 1}
	ctx := context.Background()

	res, err := rl.Check(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, res.Allowed)

	res, err = rl.Check(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, res.Allowed)

	time.Sleep(30 * time.Millisecond)

	res, err = rl.Check(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, res.Allowed, "a fresh window starts after expiry")
}

func TestRateLimiterCount(t *testing.T) {
	rl := NewRateLimiter(newTestStore(t))
	ctx := context.Background()

	_, err := rl.Check(ctx, "10.0.0.1")
	require.NoError(t, err)
	_, err = rl.Check(ctx, "10.0.0.2")
	require.NoError(t, err)

	assert.Equal(t, 2, rl.Count(ctx))
}
