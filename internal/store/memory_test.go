package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Value string `json:"value"`
}

func TestMemoryStoreSetGet(t *testing.T) {
	s, err := New(DriverMemory)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", &testPayload{Value: "hello"}, time.Minute))

	var got testPayload
	found, err := s.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "hello", got.Value)

	found, err = s.Get(ctx, "missing", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStoreExpiry(t *testing.T) {
	s, err := New(DriverMemory)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "short", &testPayload{Value: "x"}, 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	var got testPayload
	found, err := s.Get(ctx, "short", &got)
	require.NoError(t, err)
	assert.False(t, found, "expired entry must read as a miss")

	n, err := s.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "expired entry must not be counted")
}

func TestMemoryStoreSweep(t *testing.T) {
	s := newMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "dead", &testPayload{Value: "a"}, 5*time.Millisecond))
	require.NoError(t, s.Set(ctx, "live", &testPayload{Value: "b"}, time.Minute))
	time.Sleep(10 * time.Millisecond)

	require.NoError(t, s.Sweep(ctx))

	s.mu.RLock()
	_, deadKept := s.entries["dead"]
	_, liveKept := s.entries["live"]
	s.mu.RUnlock()
	assert.False(t, deadKept)
	assert.True(t, liveKept)
}

func TestMemoryStoreDelete(t *testing.T) {
	s, err := New(DriverMemory)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", &testPayload{Value: "v"}, time.Minute))
	require.NoError(t, s.Delete(ctx, "k"))

	var got testPayload
	found, err := s.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	_, err := New(Driver("bolt"))
	assert.ErrorIs(t, err, ErrInvalidDriver)
}

func TestNewRedisRequiresClient(t *testing.T) {
	_, err := New(DriverRedis)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
