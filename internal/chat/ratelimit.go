package chat

import (
	"context"
	"time"

	"github.com/tantsahamarket/chatbot/internal/models"
	"github.com/tantsahamarket/chatbot/internal/store"
)

// RateLimitResult reports one fixed-window decision.
type RateLimitResult struct {
	Allowed   bool
	Remaining int
	ResetTime time.Time
}

type rateLimitRecord struct {
	Count     int   `json:"count"`
	ResetTime int64 `json:"resetTime"` // unix milliseconds
}

// RateLimiter is a fixed-window per-IP counter over a Store. No
// sliding window and no cross-window memory; with the memory driver it
// is correct for a single process only, with the Redis driver the
// window is shared between instances (last-writer-wins on concurrent
// increments, acceptable for this traffic).
type RateLimiter struct {
	store  store.Store
	window time.Duration
	max    int
}

func NewRateLimiter(s store.Store) *RateLimiter {
	return &RateLimiter{
		store:  s,
		window: models.RateLimitWindow,
		max:    models.RateLimitMax,
	}
}

// Check counts a request from ip against the current window.
func (rl *RateLimiter) Check(ctx context.Context, ip string) (RateLimitResult, error) {
	now := time.Now()

	var record rateLimitRecord
	found, err := rl.store.Get(ctx, ip, &record)
	if err != nil {
		return RateLimitResult{}, err
	}

	if !found || now.UnixMilli() > record.ResetTime {
		record = rateLimitRecord{Count: 1, ResetTime: now.Add(rl.window).UnixMilli()}
		if err := rl.store.Set(ctx, ip, &record, rl.window); err != nil {
			return RateLimitResult{}, err
		}
		return RateLimitResult{Allowed: true, Remaining: rl.max - 1, ResetTime: time.UnixMilli(record.ResetTime)}, nil
	}

	reset := time.UnixMilli(record.ResetTime)
	if record.Count >= rl.max {
		return RateLimitResult{Allowed: false, Remaining: 0, ResetTime: reset}, nil
	}

	record.Count++
	if err := rl.store.Set(ctx, ip, &record, time.Until(reset)); err != nil {
		return RateLimitResult{}, err
	}
	return RateLimitResult{Allowed: true, Remaining: rl.max - record.Count, ResetTime: reset}, nil
}

// Count reports tracked IPs for the health probe.
func (rl *RateLimiter) Count(ctx context.Context) int {
	n, err := rl.store.Len(ctx)
	if err != nil {
		return 0
	}
	return n
}
