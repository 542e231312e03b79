package upstream

import (
	"context"
	"errors"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Policy decides how many times a gateway call is attempted, which
// failures are worth another attempt, and how long to wait between
// attempts.
type Policy struct {
	MaxAttempts int
	ShouldRetry func(error) bool
	Backoff     func(attempt int) time.Duration
}

// DefaultPolicy retries twice beyond the first attempt with linear
// backoff, on network failures, per-attempt timeouts, upstream 5xx and
// upstream 429. Other 4xx responses surface immediately.
func DefaultPolicy(maxRetries int) Policy {
	return Policy{
		MaxAttempts: maxRetries + 1,
		ShouldRetry: RetryableError,
		Backoff: func(attempt int) time.Duration {
			return time.Duration(attempt) * time.Second
		},
	}
}

// RetryableError reports whether err is transient: upstream 5xx or
// 429, or a network-level failure. A canceled caller context is never
// retried.
func RetryableError(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode >= 500 || apiErr.HTTPStatusCode == http.StatusTooManyRequests
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode == 0 ||
			reqErr.HTTPStatusCode >= 500 ||
			reqErr.HTTPStatusCode == http.StatusTooManyRequests
	}

	// Transport errors and per-attempt deadline expiry.
	return true
}

// Do runs fn under the policy, sleeping the backoff between failed
// attempts. The last error is returned once attempts are exhausted.
func Do[T any](ctx context.Context, policy Policy, fn func(ctx context.Context) (T, error)) (T, error) {
	var (
		result  T
		lastErr error
	)

	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		result, lastErr = fn(ctx)
		if lastErr == nil {
			return result, nil
		}
		if !policy.ShouldRetry(lastErr) || attempt == policy.MaxAttempts {
			break
		}

		select {
		case <-time.After(policy.Backoff(attempt)):
		case <-ctx.Done():
			return result, ctx.Err()
		}
	}

	return result, lastErr
}
