package upstream

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastPolicy(maxAttempts int) Policy {
	return Policy{
		MaxAttempts: maxAttempts,
		ShouldRetry: RetryableError,
		Backoff:     func(int) time.Duration { return 0 },
	}
}

func apiError(status int) error {
	return &openai.APIError{HTTPStatusCode: status, Message: "upstream"}
}

func TestDoSucceedsAfterTransientFailures(t *testing.T) {
	calls := 0
	result, err := Do(context.Background(), fastPolicy(3), func(ctx context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", apiError(http.StatusServiceUnavailable)
		}
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 3, calls)
}

func TestDoDoesNotRetryClientErrors(t *testing.T) {
	calls := 0
	_, err := Do(context.Background(), fastPolicy(3), func(ctx context.Context) (string, error) {
		calls++
		return "", apiError(http.StatusBadRequest)
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDoExhaustsAttempts(t *testing.T) {
	calls := 0
	_, err := Do(context.Background(), fastPolicy(3), func(ctx context.Context) (string, error) {
		calls++
		return "", apiError(http.StatusInternalServerError)
	})
	require.Error(t, err)
	assert.Equal(t, 3, calls)

	var apiErr *openai.APIError
	assert.True(t, errors.As(err, &apiErr))
}

func TestDoStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	policy := fastPolicy(3)
	policy.Backoff = func(int) time.Duration { return 10 * time.Millisecond }

	calls := 0
	_, err := Do(ctx, policy, func(ctx context.Context) (string, error) {
		calls++
		return "", apiError(http.StatusServiceUnavailable)
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestRetryableError(t *testing.T) {
	assert.True(t, RetryableError(apiError(http.StatusInternalServerError)))
	assert.True(t, RetryableError(apiError(http.StatusBadGateway)))
	assert.True(t, RetryableError(apiError(http.StatusTooManyRequests)))
	assert.False(t, RetryableError(apiError(http.StatusBadRequest)))
	assert.False(t, RetryableError(apiError(http.StatusUnauthorized)))

	assert.True(t, RetryableError(&openai.RequestError{HTTPStatusCode: 0}))
	assert.True(t, RetryableError(&openai.RequestError{HTTPStatusCode: http.StatusBadGateway}))
	assert.False(t, RetryableError(&openai.RequestError{HTTPStatusCode: http.StatusNotFound}))

	assert.True(t, RetryableError(errors.New("connection reset")))
	assert.True(t, RetryableError(context.DeadlineExceeded))
	assert.False(t, RetryableError(context.Canceled))
}

func TestDefaultPolicy(t *testing.T) {
	policy := DefaultPolicy(2)
	assert.Equal(t, 3, policy.MaxAttempts)
	assert.Equal(t, time.Second, policy.Backoff(1))
	assert.Equal(t, 2*time.Second, policy.Backoff(2))
}
