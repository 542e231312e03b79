package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tantsahamarket/chatbot/internal/chat"
	"github.com/tantsahamarket/chatbot/internal/config"
	"github.com/tantsahamarket/chatbot/internal/models"
	"github.com/tantsahamarket/chatbot/internal/store"
)

type stubGateway struct{}

func (stubGateway) Complete(ctx context.Context, systemPrompt string, messages []models.Message) (openai.ChatCompletionResponse, error) {
	return openai.ChatCompletionResponse{}, nil
}

func (stubGateway) Stream(ctx context.Context, systemPrompt string, messages []models.Message) (*openai.ChatCompletionStream, error) {
	return nil, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	newStore := func() store.Store {
		s, err := store.New(store.DriverMemory)
		require.NoError(t, err)
		return s
	}
	cfg := &config.Config{Port: "0", UpstreamTimeout: time.Second}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(cfg,
		chat.NewRateLimiter(newStore()),
		chat.NewSessionManager(newStore()),
		chat.NewFaqCache(newStore()),
		stubGateway{}, logger)
}

func TestRouterHealth(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"healthy"`)
}

func TestRouterNotFound(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
}

func TestRouterMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
