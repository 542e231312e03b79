package handlers

import (
	"net/http"
	"time"

	"github.com/tantsahamarket/chatbot/internal/chat"
)

type HealthHandler struct {
	startedAt time.Time
	limiter   *chat.RateLimiter
	sessions  *chat.SessionManager
	faq       *chat.FaqCache
}

func NewHealthHandler(limiter *chat.RateLimiter, sessions *chat.SessionManager, faq *chat.FaqCache) *HealthHandler {
	return &HealthHandler{
		startedAt: time.Now(),
		limiter:   limiter,
		sessions:  sessions,
		faq:       faq,
	}
}

type healthResponse struct {
	Status           string `json:"status"`
	Timestamp        string `json:"timestamp"`
	Uptime           string `json:"uptime"`
	Sessions         int    `json:"sessions"`
	RateLimitEntries int    `json:"rateLimitEntries"`
	CacheEntries     int    `json:"cacheEntries"`
}

// HandleHealth reports liveness and store occupancy.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:           "healthy",
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
		Uptime:           time.Since(h.startedAt).Round(time.Second).String(),
		Sessions:         h.sessions.Count(ctx),
		RateLimitEntries: h.limiter.Count(ctx),
		CacheEntries:     h.faq.Count(ctx),
	})
}
