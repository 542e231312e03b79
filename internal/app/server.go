package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/tantsahamarket/chatbot/internal/api/handlers"
	"github.com/tantsahamarket/chatbot/internal/chat"
	"github.com/tantsahamarket/chatbot/internal/config"
	"github.com/tantsahamarket/chatbot/internal/upstream"
)

// Server wraps the HTTP server instance and its handlers.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer builds and wires all routes.
func NewServer(cfg *config.Config, limiter *chat.RateLimiter, sessions *chat.SessionManager, faq *chat.FaqCache, gateway upstream.Gateway, logger *slog.Logger) *Server {
	chatHandler := handlers.NewChatHandler(cfg, limiter, sessions, faq, gateway, logger)
	healthHandler := handlers.NewHealthHandler(limiter, sessions, faq)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{
			"Accept", "Authorization", "Content-Type",
			"X-Client-Id", "X-Language", "X-Session-Id", "X-Request-Id",
		},
		ExposedHeaders: []string{
			"X-Session-Id", "X-Client-Id", "X-Session-TTL", "X-Session-Interests",
			"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset",
			"X-Lead-Qualified", "X-Error-Type", "Retry-After",
		},
	}))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeJSONError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Post("/", chatHandler.HandleChat)
	r.Get("/health", healthHandler.HandleHealth)

	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	return &Server{httpServer: httpSrv, logger: logger}
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	s.logger.Info("http server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.httpServer.Shutdown(ctx)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + msg + `"}`))
}
