// Package app wires configuration, stores, the gateway client and the
// HTTP server into one runnable application.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tantsahamarket/chatbot/internal/chat"
	"github.com/tantsahamarket/chatbot/internal/config"
	"github.com/tantsahamarket/chatbot/internal/store"
	"github.com/tantsahamarket/chatbot/internal/upstream"
)

type App struct {
	Logger   *slog.Logger
	Limiter  *chat.RateLimiter
	Sessions *chat.SessionManager
	Faq      *chat.FaqCache
	Server   *Server

	stores      []store.Store
	redisClient *redis.Client
	sweepEvery  time.Duration
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).
		With("service", "tantsaha-chatbot")

	a := &App{Logger: logger, sweepEvery: cfg.SweepInterval}

	driver := store.Driver(cfg.StoreDriver)
	if driver == store.DriverRedis {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("REDIS_URL: %w", err)
		}
		a.redisClient = redis.NewClient(opts)
		if err := a.redisClient.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		logger.Info("redis connected")
	}

	rateStore, err := a.newStore(driver, "ratelimit")
	if err != nil {
		return nil, err
	}
	sessionStore, err := a.newStore(driver, "session")
	if err != nil {
		return nil, err
	}
	faqStore, err := a.newStore(driver, "faq")
	if err != nil {
		return nil, err
	}

	a.Limiter = chat.NewRateLimiter(rateStore)
	a.Sessions = chat.NewSessionManager(sessionStore)
	a.Faq = chat.NewFaqCache(faqStore)

	gateway := upstream.NewClient(
		cfg.GatewayURL,
		cfg.GatewayAPIKey,
		cfg.Model,
		cfg.UpstreamTimeout,
		upstream.DefaultPolicy(cfg.MaxRetries),
	)

	a.Server = NewServer(cfg, a.Limiter, a.Sessions, a.Faq, gateway, logger)
	return a, nil
}

func (a *App) newStore(driver store.Driver, namespace string) (store.Store, error) {
	s, err := store.New(driver,
		store.WithRedisClient(a.redisClient),
		store.WithNamespace(namespace),
	)
	if err != nil {
		return nil, fmt.Errorf("%s store: %w", namespace, err)
	}
	a.stores = append(a.stores, s)
	return s, nil
}

// RunSweeper evicts expired entries from every store on a fixed
// interval until ctx is canceled. Complements the opportunistic sweep
// done on each session resolution.
func (a *App) RunSweeper(ctx context.Context) error {
	ticker := time.NewTicker(a.sweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			for _, s := range a.stores {
				if err := s.Sweep(ctx); err != nil {
					a.Logger.Warn("sweep failed", "error", err.Error())
				}
			}
		}
	}
}

func (a *App) Close() {
	for _, s := range a.stores {
		_ = s.Close()
	}
	if a.redisClient != nil {
		_ = a.redisClient.Close()
	}
}
