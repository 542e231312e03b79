package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrInvalidDriver = errors.New("store: invalid driver")
	ErrInvalidConfig = errors.New("store: invalid configuration")
)

// Store is a TTL-aware key-value store shared by the rate limiter, the
// session manager and the FAQ cache. Values are JSON-encoded. The policy
// (windowing, TTLs, sweeping cadence) lives with the callers; only the
// storage substrate is swapped between drivers.
type Store interface {
	// Get unmarshals the value for key into v. Returns false if the key
	// is absent or past its TTL (not an error).
	Get(ctx context.Context, key string, v any) (bool, error)

	// Set stores v under key for ttl.
	Set(ctx context.Context, key string, v any, ttl time.Duration) error

	// Delete removes key.
	Delete(ctx context.Context, key string) error

	// Len reports the number of live entries.
	Len(ctx context.Context) (int, error)

	// Sweep evicts expired entries. A no-op for drivers with native TTL.
	Sweep(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}

// Driver selects the storage substrate.
type Driver string

const (
	DriverMemory Driver = "memory"
	DriverRedis  Driver = "redis"
)

// Option is a functional option for configuring a store.
type Option func(*storeConfig)

type storeConfig struct {
	redisClient *redis.Client
	namespace   string
}

// WithRedisClient sets the Redis client for the Redis driver.
func WithRedisClient(client *redis.Client) Option {
	return func(c *storeConfig) {
		c.redisClient = client
	}
}

// WithNamespace prefixes every key, isolating stores that share one
// Redis instance.
func WithNamespace(ns string) Option {
	return func(c *storeConfig) {
		c.namespace = ns
	}
}

// New creates a Store for the given driver. Supports "memory" and
// "redis"; Redis requires WithRedisClient.
func New(driver Driver, opts ...Option) (Store, error) {
	config := &storeConfig{}
	for _, opt := range opts {
		opt(config)
	}

	switch driver {
	case DriverMemory:
		return newMemoryStore(), nil

	case DriverRedis:
		if config.redisClient == nil {
			return nil, ErrInvalidConfig
		}
		ns := config.namespace
		if ns == "" {
			ns = "store"
		}
		return &redisStore{client: config.redisClient, namespace: ns}, nil

	default:
		return nil, ErrInvalidDriver
	}
}
