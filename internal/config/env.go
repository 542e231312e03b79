package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	Env             string
	GatewayURL      string
	GatewayAPIKey   string
	Model           string
	UpstreamTimeout time.Duration
	MaxRetries      int
	StoreDriver     string
	RedisURL        string
	SweepInterval   time.Duration
}

// LoadConfig loads the environment variables and return config
func LoadConfig() *Config {

	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("APP_ENV", "production"),
		GatewayURL:      getEnv("AI_GATEWAY_URL", "https://ai.gateway.lovable.dev/v1"),
		GatewayAPIKey:   getEnv("AI_GATEWAY_API_KEY", ""),
		Model:           getEnv("AI_MODEL", "google/gemini-1.5-flash"),
		UpstreamTimeout: getEnvDuration("UPSTREAM_TIMEOUT", 30*time.Second),
		MaxRetries:      getEnvInt("UPSTREAM_MAX_RETRIES", 2),
		StoreDriver:     getEnv("STORE_DRIVER", "memory"),
		RedisURL:        getEnv("REDIS_URL", ""),
		SweepInterval:   getEnvDuration("SWEEP_INTERVAL", time.Minute),
	}

	if err := ValidateAPIKey(cfg.GatewayAPIKey); err != nil {
		log.Fatalf("AI_GATEWAY_API_KEY: %v", err)
	}

	if cfg.StoreDriver == "redis" && cfg.RedisURL == "" {
		log.Fatal("STORE_DRIVER=redis requires REDIS_URL")
	}

	return cfg
}

// ValidateAPIKey rejects missing or malformed gateway keys before any
// upstream call is attempted. Gateway keys are prefixed and longer than
// 30 characters.
func ValidateAPIKey(key string) error {
	if key == "" {
		return fmt.Errorf("not set")
	}
	if !strings.HasPrefix(key, "lpak_") || len(key) <= 30 {
		return fmt.Errorf("malformed key")
	}
	return nil
}

// IsDevelopment reports whether error details may be exposed to callers.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Helper to read environment variables with a default fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, def int) int {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("WARN: %s=%q not an int, using default %d", key, v, def)
		return def
	}
	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("WARN: %s=%q not a duration, using default %s", key, v, def)
		return def
	}
	return d
}
