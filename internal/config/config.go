package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Defaults holds the per-endpoint result-size policy. The values mirror
// the mod's original dashboard and are tunable, not load-bearing.
type Defaults struct {
	PageSize         int
	SearchLimit      int
	LeaderboardLimit int
	MetricLimit      int
}

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// Database
	PostgresURL  string
	PoolMaxConns int

	// Shutdown
	ShutdownTimeout time.Duration

	Defaults Defaults
}

// Load loads configuration from environment variables.
// It returns an error if critical configuration is missing.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		Env:  getEnv("ENV", "development"),

		PoolMaxConns:    getEnvInt("POOL_MAX_CONNS", 10),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 15*time.Second),

		Defaults: Defaults{
			PageSize:         getEnvInt("PAGE_SIZE", 50),
			SearchLimit:      getEnvInt("SEARCH_LIMIT", 20),
			LeaderboardLimit: getEnvInt("LEADERBOARD_LIMIT", 50),
			MetricLimit:      getEnvInt("METRIC_LIMIT", 20),
		},
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	rawOrigins := strings.Split(origins, ",")
	for _, o := range rawOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	// Critical configuration - fail if missing
	var err error
	if cfg.PostgresURL, err = getEnvRequired("POSTGRES_URL"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvRequired(key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("missing required environment variable: %s", key)
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
