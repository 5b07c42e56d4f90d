package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	Addr      string // GARDIAN_ADDR, default ":8080"
	DBPath    string // GARDIAN_DB, default "gardian.db"
	AuthToken string // GARDIAN_AUTH_TOKEN, optional

	// PageSize is the canonical results-per-page count used by every
	// result path.
	PageSize int // GARDIAN_PAGE_SIZE, default 12

	// Upstream listings feed. Sync is disabled when the token is empty.
	RenetBaseURL string // RENET_BASE_URL, default "https://api.renet.app/Website"
	RenetToken   string // RENET_API_TOKEN, optional

	// Optional Redis cache for upstream responses. Disabled when the
	// address is empty.
	RedisAddr     string        // REDIS_ADDR, optional, e.g. "localhost:6379"
	RedisPassword string        // REDIS_PASSWORD, optional
	RedisDB       int           // REDIS_DB, default 0
	CacheTTL      time.Duration // GARDIAN_CACHE_TTL, default 15m
}

// Load reads the .env file (if present) and environment variables with
// sensible defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using system env vars")
	}

	return Config{
		Addr:          envOr("GARDIAN_ADDR", ":8080"),
		DBPath:        envOr("GARDIAN_DB", "gardian.db"),
		AuthToken:     os.Getenv("GARDIAN_AUTH_TOKEN"),
		PageSize:      envInt("GARDIAN_PAGE_SIZE", 12),
		RenetBaseURL:  envOr("RENET_BASE_URL", "https://api.renet.app/Website"),
		RenetToken:    os.Getenv("RENET_API_TOKEN"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       envInt("REDIS_DB", 0),
		CacheTTL:      envDuration("GARDIAN_CACHE_TTL", 15*time.Minute),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
