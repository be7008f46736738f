package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultEnv             = "development"
	defaultHTTPHost        = "0.0.0.0"
	defaultHTTPPort        = 8080
	defaultBaseURL         = "https://paper-api.alpaca.markets"
	defaultDataURL         = "https://data.alpaca.markets"
	defaultRedisDB         = 0
	defaultCacheTTLSeconds = 30
)

// defaultCORSOrigins are the frontend dev servers.
var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://localhost:3001",
	"http://localhost:3002",
}

// Config keeps the runtime configuration for the service.
type Config struct {
	Env      string
	HTTP     HTTPConfig
	Alpaca   AlpacaConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Cache    CacheConfig
	CORS     CORSConfig
}

// HTTPConfig holds HTTP server related settings.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr renders the listen address in host:port form.
func (h HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}

// AlpacaConfig stores the brokerage credentials and endpoints. The key pair
// is required; the service refuses to start without it.
type AlpacaConfig struct {
	APIKey    string
	APISecret string
	BaseURL   string
	DataURL   string
}

// PostgresConfig stores the optional bar archive connection. Empty DSN
// disables the archive.
type PostgresConfig struct {
	DSN string
}

// RedisConfig stores the optional response cache connection. Empty Addr
// disables the cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// CacheConfig stores cache behavior.
type CacheConfig struct {
	TTLSeconds int
}

// CORSConfig stores the allowed frontend origins.
type CORSConfig struct {
	Origins []string
}

// Load builds Config from environment variables, reading a .env file first
// when one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	host := getString("HTTP_HOST", defaultHTTPHost)
	port, err := getInt("HTTP_PORT", defaultHTTPPort)
	if err != nil {
		return nil, fmt.Errorf("parse HTTP_PORT: %w", err)
	}

	apiKey := os.Getenv("ALPACA_API_KEY")
	if apiKey == "" {
		return nil, errors.New("ALPACA_API_KEY is required")
	}
	apiSecret := os.Getenv("ALPACA_API_SECRET")
	if apiSecret == "" {
		return nil, errors.New("ALPACA_API_SECRET is required")
	}

	redisDB, err := getInt("REDIS_DB", defaultRedisDB)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_DB: %w", err)
	}

	cacheTTL, err := getInt("CACHE_TTL_SECONDS", defaultCacheTTLSeconds)
	if err != nil {
		return nil, fmt.Errorf("parse CACHE_TTL_SECONDS: %w", err)
	}

	return &Config{
		Env:  getString("APP_ENV", defaultEnv),
		HTTP: HTTPConfig{Host: host, Port: port},
		Alpaca: AlpacaConfig{
			APIKey:    apiKey,
			APISecret: apiSecret,
			BaseURL:   getString("ALPACA_BASE_URL", defaultBaseURL),
			DataURL:   getString("ALPACA_DATA_URL", defaultDataURL),
		},
		Postgres: PostgresConfig{
			DSN: os.Getenv("DATABASE_DSN"),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Cache: CacheConfig{
			TTLSeconds: cacheTTL,
		},
		CORS: CORSConfig{
			Origins: getStringSlice("CORS_ORIGINS", defaultCORSOrigins),
		},
	}, nil
}

func getString(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}

func getInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("convert %s value %q to int: %w", key, value, err)
	}
	return parsed, nil
}

func getStringSlice(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
