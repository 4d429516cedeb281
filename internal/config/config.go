package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the whole storefront configuration, populated from
// environment variables.
type Config struct {
	App      AppConfig
	Services ServicesConfig
	Redis    RedisConfig
	Session  SessionConfig
	Cache    CacheConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

// ServicesConfig points at the remote collaborators. The storefront is a
// client of these services; it owns no database of its own.
type ServicesConfig struct {
	BooksBaseURL string
	CartBaseURL  string
	AuthBaseURL  string
	Timeout      time.Duration
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

type CacheConfig struct {
	CatalogTTL time.Duration
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Libreria Pier Storefront"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Services: ServicesConfig{
			BooksBaseURL: getEnv("BOOKS_API_URL", "http://localhost:9001"),
			CartBaseURL:  getEnv("CART_API_URL", "http://localhost:9002"),
			AuthBaseURL:  getEnv("AUTH_API_URL", "http://localhost:9003"),
			Timeout:      time.Duration(getEnvInt("SERVICES_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "your-secret-key-change-in-production"),
			TTL:    time.Duration(getEnvInt("SESSION_TTL_HOURS", 72)) * time.Hour,
		},
		Cache: CacheConfig{
			CatalogTTL: time.Duration(getEnvInt("CATALOG_CACHE_TTL_SECONDS", 300)) * time.Second,
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
