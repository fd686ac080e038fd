package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Storage backends for the sheet repository
const (
	StorageRedis  = "redis"
	StorageMemory = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Redis   RedisConfig
	Storage StorageConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// StorageConfig selects the sheet storage backend
type StorageConfig struct {
	Backend string
	// TTL applied to stored sheets in Redis; zero disables expiry
	TTL time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		Storage: StorageConfig{
			Backend: getEnvOrDefault("SHEET_STORAGE", StorageMemory),
			TTL:     time.Duration(getEnvAsIntOrDefault("SHEET_TTL_HOURS", 24)) * time.Hour,
		},
	}

	if cfg.Storage.Backend != StorageRedis && cfg.Storage.Backend != StorageMemory {
		return nil, fmt.Errorf("SHEET_STORAGE must be '%s' or '%s', got '%s'",
			StorageRedis, StorageMemory, cfg.Storage.Backend)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
