package config

import (
	"fmt"
	"os"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DatabaseURL string

	// Redis configuration
	RedisURL string

	// JWT configuration
	JWTSecret string

	// Gallery admin credentials (bcrypt hash of the admin password)
	AdminPasswordHash string
}

// LoadConfig creates a new Config instance from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:        getEnv("PORT", "3001"),
		ServerHost:        getEnv("SERVER_HOST", "0.0.0.0"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisURL:          os.Getenv("REDIS_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// ValidateConfig checks that required values are present for the current environment
func ValidateConfig(cfg *Config) error {
	env := GetEnvironment()

	// Tests run against in-memory databases and need no external services
	if env == Test {
		return nil
	}

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if env == Production {
		if cfg.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET environment variable is required in production")
		}
		if cfg.AdminPasswordHash == "" {
			return fmt.Errorf("ADMIN_PASSWORD_HASH environment variable is required in production")
		}
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
