package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// ServerSettings configures the HTTP API. Values come from the environment.
type ServerSettings struct {
	Addr              string
	Environment       string
	MaxBodyBytes      int64
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
	Debug             bool
}

// LoadServerSettings reads SALAIRENET_* variables, falling back to defaults
func LoadServerSettings() ServerSettings {
	return ServerSettings{
		Addr:              getEnv("SALAIRENET_ADDR", ":8080"),
		Environment:       getEnv("SALAIRENET_ENV", "development"),
		MaxBodyBytes:      int64(getEnvInt("SALAIRENET_MAX_BODY_BYTES", 65536)),
		ReadHeaderTimeout: getEnvDuration("SALAIRENET_READ_HEADER_TIMEOUT", 5*time.Second),
		ShutdownTimeout:   getEnvDuration("SALAIRENET_SHUTDOWN_TIMEOUT", 10*time.Second),
		Debug:             getEnvBool("SALAIRENET_DEBUG", false),
	}
}

// Validate rejects settings the server cannot start with
func (s ServerSettings) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("SALAIRENET_ADDR must not be empty")
	}
	if s.MaxBodyBytes < 1024 {
		return fmt.Errorf("SALAIRENET_MAX_BODY_BYTES must be at least 1024")
	}
	if s.ReadHeaderTimeout <= 0 {
		return fmt.Errorf("SALAIRENET_READ_HEADER_TIMEOUT must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}
