package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	BaseURL        string        // Required: hosted checkout backend base URL
	Currency       string        // Optional: default currency code (default: INR)
	RequestTimeout time.Duration // Optional: per-call transport ceiling (default: 30s)
	RateLimit      float64       // Optional: outbound requests per second, 0 disables limiting
	Env            string        // Environment (dev, staging, prod) (default: dev)
	LogLevel       string        // Log level (debug, info, warn, error) (default: info)
	LogFormat      string        // Log format (json, text) (default: text)
}

func LoadConfig() Config {
	return Config{
		BaseURL:        os.Getenv("CHECKOUT_BASE_URL"),
		Currency:       getEnvOrDefault("CHECKOUT_CURRENCY", "INR"),
		RequestTimeout: getEnvDurationOrDefault("CHECKOUT_REQUEST_TIMEOUT", 30*time.Second),
		RateLimit:      getEnvFloatOrDefault("CHECKOUT_RATE_LIMIT", 0),
		Env:            getEnvOrDefault("ENV", "dev"),
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:      getEnvOrDefault("LOG_FORMAT", "text"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if f, err := strconv.ParseFloat(value, 64); err == nil && f >= 0 {
		return f
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Plain integers are read as seconds
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}

	return defaultValue
}
