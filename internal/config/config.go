// Package config handles loading application configuration from environment
// variables. All config is centralized here so no other package reads env
// vars directly. Sensible defaults are provided for development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration. Populated from environment
// variables at startup. Passed to other packages via dependency injection.
type Config struct {
	// Env is the runtime environment: "development" or "production".
	Env string

	// Port is the HTTP listen port (default: 8080).
	Port int

	// BaseURL is the public-facing URL used for CORS origin checks.
	BaseURL string

	// LogLevel controls log verbosity: "debug", "info", "warn", "error".
	LogLevel string

	// Store holds record store settings.
	Store StoreConfig

	// AI holds settings for the two hosted AI collaborators.
	AI AIConfig
}

// StoreConfig holds record store settings. The store is a flat key/value
// namespace inside a local Redis instance; KeyPrefix namespaces all keys so
// several deployments can share one Redis without colliding.
type StoreConfig struct {
	// RedisURL is the Redis connection URL (e.g., "redis://localhost:6379").
	RedisURL string

	// KeyPrefix is prepended to every record store key (default: "mindbase").
	KeyPrefix string
}

// AIConfig holds credentials and endpoints for the chat-completion and
// emotion-labeling services. Either key may be empty: the clients degrade
// to fallback replies / sentinel labels instead of failing.
type AIConfig struct {
	// GeminiAPIKey authenticates against the chat completion API.
	GeminiAPIKey string

	// GeminiModel is the completion model name.
	GeminiModel string

	// GeminiBaseURL is the completion API root. Overridable for tests.
	GeminiBaseURL string

	// HFAPIKey authenticates against the emotion inference API.
	HFAPIKey string

	// HFModel is the emotion classification model id.
	HFModel string

	// HFBaseURL is the inference API root. Overridable for tests.
	HFBaseURL string

	// Timeout bounds each outbound AI request.
	Timeout time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
// Returns an error if required variables are missing or malformed.
func Load() (*Config, error) {
	cfg := &Config{
		Env:      getEnv("ENV", "development"),
		Port:     getEnvInt("PORT", 8080),
		BaseURL:  getEnv("BASE_URL", "http://localhost:8080"),
		LogLevel: getEnv("LOG_LEVEL", "debug"),

		Store: StoreConfig{
			RedisURL:  getEnv("REDIS_URL", "redis://localhost:6379"),
			KeyPrefix: getEnv("STORE_KEY_PREFIX", "mindbase"),
		},

		AI: AIConfig{
			GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
			GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			GeminiBaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
			HFAPIKey:      getEnv("HF_API_KEY", ""),
			HFModel:       getEnv("HF_MODEL", "SamLowe/roberta-base-go_emotions"),
			HFBaseURL:     getEnv("HF_BASE_URL", "https://router.huggingface.co"),
			Timeout:       getEnvDuration("AI_TIMEOUT", 30*time.Second),
		},
	}

	if cfg.Store.KeyPrefix == "" {
		return nil, fmt.Errorf("STORE_KEY_PREFIX must not be empty")
	}

	// AI keys are optional everywhere: the companion degrades to canned
	// fallbacks without them. Warn-level logging happens in the clients,
	// not here, so config loading stays side-effect free.

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.Env)
	return env == "development" || env == "dev"
}

// --- Helper functions for reading environment variables ---

// getEnv reads a string env var or returns the default.
func getEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return defaultVal
}

// getEnvInt reads an integer env var or returns the default.
func getEnvInt(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// getEnvDuration reads a duration env var (e.g., "30s") or returns the default.
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
