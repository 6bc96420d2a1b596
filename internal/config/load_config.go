package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"thread-translator/internal/translation"
)

// Config holds all configuration for the application
type Config struct {
	Port                string
	Provider            string
	APIKey              string
	Model               string
	DefaultStyle        string
	CacheTTLSeconds     int
	CacheSweepSeconds   int
	TokenBudget         int
	TimeoutSeconds      int
	MaxRetries          int
	RetryInitialDelayMs int
	SummarizeOversized  bool
	RedisAddr           string
	RedisPassword       string
	DBPath              string
}

// ------------------------------------------------------------------------------------------------------
func Load() (*Config, error) {
	_ = godotenv.Load()
	cfg := &Config{
		Port:                getEnv("PORT", "8000"),
		Provider:            getEnv("LLM_PROVIDER", "openai"),
		APIKey:              getEnv("LLM_API_KEY", ""),
		Model:               getEnv("LLM_MODEL", ""),
		DefaultStyle:        getEnv("DEFAULT_STYLE", translation.StyleELI5),
		CacheTTLSeconds:     getEnvAsInt("CACHE_TTL_SECONDS", 3600),
		CacheSweepSeconds:   getEnvAsInt("CACHE_SWEEP_SECONDS", 60),
		TokenBudget:         getEnvAsInt("TOKEN_BUDGET", 2000),
		TimeoutSeconds:      getEnvAsInt("REQUEST_TIMEOUT_SECONDS", 30),
		MaxRetries:          getEnvAsInt("MAX_RETRIES", 3),
		RetryInitialDelayMs: getEnvAsInt("RETRY_INITIAL_DELAY_MS", 1000),
		SummarizeOversized:  getEnvAsBool("SUMMARIZE_OVERSIZED", true),
		RedisAddr:           getEnv("REDIS_ADDR", ""),
		RedisPassword:       getEnv("REDIS_PASSWORD", ""),
		DBPath:              getEnv("DB_PATH", "translations.db"),
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("LLM_API_KEY environment variable is required")
	}

	if !translation.ValidStyle(cfg.DefaultStyle) {
		return nil, fmt.Errorf("DEFAULT_STYLE '%s' is not a supported style", cfg.DefaultStyle)
	}

	return cfg, nil
}

// ------------------------------------------------------------------------------------------------------
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// ------------------------------------------------------------------------------------------------------
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// ------------------------------------------------------------------------------------------------------
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
