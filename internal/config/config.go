package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/subosito/gotenv"
)

type Config struct {
	AppEnv          string
	Port            string
	LogLevel        string
	LogFormat       string
	RedisURL        string
	SeedEmail       string
	SeedPassword    string
	AnalyzeDelayMs  int
	RateLimitRPS    float64
	SentimentEngine string
}

const (
	EngineLexicon = "lexicon"
	EngineVader   = "vader"
)

func Load() (*Config, error) {
	// Optional .env for local development; real environments set vars directly.
	if err := gotenv.Load(); err != nil {
		slog.Debug("No .env file found, using OS environment")
	}

	cfg := &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
		RedisURL:        getEnv("REDIS_URL", ""),
		SeedEmail:       getEnv("SEED_EMAIL", "user@example.com"),
		SeedPassword:    getEnv("SEED_PASSWORD", "password123"),
		SentimentEngine: getEnv("SENTIMENT_ENGINE", EngineLexicon),
	}

	delayMs, err := getEnvInt("ANALYZE_DELAY_MS", 500)
	if err != nil {
		return nil, err
	}
	if delayMs < 0 {
		return nil, fmt.Errorf("ANALYZE_DELAY_MS must not be negative, got %d", delayMs)
	}
	cfg.AnalyzeDelayMs = delayMs

	rps, err := getEnvFloat("RATE_LIMIT_RPS", 20)
	if err != nil {
		return nil, err
	}
	if rps <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS must be positive, got %g", rps)
	}
	cfg.RateLimitRPS = rps

	if cfg.SentimentEngine != EngineLexicon && cfg.SentimentEngine != EngineVader {
		return nil, fmt.Errorf("SENTIMENT_ENGINE must be %q or %q, got %q", EngineLexicon, EngineVader, cfg.SentimentEngine)
	}

	if cfg.SeedEmail == "" {
		return nil, fmt.Errorf("SEED_EMAIL must not be empty")
	}
	if cfg.SeedPassword == "" {
		return nil, fmt.Errorf("SEED_PASSWORD must not be empty")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return parsed, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return parsed, nil
}
