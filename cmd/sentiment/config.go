package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/sentiment/core/config"
	"github.com/dmitrymomot/sentiment/core/logger"
	"github.com/dmitrymomot/sentiment/pkg/ratelimiter"
)

// Config is the process configuration, read from the environment and an
// optional .env file.
type Config struct {
	AppEnv    string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	Provider    string `env:"SENTIMENT_PROVIDER" envDefault:"gemini"`
	Model       string `env:"SENTIMENT_MODEL"`
	BaseURL     string `env:"SENTIMENT_BASE_URL"`
	Grammar     string `env:"SENTIMENT_GRAMMAR" envDefault:"labeled"`
	CacheSize   int    `env:"SENTIMENT_CACHE_SIZE" envDefault:"256"`
	Concurrency int    `env:"SENTIMENT_CONCURRENCY" envDefault:"1"`

	GeminiAPIKey    string `env:"GEMINI_API_KEY"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`

	RateLimit ratelimiter.Config
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// newLogger picks the environment preset, then applies explicit level and
// format overrides. Logs go to stderr so stdout carries only results.
func newLogger(cfg Config) *slog.Logger {
	const service = "sentiment"

	opts := []logger.Option{logger.WithOutput(os.Stderr)}
	switch strings.ToLower(cfg.AppEnv) {
	case "production", "prod":
		opts = append(opts, logger.WithProduction(service))
	case "staging":
		opts = append(opts, logger.WithStaging(service))
	default:
		opts = append(opts, logger.WithDevelopment(service))
	}

	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	}
	switch strings.ToLower(cfg.LogFormat) {
	case "json":
		opts = append(opts, logger.WithJSONFormatter())
	case "text":
		opts = append(opts, logger.WithTextFormatter())
	}

	return logger.New(opts...)
}
