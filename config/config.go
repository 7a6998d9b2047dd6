// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Port               string
	Env                string
	DatabaseURL        string
	RecordBackend      string // "jsonl" or "postgres"
	LogDir             string
	TasksFile          string
	LLMProvider        string // "openai", "anthropic" or "mock"
	LLMModel           string
	OpenAIAPIKey       string
	AnthropicAPIKey    string
	InterventionPeriod int
}

// Load reads configuration from a .env file (when present) and the
// environment.
func Load() *Config {
	godotenv.Load()

	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("APP_ENV", "production"),
		DatabaseURL:        getEnv("DB_URL", ""),
		RecordBackend:      getEnv("RECORD_BACKEND", "jsonl"),
		LogDir:             getEnv("LOG_DIR", "./logs"),
		TasksFile:          getEnv("TASKS_FILE", ""),
		LLMProvider:        getEnv("LLM_PROVIDER", "openai"),
		LLMModel:           getEnv("LLM_MODEL", ""),
		OpenAIAPIKey:       getEnv("OPENAI_API_KEY", ""),
		AnthropicAPIKey:    getEnv("ANTHROPIC_API_KEY", ""),
		InterventionPeriod: getEnvInt("INTERVENTION_PERIOD", 4),
	}
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}

	switch c.RecordBackend {
	case "jsonl":
		if c.LogDir == "" {
			return fmt.Errorf("LOG_DIR is required for the jsonl record backend")
		}
	case "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("DB_URL is required for the postgres record backend")
		}
	default:
		return fmt.Errorf("unknown record backend: %q", c.RecordBackend)
	}

	switch c.LLMProvider {
	case "openai":
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
		}
	case "anthropic":
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "mock":
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.LLMProvider)
	}

	if c.InterventionPeriod < 0 {
		return fmt.Errorf("INTERVENTION_PERIOD cannot be negative")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
