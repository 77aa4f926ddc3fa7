package config

import (
	"fmt"
	"os"
)

// Config holds the application configuration loaded from the environment.
type Config struct {
	GeminiAPIKey string
	GeminiModel  string
	ListenAddr   string
	LogLevel     string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.5-flash"
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":3000"
	}

	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}

	return &Config{
		GeminiAPIKey: apiKey,
		GeminiModel:  model,
		ListenAddr:   addr,
		LogLevel:     level,
	}, nil
}
