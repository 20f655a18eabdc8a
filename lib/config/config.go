// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// MemoryDSN is an SQLite database that lives only as long as the process.
const MemoryDSN = "file:gamelog?mode=memory&cache=shared"

// Config holds all runtime configuration for the server.
type Config struct {
	Port     string     `env:"PORT"      envDefault:"8080"`
	DSN      string     `env:"DB_DSN"    envDefault:"file:gamelog?mode=memory&cache=shared"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`

	// Pitches are generated only when a key is present.
	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIModel   string `env:"OPENAI_MODEL"    envDefault:"gpt-4o-mini"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`
}

// Load parses environment variables into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// PitchesEnabled reports whether an OpenAI key was configured.
func (c *Config) PitchesEnabled() bool {
	return c.OpenAIAPIKey != ""
}
