package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment. Everything has a default except the
// Gemini key, which is only needed for task generation.
type Config struct {
	// DBPath overrides the default ~/.arc-ascension.db location.
	DBPath string `env:"ARC_DB_PATH"`

	GeminiAPIKey      string        `env:"GEMINI_API_KEY"`
	GeminiModel       string        `env:"ARC_GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	GenerationTimeout time.Duration `env:"ARC_GENERATION_TIMEOUT" envDefault:"30s"`

	Debug bool `env:"ARC_DEBUG"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env config: %w", err)
	}
	return cfg, nil
}
