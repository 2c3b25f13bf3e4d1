// Package config resolves runtime settings from the environment and the
// optional models.yaml roster file.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the environment-driven settings of a run. The Groq API key is
// deliberately not required here: the client constructor rejects a missing
// key at the point a hosted backend is actually needed, which keeps offline
// subcommands usable.
type Config struct {
	GroqAPIKey     string        `env:"GROQ_API_KEY"`
	GroqBaseURL    string        `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	GroqRPM        int           `env:"GROQ_RPM" envDefault:"30"`
	OllamaHost     string        `env:"OLLAMA_HOST" envDefault:"http://localhost:11434"`
	JudgeModel     string        `env:"JUDGE_MODEL" envDefault:"llama3-70b-8192"`
	ResultsDir     string        `env:"RESULTS_DIR" envDefault:"results"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"120s"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &cfg, nil
}
