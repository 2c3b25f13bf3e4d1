package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kamilpajak/traitlab/internal/llm"
)

// rosterFile is the on-disk shape of models.yaml.
type rosterFile struct {
	Models []rosterEntry `yaml:"models"`
}

type rosterEntry struct {
	Key      string `yaml:"key"`
	Provider string `yaml:"provider"`
	ModelID  string `yaml:"model_id"`
}

// LoadRoster reads and validates a models.yaml roster.
func LoadRoster(path string) ([]llm.ModelSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}

	var file rosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse roster: %w", err)
	}
	if len(file.Models) == 0 {
		return nil, fmt.Errorf("roster %s contains no models", path)
	}

	seen := make(map[string]bool)
	specs := make([]llm.ModelSpec, 0, len(file.Models))
	for i, m := range file.Models {
		if m.Key == "" || m.Provider == "" || m.ModelID == "" {
			return nil, fmt.Errorf("roster model %d: key, provider and model_id are all required", i)
		}
		provider := llm.Provider(m.Provider)
		if provider != llm.ProviderGroq && provider != llm.ProviderOllama {
			return nil, fmt.Errorf("roster model %q: unknown provider %q", m.Key, m.Provider)
		}
		if seen[m.Key] {
			return nil, fmt.Errorf("roster model %q: duplicate key", m.Key)
		}
		seen[m.Key] = true
		specs = append(specs, llm.ModelSpec{Key: m.Key, Provider: provider, ModelID: m.ModelID})
	}
	return specs, nil
}

// DefaultRoster is the roster used when no models.yaml is given: one local
// and one hosted model.
func DefaultRoster() []llm.ModelSpec {
	return []llm.ModelSpec{
		{Key: "Gemma-7B (Ollama)", Provider: llm.ProviderOllama, ModelID: "gemma:7b"},
		{Key: "Llama-3.1-8B (Groq)", Provider: llm.ProviderGroq, ModelID: "llama-3.1-8b-instant"},
	}
}
