package llm

import (
	"context"
	"fmt"
)

// BuildRoster binds each spec to the client that serves its provider and
// preloads every Ollama model up front. A load failure aborts roster
// construction before any sweep row is attempted.
func BuildRoster(ctx context.Context, specs []ModelSpec, groq *GroqClient, ollama *OllamaClient) ([]Model, error) {
	models := make([]Model, 0, len(specs))
	for _, spec := range specs {
		var gen Generator
		switch spec.Provider {
		case ProviderGroq:
			if groq == nil {
				return nil, fmt.Errorf("model %q requires a groq client and none is configured", spec.Key)
			}
			gen = groq
		case ProviderOllama:
			if ollama == nil {
				return nil, fmt.Errorf("model %q requires an ollama client and none is configured", spec.Key)
			}
			if err := ollama.Load(ctx, spec.ModelID); err != nil {
				return nil, fmt.Errorf("failed to load model %q (%s): %w", spec.Key, spec.ModelID, err)
			}
			gen = ollama
		default:
			return nil, fmt.Errorf("unknown provider %q for model %q", spec.Provider, spec.Key)
		}
		models = append(models, Model{Spec: spec, Gen: gen})
	}
	return models, nil
}
