package llm

import "context"

// Provider identifies the mechanism that services a model's generations.
type Provider string

const (
	ProviderGroq   Provider = "groq"
	ProviderOllama Provider = "ollama"
)

// Request is one generation exchange: a system instruction and a user
// message. A nil Temperature leaves the sampling choice to the backend.
type Request struct {
	System      string
	User        string
	Temperature *float64
}

// Generator is the uniform capability every text-generation backend exposes.
// A non-nil error is the backend's "fail" signal; implementations never
// panic, and any internal retrying happens before Generate returns.
type Generator interface {
	Generate(ctx context.Context, modelID string, req Request) (string, error)
}

// ModelSpec identifies a model under test: a unique display key, the
// provider that serves it, and the provider-specific model identifier.
type ModelSpec struct {
	Key      string
	Provider Provider
	ModelID  string
}

// Model is a ModelSpec bound to its Generator. The binding happens once, at
// roster construction; the engine never inspects the provider again.
type Model struct {
	Spec ModelSpec
	Gen  Generator
}

// Temp returns a pointer to v for Request.Temperature.
func Temp(v float64) *float64 {
	return &v
}
