package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamilpajak/traitlab/internal/llm"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"GROQ_API_KEY", "GROQ_BASE_URL", "GROQ_RPM", "OLLAMA_HOST", "JUDGE_MODEL", "RESULTS_DIR", "REQUEST_TIMEOUT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.GroqAPIKey)
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.GroqBaseURL)
	assert.Equal(t, 30, cfg.GroqRPM)
	assert.Equal(t, "http://localhost:11434", cfg.OllamaHost)
	assert.Equal(t, "llama3-70b-8192", cfg.JudgeModel)
	assert.Equal(t, "results", cfg.ResultsDir)
	assert.Equal(t, 120*time.Second, cfg.RequestTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk-test")
	t.Setenv("GROQ_RPM", "10")
	t.Setenv("JUDGE_MODEL", "llama-3.3-70b-versatile")
	t.Setenv("REQUEST_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gsk-test", cfg.GroqAPIKey)
	assert.Equal(t, 10, cfg.GroqRPM)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.JudgeModel)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "models.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRoster(t *testing.T) {
	path := writeRoster(t, `
models:
  - key: Llama-3.1-8B (Groq)
    provider: groq
    model_id: llama-3.1-8b-instant
  - key: Gemma-7B (Ollama)
    provider: ollama
    model_id: gemma:7b
`)

	specs, err := LoadRoster(path)
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, llm.ModelSpec{Key: "Llama-3.1-8B (Groq)", Provider: llm.ProviderGroq, ModelID: "llama-3.1-8b-instant"}, specs[0])
	assert.Equal(t, llm.ProviderOllama, specs[1].Provider)
}

func TestLoadRoster_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"empty roster", "models: []", "contains no models"},
		{"missing field", "models:\n  - key: x\n    provider: groq", "all required"},
		{"unknown provider", "models:\n  - key: x\n    provider: bedrock\n    model_id: y", "unknown provider"},
		{"duplicate key", "models:\n  - key: x\n    provider: groq\n    model_id: a\n  - key: x\n    provider: groq\n    model_id: b", "duplicate key"},
		{"bad yaml", "models: [", "failed to parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRoster(writeRoster(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadRoster_MissingFile(t *testing.T) {
	_, err := LoadRoster(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read roster")
}

func TestDefaultRoster(t *testing.T) {
	specs := DefaultRoster()
	require.Len(t, specs, 2)
	assert.Equal(t, llm.ProviderOllama, specs[0].Provider)
	assert.Equal(t, "gemma:7b", specs[0].ModelID)
	assert.Equal(t, llm.ProviderGroq, specs[1].Provider)
	assert.Equal(t, "llama-3.1-8b-instant", specs[1].ModelID)
}
