package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRoster_BindsProvidersOnce(t *testing.T) {
	var loads atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loads.Add(1)
		_, _ = w.Write([]byte(`{"done":true}`))
	}))
	defer ts.Close()

	groq, err := NewGroqClient("test-key")
	require.NoError(t, err)
	ollama := NewOllamaClient(ts.URL)

	specs := []ModelSpec{
		{Key: "Gemma-7B (Ollama)", Provider: ProviderOllama, ModelID: "gemma:7b"},
		{Key: "Llama-3.1-8B (Groq)", Provider: ProviderGroq, ModelID: "llama-3.1-8b-instant"},
	}

	models, err := BuildRoster(context.Background(), specs, groq, ollama)
	require.NoError(t, err)
	require.Len(t, models, 2)

	assert.Same(t, ollama, models[0].Gen)
	assert.Same(t, groq, models[1].Gen)
	assert.Equal(t, specs[0], models[0].Spec)
	assert.Equal(t, specs[1], models[1].Spec)
	assert.Equal(t, int32(1), loads.Load(), "each local model is loaded exactly once")
}

func TestBuildRoster_LoadFailureAbortsEverything(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"no such model"}`))
	}))
	defer ts.Close()

	groq, err := NewGroqClient("test-key")
	require.NoError(t, err)
	ollama := NewOllamaClient(ts.URL)

	specs := []ModelSpec{
		{Key: "Broken (Ollama)", Provider: ProviderOllama, ModelID: "missing:latest"},
		{Key: "Llama-3.1-8B (Groq)", Provider: ProviderGroq, ModelID: "llama-3.1-8b-instant"},
	}

	models, err := BuildRoster(context.Background(), specs, groq, ollama)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load model")
	assert.Contains(t, err.Error(), "Broken (Ollama)")
	assert.Nil(t, models, "a load failure must leave no usable roster")
}

func TestBuildRoster_UnknownProvider(t *testing.T) {
	groq, err := NewGroqClient("test-key")
	require.NoError(t, err)

	_, err = BuildRoster(context.Background(), []ModelSpec{
		{Key: "Mystery", Provider: Provider("huggingface"), ModelID: "x"},
	}, groq, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}

func TestBuildRoster_MissingClient(t *testing.T) {
	_, err := BuildRoster(context.Background(), []ModelSpec{
		{Key: "Llama-3.1-8B (Groq)", Provider: ProviderGroq, ModelID: "llama-3.1-8b-instant"},
	}, nil, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "groq client")
}
