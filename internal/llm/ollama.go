package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// OllamaClient talks to a locally hosted Ollama server. Models must be
// loaded via Load before generation; per-call failures are returned as-is
// with no retry.
type OllamaClient struct {
	host       string
	httpClient *http.Client
	logger     *zap.Logger
}

// OllamaOption customizes an OllamaClient.
type OllamaOption func(*OllamaClient)

// WithOllamaHTTPClient overrides the underlying HTTP client.
func WithOllamaHTTPClient(hc *http.Client) OllamaOption {
	return func(c *OllamaClient) { c.httpClient = hc }
}

// WithOllamaLogger attaches a logger.
func WithOllamaLogger(l *zap.Logger) OllamaOption {
	return func(c *OllamaClient) { c.logger = l }
}

// NewOllamaClient builds a client for the server at host
// (e.g. http://localhost:11434).
func NewOllamaClient(host string, opts ...OllamaOption) *OllamaClient {
	c := &OllamaClient{
		host: host,
		// Local inference on CPU can be slow; give calls plenty of room.
		httpClient: &http.Client{Timeout: 10 * time.Minute},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type ollamaLoadRequest struct {
	Model string `json:"model"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Options  *ollamaOptions  `json:"options,omitempty"`
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
}

type ollamaChatResponse struct {
	Message ollamaMessage `json:"message"`
	Done    bool          `json:"done"`
}

// Load pages the model's weights into server memory. An empty /api/generate
// request performs exactly that without generating anything. Errors here are
// fatal upstream: roster construction aborts the run rather than sweeping
// with a model that cannot answer.
func (c *OllamaClient) Load(ctx context.Context, modelID string) error {
	jsonBody, err := json.Marshal(ollamaLoadRequest{Model: modelID})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/generate", c.host)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Info("loading local model", zap.String("model", modelID))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API error (%d): %s", resp.StatusCode, string(body))
	}

	c.logger.Info("local model loaded", zap.String("model", modelID))
	return nil
}

// Generate runs one chat exchange against the local server. Exactly one
// attempt is made.
func (c *OllamaClient) Generate(ctx context.Context, modelID string, req Request) (string, error) {
	chatReq := ollamaChatRequest{
		Model: modelID,
		Messages: []ollamaMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		Stream: false,
	}
	if req.Temperature != nil {
		chatReq.Options = &ollamaOptions{Temperature: *req.Temperature}
	}

	jsonBody, err := json.Marshal(chatReq)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/chat", c.host)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error (%d): %s", resp.StatusCode, string(body))
	}

	var chatResp ollamaChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	return chatResp.Message.Content, nil
}
