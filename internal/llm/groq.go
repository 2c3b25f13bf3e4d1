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
	"golang.org/x/time/rate"
)

const (
	defaultGroqBaseURL = "https://api.groq.com/openai/v1"

	// Sweep calls are capped short answers; 512 tokens covers the five
	// sentences the persona prompt allows plus the judge's JSON verdict.
	groqMaxTokens = 512

	// Applied when the request carries no explicit temperature.
	groqDefaultTemperature = 0.7

	groqMaxAttempts = 3
)

// GroqClient talks to Groq's OpenAI-compatible chat completions endpoint.
// One client serves every Groq model ID, including the judge model. Failed
// attempts are retried with exponential backoff (1s, 2s, 4s by default).
type GroqClient struct {
	apiKey      string
	baseURL     string
	httpClient  *http.Client
	limiter     *rate.Limiter
	backoffBase time.Duration
	logger      *zap.Logger
}

// GroqOption customizes a GroqClient.
type GroqOption func(*GroqClient)

// WithGroqBaseURL overrides the API endpoint (tests point it at a stub).
func WithGroqBaseURL(u string) GroqOption {
	return func(c *GroqClient) { c.baseURL = u }
}

// WithGroqHTTPClient overrides the underlying HTTP client.
func WithGroqHTTPClient(hc *http.Client) GroqOption {
	return func(c *GroqClient) { c.httpClient = hc }
}

// WithGroqRequestsPerMinute throttles outgoing attempts. Zero disables
// throttling.
func WithGroqRequestsPerMinute(n int) GroqOption {
	return func(c *GroqClient) {
		if n <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(n)), 1)
	}
}

// WithGroqBackoffBase sets the first retry wait; each later wait doubles it.
func WithGroqBackoffBase(d time.Duration) GroqOption {
	return func(c *GroqClient) { c.backoffBase = d }
}

// WithGroqLogger attaches a logger for per-attempt diagnostics.
func WithGroqLogger(l *zap.Logger) GroqOption {
	return func(c *GroqClient) { c.logger = l }
}

// NewGroqClient builds a client for the given API key. The key is required
// here, explicitly: a missing credential fails construction instead of
// surfacing later as a masked per-call failure.
func NewGroqClient(apiKey string, opts ...GroqOption) (*GroqClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("groq: API key is required")
	}
	c := &GroqClient{
		apiKey:      apiKey,
		baseURL:     defaultGroqBaseURL,
		httpClient:  &http.Client{Timeout: 2 * time.Minute},
		limiter:     rate.NewLimiter(rate.Every(2*time.Second), 1),
		backoffBase: time.Second,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type groqRequest struct {
	Model       string        `json:"model"`
	Messages    []groqMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type groqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type groqResponse struct {
	Choices []groqChoice `json:"choices"`
}

type groqChoice struct {
	Message groqMessage `json:"message"`
}

// Generate runs one chat completion with bounded retry. Every attempt is
// gated by the rate limiter. After each failed attempt, the last one
// included, it waits backoffBase << attempt before moving on. Exhaustion
// returns the last error wrapped; callers treat any error as the row's fail
// signal.
func (c *GroqClient) Generate(ctx context.Context, modelID string, req Request) (string, error) {
	var lastErr error
	for attempt := 0; attempt < groqMaxAttempts; attempt++ {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return "", err
			}
		}

		text, err := c.complete(ctx, modelID, req)
		if err == nil {
			return text, nil
		}
		lastErr = err

		wait := c.backoffBase << attempt
		c.logger.Warn("groq attempt failed",
			zap.String("model", modelID),
			zap.Int("attempt", attempt+1),
			zap.Duration("retry_in", wait),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(wait):
		}
	}
	return "", fmt.Errorf("groq: retries exhausted for %s: %w", modelID, lastErr)
}

func (c *GroqClient) complete(ctx context.Context, modelID string, req Request) (string, error) {
	temperature := groqDefaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	reqBody := groqRequest{
		Model: modelID,
		Messages: []groqMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		Temperature: temperature,
		MaxTokens:   groqMaxTokens,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/chat/completions", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

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

	var groqResp groqResponse
	if err := json.Unmarshal(body, &groqResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if len(groqResp.Choices) == 0 {
		return "", fmt.Errorf("no response choices")
	}

	return groqResp.Choices[0].Message.Content, nil
}
