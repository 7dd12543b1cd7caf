// Package images renders the per-date image prompts into PNG files,
// either through the OpenAI Images API or an offline placeholder
// renderer.
package images

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.openai.com"

// HTTPClient interface for making HTTP requests (allows injection for testing).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL sets a custom base URL (useful for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithRetryDelay sets the base delay between retry attempts.
func WithRetryDelay(delay time.Duration) ClientOption {
	return func(c *Client) {
		c.retryDelay = delay
	}
}

// Client is an OpenAI Images API client.
type Client struct {
	apiKey     string
	model      string
	size       string
	retries    int
	retryDelay time.Duration
	baseURL    string
	httpClient HTTPClient
}

// NewClient creates an images client. The API key comes from the
// OPENAI_API_KEY environment variable upstream; model, size and retry
// count come from the pipeline configuration.
func NewClient(apiKey, model, size string, retries int, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:     apiKey,
		model:      model,
		size:       size,
		retries:    retries,
		retryDelay: 2 * time.Second,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Generate renders one prompt and returns the decoded PNG bytes. Each
// attempt that fails is retried with a linearly growing delay, up to
// the configured attempt count.
func (c *Client) Generate(ctx context.Context, prompt string) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= c.retries; attempt++ {
		png, err := c.generateOnce(ctx, prompt)
		if err == nil {
			return png, nil
		}
		lastErr = err

		if attempt < c.retries {
			select {
			case <-time.After(c.retryDelay * time.Duration(attempt)):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, fmt.Errorf("image generation failed after %d attempts: %w", c.retries, lastErr)
}

func (c *Client) generateOnce(ctx context.Context, prompt string) ([]byte, error) {
	payload := generationRequest{
		Model:  c.model,
		Prompt: prompt,
		Size:   c.size,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/images/generations", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleAPIError(resp.StatusCode)
	}

	var generation generationResponse
	if err := json.Unmarshal(respBody, &generation); err != nil {
		return nil, fmt.Errorf("failed to parse generation response: %w", err)
	}
	if len(generation.Data) == 0 || generation.Data[0].B64JSON == "" {
		return nil, fmt.Errorf("generation response contained no image data")
	}

	png, err := base64.StdEncoding.DecodeString(generation.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image payload: %w", err)
	}
	return png, nil
}

// API request/response types (private - implementation detail)

type generationRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Size   string `json:"size"`
}

type generationResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
}

func (c *Client) handleAPIError(statusCode int) error {
	switch statusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("image API authentication failed - check OPENAI_API_KEY")
	case http.StatusTooManyRequests:
		return fmt.Errorf("image API rate limit exceeded - please try again later")
	case http.StatusServiceUnavailable:
		return fmt.Errorf("image API temporarily unavailable - please try again in a few minutes")
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusGatewayTimeout:
		return fmt.Errorf("image API server error - please try again later")
	default:
		return fmt.Errorf("image API error (status %d)", statusCode)
	}
}
