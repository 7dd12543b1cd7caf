package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const defaultBaseURL = "https://api.openai.com"

// stylePrompt is prepended to every script so the narration keeps a
// consistent register across runs.
const stylePrompt = "Read this like a warm, natural British male voice. " +
	"Conversational tone, flowing speech, no blanks or awkward pauses."

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

// Client is an OpenAI speech API client.
type Client struct {
	apiKey     string
	model      string
	voice      string
	format     string
	baseURL    string
	httpClient HTTPClient
}

func NewClient(apiKey, model, voice, format string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:     apiKey,
		model:      model,
		voice:      voice,
		format:     format,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Synthesize narrates the given text and streams the audio into w.
func (c *Client) Synthesize(ctx context.Context, text string, w io.Writer) error {
	payload := speechRequest{
		Model:  c.model,
		Voice:  c.voice,
		Input:  stylePrompt + " " + text,
		Format: c.format,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/audio/speech", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.handleAPIError(resp.StatusCode)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("failed to stream audio: %w", err)
	}
	return nil
}

type speechRequest struct {
	Model  string `json:"model"`
	Voice  string `json:"voice"`
	Input  string `json:"input"`
	Format string `json:"format"`
}

func (c *Client) handleAPIError(statusCode int) error {
	switch statusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("speech API authentication failed - check OPENAI_API_KEY")
	case http.StatusTooManyRequests:
		return fmt.Errorf("speech API rate limit exceeded - please try again later")
	case http.StatusServiceUnavailable:
		return fmt.Errorf("speech API temporarily unavailable - please try again in a few minutes")
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusGatewayTimeout:
		return fmt.Errorf("speech API server error - please try again later")
	default:
		return fmt.Errorf("speech API error (status %d)", statusCode)
	}
}
