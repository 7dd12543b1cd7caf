package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const DefaultFeedBaseURL = "https://www.youtube.com/feeds/videos.xml"

// Fetcher retrieves one channel's feed over HTTP and hands the raw data
// to the parser. Fetching and parsing failures are reported to the
// caller, which treats them as an empty channel.
type Fetcher struct {
	httpClient *http.Client
	parser     *Parser
	baseURL    string
	userAgent  string
}

func NewFetcher(httpClient *http.Client, baseURL, userAgent string) *Fetcher {
	if baseURL == "" {
		baseURL = DefaultFeedBaseURL
	}
	return &Fetcher{
		httpClient: httpClient,
		parser:     NewParser(),
		baseURL:    baseURL,
		userAgent:  userAgent,
	}
}

// Run fetches and parses the feed for a single channel id.
func (f *Fetcher) Run(ctx context.Context, channelID string) ([]Entry, error) {
	feedURL := fmt.Sprintf("%s?channel_id=%s", f.baseURL, url.QueryEscape(channelID))

	req, err := http.NewRequestWithContext(ctx, "GET", feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return f.parser.Run(data)
}
