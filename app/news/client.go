package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client queries an external news search API ("everything"-style endpoint
// keyed by free-text query and language code).
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, userAgent string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Search fetches articles matching the keyword in the given language,
// ordered by relevance.
func (c *Client) Search(ctx context.Context, keyword, langCode string) ([]Article, error) {
	params := url.Values{}
	params.Set("q", keyword)
	params.Set("language", langCode)

	return c.fetch(ctx, params)
}

// Latest fetches the most recently published articles using a fixed query
// sorted by recency instead of keyword relevance.
func (c *Client) Latest(ctx context.Context) ([]Article, error) {
	params := url.Values{}
	params.Set("q", "news")
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")

	return c.fetch(ctx, params)
}

func (c *Client) fetch(ctx context.Context, params url.Values) ([]Article, error) {
	params.Set("apiKey", c.apiKey)
	endpoint := fmt.Sprintf("%s/everything?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build news request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UnavailableError{Err: err}
	}
	defer resp.Body.Close()

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode news response: %w", err)
	}

	if parsed.Status != "ok" {
		message := parsed.Message
		if message == "" {
			message = "Unknown API error"
		}
		return nil, &APIError{Code: parsed.Code, Message: message}
	}

	return parsed.Articles, nil
}
