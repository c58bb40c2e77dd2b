package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the NewsAPI v2 endpoint
const DefaultBaseURL = "https://newsapi.org/v2"

// Client handles NewsAPI operations
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new NewsAPI client. An empty baseURL selects DefaultBaseURL.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		userAgent: "just-news/1.0",
	}
}

// EverythingResponse is the /everything response body
type EverythingResponse struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
	Code         string    `json:"code,omitempty"`
	Message      string    `json:"message,omitempty"`
}

// Article is a single NewsAPI article
type Article struct {
	Source      Source `json:"source"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	PublishedAt string `json:"publishedAt"`
}

// Source identifies the publisher of an article
type Source struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// APIError is returned when NewsAPI reports an error
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("NewsAPI request failed with status %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// Everything searches all articles matching query, newest first
func (c *Client) Everything(ctx context.Context, query string) (*EverythingResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("sortBy", "publishedAt")

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/everything?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	var result EverythingResponse
	if err := json.Unmarshal(body, &result); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
		}
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || result.Status != "ok" {
		return nil, &APIError{StatusCode: resp.StatusCode, Code: result.Code, Message: result.Message}
	}

	return &result, nil
}
