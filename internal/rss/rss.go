package rss

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the Google News RSS endpoint
const DefaultBaseURL = "https://news.google.com/rss"

// Feed represents an RSS feed
type Feed struct {
	Title       string `xml:"channel>title"`
	Description string `xml:"channel>description"`
	Link        string `xml:"channel>link"`
	Items       []Item `xml:"channel>item"`
}

// Item represents an RSS item
type Item struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
	Source      Source `xml:"source"`
}

// Source is the publisher element Google News attaches to each item
type Source struct {
	Name string `xml:",chardata"`
	URL  string `xml:"url,attr"`
}

// Client handles RSS feed operations
type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
}

// NewClient creates a new RSS client. An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		userAgent: "just-news/1.0",
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

// SearchNews fetches the news search feed for keyword
func (c *Client) SearchNews(ctx context.Context, keyword string) (*Feed, error) {
	query := url.Values{}
	query.Set("q", keyword)
	query.Set("hl", "en-US")
	query.Set("gl", "US")
	query.Set("ceid", "US:en")

	return c.FetchFeed(ctx, c.baseURL+"/search?"+query.Encode())
}

// FetchFeed fetches and parses an RSS feed from the given URL
func (c *Client) FetchFeed(ctx context.Context, url string) (*Feed, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/xml, text/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	var feed Feed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("parsing RSS feed: %w", err)
	}

	return &feed, nil
}
