package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pep299/just-news/internal/model"
)

// DefaultBaseURL is the Slack Web API endpoint
const DefaultBaseURL = "https://slack.com/api"

// Client handles Slack notifications
type Client struct {
	botToken   string
	channel    string
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

// NewClient creates a new Slack client. An empty baseURL selects DefaultBaseURL.
func NewClient(botToken, channel, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		botToken: botToken,
		channel:  channel,
		baseURL:  strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		now: time.Now,
	}
}

// ChatPostMessageRequest represents a Slack chat.postMessage request
type ChatPostMessageRequest struct {
	Channel     string `json:"channel"`
	Text        string `json:"text"`
	Username    string `json:"username,omitempty"`
	IconEmoji   string `json:"icon_emoji,omitempty"`
	UnfurlLinks bool   `json:"unfurl_links"`
}

// SendDigest posts the search result for keyword to the configured channel
func (c *Client) SendDigest(ctx context.Context, keyword string, news *model.NewsResponse) error {
	return c.sendMessage(ctx, c.formatDigestMessage(keyword, news), c.channel)
}

// formatDigestMessage renders a digest as Slack mrkdwn
func (c *Client) formatDigestMessage(keyword string, news *model.NewsResponse) string {
	timestamp := c.now().UTC().Format("2006-01-02 15:04 MST")

	var msg strings.Builder
	fmt.Fprintf(&msg, "📰 *News digest: %s*\n\n", keyword)
	fmt.Fprintf(&msg, "%s\n\n", news.Summary)
	fmt.Fprintf(&msg, "📊 Occurrences in headlines: %d\n", news.KeywordFrequency)

	if len(news.Articles) > 0 {
		msg.WriteString("\n")
		for i, article := range news.Articles {
			fmt.Fprintf(&msg, "%d. %s (%s)\n", i+1, formatLink(article.URL, article.Title), escapeMrkdwn(article.Source))
		}
	}

	fmt.Fprintf(&msg, "\n⏰ %s", timestamp)
	return msg.String()
}

// escapeMrkdwn escapes the characters Slack treats as control sequences
func escapeMrkdwn(text string) string {
	replacer := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return replacer.Replace(text)
}

// formatLink renders a mrkdwn link. URLs that are not absolute http(s)
// links fall back to the escaped title alone.
func formatLink(rawURL, title string) string {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return escapeMrkdwn(title)
	}
	return "<" + escapeLinkURL(rawURL) + "|" + escapeMrkdwn(title) + ">"
}

// escapeLinkURL percent-encodes the characters that end a mrkdwn link target
func escapeLinkURL(rawURL string) string {
	replacer := strings.NewReplacer("&", "&amp;", "<", "%3C", ">", "%3E", "|", "%7C")
	return replacer.Replace(rawURL)
}

// sendMessage sends a message to the specified Slack channel
func (c *Client) sendMessage(ctx context.Context, text string, channel string) error {
	req := ChatPostMessageRequest{
		Channel:   channel,
		Text:      text,
		Username:  "Just News",
		IconEmoji: ":newspaper:",
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshaling message: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat.postMessage", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.botToken)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("slack API returned status %d", resp.StatusCode)
	}

	var slackResp struct {
		OK    bool   `json:"ok"`
		Error string `json:"error,omitempty"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&slackResp); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	if !slackResp.OK {
		return fmt.Errorf("slack API error: %s", slackResp.Error)
	}

	return nil
}
