package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the Generative Language API models endpoint
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// Client handles Gemini API operations
type Client struct {
	apiKey     string
	model      string
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new Gemini API client. An empty baseURL selects DefaultBaseURL.
func NewClient(apiKey, model, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Model returns the model identifier requests are sent to
func (c *Client) Model() string {
	return c.model
}

// SearchResponse is the grounded answer for a news search
type SearchResponse struct {
	Text          string
	Chunks        []GroundingChunk
	SearchQueries []string
}

// GroundingChunk links generated text to a source. Web is nil for non-web sources.
type GroundingChunk struct {
	Web *WebChunk `json:"web,omitempty"`
}

// WebChunk is a web page citation
type WebChunk struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// APIError is returned when the Gemini API answers with a non-200 status
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("Gemini API request failed with status %d (%s): %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("Gemini API request failed with status %d: %s", e.StatusCode, e.Message)
}

// geminiRequest represents the request structure for Gemini API
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
	Tools    []geminiTool    `json:"tools,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text    string `json:"text,omitempty"`
	Thought bool   `json:"thought,omitempty"`
}

type geminiTool struct {
	GoogleSearch *struct{} `json:"googleSearch,omitempty"`
}

// geminiResponse represents the response structure from Gemini API
type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

type geminiCandidate struct {
	Content           geminiContent            `json:"content"`
	GroundingMetadata *geminiGroundingMetadata `json:"groundingMetadata,omitempty"`
}

type geminiGroundingMetadata struct {
	GroundingChunks  []GroundingChunk `json:"groundingChunks"`
	WebSearchQueries []string         `json:"webSearchQueries"`
}

type geminiErrorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// SearchNews asks the model for the latest news on keyword with Google Search grounding enabled
func (c *Client) SearchNews(ctx context.Context, keyword string) (*SearchResponse, error) {
	req := geminiRequest{
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: buildSearchPrompt(keyword)}},
			},
		},
		Tools: []geminiTool{{GoogleSearch: &struct{}{}}},
	}

	resp, err := c.generateContent(ctx, req)
	if err != nil {
		return nil, err
	}

	result := &SearchResponse{}
	if len(resp.Candidates) == 0 {
		return result, nil
	}

	candidate := resp.Candidates[0]
	result.Text = candidateText(candidate)
	if candidate.GroundingMetadata != nil {
		result.Chunks = candidate.GroundingMetadata.GroundingChunks
		result.SearchQueries = candidate.GroundingMetadata.WebSearchQueries
	}

	return result, nil
}

// buildSearchPrompt creates the news search prompt for a keyword
func buildSearchPrompt(keyword string) string {
	return fmt.Sprintf(`Find the latest news articles for the keyword: "%s". Return a short summary of the current situation.`, keyword)
}

// candidateText concatenates the non-thought text parts of a candidate
func candidateText(candidate geminiCandidate) string {
	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if part.Thought {
			continue
		}
		text.WriteString(part.Text)
	}
	return text.String()
}

// generateContent makes the actual API call to Gemini
func (c *Client) generateContent(ctx context.Context, geminiReq geminiRequest) (*geminiResponse, error) {
	url := fmt.Sprintf("%s/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	body, err := json.Marshal(geminiReq)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, newAPIError(resp.StatusCode, bodyBytes)
	}

	var geminiResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &geminiResp, nil
}

// newAPIError builds an APIError, preferring the message from the JSON error body
func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Message: strings.TrimSpace(string(body))}

	var errBody geminiErrorBody
	if err := json.Unmarshal(body, &errBody); err == nil && errBody.Error.Message != "" {
		apiErr.Message = errBody.Error.Message
		apiErr.Status = errBody.Error.Status
	}
	return apiErr
}
