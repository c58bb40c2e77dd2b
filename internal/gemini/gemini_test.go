package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewClient(t *testing.T) {
	apiKey := "test-api-key"
	model := "gemini-3-flash-preview"

	client := NewClient(apiKey, model, "")

	if client == nil {
		t.Fatal("Expected non-nil client")
	}

	if client.apiKey != apiKey {
		t.Errorf("Expected API key '%s', got '%s'", apiKey, client.apiKey)
	}

	if client.Model() != model {
		t.Errorf("Expected model '%s', got '%s'", model, client.Model())
	}

	if client.httpClient == nil {
		t.Error("Expected non-nil HTTP client")
	}

	if !strings.Contains(client.baseURL, "generativelanguage.googleapis.com") {
		t.Errorf("Expected base URL to contain Google API domain, got '%s'", client.baseURL)
	}
}

func TestNewClientCustomBaseURL(t *testing.T) {
	client := NewClient("k", "m", "http://localhost:9999/models/")

	if client.baseURL != "http://localhost:9999/models" {
		t.Errorf("Expected trailing slash to be trimmed, got '%s'", client.baseURL)
	}
}

func TestBuildSearchPrompt(t *testing.T) {
	prompt := buildSearchPrompt("NASA")

	expected := `Find the latest news articles for the keyword: "NASA". Return a short summary of the current situation.`
	if prompt != expected {
		t.Errorf("Expected prompt '%s', got '%s'", expected, prompt)
	}
}

func TestSearchNews(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("Expected POST request, got %s", r.Method)
		}

		if r.URL.Path != "/test-model:generateContent" {
			t.Errorf("Unexpected path '%s'", r.URL.Path)
		}

		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("Expected API key in query, got '%s'", r.URL.Query().Get("key"))
		}

		var req map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Failed to decode request: %v", err)
			return
		}

		tools, ok := req["tools"].([]interface{})
		if !ok || len(tools) != 1 {
			t.Errorf("Expected one tool, got %v", req["tools"])
		} else if _, ok := tools[0].(map[string]interface{})["googleSearch"]; !ok {
			t.Errorf("Expected googleSearch tool, got %v", tools[0])
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"candidates": [{
				"content": {"role": "model", "parts": [
					{"text": "thinking...", "thought": true},
					{"text": "NASA launched "},
					{"text": "a new probe."}
				]},
				"groundingMetadata": {
					"webSearchQueries": ["NASA news"],
					"groundingChunks": [
						{"web": {"uri": "https://example.com/a", "title": "Probe launched - Space News"}},
						{"retrievedContext": {"uri": "gs://bucket/doc"}}
					]
				}
			}]
		}`)
	}))
	defer server.Close()

	client := NewClient("test-key", "test-model", server.URL)

	resp, err := client.SearchNews(context.Background(), "NASA")
	if err != nil {
		t.Fatalf("SearchNews failed: %v", err)
	}

	if resp.Text != "NASA launched a new probe." {
		t.Errorf("Unexpected text '%s'", resp.Text)
	}

	if len(resp.Chunks) != 2 {
		t.Fatalf("Expected 2 chunks, got %d", len(resp.Chunks))
	}

	if resp.Chunks[0].Web == nil || resp.Chunks[0].Web.URI != "https://example.com/a" {
		t.Errorf("Unexpected first chunk %+v", resp.Chunks[0])
	}

	if resp.Chunks[1].Web != nil {
		t.Errorf("Expected second chunk to have no web citation, got %+v", resp.Chunks[1].Web)
	}

	if len(resp.SearchQueries) != 1 || resp.SearchQueries[0] != "NASA news" {
		t.Errorf("Unexpected search queries %v", resp.SearchQueries)
	}
}

func TestSearchNewsNoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"candidates": []}`)
	}))
	defer server.Close()

	client := NewClient("test-key", "test-model", server.URL)

	resp, err := client.SearchNews(context.Background(), "NASA")
	if err != nil {
		t.Fatalf("Expected no error for empty candidates, got %v", err)
	}

	if resp.Text != "" || len(resp.Chunks) != 0 {
		t.Errorf("Expected empty response, got %+v", resp)
	}
}

func TestSearchNewsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{
			"error": {
				"code": 400,
				"message": "API key not valid. Please pass a valid API key.",
				"status": "INVALID_ARGUMENT"
			}
		}`)
	}))
	defer server.Close()

	client := NewClient("bad-key", "test-model", server.URL)

	_, err := client.SearchNews(context.Background(), "NASA")
	if err == nil {
		t.Fatal("Expected error for 400 status")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *APIError, got %T", err)
	}

	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", apiErr.StatusCode)
	}

	if apiErr.Status != "INVALID_ARGUMENT" {
		t.Errorf("Expected status INVALID_ARGUMENT, got '%s'", apiErr.Status)
	}

	if !strings.Contains(err.Error(), "API key not valid") {
		t.Errorf("Expected error to carry API message, got: %v", err)
	}
}

func TestSearchNewsPlainTextError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("upstream unavailable"))
	}))
	defer server.Close()

	client := NewClient("test-key", "test-model", server.URL)

	_, err := client.SearchNews(context.Background(), "NASA")
	if err == nil {
		t.Fatal("Expected error for 503 status")
	}

	if !strings.Contains(err.Error(), "503") || !strings.Contains(err.Error(), "upstream unavailable") {
		t.Errorf("Expected error to mention status and body, got: %v", err)
	}
}

func TestSearchNewsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient("test-key", "test-model", server.URL)

	_, err := client.SearchNews(context.Background(), "NASA")
	if err == nil {
		t.Fatal("Expected error for closed server")
	}

	if !strings.Contains(err.Error(), "sending request") {
		t.Errorf("Expected transport error, got: %v", err)
	}
}
