package rss

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewClient(t *testing.T) {
	client := NewClient("")

	if client == nil {
		t.Fatal("Expected non-nil client")
	}

	if client.baseURL != DefaultBaseURL {
		t.Errorf("Expected default base URL, got '%s'", client.baseURL)
	}

	if client.httpClient == nil {
		t.Error("Expected non-nil HTTP client")
	}

	if !strings.Contains(client.userAgent, "just-news") {
		t.Errorf("Expected user agent to contain 'just-news', got '%s'", client.userAgent)
	}
}

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>"NASA" - Google News</title>
    <link>https://news.google.com/search?q=NASA</link>
    <item>
      <title>NASA probe reaches orbit - Space News</title>
      <link>https://news.google.com/articles/abc</link>
      <guid isPermaLink="false">abc</guid>
      <pubDate>Tue, 03 Mar 2026 10:00:00 GMT</pubDate>
      <description>&lt;a href="https://news.google.com/articles/abc"&gt;NASA probe&lt;/a&gt;</description>
      <source url="https://spacenews.com">Space News</source>
    </item>
    <item>
      <title>Second story</title>
      <link>https://news.google.com/articles/def</link>
      <pubDate>not a date</pubDate>
    </item>
  </channel>
</rss>`

func TestSearchNews(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("Expected /search, got %s", r.URL.Path)
		}

		if q := r.URL.Query().Get("q"); q != "climate change" {
			t.Errorf("Expected query 'climate change', got '%s'", q)
		}

		if r.URL.Query().Get("hl") == "" {
			t.Error("Expected language parameter")
		}

		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, sampleFeed)
	}))
	defer server.Close()

	client := NewClient(server.URL + "/")

	feed, err := client.SearchNews(context.Background(), "climate change")
	if err != nil {
		t.Fatalf("SearchNews failed: %v", err)
	}

	if len(feed.Items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(feed.Items))
	}

	first := feed.Items[0]
	if first.Title != "NASA probe reaches orbit - Space News" {
		t.Errorf("Unexpected title '%s'", first.Title)
	}

	if first.Source.Name != "Space News" || first.Source.URL != "https://spacenews.com" {
		t.Errorf("Unexpected source %+v", first.Source)
	}

	if first.GUID != "abc" {
		t.Errorf("Expected GUID 'abc', got '%s'", first.GUID)
	}

	if feed.Items[1].Source.Name != "" {
		t.Errorf("Expected empty source for second item, got '%s'", feed.Items[1].Source.Name)
	}
}

func TestFetchFeedHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.SearchNews(context.Background(), "NASA")
	if err == nil {
		t.Fatal("Expected error for 503 response")
	}

	if !strings.Contains(err.Error(), "503") {
		t.Errorf("Expected error to mention status code, got: %v", err)
	}
}

func TestFetchFeedInvalidXML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<rss><channel><item>")
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.SearchNews(context.Background(), "NASA")
	if err == nil || !strings.Contains(err.Error(), "parsing RSS feed") {
		t.Errorf("Expected parse error, got: %v", err)
	}
}
