package newsapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEverything(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/everything", r.URL.Path)
		assert.Equal(t, "olympics", r.URL.Query().Get("q"))
		assert.Equal(t, "publishedAt", r.URL.Query().Get("sortBy"))
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"status": "ok",
			"totalResults": 2,
			"articles": [
				{"source": {"id": null, "name": "BBC News"}, "title": "Olympics open", "url": "https://bbc.co.uk/1"},
				{"source": {"name": ""}, "title": "", "url": ""}
			]
		}`)
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL)

	resp, err := client.Everything(context.Background(), "olympics")
	require.NoError(t, err)

	assert.Equal(t, 2, resp.TotalResults)
	require.Len(t, resp.Articles, 2)
	assert.Equal(t, "BBC News", resp.Articles[0].Source.Name)
	assert.Equal(t, "Olympics open", resp.Articles[0].Title)
	assert.Equal(t, "https://bbc.co.uk/1", resp.Articles[0].URL)
}

func TestEverythingAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"status": "error", "code": "apiKeyInvalid", "message": "Your API key is invalid."}`)
	}))
	defer server.Close()

	client := NewClient("bad-key", server.URL)

	_, err := client.Everything(context.Background(), "olympics")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "apiKeyInvalid", apiErr.Code)
	assert.Contains(t, err.Error(), "Your API key is invalid.")
}

func TestEverythingNonJSONError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("bad gateway"))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL)

	_, err := client.Everything(context.Background(), "olympics")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "bad gateway")
}
