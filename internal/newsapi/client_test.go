package newsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopHeadlines(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/top-headlines", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		assert.Equal(t, "business", r.URL.Query().Get("category"))
		assert.Equal(t, "us", r.URL.Query().Get("country"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "ok",
			"totalResults": 2,
			"articles": [
				{
					"source": {"id": "", "name": "Example Wire"},
					"author": "A. Reporter",
					"title": "Markets rally",
					"description": "Stocks climbed on Tuesday.",
					"url": "https://example.com/markets-rally",
					"urlToImage": "https://example.com/img.jpg",
					"publishedAt": "2026-08-20T10:00:00Z",
					"content": "Stocks climbed on Tuesday after..."
				},
				{
					"source": {"id": "", "name": "Example Wire"},
					"title": "",
					"url": "https://example.com/untitled"
				}
			]
		}`))
	}))
	defer srv.Close()

	client, err := NewClient("test-key", srv.URL, "")
	require.NoError(t, err)

	articles, err := client.TopHeadlines(context.Background(), "us", "business", 20)
	require.NoError(t, err)

	// The untitled article is skipped.
	require.Len(t, articles, 1)
	assert.Equal(t, "Markets rally", articles[0].Title)
	assert.Equal(t, "Example Wire", articles[0].SourceName)
	require.NotNil(t, articles[0].PublishedAt)
}

func TestTopHeadlinesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":"error","code":"apiKeyInvalid","message":"Your API key is invalid"}`))
	}))
	defer srv.Close()

	client, err := NewClient("bad-key", srv.URL, "")
	require.NoError(t, err)

	_, err = client.TopHeadlines(context.Background(), "us", "", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "apiKeyInvalid")
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient("", "", "")
	assert.Error(t, err)

	_, err = NewClient("key", "", "://not-a-url")
	assert.Error(t, err)
}
