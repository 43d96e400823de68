// Package newsapi is a minimal client for the newsapi.org REST API, the
// primary article source. An optional HTTP proxy can be configured for
// deployments where newsapi.org is not directly reachable.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// FetchedArticle is a provider-neutral article as it arrives from a source,
// before cleaning and classification.
type FetchedArticle struct {
	Title       string
	Description string
	Content     string
	URL         string
	Author      string
	SourceName  string
	ImageURL    string
	PublishedAt *time.Time
}

type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type apiResponse struct {
	Status       string `json:"status"`
	Code         string `json:"code"`
	Message      string `json:"message"`
	TotalResults int    `json:"totalResults"`
	Articles     []struct {
		Source struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"source"`
		Author      string     `json:"author"`
		Title       string     `json:"title"`
		Description string     `json:"description"`
		URL         string     `json:"url"`
		URLToImage  string     `json:"urlToImage"`
		PublishedAt *time.Time `json:"publishedAt"`
		Content     string     `json:"content"`
	} `json:"articles"`
}

// NewClient builds a newsapi.org client. proxyURL may be empty; when set,
// all requests are routed through it.
func NewClient(apiKey, baseURL, proxyURL string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("newsapi API key cannot be empty")
	}
	if baseURL == "" {
		baseURL = "https://newsapi.org/v2"
	}

	transport := http.DefaultTransport
	if proxyURL != "" {
		parsed, err := url.Parse(proxyURL)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy URL %q: %w", proxyURL, err)
		}
		transport = &http.Transport{Proxy: http.ProxyURL(parsed)}
	}

	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}, nil
}

// TopHeadlines fetches the latest headlines. category may be empty for the
// general feed; newsapi.org recognises the lowercased classifier category
// names (technology, business, sports, entertainment, health, science).
func (c *Client) TopHeadlines(ctx context.Context, country, category string, pageSize int) ([]FetchedArticle, error) {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("country", country)
	params.Set("pageSize", strconv.Itoa(pageSize))
	if category != "" {
		params.Set("category", category)
	}

	endpoint := c.baseURL + "/top-headlines?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsapi request: %w", err)
	}
	defer resp.Body.Close()

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode newsapi response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || apiResp.Status != "ok" {
		if apiResp.Message != "" {
			return nil, fmt.Errorf("newsapi error (%s): %s", apiResp.Code, apiResp.Message)
		}
		return nil, fmt.Errorf("newsapi returned status %d", resp.StatusCode)
	}

	articles := make([]FetchedArticle, 0, len(apiResp.Articles))
	for _, a := range apiResp.Articles {
		if a.Title == "" || a.URL == "" {
			continue
		}
		articles = append(articles, FetchedArticle{
			Title:       a.Title,
			Description: a.Description,
			Content:     a.Content,
			URL:         a.URL,
			Author:      a.Author,
			SourceName:  a.Source.Name,
			ImageURL:    a.URLToImage,
			PublishedAt: a.PublishedAt,
		})
	}
	return articles, nil
}
