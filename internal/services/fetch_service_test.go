package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/config"
	"newsdesk/internal/newsapi"
	"newsdesk/internal/services"
)

func newTestFetchService(headlines *fakeHeadlineSource, feeds *fakeFeedSource, scraper *fakeScraper, cfg *config.Config) (*services.FetchService, *fakeArticleStore) {
	articles := newFakeArticleStore()
	articleSvc := newTestArticleService(articles, newFakeVectorStore(), nil, cfg)

	var hs services.HeadlineSource
	if headlines != nil {
		hs = headlines
	}
	var fs services.FeedSource
	if feeds != nil {
		fs = feeds
	}
	var sc services.BodyScraper
	if scraper != nil {
		sc = scraper
	}

	return services.NewFetchService(services.FetchServiceDeps{
		Headlines: hs,
		Feeds:     fs,
		Scraper:   sc,
		Articles:  articleSvc,
		Config:    cfg,
	}), articles
}

func TestFetchTopicUsesHeadlineSource(t *testing.T) {
	cfg := testConfig()
	cfg.NewsAPI.APIKey = "key"
	headlines := &fakeHeadlineSource{articles: []newsapi.FetchedArticle{
		{Title: "Apple unveils new smartphone", Content: techBody, URL: "https://example.com/a"},
		{Title: "Lakers win the championship game", Content: "The team took the title after a dominant playoffs run, and the coach praised every player in the league.", URL: "https://example.com/b"},
	}}

	svc, articles := newTestFetchService(headlines, nil, nil, cfg)

	res, err := svc.FetchTopic(context.Background(), "technology")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Fetched)
	assert.Equal(t, 2, res.Stored)
	assert.Equal(t, 0, res.Duplicates)

	stored, err := articles.ListArticles(context.Background(), 10, 0, "")
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestFetchTopicFallsBackToFeeds(t *testing.T) {
	// No API key configured: the headline source is skipped entirely and the
	// feeds serve the run.
	cfg := testConfig()
	cfg.RSS.Feeds = []string{"https://example.com/feed.xml"}
	feeds := &fakeFeedSource{articles: []newsapi.FetchedArticle{
		{Title: "Apple unveils new smartphone", Content: techBody, URL: "https://example.com/a"},
	}}

	svc, _ := newTestFetchService(&fakeHeadlineSource{}, feeds, nil, cfg)

	res, err := svc.FetchTopic(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Stored)
	assert.Equal(t, 1, feeds.calls)
}

func TestFetchTopicErrorsWithoutAnySource(t *testing.T) {
	svc, _ := newTestFetchService(nil, nil, nil, testConfig())

	_, err := svc.FetchTopic(context.Background(), "")
	assert.Error(t, err)
}

func TestFetchTopicCountsDuplicates(t *testing.T) {
	cfg := testConfig()
	cfg.NewsAPI.APIKey = "key"
	headlines := &fakeHeadlineSource{articles: []newsapi.FetchedArticle{
		{Title: "Apple unveils new smartphone", Content: techBody, URL: "https://example.com/a"},
	}}
	svc, _ := newTestFetchService(headlines, nil, nil, cfg)

	_, err := svc.FetchTopic(context.Background(), "")
	require.NoError(t, err)

	res, err := svc.FetchTopic(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Stored)
	assert.Equal(t, 1, res.Duplicates)
}

func TestFetchScrapesShortBodies(t *testing.T) {
	cfg := testConfig()
	cfg.NewsAPI.APIKey = "key"
	cfg.Scraper.Enabled = true
	cfg.Scraper.MinBodyWords = 30

	headlines := &fakeHeadlineSource{articles: []newsapi.FetchedArticle{
		{Title: "Apple unveils new smartphone", Content: "Truncated [+1234 chars]", URL: "https://example.com/a"},
	}}
	scraper := &fakeScraper{body: techBody}

	svc, articles := newTestFetchService(headlines, nil, scraper, cfg)

	res, err := svc.FetchTopic(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, 1, res.Stored)
	require.Equal(t, []string{"https://example.com/a"}, scraper.urls)

	stored, err := articles.ListArticles(context.Background(), 10, 0, "")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Contains(t, stored[0].Body, "smartphone")
	assert.Greater(t, len(strings.Fields(stored[0].Body)), 10)
}

func TestFetchSkipsScrapeForLongBodies(t *testing.T) {
	cfg := testConfig()
	cfg.NewsAPI.APIKey = "key"
	cfg.Scraper.Enabled = true
	cfg.Scraper.MinBodyWords = 5

	headlines := &fakeHeadlineSource{articles: []newsapi.FetchedArticle{
		{Title: "Apple unveils new smartphone", Content: techBody, URL: "https://example.com/a"},
	}}
	scraper := &fakeScraper{body: "should not be used"}

	svc, _ := newTestFetchService(headlines, nil, scraper, cfg)

	_, err := svc.FetchTopic(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, scraper.urls)
}

func TestFetchAllTopicsAggregates(t *testing.T) {
	cfg := testConfig()
	cfg.NewsAPI.APIKey = "key"
	cfg.NewsAPI.Topics = []string{"technology", "sports"}
	headlines := &fakeHeadlineSource{articles: []newsapi.FetchedArticle{
		{Title: "Apple unveils new smartphone", Content: techBody, URL: "https://example.com/a"},
	}}

	svc, _ := newTestFetchService(headlines, nil, nil, cfg)

	res, err := svc.FetchAllTopics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, headlines.calls)
	assert.Equal(t, 2, res.Fetched)
	assert.Equal(t, 1, res.Stored)
	assert.Equal(t, 1, res.Duplicates)
}
