package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"newsdesk/internal/config"
	"newsdesk/internal/models"
	"newsdesk/internal/newsapi"
	"newsdesk/internal/retry"
)

// HeadlineSource fetches top headlines from a structured news API.
type HeadlineSource interface {
	TopHeadlines(ctx context.Context, country, category string, pageSize int) ([]newsapi.FetchedArticle, error)
}

// FeedSource fetches articles from configured RSS/Atom feeds. It is the
// fallback when the headline source fails or is unconfigured.
type FeedSource interface {
	FetchAll(ctx context.Context) ([]newsapi.FetchedArticle, error)
}

// BodyScraper retrieves the full article body from its canonical URL.
type BodyScraper interface {
	FetchBody(url string) (string, error)
}

type FetchServiceDeps struct {
	Headlines HeadlineSource
	Feeds     FeedSource
	Scraper   BodyScraper
	Articles  *ArticleService
	Config    *config.Config
}

// FetchService pulls articles from the configured sources and hands them to
// the article service for classification and storage.
type FetchService struct {
	headlines HeadlineSource
	feeds     FeedSource
	scraper   BodyScraper
	articles  *ArticleService
	cfg       *config.Config
}

func NewFetchService(deps FetchServiceDeps) *FetchService {
	return &FetchService{
		headlines: deps.Headlines,
		feeds:     deps.Feeds,
		scraper:   deps.Scraper,
		articles:  deps.Articles,
		cfg:       deps.Config,
	}
}

// FetchResult summarizes one fetch run.
type FetchResult struct {
	Fetched    int `json:"fetched"`
	Stored     int `json:"stored"`
	Duplicates int `json:"duplicates"`
	Skipped    int `json:"skipped"`
}

// FetchTopic fetches headlines for one topic and ingests them. An empty topic
// fetches the API's general headlines. When the headline source fails after
// retries the configured RSS feeds serve as fallback.
func (s *FetchService) FetchTopic(ctx context.Context, topic string) (FetchResult, error) {
	fetched, err := s.fetch(ctx, topic)
	if err != nil {
		return FetchResult{}, err
	}
	return s.ingestAll(ctx, fetched), nil
}

// FetchAllTopics runs FetchTopic for every configured topic and merges the
// results. Per-topic failures are logged and counted, not fatal; the run only
// errors when every topic fails.
func (s *FetchService) FetchAllTopics(ctx context.Context) (FetchResult, error) {
	topics := s.cfg.NewsAPI.Topics
	if len(topics) == 0 {
		topics = []string{""}
	}

	var total FetchResult
	failures := 0
	for _, topic := range topics {
		res, err := s.FetchTopic(ctx, topic)
		if err != nil {
			log.Errorf("fetch topic %q: %v", topic, err)
			failures++
			continue
		}
		total.Fetched += res.Fetched
		total.Stored += res.Stored
		total.Duplicates += res.Duplicates
		total.Skipped += res.Skipped
	}

	if failures == len(topics) {
		return total, fmt.Errorf("all %d fetch topics failed", failures)
	}
	return total, nil
}

func (s *FetchService) fetch(ctx context.Context, topic string) ([]newsapi.FetchedArticle, error) {
	var fetched []newsapi.FetchedArticle

	if s.headlines != nil && s.cfg.NewsAPI.APIKey != "" {
		err := retry.Do(ctx, retry.Config{MaxAttempts: 3, Delay: 2 * time.Second, Backoff: true}, func() error {
			var fetchErr error
			fetched, fetchErr = s.headlines.TopHeadlines(ctx, s.cfg.NewsAPI.Country, topic, s.cfg.NewsAPI.PageSize)
			return fetchErr
		})
		if err == nil {
			return fetched, nil
		}
		log.Warnf("headline source failed, falling back to feeds: %v", err)
	}

	if s.feeds == nil || len(s.cfg.RSS.Feeds) == 0 {
		return nil, errors.New("no article source available: headline source failed or unconfigured and no feeds configured")
	}

	fetched, err := s.feeds.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("feed fallback: %w", err)
	}
	return fetched, nil
}

func (s *FetchService) ingestAll(ctx context.Context, fetched []newsapi.FetchedArticle) FetchResult {
	res := FetchResult{Fetched: len(fetched)}
	for _, fa := range fetched {
		s.fillBody(&fa)

		_, existed, err := s.articles.Ingest(ctx, fa)
		switch {
		case errors.Is(err, models.ErrInvalidInput):
			log.Debugf("skipping article %q: %v", fa.Title, err)
			res.Skipped++
		case err != nil:
			log.Errorf("ingest article %q: %v", fa.Title, err)
			res.Skipped++
		case existed:
			res.Duplicates++
		default:
			res.Stored++
		}
	}
	log.Infof("fetch run: %d fetched, %d stored, %d duplicates, %d skipped",
		res.Fetched, res.Stored, res.Duplicates, res.Skipped)
	return res
}

// fillBody scrapes the article page when the fetched body is too short to
// classify well. Scrape failures leave the fetched body in place.
func (s *FetchService) fillBody(fa *newsapi.FetchedArticle) {
	if s.scraper == nil || !s.cfg.Scraper.Enabled || fa.URL == "" {
		return
	}
	if len(strings.Fields(fa.Content)) >= s.cfg.Scraper.MinBodyWords {
		return
	}

	body, err := s.scraper.FetchBody(fa.URL)
	if err != nil {
		log.Debugf("scrape %s: %v", fa.URL, err)
		return
	}
	if len(strings.Fields(body)) > len(strings.Fields(fa.Content)) {
		fa.Content = body
	}
}
