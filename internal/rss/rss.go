// Package rss fetches articles from RSS/Atom feeds, the fallback source when
// the news API is unavailable or unconfigured.
package rss

import (
	"context"

	"github.com/mmcdole/gofeed"
	log "github.com/sirupsen/logrus"

	"newsdesk/internal/newsapi"
)

type Fetcher struct {
	feeds  []string
	parser *gofeed.Parser
}

func NewFetcher(feeds []string) *Fetcher {
	return &Fetcher{feeds: feeds, parser: gofeed.NewParser()}
}

// FetchAll downloads and parses every configured feed. A broken feed is
// logged and skipped; the error is non-nil only when no feed could be read.
func (f *Fetcher) FetchAll(ctx context.Context) ([]newsapi.FetchedArticle, error) {
	var articles []newsapi.FetchedArticle
	var lastErr error
	okCount := 0

	for _, feedURL := range f.feeds {
		feed, err := f.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			log.Warnf("parse RSS feed %s: %v", feedURL, err)
			lastErr = err
			continue
		}
		okCount++

		for _, item := range feed.Items {
			if item.Title == "" || item.Link == "" {
				continue
			}
			fa := newsapi.FetchedArticle{
				Title:       item.Title,
				Description: item.Description,
				Content:     item.Content,
				URL:         item.Link,
				SourceName:  feed.Title,
				PublishedAt: item.PublishedParsed,
			}
			if len(item.Authors) > 0 {
				fa.Author = item.Authors[0].Name
			}
			if item.Image != nil {
				fa.ImageURL = item.Image.URL
			}
			articles = append(articles, fa)
		}
		log.Debugf("loaded %d items from %s", len(feed.Items), feedURL)
	}

	if okCount == 0 && lastErr != nil {
		return nil, lastErr
	}
	return articles, nil
}
