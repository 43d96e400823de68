// Package scraper extracts full article text from a web page. The news API
// truncates article bodies, so ingestion falls back to scraping when the
// fetched body is too short to classify well.
package scraper

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

type Scraper struct {
	client *http.Client
}

func New() *Scraper {
	return &Scraper{
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchBody downloads the page at url and returns the concatenated paragraph
// text of its main content.
func (s *Scraper) FetchBody(url string) (string, error) {
	resp, err := s.client.Get(url)
	if err != nil {
		return "", fmt.Errorf("load page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse HTML: %w", err)
	}

	content := extractParagraphs(doc)
	if content == "" {
		return "", fmt.Errorf("no article content found at %s", url)
	}
	return content, nil
}

// extractParagraphs prefers <article> paragraphs and falls back to all
// paragraphs on the page. Very short fragments (nav captions, bylines) are
// dropped.
func extractParagraphs(doc *goquery.Document) string {
	var parts []string
	collect := func(i int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if len(text) > 40 {
			parts = append(parts, text)
		}
	}

	doc.Find("article p").Each(collect)
	if len(parts) == 0 {
		doc.Find("p").Each(collect)
	}
	return strings.Join(parts, "\n\n")
}
