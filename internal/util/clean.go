package util

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// charReplacementMap normalizes smart punctuation that commonly survives feed
// and scrape extraction.
var charReplacementMap = map[string]string{
	"\u2018": "'", "\u2019": "'", "\u201C": "\"", "\u201D": "\"",
	"\u2013": "-", "\u2014": "--", "\u2026": "...", "\u00a0": " ",
	"\u0091": "'", "\u0092": "'", "\u0093": "\"", "\u0094": "\"",
}

var skippedElements = map[string]bool{
	"script": true,
	"style":  true,
	"nav":    true,
	"footer": true,
}

// StripHTML drops markup from a fragment and returns its visible text with
// single spaces between chunks. Script, style, nav and footer subtrees are
// skipped entirely. Plain text passes through unchanged apart from whitespace
// collapsing.
func StripHTML(fragment string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(fragment))

	var parts []string
	skipDepth := 0
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return strings.Join(parts, " ")
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if skippedElements[string(name)] {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if skippedElements[string(name)] && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth > 0 {
				continue
			}
			if text := strings.TrimSpace(string(tokenizer.Text())); text != "" {
				parts = append(parts, text)
			}
		}
	}
}

// CleanArticleText prepares a fetched article body for classification and
// storage: strips markup, normalizes smart punctuation, repairs invalid
// UTF-8 and collapses whitespace runs.
func CleanArticleText(raw string) string {
	text := StripHTML(raw)

	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, string(utf8.RuneError))
	}

	for bad, good := range charReplacementMap {
		text = strings.ReplaceAll(text, bad, good)
	}

	return strings.Join(strings.Fields(text), " ")
}
