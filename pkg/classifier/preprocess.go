package classifier

import (
	"regexp"
	"strings"
)

var nonWordRe = regexp.MustCompile(`[^\w\s]`)

// Preprocess lowercases the text, replaces every non-word/non-space character
// with a space, splits on whitespace and drops tokens of length <= 1. It is a
// pure function used both for input text and, where needed, for multi-word
// keyword phrases.
func Preprocess(text string) []string {
	cleaned := nonWordRe.ReplaceAllString(strings.ToLower(text), " ")
	fields := strings.Fields(cleaned)
	words := fields[:0]
	for _, f := range fields {
		if len(f) > 1 {
			words = append(words, f)
		}
	}
	return words
}
