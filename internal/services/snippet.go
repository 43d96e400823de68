package services

import (
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
	log "github.com/sirupsen/logrus"
)

var (
	snippetTokenizerOnce sync.Once
	snippetTokenizer     *sentences.DefaultSentenceTokenizer
)

// Snippet returns the first maxSentences sentences of text, for article list
// previews. Falls back to a word cutoff if the sentence tokenizer cannot be
// built.
func Snippet(text string, maxSentences int) string {
	text = strings.TrimSpace(text)
	if text == "" || maxSentences <= 0 {
		return ""
	}

	snippetTokenizerOnce.Do(func() {
		tok, err := english.NewSentenceTokenizer(nil)
		if err != nil {
			log.Warnf("init sentence tokenizer: %v", err)
			return
		}
		snippetTokenizer = tok
	})

	if snippetTokenizer == nil {
		words := strings.Fields(text)
		if len(words) > 40 {
			return strings.Join(words[:40], " ") + "..."
		}
		return text
	}

	parts := snippetTokenizer.Tokenize(text)
	if len(parts) <= maxSentences {
		return text
	}

	var b strings.Builder
	for _, s := range parts[:maxSentences] {
		b.WriteString(s.Text)
	}
	return strings.TrimSpace(b.String())
}
