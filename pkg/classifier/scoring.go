package classifier

import (
	"math"
	"strings"
)

// termScores computes a weighted TF-IDF style score for every distinct word
// of the preprocessed input. Words not present in the input are simply absent
// from the returned map (consumers treat them as 0).
func (c *Classifier) termScores(words []string) map[string]float64 {
	freq := make(map[string]int, len(words))
	for _, w := range words {
		freq[w]++
	}

	n := float64(len(words))
	vocabSize := float64(len(c.vocab))

	scores := make(map[string]float64, len(freq))
	for word, count := range freq {
		tf := float64(count) / n
		// The denominator branch always evaluates to 1 here because every
		// scored word was taken from the document itself, so idf is a
		// constant across words. Kept as written: the keyword weights were
		// tuned against this exact scoring behavior.
		docFreq := 0.0
		if count > 0 {
			docFreq = 1.0
		}
		idf := math.Log(1 + vocabSize/(1+docFreq))
		scores[word] = tf * idf * c.vocab.Weight(word)
	}
	return scores
}

// semanticSimilarity scores how strongly the input's term scores overlap one
// category's keyword vocabulary, normalized by the category's total keyword
// weight mass so heavier keyword lists are not unfairly favored.
func (c *Classifier) semanticSimilarity(textScores map[string]float64, cat Category) float64 {
	var similarity, totalWeight float64
	for _, list := range knowledgeBase[cat].classLists() {
		for _, term := range list.terms {
			for _, word := range strings.Fields(strings.ToLower(term)) {
				w := c.vocab.Weight(word)
				similarity += textScores[word] * w
				totalWeight += w
			}
		}
	}
	if totalWeight == 0 {
		return 0
	}
	return similarity / totalWeight
}

// contextScores scans the raw (case-folded) text for literal occurrences of
// every keyword phrase and produces one score per category, rewarding both
// accumulated match weight and match density, with a log-dampened length
// normalization so long articles are not penalized linearly.
func (c *Classifier) contextScores(text string, textLen int) [NumCategories]float64 {
	lowered := strings.ToLower(text)

	var out [NumCategories]float64
	for _, cat := range AllCategories() {
		var weight float64
		var matches int
		for _, list := range knowledgeBase[cat].classLists() {
			for _, term := range list.terms {
				if strings.Contains(lowered, strings.ToLower(term)) {
					weight += list.weight
					matches++
				}
			}
		}
		density := float64(matches) / float64(textLen)
		out[cat] = (weight * (1 + density)) / (1 + math.Log(1+float64(textLen)))
	}
	return out
}
