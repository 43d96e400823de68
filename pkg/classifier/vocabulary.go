package classifier

import "strings"

// Vocabulary maps single lowercase words to an importance weight in
// {3.0, 2.0, 1.5}. Words absent from the map weigh 1.0 (see Weight).
type Vocabulary map[string]float64

const (
	primaryWeight   = 3.0
	secondaryWeight = 2.0
	otherWeight     = 1.5
)

// BuildVocabulary derives the global word weight map from the knowledge base.
// Categories are walked in declaration order and, within each category,
// primary terms first, then secondary, then the remaining classes. The first
// assignment wins: a word already weighted by an earlier category or tier is
// never overwritten, which makes the result deterministic but sensitive to
// declaration order. Call once and share read-only.
func BuildVocabulary() Vocabulary {
	vocab := make(Vocabulary)
	for _, cat := range AllCategories() {
		group := knowledgeBase[cat]
		vocab.assign(group.primary, primaryWeight)
		vocab.assign(group.secondary, secondaryWeight)
		for _, tc := range group.extra {
			vocab.assign(tc.terms, otherWeight)
		}
	}
	return vocab
}

func (v Vocabulary) assign(terms []string, weight float64) {
	for _, term := range terms {
		for _, word := range strings.Fields(strings.ToLower(term)) {
			if _, ok := v[word]; !ok {
				v[word] = weight
			}
		}
	}
}

// Weight returns the vocabulary weight for a word, defaulting to 1.0 for
// words the knowledge base never mentions.
func (v Vocabulary) Weight(word string) float64 {
	if w, ok := v[word]; ok {
		return w
	}
	return 1.0
}
