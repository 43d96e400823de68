// Package classifier assigns free-text news articles to one of seven fixed
// topical categories using a static keyword knowledge base. It is a
// single-pass, stateless scorer: no training, no persistence, no I/O. A
// Classifier only reads immutable state after construction and is therefore
// safe for concurrent use.
package classifier

import (
	"errors"
	"sort"
	"strings"
)

// ErrEmptyText is returned when the input is empty, whitespace-only, or
// contains no usable word tokens at all.
var ErrEmptyText = errors.New("classifier: text is empty")

const (
	semanticShare = 0.6
	contextShare  = 0.4
)

// Prediction is one category's confidence in a classification result.
type Prediction struct {
	Category   Category `json:"category"`
	Confidence float64  `json:"confidence"`
}

// Result is the full ranked outcome of a classification. Predictions always
// holds exactly one entry per category, sorted descending by confidence, and
// Category/Confidence mirror Predictions[0].
type Result struct {
	Category    Category     `json:"category"`
	Confidence  float64      `json:"confidence"`
	Predictions []Prediction `json:"predictions"`
}

// Classifier holds the shared weighted vocabulary. Construct once with New
// and reuse across goroutines.
type Classifier struct {
	vocab Vocabulary
}

// New builds the weighted vocabulary and returns a ready classifier.
func New() *Classifier {
	return &Classifier{vocab: BuildVocabulary()}
}

// Classify scores text against every category and returns the ranked result.
// Confidence is each category's combined score rescaled against the maximum
// combined score, as a percentage in [0,100]; the values are not a
// probability distribution and do not sum to 100.
//
// When the text shares no vocabulary with any category (all combined scores
// zero), every prediction gets confidence 0 and the ranking falls back to
// category declaration order instead of producing NaN.
func (c *Classifier) Classify(text string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{}, ErrEmptyText
	}
	words := Preprocess(text)
	if len(words) == 0 {
		return Result{}, ErrEmptyText
	}

	textScores := c.termScores(words)
	ctx := c.contextScores(text, len(words))

	var combined [NumCategories]float64
	maxScore := 0.0
	for _, cat := range AllCategories() {
		combined[cat] = semanticShare*c.semanticSimilarity(textScores, cat) +
			contextShare*ctx[cat]
		if combined[cat] > maxScore {
			maxScore = combined[cat]
		}
	}

	predictions := make([]Prediction, 0, NumCategories)
	for _, cat := range AllCategories() {
		confidence := 0.0
		if maxScore > 0 {
			confidence = combined[cat] / maxScore * 100
			if confidence > 100 {
				confidence = 100
			}
		}
		predictions = append(predictions, Prediction{Category: cat, Confidence: confidence})
	}

	// Stable sort keeps declaration order for equal confidences.
	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].Confidence > predictions[j].Confidence
	})

	return Result{
		Category:    predictions[0].Category,
		Confidence:  predictions[0].Confidence,
		Predictions: predictions,
	}, nil
}
