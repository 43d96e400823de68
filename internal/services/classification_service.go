package services

import (
	"github.com/pgvector/pgvector-go"

	"newsdesk/pkg/classifier"
)

// ClassificationService wraps the keyword classifier. The underlying
// classifier builds its weighted vocabulary once at construction and is
// shared read-only afterwards, so a single service instance serves all
// callers concurrently.
type ClassificationService struct {
	clf *classifier.Classifier
}

func NewClassificationService() *ClassificationService {
	return &ClassificationService{clf: classifier.New()}
}

// Classify runs the classifier over text.
func (s *ClassificationService) Classify(text string) (classifier.Result, error) {
	return s.clf.Classify(text)
}

// TopicVector converts a classification result into the 7-dim vector stored
// for recommendation similarity: each component is that category's
// confidence scaled to [0,1], indexed by category declaration order.
func TopicVector(res classifier.Result) pgvector.Vector {
	values := make([]float32, classifier.NumCategories)
	for _, p := range res.Predictions {
		values[int(p.Category)] = float32(p.Confidence / 100)
	}
	return pgvector.NewVector(values)
}
