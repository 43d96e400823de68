package services

import (
	"newsdesk/internal/models"
)

// HistoryItem pairs a reading-history entry with the article it refers to.
type HistoryItem struct {
	Entry   models.HistoryEntry `json:"entry"`
	Article *models.Article     `json:"article,omitempty"`
}

// RecommendedArticle is one recommendation with its similarity score.
// Score is 1 - cosine distance, so higher is closer; cold-start fallback
// recommendations carry a score of 0.
type RecommendedArticle struct {
	Article *models.Article `json:"article"`
	Score   float64         `json:"score"`
}

type ListArticlesParams struct {
	Limit    int
	Offset   int
	Category string
}
