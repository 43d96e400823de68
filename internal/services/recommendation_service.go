package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/pgvector/pgvector-go"
	log "github.com/sirupsen/logrus"

	"newsdesk/internal/config"
	"newsdesk/internal/store"
	"newsdesk/pkg/classifier"
)

// RecommendationService suggests unread articles by topic similarity. The
// user's profile is the mean of the topic vectors of their recent reads; the
// nearest unread article vectors win.
type RecommendationService struct {
	history       store.HistoryStore
	articles      store.ArticleStore
	vectors       store.TopicVectorStore
	historyWindow int
	defaultLimit  int
}

func NewRecommendationService(history store.HistoryStore, articles store.ArticleStore, vectors store.TopicVectorStore, cfg *config.Config) *RecommendationService {
	return &RecommendationService{
		history:       history,
		articles:      articles,
		vectors:       vectors,
		historyWindow: cfg.Recommend.HistoryWindow,
		defaultLimit:  cfg.Recommend.DefaultLimit,
	}
}

// Recommend returns up to limit articles the user has not read, closest first.
// Users with no usable history get the latest articles instead, with a zero
// score.
func (s *RecommendationService) Recommend(ctx context.Context, userID int64, limit int) ([]RecommendedArticle, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}

	readIDs, err := s.history.ReadArticleIDs(ctx, userID, s.historyWindow)
	if err != nil {
		return nil, fmt.Errorf("load read history: %w", err)
	}

	profile, ok := s.profileVector(ctx, readIDs)
	if !ok {
		return s.coldStart(ctx, limit)
	}

	matches, err := s.vectors.SimilaritySearch(ctx, profile, limit, readIDs)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}
	if len(matches) == 0 {
		return s.coldStart(ctx, limit)
	}

	ids := make([]int64, 0, len(matches))
	scoreByID := make(map[int64]float64, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ArticleID)
		scoreByID[m.ArticleID] = 1 - m.Distance
	}

	articles, err := s.articles.GetArticlesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load recommended articles: %w", err)
	}

	recs := make([]RecommendedArticle, 0, len(articles))
	for _, a := range articles {
		recs = append(recs, RecommendedArticle{Article: a, Score: scoreByID[a.ID]})
	}
	return recs, nil
}

// profileVector averages the topic vectors of the user's recent reads.
// Articles whose vector is missing are skipped; ok is false when nothing
// usable remains.
func (s *RecommendationService) profileVector(ctx context.Context, readIDs []int64) (pgvector.Vector, bool) {
	var sum [classifier.NumCategories]float64
	used := 0

	for _, id := range readIDs {
		vec, err := s.vectors.GetTopicVector(ctx, id)
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				log.Warnf("load topic vector for article %d: %v", id, err)
			}
			continue
		}
		values := vec.Slice()
		if len(values) != classifier.NumCategories {
			continue
		}
		for i, v := range values {
			sum[i] += float64(v)
		}
		used++
	}

	if used == 0 {
		return pgvector.Vector{}, false
	}

	mean := make([]float32, classifier.NumCategories)
	for i := range sum {
		mean[i] = float32(sum[i] / float64(used))
	}
	return pgvector.NewVector(mean), true
}

func (s *RecommendationService) coldStart(ctx context.Context, limit int) ([]RecommendedArticle, error) {
	articles, err := s.articles.ListArticles(ctx, limit, 0, "")
	if err != nil {
		return nil, fmt.Errorf("cold-start listing: %w", err)
	}
	recs := make([]RecommendedArticle, 0, len(articles))
	for _, a := range articles {
		recs = append(recs, RecommendedArticle{Article: a})
	}
	return recs, nil
}
