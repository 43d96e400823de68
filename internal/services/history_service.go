package services

import (
	"context"
	"errors"
	"fmt"

	"newsdesk/internal/models"
	"newsdesk/internal/store"
)

// HistoryService records which articles a user has read and lists them back
// joined with the articles themselves.
type HistoryService struct {
	history  store.HistoryStore
	articles store.ArticleStore
}

func NewHistoryService(history store.HistoryStore, articles store.ArticleStore) *HistoryService {
	return &HistoryService{history: history, articles: articles}
}

// RecordRead marks an article as read by the user. The article must exist.
func (s *HistoryService) RecordRead(ctx context.Context, userID, articleID int64) (*models.HistoryEntry, error) {
	if _, err := s.articles.GetArticle(ctx, articleID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("check article %d: %w", articleID, err)
	}

	entry, err := s.history.RecordRead(ctx, userID, articleID)
	if err != nil {
		return nil, fmt.Errorf("record read: %w", err)
	}
	return entry, nil
}

// ListHistory returns the user's reading history, newest first, with each
// entry's article attached. Entries whose article has since been deleted are
// returned without one.
func (s *HistoryService) ListHistory(ctx context.Context, userID int64, limit int) ([]HistoryItem, error) {
	entries, err := s.history.ListHistory(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	if len(entries) == 0 {
		return []HistoryItem{}, nil
	}

	ids := make([]int64, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ArticleID)
	}
	articles, err := s.articles.GetArticlesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load history articles: %w", err)
	}
	byID := make(map[int64]*models.Article, len(articles))
	for _, a := range articles {
		byID[a.ID] = a
	}

	items := make([]HistoryItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, HistoryItem{Entry: *e, Article: byID[e.ArticleID]})
	}
	return items, nil
}
