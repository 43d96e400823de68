package primary

import (
	"context"
	"errors"
	"fmt"

	"newsdesk/internal/models"
	"newsdesk/internal/store"

	"github.com/jackc/pgx/v5/pgconn"
)

// RecordRead upserts a reading-history row: re-reading an article refreshes
// read_at rather than inserting a duplicate.
func (s *StoreImpl) RecordRead(ctx context.Context, userID, articleID int64) (*models.HistoryEntry, error) {
	query := `
		INSERT INTO reading_history (user_id, article_id, read_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, article_id)
		DO UPDATE SET read_at = NOW()
		RETURNING id, user_id, article_id, read_at`

	entry := &models.HistoryEntry{}
	err := s.db.QueryRow(ctx, query, userID, articleID).Scan(
		&entry.ID, &entry.UserID, &entry.ArticleID, &entry.ReadAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return nil, fmt.Errorf("user %d or article %d does not exist: %w", userID, articleID, store.ErrForeignKeyViolation)
		}
		return nil, fmt.Errorf("failed to record read: %w", err)
	}
	return entry, nil
}

func (s *StoreImpl) ListHistory(ctx context.Context, userID int64, limit int) ([]*models.HistoryEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT id, user_id, article_id, read_at
		FROM reading_history
		WHERE user_id = $1
		ORDER BY read_at DESC
		LIMIT $2`

	rows, err := s.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reading history: %w", err)
	}
	defer rows.Close()

	var entries []*models.HistoryEntry
	for rows.Next() {
		entry := &models.HistoryEntry{}
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.ArticleID, &entry.ReadAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history rows: %w", err)
	}
	return entries, nil
}

func (s *StoreImpl) ReadArticleIDs(ctx context.Context, userID int64, limit int) ([]int64, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT article_id FROM reading_history
		WHERE user_id = $1
		ORDER BY read_at DESC
		LIMIT $2`

	rows, err := s.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query read article IDs: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan article ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating article ID rows: %w", err)
	}
	return ids, nil
}

var _ store.HistoryStore = (*StoreImpl)(nil)
