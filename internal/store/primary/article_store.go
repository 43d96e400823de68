package primary

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"newsdesk/internal/models"
	"newsdesk/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// calculateHash generates a SHA256 hash over title+body, the dedupe key for
// fetched articles.
func calculateHash(title, body string) string {
	hasher := sha256.New()
	hasher.Write([]byte(title))
	hasher.Write([]byte(body))
	return hex.EncodeToString(hasher.Sum(nil))
}

// CreateArticle inserts a new article record. Use CreateArticleIfNotExists
// for hash-based dedupe.
func (s *StoreImpl) CreateArticle(ctx context.Context, article *models.Article) error {
	query := `
		INSERT INTO articles (
			title, description, body, url, author, source_name, image_url,
			content_hash, category, confidence, predictions, summary,
			published_at, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at`

	now := time.Now()
	article.ContentHash = calculateHash(article.Title, article.Body)
	if article.Predictions == nil {
		article.Predictions = json.RawMessage("[]")
	}

	err := s.db.QueryRow(ctx, query,
		article.Title, article.Description, article.Body, article.URL,
		article.Author, article.SourceName, article.ImageURL,
		article.ContentHash, article.Category, article.Confidence,
		article.Predictions, article.Summary, article.PublishedAt, now, now,
	).Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("article with hash %s already exists: %w", article.ContentHash, store.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert article: %w", err)
	}
	return nil
}

// CreateArticleIfNotExists checks for existing content by hash before
// inserting. Returns true if the article already existed.
func (s *StoreImpl) CreateArticleIfNotExists(ctx context.Context, article *models.Article) (bool, error) {
	article.ContentHash = calculateHash(article.Title, article.Body)
	existing, err := s.FindArticleByHash(ctx, article.ContentHash)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return false, fmt.Errorf("failed checking for existing article by hash: %w", err)
	}
	if existing != nil {
		*article = *existing
		return true, nil
	}

	err = s.CreateArticle(ctx, article)
	if err != nil {
		// Another process may have inserted between check and create.
		if errors.Is(err, store.ErrDuplicate) {
			existing, errFetch := s.FindArticleByHash(ctx, article.ContentHash)
			if errFetch != nil {
				return false, fmt.Errorf("failed to fetch concurrently inserted article (hash %s): %w", article.ContentHash, errFetch)
			}
			if existing == nil {
				return false, fmt.Errorf("unique violation for hash %s, but article not found on re-fetch", article.ContentHash)
			}
			*article = *existing
			return true, nil
		}
		return false, fmt.Errorf("failed to create new article: %w", err)
	}

	return false, nil
}

func (s *StoreImpl) GetArticle(ctx context.Context, id int64) (*models.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`
	article := &models.Article{}
	err := scanArticle(s.db.QueryRow(ctx, query, id), article)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get article by id %d: %w", id, err)
	}
	return article, nil
}

func (s *StoreImpl) GetArticlesByIDs(ctx context.Context, ids []int64) ([]*models.Article, error) {
	if len(ids) == 0 {
		return []*models.Article{}, nil
	}

	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = ANY($1)`
	rows, err := s.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles by IDs: %w", err)
	}
	defer rows.Close()

	byID := make(map[int64]*models.Article)
	for rows.Next() {
		article := &models.Article{}
		if err := scanArticle(rows, article); err != nil {
			return nil, fmt.Errorf("failed scanning article row: %w", err)
		}
		byID[article.ID] = article
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating article rows: %w", err)
	}

	// Preserve the caller's ID order, skipping missing articles.
	results := make([]*models.Article, 0, len(ids))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			results = append(results, a)
		}
	}
	return results, nil
}

func (s *StoreImpl) FindArticleByHash(ctx context.Context, hash string) (*models.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE content_hash = $1`
	article := &models.Article{}
	err := scanArticle(s.db.QueryRow(ctx, query, hash), article)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find article by hash %s: %w", hash, err)
	}
	return article, nil
}

func (s *StoreImpl) ListArticles(ctx context.Context, limit, offset int, category string) ([]*models.Article, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var rows pgx.Rows
	var err error
	if category != "" {
		query := `SELECT ` + articleColumns + ` FROM articles
			WHERE category = $1
			ORDER BY published_at DESC NULLS LAST, created_at DESC
			LIMIT $2 OFFSET $3`
		rows, err = s.db.Query(ctx, query, category, limit, offset)
	} else {
		query := `SELECT ` + articleColumns + ` FROM articles
			ORDER BY published_at DESC NULLS LAST, created_at DESC
			LIMIT $1 OFFSET $2`
		rows, err = s.db.Query(ctx, query, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	var articles []*models.Article
	for rows.Next() {
		article := &models.Article{}
		if err := scanArticle(rows, article); err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}
		articles = append(articles, article)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating article rows: %w", err)
	}
	return articles, nil
}

func (s *StoreImpl) UpdateArticleSummary(ctx context.Context, id int64, summary string) error {
	query := `UPDATE articles SET summary = $1, updated_at = $2 WHERE id = $3`
	commandTag, err := s.db.Exec(ctx, query, summary, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update summary for article %d: %w", id, err)
	}
	if commandTag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *StoreImpl) DeleteArticle(ctx context.Context, id int64) error {
	// History rows reference the article; drop them first.
	if _, err := s.db.Exec(ctx, `DELETE FROM reading_history WHERE article_id = $1`, id); err != nil {
		return fmt.Errorf("delete article: failed to delete history rows for article %d: %w", id, err)
	}

	commandTag, err := s.db.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: failed to delete article %d: %w", id, err)
	}
	if commandTag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

var _ store.ArticleStore = (*StoreImpl)(nil)
