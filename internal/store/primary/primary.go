package primary

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"newsdesk/internal/models"
)

// StoreImpl implements the store interfaces backed by PostgreSQL.
type StoreImpl struct {
	db *pgxpool.Pool
}

// NewPrimaryStore creates a new PostgreSQL primary store implementation.
func NewPrimaryStore(ctx context.Context, dsn string) (*StoreImpl, error) {
	if dsn == "" {
		return nil, errors.New("database DSN cannot be empty")
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database DSN: %w", err)
	}

	dbpool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return &StoreImpl{db: dbpool}, nil
}

// Ping checks the database connection.
func (s *StoreImpl) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close closes the database connection pool.
func (s *StoreImpl) Close() {
	s.db.Close()
}

// articleColumns is the canonical column list shared by every article SELECT;
// scanArticle expects exactly this order.
const articleColumns = `id, title, description, body, url, author, source_name,
	image_url, content_hash, category, confidence, predictions, summary,
	published_at, created_at, updated_at`

func scanArticle(row pgx.Row, dest *models.Article) error {
	return row.Scan(
		&dest.ID,
		&dest.Title,
		&dest.Description,
		&dest.Body,
		&dest.URL,
		&dest.Author,
		&dest.SourceName,
		&dest.ImageURL,
		&dest.ContentHash,
		&dest.Category,
		&dest.Confidence,
		&dest.Predictions,
		&dest.Summary,
		&dest.PublishedAt,
		&dest.CreatedAt,
		&dest.UpdatedAt,
	)
}
