package vector

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
	log "github.com/sirupsen/logrus"

	"newsdesk/internal/store"
)

// StoreImpl persists each article's 7-dim topic vector (the classifier's
// normalized confidence distribution) and answers cosine-distance
// nearest-neighbour queries for recommendation assembly.
type StoreImpl struct {
	db *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (store.TopicVectorStore, error) {
	if dsn == "" {
		return nil, fmt.Errorf("vector store DSN cannot be empty")
	}
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse vector store DSN: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping vector store: %w", err)
	}
	log.Debug("connected to PostgreSQL topic vector store")
	return &StoreImpl{db: pool}, nil
}

func (vs *StoreImpl) Close() error {
	if vs.db != nil {
		vs.db.Close()
	}
	return nil
}

func (vs *StoreImpl) Ping(ctx context.Context) error {
	if vs.db == nil {
		return fmt.Errorf("vector store connection is not initialized")
	}
	return vs.db.Ping(ctx)
}

func (vs *StoreImpl) UpsertTopicVector(ctx context.Context, articleID int64, vec pgvector.Vector) error {
	query := `INSERT INTO topic_vectors (article_id, vector, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (article_id) DO UPDATE SET vector = EXCLUDED.vector`
	if _, err := vs.db.Exec(ctx, query, articleID, vec); err != nil {
		return fmt.Errorf("upsert topic vector for article %d: %w", articleID, err)
	}
	return nil
}

func (vs *StoreImpl) GetTopicVector(ctx context.Context, articleID int64) (pgvector.Vector, error) {
	var vec pgvector.Vector
	err := vs.db.QueryRow(ctx,
		`SELECT vector FROM topic_vectors WHERE article_id = $1`, articleID,
	).Scan(&vec)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return pgvector.Vector{}, store.ErrNotFound
		}
		return pgvector.Vector{}, fmt.Errorf("get topic vector for article %d: %w", articleID, err)
	}
	return vec, nil
}

func (vs *StoreImpl) SimilaritySearch(ctx context.Context, query pgvector.Vector, k int, excludeIDs []int64) ([]store.VectorMatch, error) {
	if k <= 0 {
		k = 10
	}
	if excludeIDs == nil {
		excludeIDs = []int64{}
	}

	sql := `SELECT article_id, (vector <=> $1) AS distance
		FROM topic_vectors
		WHERE NOT (article_id = ANY($2))
		ORDER BY vector <=> $1
		LIMIT $3`

	rows, err := vs.db.Query(ctx, sql, query, excludeIDs, k)
	if err != nil {
		return nil, fmt.Errorf("similarity search query: %w", err)
	}
	defer rows.Close()

	var matches []store.VectorMatch
	for rows.Next() {
		var m store.VectorMatch
		if err := rows.Scan(&m.ArticleID, &m.Distance); err != nil {
			return nil, fmt.Errorf("scan similarity search row: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate similarity search rows: %w", err)
	}
	return matches, nil
}

func (vs *StoreImpl) DeleteTopicVector(ctx context.Context, articleID int64) error {
	if _, err := vs.db.Exec(ctx, `DELETE FROM topic_vectors WHERE article_id = $1`, articleID); err != nil {
		return fmt.Errorf("delete topic vector for article %d: %w", articleID, err)
	}
	return nil
}
