package services_test

import (
	"context"
	"testing"

	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/models"
	"newsdesk/internal/services"
	"newsdesk/internal/store"
)

func TestRecommendUsesMeanProfileVector(t *testing.T) {
	articles := newFakeArticleStore()
	history := newFakeHistoryStore()
	vectors := newFakeVectorStore()
	svc := services.NewRecommendationService(history, articles, vectors, testConfig())
	ctx := context.Background()

	read1 := &models.Article{Title: "read one"}
	read2 := &models.Article{Title: "read two"}
	candidate := &models.Article{Title: "candidate"}
	require.NoError(t, articles.CreateArticle(ctx, read1))
	require.NoError(t, articles.CreateArticle(ctx, read2))
	require.NoError(t, articles.CreateArticle(ctx, candidate))

	require.NoError(t, vectors.UpsertTopicVector(ctx, read1.ID, pgvector.NewVector([]float32{1, 0, 0, 0, 0, 0, 0})))
	require.NoError(t, vectors.UpsertTopicVector(ctx, read2.ID, pgvector.NewVector([]float32{0, 1, 0, 0, 0, 0, 0})))
	vectors.matches = []store.VectorMatch{{ArticleID: candidate.ID, Distance: 0.25}}

	history.RecordRead(ctx, 1, read1.ID)
	history.RecordRead(ctx, 1, read2.ID)

	recs, err := svc.Recommend(ctx, 1, 5)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, candidate.ID, recs[0].Article.ID)
	assert.InDelta(t, 0.75, recs[0].Score, 1e-9)

	require.Len(t, vectors.queries, 1)
	query := vectors.queries[0].Slice()
	require.Len(t, query, 7)
	assert.InDelta(t, 0.5, float64(query[0]), 1e-6)
	assert.InDelta(t, 0.5, float64(query[1]), 1e-6)
	assert.Zero(t, query[2])
}

func TestRecommendColdStartWithoutHistory(t *testing.T) {
	articles := newFakeArticleStore()
	svc := services.NewRecommendationService(newFakeHistoryStore(), articles, newFakeVectorStore(), testConfig())
	ctx := context.Background()

	for _, title := range []string{"a", "b", "c"} {
		require.NoError(t, articles.CreateArticle(ctx, &models.Article{Title: title}))
	}

	recs, err := svc.Recommend(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	for _, r := range recs {
		assert.Zero(t, r.Score)
	}
}

func TestRecommendColdStartWhenVectorsMissing(t *testing.T) {
	// Reads exist but none of the read articles has a topic vector.
	articles := newFakeArticleStore()
	history := newFakeHistoryStore()
	svc := services.NewRecommendationService(history, articles, newFakeVectorStore(), testConfig())
	ctx := context.Background()

	read := &models.Article{Title: "read"}
	other := &models.Article{Title: "other"}
	require.NoError(t, articles.CreateArticle(ctx, read))
	require.NoError(t, articles.CreateArticle(ctx, other))
	history.RecordRead(ctx, 1, read.ID)

	recs, err := svc.Recommend(ctx, 1, 5)
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestRecommendDefaultLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Recommend.DefaultLimit = 1
	articles := newFakeArticleStore()
	svc := services.NewRecommendationService(newFakeHistoryStore(), articles, newFakeVectorStore(), cfg)
	ctx := context.Background()

	for _, title := range []string{"a", "b"} {
		require.NoError(t, articles.CreateArticle(ctx, &models.Article{Title: title}))
	}

	recs, err := svc.Recommend(ctx, 1, 0)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}
