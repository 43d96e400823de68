package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/models"
	"newsdesk/internal/services"
)

func TestRecordReadRequiresExistingArticle(t *testing.T) {
	svc := services.NewHistoryService(newFakeHistoryStore(), newFakeArticleStore())

	_, err := svc.RecordRead(context.Background(), 1, 42)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListHistoryJoinsArticles(t *testing.T) {
	articles := newFakeArticleStore()
	history := newFakeHistoryStore()
	svc := services.NewHistoryService(history, articles)
	ctx := context.Background()

	a1 := &models.Article{Title: "first", Category: "Technology"}
	a2 := &models.Article{Title: "second", Category: "Sports"}
	require.NoError(t, articles.CreateArticle(ctx, a1))
	require.NoError(t, articles.CreateArticle(ctx, a2))

	_, err := svc.RecordRead(ctx, 1, a1.ID)
	require.NoError(t, err)
	_, err = svc.RecordRead(ctx, 1, a2.ID)
	require.NoError(t, err)

	items, err := svc.ListHistory(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	// Newest first.
	assert.Equal(t, a2.ID, items[0].Entry.ArticleID)
	require.NotNil(t, items[0].Article)
	assert.Equal(t, "second", items[0].Article.Title)
}

func TestListHistoryToleratesDeletedArticle(t *testing.T) {
	articles := newFakeArticleStore()
	history := newFakeHistoryStore()
	svc := services.NewHistoryService(history, articles)
	ctx := context.Background()

	a := &models.Article{Title: "gone soon"}
	require.NoError(t, articles.CreateArticle(ctx, a))
	_, err := svc.RecordRead(ctx, 1, a.ID)
	require.NoError(t, err)
	require.NoError(t, articles.DeleteArticle(ctx, a.ID))

	items, err := svc.ListHistory(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].Article)
}

func TestListHistoryEmpty(t *testing.T) {
	svc := services.NewHistoryService(newFakeHistoryStore(), newFakeArticleStore())

	items, err := svc.ListHistory(context.Background(), 7, 10)
	require.NoError(t, err)
	assert.Empty(t, items)
}
