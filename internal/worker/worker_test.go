package worker

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/models"
	"newsdesk/internal/store"
	"newsdesk/internal/tasks"
)

type stubArticleStore struct {
	article   *models.Article
	summaries map[int64]string
}

func (s *stubArticleStore) CreateArticle(ctx context.Context, a *models.Article) error { return nil }
func (s *stubArticleStore) CreateArticleIfNotExists(ctx context.Context, a *models.Article) (bool, error) {
	return false, nil
}
func (s *stubArticleStore) GetArticle(ctx context.Context, id int64) (*models.Article, error) {
	if s.article == nil || s.article.ID != id {
		return nil, store.ErrNotFound
	}
	return s.article, nil
}
func (s *stubArticleStore) GetArticlesByIDs(ctx context.Context, ids []int64) ([]*models.Article, error) {
	return nil, nil
}
func (s *stubArticleStore) FindArticleByHash(ctx context.Context, hash string) (*models.Article, error) {
	return nil, store.ErrNotFound
}
func (s *stubArticleStore) ListArticles(ctx context.Context, limit, offset int, category string) ([]*models.Article, error) {
	return nil, nil
}
func (s *stubArticleStore) UpdateArticleSummary(ctx context.Context, id int64, summary string) error {
	if s.summaries == nil {
		s.summaries = make(map[int64]string)
	}
	s.summaries[id] = summary
	return nil
}
func (s *stubArticleStore) DeleteArticle(ctx context.Context, id int64) error { return nil }
func (s *stubArticleStore) Ping(ctx context.Context) error                    { return nil }

type stubSummaryProvider struct{ summary string }

func (s *stubSummaryProvider) Summarize(ctx context.Context, title, body string) (string, error) {
	return s.summary, nil
}

func TestHandleFetchJobRejectsBadPayload(t *testing.T) {
	handler := HandleFetchJob(Deps{})

	err := handler(context.Background(), asynq.NewTask(tasks.TypeFetchJob, []byte("{not json")))
	require.Error(t, err)
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestHandleSummarizeJobRejectsBadPayload(t *testing.T) {
	handler := HandleSummarizeJob(Deps{})

	err := handler(context.Background(), asynq.NewTask(tasks.TypeSummarizeJob, []byte("nope")))
	require.Error(t, err)
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestHandleSummarizeJobStoresSummary(t *testing.T) {
	articles := &stubArticleStore{article: &models.Article{ID: 3, Title: "t", Body: "b"}}
	handler := HandleSummarizeJob(Deps{
		ArticleStore:   articles,
		SummaryService: &stubSummaryProvider{summary: "short"},
	})

	payload, err := json.Marshal(summarizePayload{ArticleID: 3})
	require.NoError(t, err)

	require.NoError(t, handler(context.Background(), asynq.NewTask(tasks.TypeSummarizeJob, payload)))
	assert.Equal(t, "short", articles.summaries[3])
}

func TestHandleSummarizeJobMissingArticleSkipsRetry(t *testing.T) {
	handler := HandleSummarizeJob(Deps{
		ArticleStore:   &stubArticleStore{},
		SummaryService: &stubSummaryProvider{},
	})

	payload, err := json.Marshal(summarizePayload{ArticleID: 99})
	require.NoError(t, err)

	err = handler(context.Background(), asynq.NewTask(tasks.TypeSummarizeJob, payload))
	require.Error(t, err)
	assert.ErrorIs(t, err, asynq.SkipRetry)
}
