package services_test

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/pgvector/pgvector-go"

	"newsdesk/internal/models"
	"newsdesk/internal/newsapi"
	"newsdesk/internal/store"
)

// In-memory fakes for the store interfaces. Only what the service tests
// exercise is implemented with care; the rest returns zero values.

type fakeArticleStore struct {
	mu       sync.Mutex
	nextID   int64
	articles map[int64]*models.Article
	byHash   map[string]int64
}

func newFakeArticleStore() *fakeArticleStore {
	return &fakeArticleStore{
		nextID:   1,
		articles: make(map[int64]*models.Article),
		byHash:   make(map[string]int64),
	}
}

func (f *fakeArticleStore) CreateArticle(ctx context.Context, article *models.Article) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, dup := f.byHash[article.Title]; dup {
		return store.ErrDuplicate
	}
	article.ID = f.nextID
	f.nextID++
	f.articles[article.ID] = article
	f.byHash[article.Title] = article.ID
	return nil
}

// CreateArticleIfNotExists dedupes by title; good enough for tests since the
// real hash is derived from title+body.
func (f *fakeArticleStore) CreateArticleIfNotExists(ctx context.Context, article *models.Article) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id, dup := f.byHash[article.Title]; dup {
		*article = *f.articles[id]
		return true, nil
	}
	article.ID = f.nextID
	f.nextID++
	f.articles[article.ID] = article
	f.byHash[article.Title] = article.ID
	return false, nil
}

func (f *fakeArticleStore) GetArticle(ctx context.Context, id int64) (*models.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.articles[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return a, nil
}

func (f *fakeArticleStore) GetArticlesByIDs(ctx context.Context, ids []int64) ([]*models.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Article
	for _, id := range ids {
		if a, ok := f.articles[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeArticleStore) FindArticleByHash(ctx context.Context, hash string) (*models.Article, error) {
	return nil, store.ErrNotFound
}

func (f *fakeArticleStore) ListArticles(ctx context.Context, limit, offset int, category string) ([]*models.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Article
	for _, a := range f.articles {
		if category == "" || a.Category == category {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if offset < len(out) {
		out = out[offset:]
	} else {
		out = nil
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeArticleStore) UpdateArticleSummary(ctx context.Context, id int64, summary string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.articles[id]
	if !ok {
		return store.ErrNotFound
	}
	a.Summary = &summary
	return nil
}

func (f *fakeArticleStore) DeleteArticle(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.articles[id]
	if !ok {
		return store.ErrNotFound
	}
	delete(f.byHash, a.Title)
	delete(f.articles, id)
	return nil
}

func (f *fakeArticleStore) Ping(ctx context.Context) error { return nil }

type fakeVectorStore struct {
	mu      sync.Mutex
	vectors map[int64]pgvector.Vector
	matches []store.VectorMatch // canned SimilaritySearch result
	queries []pgvector.Vector
}

func newFakeVectorStore() *fakeVectorStore {
	return &fakeVectorStore{vectors: make(map[int64]pgvector.Vector)}
}

func (f *fakeVectorStore) UpsertTopicVector(ctx context.Context, articleID int64, vec pgvector.Vector) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.vectors[articleID] = vec
	return nil
}

func (f *fakeVectorStore) GetTopicVector(ctx context.Context, articleID int64) (pgvector.Vector, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	vec, ok := f.vectors[articleID]
	if !ok {
		return pgvector.Vector{}, store.ErrNotFound
	}
	return vec, nil
}

func (f *fakeVectorStore) SimilaritySearch(ctx context.Context, query pgvector.Vector, k int, excludeIDs []int64) ([]store.VectorMatch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	return f.matches, nil
}

func (f *fakeVectorStore) DeleteTopicVector(ctx context.Context, articleID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.vectors, articleID)
	return nil
}

func (f *fakeVectorStore) Ping(ctx context.Context) error { return nil }
func (f *fakeVectorStore) Close() error                   { return nil }

type fakeHistoryStore struct {
	mu      sync.Mutex
	nextID  int64
	entries []*models.HistoryEntry
}

func newFakeHistoryStore() *fakeHistoryStore { return &fakeHistoryStore{nextID: 1} }

func (f *fakeHistoryStore) RecordRead(ctx context.Context, userID, articleID int64) (*models.HistoryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.entries {
		if e.UserID == userID && e.ArticleID == articleID {
			return e, nil
		}
	}
	entry := &models.HistoryEntry{ID: f.nextID, UserID: userID, ArticleID: articleID}
	f.nextID++
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeHistoryStore) ListHistory(ctx context.Context, userID int64, limit int) ([]*models.HistoryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.HistoryEntry
	for i := len(f.entries) - 1; i >= 0; i-- {
		if f.entries[i].UserID == userID {
			out = append(out, f.entries[i])
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeHistoryStore) ReadArticleIDs(ctx context.Context, userID int64, limit int) ([]int64, error) {
	entries, _ := f.ListHistory(ctx, userID, limit)
	ids := make([]int64, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ArticleID)
	}
	return ids, nil
}

type fakeUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{nextID: 1, users: make(map[string]*models.User)}
}

func (f *fakeUserStore) CreateUser(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, dup := f.users[user.Username]; dup {
		return store.ErrDuplicate
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.Username] = user
	return nil
}

func (f *fakeUserStore) GetUser(ctx context.Context, id int64) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[username]
	if !ok {
		return nil, store.ErrNotFound
	}
	return u, nil
}

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*models.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[uuid.UUID]*models.Session)}
}

func (f *fakeSessionStore) CreateSession(ctx context.Context, session *models.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[session.Token] = session
	return nil
}

func (f *fakeSessionStore) GetSession(ctx context.Context, token uuid.UUID) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[token]
	if !ok {
		return nil, store.ErrNotFound
	}
	return s, nil
}

func (f *fakeSessionStore) DeleteSession(ctx context.Context, token uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.sessions[token]; !ok {
		return store.ErrNotFound
	}
	delete(f.sessions, token)
	return nil
}

func (f *fakeSessionStore) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	return 0, nil
}

type fakeJobClient struct {
	mu         sync.Mutex
	summarized []int64
	fetched    []string
}

func (f *fakeJobClient) Enqueue(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	return nil, nil
}

func (f *fakeJobClient) EnqueueFetchJob(ctx context.Context, category string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetched = append(f.fetched, category)
	return nil
}

func (f *fakeJobClient) EnqueueSummarizeJob(ctx context.Context, articleID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.summarized = append(f.summarized, articleID)
	return nil
}

func (f *fakeJobClient) Close() error { return nil }

// Fetch source fakes.

type fakeHeadlineSource struct {
	articles []newsapi.FetchedArticle
	err      error
	calls    int
}

func (f *fakeHeadlineSource) TopHeadlines(ctx context.Context, country, category string, pageSize int) ([]newsapi.FetchedArticle, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.articles, nil
}

type fakeFeedSource struct {
	articles []newsapi.FetchedArticle
	err      error
	calls    int
}

func (f *fakeFeedSource) FetchAll(ctx context.Context) ([]newsapi.FetchedArticle, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.articles, nil
}

type fakeScraper struct {
	body string
	err  error
	urls []string
}

func (f *fakeScraper) FetchBody(url string) (string, error) {
	f.urls = append(f.urls, url)
	if f.err != nil {
		return "", f.err
	}
	return f.body, nil
}

type fakeSummaryProvider struct {
	summary string
	err     error
	calls   int
}

func (f *fakeSummaryProvider) Summarize(ctx context.Context, title, body string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.summary, nil
}
