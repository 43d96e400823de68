package store

import (
	"context"

	"newsdesk/internal/models"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/pgvector/pgvector-go"
)

// --- Job Client ---

type JobClient interface {
	// Enqueue submits a task and records the event to the JobStore.
	Enqueue(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	EnqueueFetchJob(ctx context.Context, category string) error
	EnqueueSummarizeJob(ctx context.Context, articleID int64) error
	Close() error
}

// --- Article Store ---

type ArticleStore interface {
	CreateArticle(ctx context.Context, article *models.Article) error
	CreateArticleIfNotExists(ctx context.Context, article *models.Article) (bool, error)
	GetArticle(ctx context.Context, id int64) (*models.Article, error)
	GetArticlesByIDs(ctx context.Context, ids []int64) ([]*models.Article, error)
	FindArticleByHash(ctx context.Context, hash string) (*models.Article, error)
	ListArticles(ctx context.Context, limit, offset int, category string) ([]*models.Article, error)
	UpdateArticleSummary(ctx context.Context, id int64, summary string) error
	DeleteArticle(ctx context.Context, id int64) error

	Ping(ctx context.Context) error
}

// --- User Store ---

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// --- Session Store ---

type SessionStore interface {
	CreateSession(ctx context.Context, session *models.Session) error
	GetSession(ctx context.Context, token uuid.UUID) (*models.Session, error)
	DeleteSession(ctx context.Context, token uuid.UUID) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}

// --- Reading History Store ---

type HistoryStore interface {
	RecordRead(ctx context.Context, userID, articleID int64) (*models.HistoryEntry, error)
	ListHistory(ctx context.Context, userID int64, limit int) ([]*models.HistoryEntry, error)
	// ReadArticleIDs returns the IDs of the user's most recently read
	// articles, newest first.
	ReadArticleIDs(ctx context.Context, userID int64, limit int) ([]int64, error)
}

// --- Topic Vector Store ---

// TopicVectorStore persists the classifier's per-article category
// distribution as a 7-dim vector and answers nearest-neighbour queries over
// it for recommendation assembly.
type TopicVectorStore interface {
	UpsertTopicVector(ctx context.Context, articleID int64, vec pgvector.Vector) error
	GetTopicVector(ctx context.Context, articleID int64) (pgvector.Vector, error)
	SimilaritySearch(ctx context.Context, query pgvector.Vector, k int, excludeIDs []int64) ([]VectorMatch, error)
	DeleteTopicVector(ctx context.Context, articleID int64) error

	Ping(ctx context.Context) error
	Close() error
}

// VectorMatch is one nearest-neighbour hit. Distance is the cosine distance
// reported by pgvector (smaller is closer).
type VectorMatch struct {
	ArticleID int64
	Distance  float64
}

// --- Job Store ---

// JobRecordParams holds parameters for recording a job enqueue event.
type JobRecordParams struct {
	JobID    uuid.UUID
	TaskType string
	Payload  []byte
	Queue    string
	Status   string
}

type JobStore interface {
	RecordJobEnqueue(ctx context.Context, params JobRecordParams) error
	UpdateJobStatus(ctx context.Context, jobID uuid.UUID, status string) error
	ListJobs(ctx context.Context, limit, offset int) ([]*models.BackgroundJob, error)
}
