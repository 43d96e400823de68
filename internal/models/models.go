package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Article is a fetched news story together with the classifier's verdict.
// Predictions holds the full ranked category distribution as JSON so the API
// can return it without re-running the classifier.
type Article struct {
	ID          int64           `db:"id" json:"id"`
	Title       string          `db:"title" json:"title"`
	Description string          `db:"description" json:"description"`
	Body        string          `db:"body" json:"body"`
	URL         string          `db:"url" json:"url"`
	Author      *string         `db:"author" json:"author,omitempty"`
	SourceName  string          `db:"source_name" json:"source_name"`
	ImageURL    *string         `db:"image_url" json:"image_url,omitempty"`
	ContentHash string          `db:"content_hash" json:"-"`
	Category    string          `db:"category" json:"category"`
	Confidence  float64         `db:"confidence" json:"confidence"`
	Predictions json.RawMessage `db:"predictions" json:"predictions"`
	Summary     *string         `db:"summary" json:"summary,omitempty"`
	PublishedAt *time.Time      `db:"published_at" json:"published_at,omitempty"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Session is an opaque bearer token handed out at login.
type Session struct {
	Token     uuid.UUID `db:"token" json:"token"`
	UserID    int64     `db:"user_id" json:"user_id"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// HistoryEntry records that a user opened an article. Re-reading the same
// article refreshes ReadAt instead of inserting a second row.
type HistoryEntry struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	ArticleID int64     `db:"article_id" json:"article_id"`
	ReadAt    time.Time `db:"read_at" json:"read_at"`
}

// BackgroundJob mirrors the background_jobs table used to audit asynq tasks.
type BackgroundJob struct {
	ID        int64           `db:"id" json:"id"`
	JobID     uuid.UUID       `db:"job_id" json:"job_id"`
	TaskType  string          `db:"task_type" json:"task_type"`
	Payload   json.RawMessage `db:"payload" json:"payload"`
	Queue     string          `db:"queue" json:"queue"`
	Status    string          `db:"status" json:"status"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}
