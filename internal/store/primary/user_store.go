package primary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"newsdesk/internal/models"
	"newsdesk/internal/store"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- Users ---

func (s *StoreImpl) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	now := time.Now()
	err := s.db.QueryRow(ctx, query,
		user.Username, user.Email, user.PasswordHash, now, now,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("username %q already taken: %w", user.Username, store.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (s *StoreImpl) GetUser(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT id, username, email, password_hash, created_at, updated_at
		FROM users WHERE id = $1`
	user := &models.User{}
	err := s.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return user, nil
}

func (s *StoreImpl) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT id, username, email, password_hash, created_at, updated_at
		FROM users WHERE username = $1`
	user := &models.User{}
	err := s.db.QueryRow(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user %q: %w", username, err)
	}
	return user, nil
}

// --- Sessions ---

func (s *StoreImpl) CreateSession(ctx context.Context, session *models.Session) error {
	if session.Token == uuid.Nil {
		session.Token = uuid.New()
	}
	query := `
		INSERT INTO sessions (token, user_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`
	err := s.db.QueryRow(ctx, query,
		session.Token, session.UserID, session.ExpiresAt, time.Now(),
	).Scan(&session.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return fmt.Errorf("user %d does not exist: %w", session.UserID, store.ErrForeignKeyViolation)
		}
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

func (s *StoreImpl) GetSession(ctx context.Context, token uuid.UUID) (*models.Session, error) {
	query := `SELECT token, user_id, expires_at, created_at
		FROM sessions WHERE token = $1`
	session := &models.Session{}
	err := s.db.QueryRow(ctx, query, token).Scan(
		&session.Token, &session.UserID, &session.ExpiresAt, &session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

func (s *StoreImpl) DeleteSession(ctx context.Context, token uuid.UUID) error {
	commandTag, err := s.db.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *StoreImpl) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	commandTag, err := s.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at < NOW()`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return commandTag.RowsAffected(), nil
}

var (
	_ store.UserStore    = (*StoreImpl)(nil)
	_ store.SessionStore = (*StoreImpl)(nil)
)
