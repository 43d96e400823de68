package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"newsdesk/internal/config"
	"newsdesk/internal/models"
	"newsdesk/internal/store"
)

const minPasswordLength = 8

// AuthService handles registration, login and bearer-token session checks.
type AuthService struct {
	users      store.UserStore
	sessions   store.SessionStore
	sessionTTL time.Duration
	bcryptCost int
}

func NewAuthService(users store.UserStore, sessions store.SessionStore, cfg *config.Config) *AuthService {
	cost := cfg.Auth.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &AuthService{
		users:      users,
		sessions:   sessions,
		sessionTTL: time.Duration(cfg.Auth.SessionTTLHours) * time.Hour,
		bcryptCost: cost,
	}
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" {
		return nil, fmt.Errorf("%w: username and email are required", models.ErrValidation)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", models.ErrValidation, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, models.ErrUserExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	log.Infof("registered user %q (id=%d)", user.Username, user.ID)
	return user, nil
}

// Login checks credentials and issues a session. Unknown usernames and bad
// passwords both return models.ErrInvalidPassword so callers cannot probe for
// account existence.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.Session, error) {
	user, err := s.users.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, models.ErrInvalidPassword
		}
		return nil, fmt.Errorf("look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, models.ErrInvalidPassword
	}

	session := &models.Session{
		Token:     uuid.New(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
	if err := s.sessions.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

// Authenticate resolves a bearer token to its user. Expired sessions are
// deleted on sight and reported as models.ErrSessionExpired.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(token))
	if err != nil {
		return nil, fmt.Errorf("%w: malformed session token", models.ErrValidation)
	}

	session, err := s.sessions.GetSession(ctx, parsed)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, models.ErrSessionExpired
		}
		return nil, fmt.Errorf("look up session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		if err := s.sessions.DeleteSession(ctx, parsed); err != nil {
			log.Warnf("delete expired session: %v", err)
		}
		return nil, models.ErrSessionExpired
	}

	user, err := s.users.GetUser(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("load session user: %w", err)
	}
	return user, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	parsed, err := uuid.Parse(strings.TrimSpace(token))
	if err != nil {
		return fmt.Errorf("%w: malformed session token", models.ErrValidation)
	}
	if err := s.sessions.DeleteSession(ctx, parsed); err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// PurgeExpiredSessions removes sessions past their expiry, returning how many
// were deleted. Called periodically from the worker.
func (s *AuthService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	return s.sessions.DeleteExpiredSessions(ctx)
}
