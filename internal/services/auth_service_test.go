package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/models"
	"newsdesk/internal/services"
)

func newTestAuthService() (*services.AuthService, *fakeUserStore, *fakeSessionStore) {
	users := newFakeUserStore()
	sessions := newFakeSessionStore()
	return services.NewAuthService(users, sessions, testConfig()), users, sessions
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "alice@example.com", "correct horse battery")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "correct horse battery", user.PasswordHash)

	session, err := svc.Login(ctx, "alice", "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, user.ID, session.UserID)
	assert.True(t, session.ExpiresAt.After(time.Now()))
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "a@example.com", "long enough password")
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.Register(ctx, "bob", "b@example.com", "short")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "a@example.com", "long enough password")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "other@example.com", "long enough password")
	assert.ErrorIs(t, err, models.ErrUserExists)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "a@example.com", "long enough password")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice", "wrong password here")
	assert.ErrorIs(t, err, models.ErrInvalidPassword)

	// Unknown usernames report the same error as bad passwords.
	_, err = svc.Login(ctx, "nobody", "long enough password")
	assert.ErrorIs(t, err, models.ErrInvalidPassword)
}

func TestAuthenticate(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "a@example.com", "long enough password")
	require.NoError(t, err)
	session, err := svc.Login(ctx, "alice", "long enough password")
	require.NoError(t, err)

	got, err := svc.Authenticate(ctx, session.Token.String())
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.Authenticate(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestAuthenticateExpiredSession(t *testing.T) {
	svc, _, sessions := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "a@example.com", "long enough password")
	require.NoError(t, err)
	session, err := svc.Login(ctx, "alice", "long enough password")
	require.NoError(t, err)

	sessions.sessions[session.Token].ExpiresAt = time.Now().Add(-time.Minute)

	_, err = svc.Authenticate(ctx, session.Token.String())
	assert.ErrorIs(t, err, models.ErrSessionExpired)

	// The expired session was removed, so a second attempt fails the same way.
	_, err = svc.Authenticate(ctx, session.Token.String())
	assert.ErrorIs(t, err, models.ErrSessionExpired)
}

func TestLogout(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "a@example.com", "long enough password")
	require.NoError(t, err)
	session, err := svc.Login(ctx, "alice", "long enough password")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, session.Token.String()))

	_, err = svc.Authenticate(ctx, session.Token.String())
	assert.ErrorIs(t, err, models.ErrSessionExpired)

	// Logging out twice is not an error.
	assert.NoError(t, svc.Logout(ctx, session.Token.String()))
}
