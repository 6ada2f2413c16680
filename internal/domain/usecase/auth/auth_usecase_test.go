package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/fintrack-app/fintrack/internal/domain/error"
)

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	openSession := func(t *testing.T, ta *testAuth) string {
		t.Helper()
		_, err := ta.uc.SignUp(ctx, "alice", "1234567890")
		require.NoError(t, err)
		_, session, err := ta.uc.SignIn(ctx, "alice", "1234567890")
		require.NoError(t, err)
		return session.Token
	}

	t.Run("ValidToken", func(t *testing.T) {
		ta := newTestAuth()
		token := openSession(t, ta)

		user, session, err := ta.uc.Authenticate(ctx, token)

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, token, session.Token)
	})

	t.Run("EmptyToken", func(t *testing.T) {
		ta := newTestAuth()

		_, _, err := ta.uc.Authenticate(ctx, "")

		assert.ErrorIs(t, err, errs.ErrSessionNotFound)
	})

	t.Run("UnknownToken", func(t *testing.T) {
		ta := newTestAuth()

		_, _, err := ta.uc.Authenticate(ctx, "no-such-token")

		assert.ErrorIs(t, err, errs.ErrSessionNotFound)
	})

	t.Run("ExpiredTokenDeletedOnSight", func(t *testing.T) {
		ta := newTestAuth()
		token := openSession(t, ta)
		ta.clock.now = ta.clock.now.Add(25 * time.Hour)

		_, _, err := ta.uc.Authenticate(ctx, token)
		assert.ErrorIs(t, err, errs.ErrSessionExpired)

		// The row is gone, so the next attempt reports not-found
		_, _, err = ta.uc.Authenticate(ctx, token)
		assert.ErrorIs(t, err, errs.ErrSessionNotFound)
	})

	t.Run("SessionOfDeletedUser", func(t *testing.T) {
		ta := newTestAuth()
		token := openSession(t, ta)
		delete(ta.users.byID, 1)

		_, _, err := ta.uc.Authenticate(ctx, token)

		assert.ErrorIs(t, err, errs.ErrSessionNotFound)
	})
}

func TestSignOut(t *testing.T) {
	ctx := context.Background()

	t.Run("RemovesSession", func(t *testing.T) {
		ta := newTestAuth()
		_, err := ta.uc.SignUp(ctx, "alice", "1234567890")
		require.NoError(t, err)
		_, session, err := ta.uc.SignIn(ctx, "alice", "1234567890")
		require.NoError(t, err)

		require.NoError(t, ta.uc.SignOut(ctx, session.Token))

		_, _, err = ta.uc.Authenticate(ctx, session.Token)
		assert.ErrorIs(t, err, errs.ErrSessionNotFound)
	})

	t.Run("UnknownTokenIsFine", func(t *testing.T) {
		ta := newTestAuth()
		assert.NoError(t, ta.uc.SignOut(ctx, "already-gone"))
	})

	t.Run("EmptyTokenIsFine", func(t *testing.T) {
		ta := newTestAuth()
		assert.NoError(t, ta.uc.SignOut(ctx, ""))
	})
}
