package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/fintrack-app/fintrack/internal/domain/error"
)

func TestSignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("NewUsernameSucceeds", func(t *testing.T) {
		ta := newTestAuth()

		user, err := ta.uc.SignUp(ctx, "alice", "1234567890")

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "alice", user.Username)
		assert.NotZero(t, user.ID)
		assert.Equal(t, "hashed:1234567890", user.PasscodeHash)
		assert.Equal(t, ta.clock.now, user.CreatedAt)
	})

	t.Run("TrimsUsername", func(t *testing.T) {
		ta := newTestAuth()

		user, err := ta.uc.SignUp(ctx, "  alice  ", "1234567890")

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("ExistingUsernameRejected", func(t *testing.T) {
		ta := newTestAuth()
		_, err := ta.uc.SignUp(ctx, "alice", "1234567890")
		require.NoError(t, err)

		user, err := ta.uc.SignUp(ctx, "alice", "0987654321")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrDuplicateUsername)
	})

	t.Run("DuplicateFromConstraintMapsTheSame", func(t *testing.T) {
		// A race slipping past the pre-check surfaces the constraint error
		ta := newTestAuth()
		ta.users.createErr = errs.ErrDuplicateUsername

		user, err := ta.uc.SignUp(ctx, "alice", "1234567890")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrDuplicateUsername)
	})

	t.Run("InvalidUsername", func(t *testing.T) {
		ta := newTestAuth()

		user, err := ta.uc.SignUp(ctx, "a!", "1234567890")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidUsername)
	})

	t.Run("InvalidPasscode", func(t *testing.T) {
		ta := newTestAuth()

		user, err := ta.uc.SignUp(ctx, "alice", "12345")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidPasscode)
	})

	t.Run("HasherFailure", func(t *testing.T) {
		ta := newTestAuth()
		ta.hasher.hashErr = assert.AnError

		user, err := ta.uc.SignUp(ctx, "alice", "1234567890")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})
}
