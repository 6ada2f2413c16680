package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/fintrack-app/fintrack/internal/domain/error"
	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
)

// fixedTimeProvider pins Now so timestamps are assertable
type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

func (p *fixedTimeProvider) Since(t time.Time) coreport.Duration {
	return coreport.Duration(p.now.Sub(t))
}

func newFixedTimeProvider() *fixedTimeProvider {
	return &fixedTimeProvider{now: time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)}
}

func TestNewUser(t *testing.T) {
	tp := newFixedTimeProvider()

	user := NewUser("alice", "$2a$10$fakehash", tp)

	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "$2a$10$fakehash", user.PasscodeHash)
	assert.Equal(t, tp.now, user.CreatedAt)
	assert.Equal(t, tp.now, user.UpdatedAt)
	assert.Zero(t, user.ID)
}

func TestSetPasscodeHash(t *testing.T) {
	tp := newFixedTimeProvider()
	user := NewUser("alice", "old-hash", tp)

	tp.now = tp.now.Add(time.Hour)
	user.SetPasscodeHash("new-hash", tp)

	assert.Equal(t, "new-hash", user.PasscodeHash)
	assert.Equal(t, tp.now, user.UpdatedAt)
	assert.True(t, user.UpdatedAt.After(user.CreatedAt))
}

func TestValidateUsername(t *testing.T) {
	testCases := []struct {
		name     string
		username string
		wantErr  error
	}{
		{"Valid", "alice", nil},
		{"ValidWithDigits", "alice42", nil},
		{"ValidWithSeparators", "a.b_c-d", nil},
		{"ValidMinLength", "bob", nil},
		{"ValidMaxLength", "abcdefghijklmnopqrstuvwxyz_01234", nil},
		{"TooShort", "ab", errs.ErrInvalidUsername},
		{"TooLong", "abcdefghijklmnopqrstuvwxyz_012345", errs.ErrInvalidUsername},
		{"Empty", "", errs.ErrInvalidUsername},
		{"Space", "alice smith", errs.ErrInvalidUsername},
		{"Symbol", "alice!", errs.ErrInvalidUsername},
		{"NonASCII", "алиса", errs.ErrInvalidUsername},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateUsername(tc.username)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestValidatePasscode(t *testing.T) {
	testCases := []struct {
		name     string
		passcode string
		wantErr  error
	}{
		{"Valid", "0123456789", nil},
		{"ValidAllSame", "0000000000", nil},
		{"TooShort", "123456789", errs.ErrInvalidPasscode},
		{"TooLong", "12345678901", errs.ErrInvalidPasscode},
		{"Empty", "", errs.ErrInvalidPasscode},
		{"Letters", "12345abcde", errs.ErrInvalidPasscode},
		{"Spaces", "12345 6789", errs.ErrInvalidPasscode},
		{"UnicodeDigits", "١٢٣٤٥٦٧٨٩٠", errs.ErrInvalidPasscode},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePasscode(tc.passcode)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}
