package persistence

import (
	"context"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user records
type UserRepository interface {
	// GetByID retrieves a user by primary key
	//
	// Possible errors:
	// - ErrUserNotFound: If no user with that ID exists
	// - ErrDatabaseConnection: If the database cannot be reached
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByUsername retrieves a user by login name.
	// Primary lookup for sign-in and the signup duplicate pre-check.
	//
	// Possible errors:
	// - ErrUserNotFound: If no user with that username exists
	// - ErrDatabaseConnection: If the database cannot be reached
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create inserts a new user and fills its ID
	//
	// Possible errors:
	// - ErrDuplicateUsername: If the username is already taken (unique index)
	// - ErrDatabaseConnection: If the database cannot be reached
	Create(ctx context.Context, user *entity.User) error

	// Update persists changed user fields, currently only the passcode hash
	//
	// Possible errors:
	// - ErrUserNotFound: If the user no longer exists
	// - ErrDatabaseConnection: If the database cannot be reached
	Update(ctx context.Context, user *entity.User) error
}
