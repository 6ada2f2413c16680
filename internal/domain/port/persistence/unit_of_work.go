package persistence

import (
	"context"
)

// UnitOfWork coordinates writes that must commit together, such as a
// passcode change plus the revocation of the user's other sessions
type UnitOfWork interface {
	// Execute runs fn inside a single database transaction. The context
	// passed to fn carries the transaction; repositories obtained from it
	// through Users/Sessions operate inside that transaction. Returning an
	// error rolls everything back.
	Execute(ctx context.Context, fn func(ctx context.Context) error) error

	// Users returns a user repository bound to the transaction in ctx,
	// or to the base connection when ctx carries none
	Users(ctx context.Context) UserRepository

	// Sessions returns a session repository bound to the transaction in ctx,
	// or to the base connection when ctx carries none
	Sessions(ctx context.Context) SessionRepository
}
