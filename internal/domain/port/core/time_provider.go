package core

import "time"

// Duration is the domain's own duration type so use cases never import
// the time package directly
type Duration time.Duration

// Durations the domain deals in; session TTLs are measured in hours
const (
	Second Duration = Duration(time.Second)
	Minute          = Duration(time.Minute)
	Hour            = Duration(time.Hour)
)

// Std converts a domain Duration to time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// TimeProvider hands the domain its clock. Session expiry, entry
// timestamps and query timing all go through it so tests can pin time.
type TimeProvider interface {
	// Now returns the current time
	Now() time.Time
	// Since returns the time elapsed since t
	Since(t time.Time) Duration
}
