// Package time adapts the system clock to the domain's TimeProvider port.
package time

import (
	"time"

	"github.com/fintrack-app/fintrack/internal/domain/port/core"
)

// RealTimeProvider is the production clock
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current system time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Since returns the elapsed time since t as a domain Duration
func (p *RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}
