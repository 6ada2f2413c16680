package database

import (
	"testing"
	"time"

	"gorm.io/gorm"

	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/logger"
	timeprovider "github.com/fintrack-app/fintrack/internal/infrastructure/adapter/time"
)

// TestDBManager provides utilities for testing against a throwaway
// in-memory database
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager opens an in-memory database with the schema in place.
// The single connection pins the memory store for the test's lifetime;
// everything vanishes when the test closes it.
func NewTestDBManager(t *testing.T) *TestDBManager {
	t.Helper()

	timeProvider := timeprovider.NewRealTimeProvider()
	config := &Config{
		Path:            ":memory:",
		BusyTimeout:     time.Second, // Fail fast in tests
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "silent",
		SlowThreshold:   time.Second,
	}

	manager := NewManager(config, logger.NewNoopLogger(), timeProvider)

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		TimeProvider: timeProvider,
	}
}

// Connect opens the test database and creates the schema
func (m *TestDBManager) Connect(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := m.Manager.Connect()
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := Bootstrap(db); err != nil {
		t.Fatalf("Failed to bootstrap test schema: %v", err)
	}
	return db
}

// Close closes the test database connection
func (m *TestDBManager) Close(t *testing.T) {
	t.Helper()

	if err := m.Manager.Close(); err != nil {
		t.Logf("Failed to close test database: %v", err)
	}
}
