package database

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
	"github.com/fintrack-app/fintrack/internal/domain/port/persistence"
)

// Manager owns the SQLite connection and hands out everything bound to it
type Manager struct {
	config       *Config
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// PoolStats is a point-in-time snapshot of the connection pool, surfaced
// by the health endpoint
type PoolStats struct {
	OpenConnections int   `json:"open_connections"`
	InUse           int   `json:"in_use"`
	Idle            int   `json:"idle"`
	WaitCount       int64 `json:"wait_count"`
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Connect opens the database file and configures the pool. SQLite allows a
// single writer, so the pool stays small; the busy timeout pragma absorbs
// the rest.
func (m *Manager) Connect() (*gorm.DB, error) {
	m.logger.Info("Opening database", map[string]any{
		"path": m.config.Path,
	})

	gormDB, err := gorm.Open(sqlite.Open(m.config.DSN()), &gorm.Config{
		Logger: NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel).
			WithSlowThreshold(m.config.SlowThreshold),
		NowFunc: func() time.Time {
			return m.timeProvider.Now()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", m.config.Path, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)

	m.db = gormDB

	m.logger.Info("Database ready", map[string]any{
		"path":            m.config.Path,
		"max_open_conns":  m.config.MaxOpenConns,
		"query_timeout_s": m.config.QueryTimeout.Seconds(),
	})

	return m.db, nil
}

// DB exposes the underlying GORM handle
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Ping verifies the database is reachable
func (m *Manager) Ping(ctx context.Context) error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Stats returns a snapshot of the connection pool
func (m *Manager) Stats() (PoolStats, error) {
	sqlDB, err := m.db.DB()
	if err != nil {
		return PoolStats{}, fmt.Errorf("failed to get database connection: %w", err)
	}

	stats := sqlDB.Stats()
	return PoolStats{
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
		WaitCount:       stats.WaitCount,
	}, nil
}

// Close closes the database connection
func (m *Manager) Close() error {
	m.logger.Info("Closing database", nil)

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	return sqlDB.Close()
}

// WithTimeout derives a context bounded by the configured query timeout
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.config.QueryTimeout)
}

// CreateUnitOfWork starts a unit of work bound to this connection
func (m *Manager) CreateUnitOfWork() persistence.UnitOfWork {
	return NewUnitOfWork(m.db, m.logger)
}
