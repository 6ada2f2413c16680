package dto

import (
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/database"
)

// HealthResponse is the /healthz payload
type HealthResponse struct {
	Status   string              `json:"status"`
	Database string              `json:"database"`
	Pool     *database.PoolStats `json:"pool,omitempty"`
}
