// Package handlers implements the REST endpoints for the comparison
// history API.
//
// Endpoints:
//   - GET /api/v1/health - health check, includes history store connectivity
//   - GET /api/v1/stats - process statistics and stored run count
//   - GET /api/v1/runs - recent comparison runs, newest first
//   - GET /api/v1/runs/:id - one run with all its comparison entries
//
// All endpoints except /health honor optional X-API-Key authentication,
// configured at route registration.
package handlers

import (
	"log/slog"
	"time"

	"github.com/benloeffel/dns-compare/internal/store"
)

// Handler contains dependencies for the API handlers.
type Handler struct {
	db        *store.DB
	logger    *slog.Logger
	startTime time.Time
}

// New creates a Handler backed by the given history store. db may be nil;
// run endpoints then report the store as unavailable.
func New(db *store.DB, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		db:        db,
		logger:    logger,
		startTime: time.Now(),
	}
}
