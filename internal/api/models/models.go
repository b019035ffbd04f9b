// Package models defines the JSON payloads served by the history API.
package models

import (
	"time"

	"github.com/benloeffel/dns-compare/internal/compare"
	"github.com/benloeffel/dns-compare/internal/store"
)

// ErrorResponse is the generic error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse reports service health.
type StatusResponse struct {
	Status string `json:"status"`
}

// StatsResponse reports runtime statistics for the API process.
type StatsResponse struct {
	Uptime        string    `json:"uptime"`
	UptimeSeconds int64     `json:"uptime_seconds"`
	StartTime     time.Time `json:"start_time"`
	GoRoutines    int       `json:"goroutines"`
	MemoryAllocMB float64   `json:"memory_alloc_mb"`
	NumCPU        int       `json:"num_cpu"`
	StoredRuns    int       `json:"stored_runs"`
}

// RunListResponse is the payload for the run listing endpoint.
type RunListResponse struct {
	Runs []store.Run `json:"runs"`
}

// RunDetailResponse is the payload for a single run with its entries.
type RunDetailResponse struct {
	Run     store.Run       `json:"run"`
	Entries []compare.Entry `json:"entries"`
}
