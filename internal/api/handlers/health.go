package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/benloeffel/dns-compare/internal/api/models"
)

// Health reports service health, degraded when the history store is
// unreachable.
func (h *Handler) Health(c *gin.Context) {
	status := "ok"
	if h.db != nil {
		if err := h.db.Health(); err != nil {
			h.logger.Warn("history store unhealthy", "error", err)
			status = "degraded"
		}
	}
	c.JSON(http.StatusOK, models.StatusResponse{Status: status})
}

// Stats returns runtime statistics and the stored run count.
func (h *Handler) Stats(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(h.startTime)
	resp := models.StatsResponse{
		Uptime:        uptime.Round(time.Second).String(),
		UptimeSeconds: int64(uptime.Seconds()),
		StartTime:     h.startTime,
		GoRoutines:    runtime.NumGoroutine(),
		MemoryAllocMB: float64(m.Alloc) / 1024 / 1024,
		NumCPU:        runtime.NumCPU(),
	}

	if h.db != nil {
		if n, err := h.db.CountRuns(); err == nil {
			resp.StoredRuns = n
		} else {
			h.logger.Warn("failed to count runs", "error", err)
		}
	}

	c.JSON(http.StatusOK, resp)
}
