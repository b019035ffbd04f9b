package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/benloeffel/dns-compare/internal/api/models"
	"github.com/benloeffel/dns-compare/internal/store"
)

const defaultRunLimit = 50

// ListRuns returns recent comparison runs, newest first. The `limit` query
// parameter caps the result; it defaults to 50.
func (h *Handler) ListRuns(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "history store not configured"})
		return
	}

	limit := defaultRunLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	runs, err := h.db.ListRuns(limit)
	if err != nil {
		h.logger.Error("failed to list runs", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list runs"})
		return
	}
	c.JSON(http.StatusOK, models.RunListResponse{Runs: runs})
}

// GetRun returns one run with all its comparison entries.
func (h *Handler) GetRun(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "history store not configured"})
		return
	}

	id := c.Param("id")
	run, entries, err := h.db.GetRun(id)
	if errors.Is(err, store.ErrRunNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "run not found"})
		return
	}
	if err != nil {
		h.logger.Error("failed to load run", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load run"})
		return
	}
	c.JSON(http.StatusOK, models.RunDetailResponse{Run: run, Entries: entries})
}
