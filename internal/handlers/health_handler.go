package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// dbPingBudget bounds how long the healthcheck waits for the database
const dbPingBudget = 500 * time.Millisecond

// Pinger checks database connectivity
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db         Pinger
	cacheReady func() bool
	version    string
}

func NewHealthHandler(db Pinger, cacheReady func() bool, version string) *HealthHandler {
	return &HealthHandler{
		db:         db,
		cacheReady: cacheReady,
		version:    version,
	}
}

// Healthcheck reports service readiness. The container is unhealthy until
// the freelancer cache is warm; a slow or unreachable database only degrades
// the status so running instances are not restarted during DB hiccups.
func (h *HealthHandler) Healthcheck(c *gin.Context) {
	c.Header("Cache-Control", "no-cache, no-store, max-age=0, must-revalidate")

	if !h.cacheReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"reason": "freelancer cache not initialized",
		})
		return
	}

	status := "ok"
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), dbPingBudget)
		defer cancel()

		if err := h.db.Ping(ctx); err != nil {
			attachError(c, err)
			status = "degraded"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  status,
		"version": h.version,
	})
}
