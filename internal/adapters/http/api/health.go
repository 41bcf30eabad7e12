package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthDependencies defines the interface for liveness reporting.
type HealthDependencies interface {
	Uptime() time.Duration
}

// healthResponse mirrors the JSON shape of GET /healthz.
type healthResponse struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	deps HealthDependencies
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(deps HealthDependencies) *HealthHandler {
	return &HealthHandler{deps: deps}
}

// HandleHealth handles GET /healthz. It always reports ok while the
// process is serving; readiness beyond that is out of scope here.
func (h *HealthHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:        "ok",
		UptimeSeconds: h.deps.Uptime().Seconds(),
	})
}
