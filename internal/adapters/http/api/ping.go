package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gosalut/salut/internal/domain/greeting"
	"github.com/gosalut/salut/pkg/metrics"
)

// PingDependencies defines the interface for serving the liveness greeting.
type PingDependencies interface {
	Pong(ctx context.Context) greeting.Message
}

// PingHandler handles requests for the ping route.
type PingHandler struct {
	deps PingDependencies
}

// NewPingHandler creates a new ping handler.
func NewPingHandler(deps PingDependencies) *PingHandler {
	return &PingHandler{deps: deps}
}

// HandlePing handles GET /ping with the pong answer as plain text.
func (h *PingHandler) HandlePing(c *gin.Context) {
	msg := h.deps.Pong(c.Request.Context())
	metrics.RecordGreeting(c.FullPath())
	c.String(http.StatusOK, msg.Body)
}
