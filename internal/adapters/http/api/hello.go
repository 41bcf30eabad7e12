package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gosalut/salut/internal/domain/greeting"
	"github.com/gosalut/salut/pkg/metrics"
)

// HelloDependencies defines the interface for serving the hello greeting.
type HelloDependencies interface {
	Hello(ctx context.Context) greeting.Message
}

// HelloHandler handles requests for the root route.
type HelloHandler struct {
	deps HelloDependencies
}

// NewHelloHandler creates a new hello handler.
func NewHelloHandler(deps HelloDependencies) *HelloHandler {
	return &HelloHandler{deps: deps}
}

// HandleHello handles GET / with the canonical hello greeting as plain text.
func (h *HelloHandler) HandleHello(c *gin.Context) {
	msg := h.deps.Hello(c.Request.Context())
	metrics.RecordGreeting(c.FullPath())
	c.String(http.StatusOK, msg.Body)
}
