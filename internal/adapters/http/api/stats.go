package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatsProvider defines the interface for getting service statistics.
type StatsProvider interface {
	GetStats() map[string]interface{}
}

// StatsHandler handles service statistics requests.
type StatsHandler struct {
	statsProvider StatsProvider
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsProvider StatsProvider) *StatsHandler {
	return &StatsHandler{statsProvider: statsProvider}
}

// HandleStats handles GET /stats with a point-in-time service snapshot.
func (h *StatsHandler) HandleStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.statsProvider.GetStats())
}
