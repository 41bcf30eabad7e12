// Package api declares HTTP contracts and route registration helpers
// for the greeting service.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gosalut/salut/internal/domain/greeting"
	"github.com/gosalut/salut/pkg/metrics"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Hello returns the canonical hello greeting.
	Hello(ctx context.Context) greeting.Message

	// Pong returns the liveness greeting.
	Pong(ctx context.Context) greeting.Message

	// Version reports the running service version.
	Version() string

	// Uptime reports how long the service has been running.
	Uptime() time.Duration
}

// Server wires HTTP routes for the greeting API.
type Server struct {
	helloHandler   *HelloHandler
	pingHandler    *PingHandler
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	versionHandler *VersionHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		helloHandler:   NewHelloHandler(deps),
		pingHandler:    NewPingHandler(deps),
		healthHandler:  NewHealthHandler(deps),
		statsHandler:   NewStatsHandler(statsProvider),
		versionHandler: NewVersionHandler(deps),
	}
}

// Register attaches all HTTP routes to the router.
func (s *Server) Register(ctx context.Context, router *gin.Engine) {
	router.GET("/", s.helloHandler.HandleHello)
	router.GET("/ping", s.pingHandler.HandlePing)
	router.GET("/healthz", s.healthHandler.HandleHealth)
	router.GET("/stats", s.statsHandler.HandleStats)
	router.GET("/version", s.versionHandler.HandleVersion)

	// Prometheus metrics from the service registry only, not the default one.
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{})))

	// Anything else is an explicit JSON 404.
	router.NoRoute(func(c *gin.Context) {
		writeError(c, http.StatusNotFound, "not_found", newKind("api.no_route", ErrNotFound))
	})
}

// errorResponse is the JSON envelope for every non-2xx answer.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError renders the standard error envelope and stops the handler chain.
func writeError(c *gin.Context, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	c.AbortWithStatusJSON(status, errorResponse{Code: code, Message: msg})
}
