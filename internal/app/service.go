// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/gosalut/salut/internal/domain/greeting"
	"github.com/gosalut/salut/pkg/logger"
	"github.com/gosalut/salut/pkg/metrics"
)

// defaultVersion is reported until the real release version is injected.
const defaultVersion = "dev"

// Service implements the API dependencies for the greeting system.
type Service struct {
	mu sync.RWMutex

	// Core components
	greeter greeting.Greeter

	// Configuration
	version string

	// State
	started   bool
	startedAt time.Time

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithGreeter sets a custom greeter implementation.
func WithGreeter(g greeting.Greeter) Option {
	return func(s *Service) {
		if g != nil {
			s.greeter = g
		}
	}
}

// WithVersion sets the version string reported by the service.
func WithVersion(version string) Option {
	return func(s *Service) {
		if version != "" {
			s.version = version
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		greeter: greeting.NewStaticGreeter(),
		version: defaultVersion,
		logger:  nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting greeting service...")

	s.startedAt = time.Now()
	s.started = true

	// Publish service identity
	metrics.SetBuildInfo(s.version)

	s.logger.Info(ctx, "greeting service started",
		logger.String("version", s.version),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping greeting service...")

	s.started = false

	s.logger.Info(context.Background(), "greeting service stopped",
		logger.Int64("greetingsServed", s.greeter.Served()),
	)
}

// Hello returns the canonical hello greeting.
func (s *Service) Hello(ctx context.Context) greeting.Message {
	return s.greeter.Hello(ctx)
}

// Pong returns the liveness greeting.
func (s *Service) Pong(ctx context.Context) greeting.Message {
	return s.greeter.Pong(ctx)
}

// Version reports the service version string.
func (s *Service) Version() string {
	return s.version
}

// Uptime reports how long the service has been running.
// It returns zero for a service that has not been started.
func (s *Service) Uptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return 0
	}
	return time.Since(s.startedAt)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started": s.started,
		"version": s.version,
	}

	if s.started {
		uptime := time.Since(s.startedAt)
		stats["uptimeSeconds"] = uptime.Seconds()
		stats["greetingsServed"] = s.greeter.Served()
		if last := s.greeter.LastServed(); !last.IsZero() {
			stats["lastServedAt"] = last.Format(time.RFC3339Nano)
		}

		// Update metrics
		metrics.UpdateUptime(uptime.Seconds())
	}

	return stats
}
