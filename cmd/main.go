package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/gosalut/salut/internal/adapters/http/api"
	"github.com/gosalut/salut/internal/adapters/http/site"
	"github.com/gosalut/salut/internal/adapters/http/swagger"
	service "github.com/gosalut/salut/internal/app"
	"github.com/gosalut/salut/internal/config"
	"github.com/gosalut/salut/pkg/logger"
	"github.com/gosalut/salut/pkg/metrics"
)

// Timeouts not worth a config knob.
const (
	readHeaderTimeout      = 5 * time.Second
	serviceMetricsInterval = 5 * time.Second
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		// Logger is not available yet, write to stderr directly
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	loggerInstance := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Apply configured log format (fallback to text on invalid input)
	if err := logger.SetFormatString(cfg.LogFormat); err != nil {
		loggerInstance.Warn(ctx, "invalid log_format; falling back to text", logger.String("log_format", cfg.LogFormat), logger.Error(err))
		_ = logger.SetFormatString("text")
	}

	// Create and start the service
	svc := service.New(
		service.WithLogger(loggerInstance),
		service.WithVersion(config.Version),
	)
	if err := svc.Start(ctx); err != nil {
		os.Stderr.WriteString("failed to start service: " + err.Error() + "\n")
		return
	}
	defer svc.Stop()

	// Start system metrics updater
	go startSystemMetricsUpdater(ctx)

	// Start service metrics updater
	go startServiceMetricsUpdater(ctx, svc)

	// Router with the shared middleware chain.
	router := api.NewEngine(ctx,
		api.WithMode(cfg.Mode),
		api.WithTrustedProxies(cfg.TrustedProxies),
		api.WithRateLimit(cfg.RateRPS, cfg.RateBurst, cfg.RateIdleTTL),
	)

	// Register the getting-started guide under /docs
	site.Register(ctx, router)

	// Register the API reference under /api-docs
	swagger.Register(ctx, router)

	// Register greeting routes with the service dependency.
	apiServer := api.NewServer(svc, svc)
	apiServer.Register(ctx, router)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	// Start the HTTP server
	go func() {
		loggerInstance.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			return
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	loggerInstance.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		loggerInstance.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	loggerInstance.Info(ctx, "server stopped")
}

// startSystemMetricsUpdater starts a background goroutine that updates system metrics.
func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(metrics.RefreshInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateSystemMetrics()
		}
	}
}

// startServiceMetricsUpdater starts a background goroutine that refreshes service metrics.
func startServiceMetricsUpdater(ctx context.Context, svc *service.Service) {
	ticker := time.NewTicker(serviceMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// GetStats refreshes the uptime gauge as a side effect.
			_ = svc.GetStats()
		}
	}
}

// updateSystemMetrics updates process-level gauges.
func updateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	metrics.UpdateSystemMemoryUsage(m.Alloc)

	metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())
}
