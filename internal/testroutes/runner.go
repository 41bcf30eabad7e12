package testroutes

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gosalut/salut/pkg/logger"
)

// Run executes the complete route test.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}
	checks := defaultChecks()

	// Run ID correlates this run's log lines across files
	runID := uuid.New().String()

	logger.Get().Info(ctx, "starting salut route test",
		logger.String("runID", runID),
		logger.String("baseURL", config.BaseURL),
		logger.Int("requests", config.NumRequests),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.String("logFile", config.LogFile),
		logger.Any("verbose", config.Verbose))

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Verify each greeting route once
	if err := verifyRoutes(ctx, config, checks, stats); err != nil {
		return fmt.Errorf("route verification failed: %w", err)
	}

	// Step 3: Verify the version endpoint
	if err := verifyVersion(ctx, config, stats); err != nil {
		return fmt.Errorf("version verification failed: %w", err)
	}

	// Step 4: Load the routes concurrently
	if err := sendRequests(ctx, config, checks, stats); err != nil {
		return fmt.Errorf("request run failed: %w", err)
	}

	// Step 5: Report the service's own served counter
	if served, err := fetchServedCount(ctx, config); err != nil {
		logger.Get().Warn(ctx, "failed to read served counter", logger.Error(err))
	} else {
		logger.Get().Info(ctx, "service reports greetings served", logger.Int64("greetingsServed", served))
	}

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	logger.Get().Info(ctx, "test completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/healthz"

	resp, err := client.Get(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close response body", logger.Error(err))
		}
	}()

	if resp.StatusCode != StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// displayFinalStats prints the final test statistics.
func displayFinalStats(stats *Stats) {
	var successRate, requestsPerSecond float64

	if stats.RequestsSent > 0 {
		successRate = float64(stats.RequestsOK) / float64(stats.RequestsSent) * PercentageMultiplier
	}

	if stats.Duration > 0 {
		requestsPerSecond = float64(stats.RequestsSent) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("checksPassed", stats.ChecksPassed),
		logger.Int("requestsSent", stats.RequestsSent),
		logger.Int("requestsOK", stats.RequestsOK),
		logger.Int("bodyMismatches", stats.BodyMismatches),
		logger.Int("rateLimited", stats.RateLimited),
		logger.Int("requestsFailed", stats.RequestsFailed),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("successRate", successRate),
		logger.Float64("requestsPerSecond", requestsPerSecond))
}
