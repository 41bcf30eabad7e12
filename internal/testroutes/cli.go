package testroutes

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gosalut/salut/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	// Initialize the logger first
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "route_test_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the route test tool.
func ShowHelp() {
	os.Stdout.WriteString(`Salut Route Test Tool
=====================

A concurrent smoke and load tool for the salut greeting service.

Usage:
  go run cmd/test-routes/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:8080")
  -requests int
        Number of requests to spread across the greeting routes (default 1000)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 10s)
  -log string
        Log file for test output (default: route_test_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Smoke test with default settings
  go run cmd/test-routes/main.go

  # Heavier run against another port
  go run cmd/test-routes/main.go -requests 50000 -workers 16 -url http://localhost:9090

  # Clean load numbers require the service limiter off
  SALUT_RATE_RPS=0 go run ./cmd &
  go run cmd/test-routes/main.go -requests 50000
`)
}
