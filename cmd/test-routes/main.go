package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/gosalut/salut/internal/testroutes"
)

// Default configuration constants.
const (
	defaultNumRequests = 1000
	defaultWorkers     = 2 // multiplier for runtime.NumCPU()
	defaultTimeout     = 10 * time.Second
	defaultTestTimeout = 5 * time.Minute
)

func main() {
	var (
		baseURL     = flag.String("url", "http://localhost:8080", "Base URL of the service")
		numRequests = flag.Int("requests", defaultNumRequests, "Number of requests to spread across the greeting routes")
		workers     = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout     = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		logFile     = flag.String("log", "", "Log file for test output (default: route_test_TIMESTAMP.log)")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		help        = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		testroutes.ShowHelp()
		return
	}

	// Setup logging
	if err := testroutes.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultTestTimeout)
	defer cancel()

	// Create test configuration
	config := &testroutes.Config{
		BaseURL:     *baseURL,
		NumRequests: *numRequests,
		Workers:     *workers,
		Timeout:     *timeout,
		LogFile:     *logFile,
		Verbose:     *verbose,
	}

	// Run the test
	if err := testroutes.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Test failed: " + err.Error() + "\n")
		return
	}
}
