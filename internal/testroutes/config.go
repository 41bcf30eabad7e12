package testroutes

import "time"

// Config holds configuration for the route test
type Config struct {
	BaseURL     string        // Base URL of the service
	NumRequests int           // Number of requests to send across greeting routes
	Workers     int           // Number of concurrent workers
	Timeout     time.Duration // HTTP request timeout
	LogFile     string        // Log file for test output
	Verbose     bool          // Enable verbose logging
}

// RouteCheck pairs a route with the exact body it must answer.
type RouteCheck struct {
	Route string
	Want  string
}

// defaultChecks lists the greeting routes and their fixed answers.
func defaultChecks() []RouteCheck {
	return []RouteCheck{
		{Route: "/", Want: "Hello, World!"},
		{Route: "/ping", Want: "pong"},
	}
}

// Stats holds test statistics
type Stats struct {
	ChecksPassed   int
	RequestsSent   int
	RequestsOK     int
	BodyMismatches int
	RateLimited    int
	RequestsFailed int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}
