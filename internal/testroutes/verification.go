package testroutes

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
)

// verifyRoutes checks every greeting route once for its exact answer.
func verifyRoutes(ctx context.Context, config *Config, checks []RouteCheck, stats *Stats) error {
	log.Println("🔍 Verifying greeting routes...")

	client := newHTTPClient(config.Timeout)

	for _, check := range checks {
		resp, err := client.Get(ctx, config.BaseURL+check.Route)
		if err != nil {
			return fmt.Errorf("GET %s failed: %w", check.Route, err)
		}

		body, err := readResponseBody(resp)
		if err != nil {
			return fmt.Errorf("GET %s body read failed: %w", check.Route, err)
		}

		if resp.StatusCode != StatusOK {
			return fmt.Errorf("GET %s returned status %d", check.Route, resp.StatusCode)
		}

		if string(body) != check.Want {
			return fmt.Errorf("GET %s answered %q, want %q", check.Route, string(body), check.Want)
		}

		stats.ChecksPassed++
		if config.Verbose {
			log.Printf("   %s -> %q", check.Route, string(body))
		}
	}

	log.Println("✅ Greeting routes verified")
	return nil
}

// verifyVersion checks the version endpoint shape.
func verifyVersion(ctx context.Context, config *Config, stats *Stats) error {
	client := newHTTPClient(config.Timeout)

	resp, err := client.Get(ctx, config.BaseURL+"/version")
	if err != nil {
		return fmt.Errorf("GET /version failed: %w", err)
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return fmt.Errorf("GET /version body read failed: %w", err)
	}

	if resp.StatusCode != StatusOK {
		return fmt.Errorf("GET /version returned status %d", resp.StatusCode)
	}

	var version struct {
		Version   string `json:"version"`
		GoVersion string `json:"go_version"`
	}
	if err := json.Unmarshal(body, &version); err != nil {
		return fmt.Errorf("GET /version returned invalid JSON: %w", err)
	}

	if version.Version == "" {
		return fmt.Errorf("GET /version answered an empty version")
	}

	stats.ChecksPassed++
	log.Printf("✅ Service version %s (%s)", version.Version, version.GoVersion)
	return nil
}

// fetchServedCount reads greetingsServed from the stats endpoint.
func fetchServedCount(ctx context.Context, config *Config) (int64, error) {
	client := newHTTPClient(config.Timeout)

	resp, err := client.Get(ctx, config.BaseURL+"/stats")
	if err != nil {
		return 0, fmt.Errorf("GET /stats failed: %w", err)
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return 0, fmt.Errorf("GET /stats body read failed: %w", err)
	}

	if resp.StatusCode != StatusOK {
		return 0, fmt.Errorf("GET /stats returned status %d", resp.StatusCode)
	}

	var snapshot map[string]interface{}
	if err := json.Unmarshal(body, &snapshot); err != nil {
		return 0, fmt.Errorf("GET /stats returned invalid JSON: %w", err)
	}

	// Absent until the first greeting is served
	served, ok := snapshot["greetingsServed"].(float64)
	if !ok {
		return 0, nil
	}
	return int64(served), nil
}
