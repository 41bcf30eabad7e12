package testroutes

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// HTTPClient wraps http.Client with a shared timeout
type HTTPClient struct {
	client  *http.Client
	timeout time.Duration
}

// newHTTPClient creates a new HTTP client with timeout
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
	}
}

// Get performs a GET request bound to ctx
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// readResponseBody reads and closes the response body
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// sendRequests hammers the greeting routes concurrently using a worker pool
func sendRequests(ctx context.Context, config *Config, checks []RouteCheck, stats *Stats) error {
	log.Printf("📤 Sending %d requests with %d workers...", config.NumRequests, config.Workers)

	client := newHTTPClient(config.Timeout)

	// Counters for statistics
	var (
		sent       int64
		okCount    int64
		mismatched int64
		limited    int64
		failed     int64
	)

	// Progress reporting from its own goroutine so workers stay lock-free
	progressCtx, stopProgress := context.WithCancel(ctx)
	go func() {
		ticker := time.NewTicker(ProgressInterval)
		defer ticker.Stop()

		for {
			select {
			case <-progressCtx.Done():
				return
			case <-ticker.C:
				total := atomic.LoadInt64(&sent)
				good := atomic.LoadInt64(&okCount)
				bad := atomic.LoadInt64(&mismatched)
				lim := atomic.LoadInt64(&limited)
				fail := atomic.LoadInt64(&failed)

				if config.Verbose {
					log.Printf("📊 Progress: %d/%d sent (ok: %d, mismatch: %d, limited: %d, failed: %d)",
						total, config.NumRequests, good, bad, lim, fail)
				} else {
					fmt.Printf("\r📤 Sent: %d/%d (ok: %d, mismatch: %d, limited: %d, failed: %d)",
						total, config.NumRequests, good, bad, lim, fail)
				}
			}
		}
	}()

	// Create worker pool
	checkChan := make(chan RouteCheck, config.Workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	// Start workers
	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for check := range checkChan {
				select {
				case <-ctx.Done():
					return
				default:
					result := requestOnce(ctx, client, config.BaseURL, check)

					atomic.AddInt64(&sent, 1)
					switch result {
					case "ok":
						atomic.AddInt64(&okCount, 1)
					case "mismatch":
						atomic.AddInt64(&mismatched, 1)
					case "limited":
						atomic.AddInt64(&limited, 1)
					case "failed":
						atomic.AddInt64(&failed, 1)
					}
				}
			}
		}()
	}

	// Feed the routes round-robin to the workers
	go func() {
		defer close(checkChan)
		for i := 0; i < config.NumRequests; i++ {
			select {
			case <-ctx.Done():
				return
			case checkChan <- checks[i%len(checks)]:
			}
		}
	}()

	// Wait for all workers to complete
	wg.Wait()
	stopProgress()

	if !config.Verbose {
		fmt.Println() // New line after progress indicator
	}

	// Update stats
	stats.RequestsSent = int(atomic.LoadInt64(&sent))
	stats.RequestsOK = int(atomic.LoadInt64(&okCount))
	stats.BodyMismatches = int(atomic.LoadInt64(&mismatched))
	stats.RateLimited = int(atomic.LoadInt64(&limited))
	stats.RequestsFailed = int(atomic.LoadInt64(&failed))

	log.Printf(`✅ Request run completed:
   OK: %d
   Mismatched: %d
   Rate limited: %d
   Failed: %d
`, stats.RequestsOK, stats.BodyMismatches, stats.RateLimited, stats.RequestsFailed)

	if stats.BodyMismatches > 0 {
		return fmt.Errorf("%d responses did not match their expected body", stats.BodyMismatches)
	}

	return nil
}

// requestOnce performs a single greeting request and classifies the result
func requestOnce(ctx context.Context, client *HTTPClient, baseURL string, check RouteCheck) string {
	resp, err := client.Get(ctx, baseURL+check.Route)
	if err != nil {
		return "failed"
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return "failed"
	}

	switch resp.StatusCode {
	case StatusOK:
		if string(body) != check.Want {
			return "mismatch"
		}
		return "ok"
	case StatusTooManyRequests:
		// Expected when the service limiter is on
		return "limited"
	default:
		return "failed"
	}
}
