package api

import (
	"context"
	"time"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

// Default engine configuration values.
const (
	defaultRateRPS     = 50
	defaultRateBurst   = 100
	defaultRateIdleTTL = 3 * time.Minute
)

// EngineOption applies a configuration option to NewEngine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	mode           string
	trustedProxies []string
	rateRPS        float64
	rateBurst      int
	rateIdleTTL    time.Duration
}

// WithMode selects the router mode: debug, release, or test.
func WithMode(mode string) EngineOption {
	return func(o *engineOptions) {
		if mode != "" {
			o.mode = mode
		}
	}
}

// WithTrustedProxies sets the proxies allowed to rewrite client addresses.
// Leave empty to trust none.
func WithTrustedProxies(proxies []string) EngineOption {
	return func(o *engineOptions) {
		o.trustedProxies = proxies
	}
}

// WithRateLimit configures the per-client rate limiter. An rps of zero or
// less disables limiting.
func WithRateLimit(rps float64, burst int, idleTTL time.Duration) EngineOption {
	return func(o *engineOptions) {
		o.rateRPS = rps
		o.rateBurst = burst
		o.rateIdleTTL = idleTTL
	}
}

// NewEngine builds the router with the middleware chain every route runs
// behind: panic recovery, security headers, request IDs, access logging,
// metrics, and rate limiting.
func NewEngine(_ context.Context, opts ...EngineOption) *gin.Engine {
	o := &engineOptions{
		mode:        gin.ReleaseMode,
		rateRPS:     defaultRateRPS,
		rateBurst:   defaultRateBurst,
		rateIdleTTL: defaultRateIdleTTL,
	}
	for _, opt := range opts {
		opt(o)
	}

	gin.SetMode(o.mode)

	router := gin.New()
	_ = router.SetTrustedProxies(o.trustedProxies)

	router.Use(gin.Recovery())
	router.Use(secure.New(secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))
	router.Use(RequestID())
	router.Use(AccessLog())
	router.Use(Metrics())
	router.Use(RateLimit(NewClientLimiter(o.rateRPS, o.rateBurst, o.rateIdleTTL)))

	return router
}
