package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gosalut/salut/pkg/logger"
	"github.com/gosalut/salut/pkg/metrics"
)

const (
	// requestIDHeader carries the request correlation ID.
	requestIDHeader = "X-Request-ID"

	// requestIDKey is the gin context key holding the request ID.
	requestIDKey = "request_id"

	// unmatchedEndpoint labels metrics for requests that hit no route,
	// keeping label cardinality bounded.
	unmatchedEndpoint = "unmatched"
)

// RequestID assigns every request a correlation ID, honoring one supplied
// by the client, and echoes it back in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// AccessLog writes one structured log line per request.
func AccessLog() gin.HandlerFunc {
	log := logger.Named("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info(c.Request.Context(), "request served",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Float64("durationMs", float64(time.Since(start).Microseconds())/1000.0),
			logger.String("clientIP", c.ClientIP()),
			logger.String("requestID", c.GetString(requestIDKey)),
		)
	}
}

// Metrics records request count and duration for every request.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = unmatchedEndpoint
		}
		statusCode := strconv.Itoa(c.Writer.Status())
		durationMs := float64(time.Since(start).Microseconds()) / 1000.0

		metrics.RecordHTTPRequest(endpoint, c.Request.Method, statusCode)
		metrics.RecordHTTPRequestDuration(endpoint, c.Request.Method, statusCode, durationMs)
	}
}
