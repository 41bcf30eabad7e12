package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			refreshIntervalOpt := WithRefreshInterval(5 * time.Second)

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(refreshIntervalOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "salut")
				So(manager.subsystem, ShouldEqual, "greeting")
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithRefreshInterval(10*time.Second),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "test-namespace")
				So(manager.subsystem, ShouldEqual, "test-subsystem")
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given metrics recording", t, func() {
		Convey("When recording greeting metrics", func() {
			Convey("Then it should record served greetings by route", func() {
				So(func() {
					RecordGreeting("/")
					RecordGreeting("/ping")
					RecordGreeting("/")
				}, ShouldNotPanic)
			})
		})

		Convey("When recording HTTP metrics", func() {
			Convey("Then it should record HTTP requests", func() {
				So(func() {
					RecordHTTPRequest("/", "GET", "200")
					RecordHTTPRequest("/ping", "GET", "200")
					RecordHTTPRequest("/healthz", "GET", "200")
				}, ShouldNotPanic)
			})

			Convey("And it should record HTTP request duration", func() {
				So(func() {
					RecordHTTPRequestDuration("/", "GET", "200", 5.0)
					RecordHTTPRequestDuration("/ping", "GET", "200", 10.0)
					RecordHTTPRequestDuration("/stats", "GET", "200", 15.0)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording operational metrics", func() {
			Convey("Then it should record rate limited requests", func() {
				So(func() {
					RecordRateLimited()
					RecordRateLimited()
				}, ShouldNotPanic)
			})
		})

		Convey("When recording service info metrics", func() {
			Convey("Then it should update uptime", func() {
				So(func() {
					UpdateUptime(0.5)
					UpdateUptime(60.0)
					UpdateUptime(3600.0)
				}, ShouldNotPanic)
			})

			Convey("And it should publish build info", func() {
				So(func() {
					SetBuildInfo("0.1.0")
				}, ShouldNotPanic)
			})
		})

		Convey("When recording system metrics", func() {
			Convey("Then it should update system memory usage", func() {
				So(func() {
					UpdateSystemMemoryUsage(1024 * 1024 * 100) // 100MB
					UpdateSystemMemoryUsage(1024 * 1024 * 200) // 200MB
				}, ShouldNotPanic)
			})

			Convey("And it should update system goroutine count", func() {
				So(func() {
					UpdateSystemGoroutineCount(100)
					UpdateSystemGoroutineCount(200)
				}, ShouldNotPanic)
			})
		})
	})
}

func TestMetricsEdgeCases(t *testing.T) {
	Convey("Given metrics edge cases", t, func() {
		Convey("When recording metrics with edge values", func() {
			Convey("And using zero values", func() {
				So(func() {
					UpdateUptime(0.0)
					UpdateSystemMemoryUsage(0)
					UpdateSystemGoroutineCount(0)
					RecordHTTPRequestDuration("/test", "GET", "200", 0.0)
				}, ShouldNotPanic)
			})

			Convey("And using very large values", func() {
				So(func() {
					UpdateUptime(86400.0 * 365)
					UpdateSystemMemoryUsage(1 << 40)
					UpdateSystemGoroutineCount(1000000)
					RecordHTTPRequestDuration("/test", "GET", "200", 30000.0)
				}, ShouldNotPanic)
			})

			Convey("And using empty strings", func() {
				So(func() {
					RecordGreeting("")
					RecordHTTPRequest("", "", "200")
					RecordHTTPRequestDuration("", "", "200", 10.0)
				}, ShouldNotPanic)
			})

			Convey("And using special characters in labels", func() {
				So(func() {
					RecordHTTPRequest("/test?param=value&other=123", "GET", "200")
					RecordGreeting("/route-with-dash")
				}, ShouldNotPanic)
			})
		})
	})
}

func TestMetricsRegistry(t *testing.T) {
	Convey("Given the metrics registry", t, func() {
		Convey("When gathering after recording", func() {
			RecordGreeting("/")
			RecordHTTPRequest("/", "GET", "200")
			SetBuildInfo("0.1.0")

			families, err := GetRegistry().Gather()

			Convey("Then it should expose the registered metric families", func() {
				So(err, ShouldBeNil)
				So(families, ShouldNotBeEmpty)

				names := make([]string, 0, len(families))
				for _, f := range families {
					names = append(names, f.GetName())
				}
				joined := strings.Join(names, ",")
				So(joined, ShouldContainSubstring, "salut_greeting_greetings_total")
				So(joined, ShouldContainSubstring, "salut_greeting_http_requests_total")
				So(joined, ShouldContainSubstring, "salut_greeting_build_info")
			})
		})

		Convey("When reading the refresh interval", func() {
			Convey("Then it should report the default", func() {
				So(RefreshInterval(), ShouldEqual, 10*time.Second)
			})
		})
	})
}

func TestMetricsConcurrency(t *testing.T) {
	Convey("Given metrics concurrency", t, func() {
		Convey("When recording metrics concurrently", func() {
			done := make(chan bool, 10)

			// Start multiple goroutines recording metrics
			for i := 0; i < 10; i++ {
				go func(id int) {
					for j := 0; j < 100; j++ {
						RecordGreeting("/ping")
						RecordHTTPRequest("/ping", "GET", "200")
						RecordHTTPRequestDuration("/ping", "GET", "200", float64(j))
						UpdateSystemGoroutineCount(10 + j)
					}
					done <- true
				}(i)
			}

			// Wait for all goroutines to complete
			for i := 0; i < 10; i++ {
				<-done
			}

			Convey("Then it should handle concurrent access without panics", func() {
				So(true, ShouldBeTrue) // If we get here, no panics occurred
			})
		})
	})
}
