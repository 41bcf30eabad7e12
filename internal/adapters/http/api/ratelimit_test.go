package api_test

import (
	"fmt"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	api "github.com/gosalut/salut/internal/adapters/http/api"
)

func TestClientLimiter(t *testing.T) {
	Convey("Given a client limiter", t, func() {
		now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

		Convey("Invalid settings should disable limiting", func() {
			So(api.NewClientLimiter(0, 10, time.Minute), ShouldBeNil)
			So(api.NewClientLimiter(5, 0, time.Minute), ShouldBeNil)
			So(api.NewClientLimiter(-1, 10, time.Minute), ShouldBeNil)
		})

		Convey("A nil limiter should allow everything", func() {
			var l *api.ClientLimiter

			So(l.Allow("10.0.0.1", now), ShouldBeTrue)
			So(l.Allow("10.0.0.1", now), ShouldBeTrue)
		})

		Convey("Blank keys should never be limited", func() {
			l := api.NewClientLimiter(1, 1, time.Minute)

			So(l.Allow("", now), ShouldBeTrue)
			So(l.Allow("   ", now), ShouldBeTrue)
			So(l.Allow("", now), ShouldBeTrue)
		})

		Convey("A client should be limited once its burst is spent", func() {
			l := api.NewClientLimiter(1, 2, time.Minute)

			So(l.Allow("10.0.0.1", now), ShouldBeTrue)
			So(l.Allow("10.0.0.1", now), ShouldBeTrue)
			So(l.Allow("10.0.0.1", now), ShouldBeFalse)
		})

		Convey("Tokens should refill over time", func() {
			l := api.NewClientLimiter(1, 1, time.Minute)

			So(l.Allow("10.0.0.1", now), ShouldBeTrue)
			So(l.Allow("10.0.0.1", now), ShouldBeFalse)
			So(l.Allow("10.0.0.1", now.Add(2*time.Second)), ShouldBeTrue)
		})

		Convey("Clients should be limited independently", func() {
			l := api.NewClientLimiter(1, 1, time.Minute)

			So(l.Allow("10.0.0.1", now), ShouldBeTrue)
			So(l.Allow("10.0.0.1", now), ShouldBeFalse)
			So(l.Allow("10.0.0.2", now), ShouldBeTrue)
		})

		Convey("Keys should be trimmed before limiting", func() {
			l := api.NewClientLimiter(1, 1, time.Minute)

			So(l.Allow("10.0.0.1", now), ShouldBeTrue)
			So(l.Allow(" 10.0.0.1 ", now), ShouldBeFalse)
		})

		Convey("Idle clients should be evicted and start fresh", func() {
			l := api.NewClientLimiter(0.001, 1, time.Second)

			So(l.Allow("idle", now), ShouldBeTrue)
			So(l.Allow("idle", now), ShouldBeFalse)

			// Two seconds later the idle entry is past its TTL. Drive
			// enough hits from other clients to cross the sweep cadence.
			later := now.Add(2 * time.Second)
			for i := 0; i < 600; i++ {
				l.Allow(fmt.Sprintf("filler-%d", i), later)
			}

			// A fresh bucket allows immediately; the old one would still
			// be empty at this refill rate.
			So(l.Allow("idle", later), ShouldBeTrue)
		})
	})
}
