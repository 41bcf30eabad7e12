// Package greeting defines the greetings the service hands out.
package greeting

import "time"

// Option applies a configuration option to the static greeter.
type Option func(*staticGreeter)

// WithClock overrides the time source used to stamp greetings.
// Passing nil keeps the default wall clock.
func WithClock(clock func() time.Time) Option {
	return func(g *staticGreeter) {
		if clock != nil {
			g.clock = clock
		}
	}
}
