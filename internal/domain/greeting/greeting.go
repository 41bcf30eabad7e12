// Package greeting defines the greetings the service hands out.
package greeting

import (
	"context"
	"sync/atomic"
	"time"
)

// Canonical greeting bodies. Responses carry these bytes verbatim.
const (
	// HelloBody is the greeting served from the root route.
	HelloBody = "Hello, World!"

	// PongBody is the liveness greeting served from the ping route.
	PongBody = "pong"
)

// Greeting names used for counting and reporting.
const (
	NameHello = "hello"
	NamePong  = "pong"
)

// Message is a single greeting handed to a client.
type Message struct {
	Name string
	Body string
	At   time.Time
}

// Greeter produces greetings and tracks how many have been served.
type Greeter interface {
	// Hello returns the canonical hello greeting, stamped at call time.
	Hello(ctx context.Context) Message

	// Pong returns the liveness greeting, stamped at call time.
	Pong(ctx context.Context) Message

	// Served reports how many greetings have been handed out.
	Served() int64

	// LastServed reports when the most recent greeting was handed out.
	// The zero time means no greeting has been served yet.
	LastServed() time.Time
}

// staticGreeter implements Greeter with fixed bodies and atomic counters.
type staticGreeter struct {
	clock      func() time.Time
	served     atomic.Int64
	lastServed atomic.Int64 // unix nanos of the most recent greeting
}

// NewStaticGreeter creates a greeter with configuration options.
func NewStaticGreeter(opts ...Option) Greeter {
	g := &staticGreeter{
		clock: time.Now,
	}

	// Apply all options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Hello returns the canonical hello greeting.
func (g *staticGreeter) Hello(_ context.Context) Message {
	return g.serve(NameHello, HelloBody)
}

// Pong returns the liveness greeting.
func (g *staticGreeter) Pong(_ context.Context) Message {
	return g.serve(NamePong, PongBody)
}

// serve stamps and counts a greeting.
func (g *staticGreeter) serve(name, body string) Message {
	at := g.clock()
	g.served.Add(1)
	g.lastServed.Store(at.UnixNano())
	return Message{
		Name: name,
		Body: body,
		At:   at,
	}
}

// Served returns the total number of greetings handed out.
func (g *staticGreeter) Served() int64 {
	return g.served.Load()
}

// LastServed returns when the most recent greeting was handed out.
func (g *staticGreeter) LastServed() time.Time {
	ns := g.lastServed.Load()
	if ns == 0 {
		return time.Time{}
	}
	return time.Unix(0, ns)
}
