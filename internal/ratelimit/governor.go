// Package ratelimit tracks upstream API usage against the vendor plan's
// quotas and decides, without blocking, whether a live call may be made.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Governor enforces the upstream plan's call budget: a per-minute token
// bucket plus a per-day counter that rolls over at midnight UTC. It makes a
// purely local decision, never blocks, and is safe for concurrent use.
//
// A non-positive limit disables that dimension (useful for tests and for
// vendors without a daily cap).
type Governor struct {
	mu       sync.Mutex
	minute   *rate.Limiter
	dayLimit int
	dayUsed  int
	day      time.Time
	now      func() time.Time
}

// Usage is a point-in-time view of the governor's counters, exposed on the
// status endpoint.
type Usage struct {
	PerMinuteLimit int  `json:"perMinuteLimit"`
	DayLimit       int  `json:"dayLimit"`
	DayUsed        int  `json:"dayUsed"`
	Unlimited      bool `json:"unlimited"`
}

// Option configures a Governor.
type Option func(*Governor)

// WithClock overrides the governor's time source. Tests use this to exercise
// the daily rollover without sleeping.
func WithClock(now func() time.Time) Option {
	return func(g *Governor) { g.now = now }
}

// NewGovernor creates a governor allowing perMinute calls per rolling minute
// and perDay calls per UTC day.
func NewGovernor(perMinute, perDay int, opts ...Option) *Governor {
	g := &Governor{
		dayLimit: perDay,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if perMinute > 0 {
		// Tokens refill continuously; burst equals the full per-minute
		// allowance so a quiet period can be followed by a burst of calls.
		g.minute = rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute)
	}
	g.day = dayOf(g.now())
	return g
}

// TryAcquire reserves budget for one upstream call. Returns false, with no
// side effects, when either the minute or day ceiling would be exceeded.
func (g *Governor) TryAcquire() bool {
	return g.TryAcquireN(1)
}

// TryAcquireN reserves budget for n upstream calls as a unit: either all n
// are granted or none are. Callers that need paired requests (quote plus
// fundamentals) use this so a partial budget never strands half a fetch.
func (g *Governor) TryAcquireN(n int) bool {
	if n <= 0 {
		return true
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	g.rollover(now)

	if g.dayLimit > 0 && g.dayUsed+n > g.dayLimit {
		return false
	}
	if g.minute != nil && !g.minute.AllowN(now, n) {
		return false
	}
	g.dayUsed += n
	return true
}

// Snapshot returns the current usage counters.
func (g *Governor) Snapshot() Usage {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.rollover(g.now())

	perMinute := 0
	if g.minute != nil {
		perMinute = g.minute.Burst()
	}
	return Usage{
		PerMinuteLimit: perMinute,
		DayLimit:       g.dayLimit,
		DayUsed:        g.dayUsed,
		Unlimited:      g.minute == nil && g.dayLimit <= 0,
	}
}

// rollover resets the daily counter when the UTC date changes.
// Caller must hold g.mu.
func (g *Governor) rollover(now time.Time) {
	if d := dayOf(now); !d.Equal(g.day) {
		g.day = d
		g.dayUsed = 0
	}
}

func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
