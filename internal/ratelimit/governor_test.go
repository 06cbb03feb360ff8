package ratelimit_test

import (
	"sync"
	"testing"
	"time"

	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/ratelimit"
)

func TestGovernor_TryAcquire(t *testing.T) {
	t.Run("allows calls under the minute ceiling", func(t *testing.T) {
		g := ratelimit.NewGovernor(5, 0)

		for i := 0; i < 5; i++ {
			if !g.TryAcquire() {
				t.Fatalf("Expected call %d to be allowed", i+1)
			}
		}
	})

	t.Run("denies calls over the minute ceiling", func(t *testing.T) {
		g := ratelimit.NewGovernor(3, 0)

		for i := 0; i < 3; i++ {
			g.TryAcquire()
		}
		if g.TryAcquire() {
			t.Error("Expected fourth call within a minute to be denied")
		}
	})

	t.Run("denies calls over the day ceiling", func(t *testing.T) {
		g := ratelimit.NewGovernor(0, 2)

		if !g.TryAcquire() || !g.TryAcquire() {
			t.Fatal("Expected first two calls to be allowed")
		}
		if g.TryAcquire() {
			t.Error("Expected third call of the day to be denied")
		}
	})

	t.Run("denial has no side effects on the day counter", func(t *testing.T) {
		g := ratelimit.NewGovernor(0, 1)

		g.TryAcquire()
		g.TryAcquire() // denied
		g.TryAcquire() // denied

		usage := g.Snapshot()
		if usage.DayUsed != 1 {
			t.Errorf("Expected 1 call counted, got %d", usage.DayUsed)
		}
	})

	t.Run("zero limits mean unlimited", func(t *testing.T) {
		g := ratelimit.NewGovernor(0, 0)

		for i := 0; i < 100; i++ {
			if !g.TryAcquire() {
				t.Fatalf("Expected unlimited governor to allow call %d", i+1)
			}
		}
		if !g.Snapshot().Unlimited {
			t.Error("Expected Unlimited to be reported")
		}
	})
}

func TestGovernor_TryAcquireN(t *testing.T) {
	t.Run("all-or-nothing against the day ceiling", func(t *testing.T) {
		g := ratelimit.NewGovernor(0, 3)

		if !g.TryAcquireN(2) {
			t.Fatal("Expected batch of 2 to be allowed")
		}
		if g.TryAcquireN(2) {
			t.Error("Expected batch of 2 against remaining budget of 1 to be denied")
		}
		if !g.TryAcquire() {
			t.Error("Expected single call against remaining budget of 1 to be allowed")
		}
	})

	t.Run("non-positive n is a no-op", func(t *testing.T) {
		g := ratelimit.NewGovernor(0, 1)

		if !g.TryAcquireN(0) {
			t.Error("Expected TryAcquireN(0) to succeed")
		}
		if g.Snapshot().DayUsed != 0 {
			t.Errorf("Expected no usage recorded, got %d", g.Snapshot().DayUsed)
		}
	})
}

func TestGovernor_DayRollover(t *testing.T) {
	current := time.Date(2025, time.March, 10, 23, 50, 0, 0, time.UTC)
	var mu sync.Mutex
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return current
	}

	g := ratelimit.NewGovernor(0, 2, ratelimit.WithClock(clock))

	g.TryAcquire()
	g.TryAcquire()
	if g.TryAcquire() {
		t.Fatal("Expected day budget to be exhausted")
	}

	// Cross midnight UTC
	mu.Lock()
	current = current.Add(20 * time.Minute)
	mu.Unlock()

	if !g.TryAcquire() {
		t.Error("Expected day counter to reset after midnight UTC")
	}
	if used := g.Snapshot().DayUsed; used != 1 {
		t.Errorf("Expected 1 call counted after rollover, got %d", used)
	}
}

func TestGovernor_ConcurrentAcquire(t *testing.T) {
	g := ratelimit.NewGovernor(0, 50)

	var wg sync.WaitGroup
	granted := make(chan struct{}, 200)
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g.TryAcquire() {
				granted <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(granted)

	count := 0
	for range granted {
		count++
	}
	if count != 50 {
		t.Errorf("Expected exactly 50 grants under concurrency, got %d", count)
	}
	if used := g.Snapshot().DayUsed; used != 50 {
		t.Errorf("Expected 50 calls counted, got %d", used)
	}
}
