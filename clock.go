package hearth

import (
	"sync"
	"time"
)

// TimeProvider supplies the current time
type TimeProvider interface {
	Now() time.Time
}

// SystemTime reads the monotonic system clock
type SystemTime struct{}

func (SystemTime) Now() time.Time {
	return time.Now()
}

// ManualTime is a TimeProvider advanced by hand, for fixed-step runs and tests
type ManualTime struct {
	mu  sync.RWMutex
	now time.Time
}

func NewManualTime(start time.Time) *ManualTime {
	return &ManualTime{now: start}
}

func (m *ManualTime) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Advance moves the time forward (or backward, for negative durations)
func (m *ManualTime) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// Clock measures elapsed time since its first tick and the delta between ticks.
// Elapsed never decreases and Delta is never negative, even if the provider
// goes backwards.
type Clock struct {
	provider TimeProvider
	started  bool
	start    time.Time
	last     time.Time

	elapsed float64
	delta   float64
}

func NewClock(provider TimeProvider) *Clock {
	if provider == nil {
		provider = SystemTime{}
	}

	return &Clock{provider: provider}
}

// Tick advances the clock. The first tick reports zero elapsed and zero delta.
func (c *Clock) Tick() (elapsed, delta float64) {
	now := c.provider.Now()

	if !c.started {
		c.started = true
		c.start, c.last = now, now
		c.elapsed, c.delta = 0, 0
		return 0, 0
	}

	c.delta = 0
	if now.After(c.last) {
		c.delta = now.Sub(c.last).Seconds()
		c.last = now
	}
	c.elapsed = c.last.Sub(c.start).Seconds()

	return c.elapsed, c.delta
}

func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

func (c *Clock) Delta() float64 {
	return c.delta
}
