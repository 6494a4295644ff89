package mocks

import (
	"sync"
	"time"
)

// Clock is a mock clock.Clock returning a fixed instant, with call tracking.
type Clock struct {
	mu    sync.Mutex
	now   time.Time
	calls int
}

// NewClock creates a mock clock stopped at now.
func NewClock(now time.Time) *Clock {
	return &Clock{now: now}
}

// Now implements clock.Clock.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return c.now
}

// Set moves the clock to now.
func (c *Clock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// GetCallCount returns the number of times Now was called.
func (c *Clock) GetCallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

// Reset clears the call count.
func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = 0
}
