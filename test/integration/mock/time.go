// Package mock provides test doubles for the integration suite.
package mock

import (
	"sync"
	"time"
)

// Clock is a settable clock. It advances with real time from the moment it was set,
// so ordering by creation time still works inside a scenario.
type Clock struct {
	mu        sync.Mutex
	current   time.Time
	updatedAt time.Time
}

// NewClock creates a clock reading start.
func NewClock(start time.Time) *Clock {
	return &Clock{current: start, updatedAt: time.Now()}
}

// Set moves the clock to currentTime.
func (c *Clock) Set(currentTime time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = currentTime
	c.updatedAt = time.Now()
}

// Now returns the simulated current time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current.Add(time.Since(c.updatedAt))
}
