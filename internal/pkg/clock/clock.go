package clock

import (
	"sync"
	"time"
)

// Clock is the single time source for booking windows and modification stamps.
// Times are returned in UTC truncated to milliseconds so they survive a JSON
// or JSONB round trip unchanged.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return Normalize(time.Now())
}

// Normalize converts t to the canonical form used by persisted timestamps.
func Normalize(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

type MockClock struct {
	mu          sync.Mutex
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: Normalize(t)}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = Normalize(t)
}

func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = Normalize(c.currentTime.Add(d))
}
