package engine

import "time"

// TimeProvider supplies the engine's notion of now. Scroll-event derivative
// timing runs through it so tests can replay exact event spacings.
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider is a manually stepped clock: simulations and tests
// advance it in lockstep with their update loop. Driven and read from a
// single goroutine.
type MockTimeProvider struct {
	now time.Time
}

// NewMockTimeProvider creates a mock clock pinned at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

// Now returns the mocked instant
func (m *MockTimeProvider) Now() time.Time {
	return m.now
}

// Advance steps the mocked clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}
