package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 after t1, got t1=%v, t2=%v", t1, t2)
	}
	// time.Now carries a monotonic reading, so the delta covers the sleep
	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms between reads, got %v", diff)
	}
}

// TestMockTimeProvider verifies the stepped clock: pinned at the start,
// moved only by Advance, never by reads
func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if now := mock.Now(); !now.Equal(start) {
		t.Errorf("Expected initial time %v, got %v", start, now)
	}

	mock.Advance(time.Hour)
	if now, expected := mock.Now(), start.Add(time.Hour); !now.Equal(expected) {
		t.Errorf("Expected %v after advance, got %v", expected, now)
	}

	mock.Advance(30 * time.Minute)
	mock.Advance(15 * time.Minute)
	if now, expected := mock.Now(), start.Add(time.Hour+45*time.Minute); !now.Equal(expected) {
		t.Errorf("Expected %v after repeated advances, got %v", expected, now)
	}

	before := mock.Now()
	for i := 0; i < 5; i++ {
		_ = mock.Now()
	}
	if !mock.Now().Equal(before) {
		t.Error("Expected reads to leave the clock untouched")
	}
}

func TestTimeProviderInterface(t *testing.T) {
	var _ TimeProvider = &MonotonicTimeProvider{}
	var _ TimeProvider = &MockTimeProvider{}
}
