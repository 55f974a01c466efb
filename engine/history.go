package engine

import (
	"time"

	"github.com/lixenwraith/undertow/parameter"
)

// ScrollSample is one timestamped scroll observation in the history window.
type ScrollSample struct {
	At       time.Time
	Position float64
	Velocity float64
}

// historyRing is a fixed-capacity sliding window of scroll samples.
// Oldest entries fall off by age on every push and by overwrite when full.
type historyRing struct {
	samples [parameter.HistoryCapacity]ScrollSample
	head    int // index of oldest entry
	count   int
}

func (r *historyRing) push(s ScrollSample) {
	if r.count == parameter.HistoryCapacity {
		r.samples[r.head] = s
		r.head = (r.head + 1) % parameter.HistoryCapacity
		return
	}
	r.samples[(r.head+r.count)%parameter.HistoryCapacity] = s
	r.count++
}

// dropBefore discards entries older than the cutoff.
func (r *historyRing) dropBefore(cutoff time.Time) {
	for r.count > 0 && r.samples[r.head].At.Before(cutoff) {
		r.head = (r.head + 1) % parameter.HistoryCapacity
		r.count--
	}
}

// snapshot appends the window contents in chronological order.
func (r *historyRing) snapshot(buf []ScrollSample) []ScrollSample {
	for i := 0; i < r.count; i++ {
		buf = append(buf, r.samples[(r.head+i)%parameter.HistoryCapacity])
	}
	return buf
}
