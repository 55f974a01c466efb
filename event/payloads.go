package event

// Latch identifies a one-shot unlock in EventUnlockLatched payloads
type Latch int

const (
	LatchGuideFish Latch = iota
	LatchDataPanels
)

func (l Latch) String() string {
	switch l {
	case LatchGuideFish:
		return "guide-fish"
	case LatchDataPanels:
		return "data-panels"
	}
	return "unknown"
}

// PhaseAdvancedPayload carries the phase the machine just entered
type PhaseAdvancedPayload struct {
	Index int
	Name  string
}

// UnlockLatchedPayload identifies which latch flipped
type UnlockLatchedPayload struct {
	Latch Latch
}
