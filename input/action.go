package input

// ActionType discriminates semantic actions
type ActionType uint8

const (
	ActionNone ActionType = iota

	// System-level actions
	ActionQuit   // q, ESC, Ctrl+C
	ActionResize // Terminal resize event

	// Engine-bound actions
	ActionScroll      // wheel notch, j/k, arrows, PgUp/PgDn, Home/End
	ActionPointerMove // mouse motion (including drags)
	ActionPointerDown // primary button press edge

	// Lab controls
	ActionShift       // p - trigger the perception shift
	ActionToggleDebug // d - raw sample + cadence overlay
	ActionToggleMute  // m - silence audio cues
)

// Action represents a parsed semantic action
// Pure data struct with no engine dependencies
type Action struct {
	Type ActionType

	// Offset is the virtual page scroll position in pixels, valid for
	// ActionScroll
	Offset float64

	// X, Y are normalized pointer coordinates in [0,1], valid for
	// ActionPointerMove and ActionPointerDown
	X, Y float64
}
