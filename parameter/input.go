package parameter

// Virtual Page
const (
	// VirtualPageHeight is the scrollable extent of the stand-in document
	// the reference consumers scroll through, px
	VirtualPageHeight = 6000.0

	// WheelNotchPixels is the scroll distance of one wheel notch, matching
	// the common browser line-scroll default
	WheelNotchPixels = 48.0

	// ArrowStepPixels is the scroll distance of one arrow or j/k press
	ArrowStepPixels = 48.0

	// CellPixelHeight maps terminal rows to virtual pixels for page jumps
	CellPixelHeight = 16.0
)
