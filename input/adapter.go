package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/undertow/parameter"
	"github.com/lixenwraith/undertow/vmath"
)

// Adapter translates tcell terminal events into semantic actions against a
// virtual page: a tall scrollable surface standing in for the document the
// engine's signals were designed around. The adapter owns the scroll offset
// and the pointer edge state; the caller applies the resulting actions to
// the engine.
type Adapter struct {
	width, height int

	// offset is the virtual scroll position, px, clamped to the page
	offset float64

	// buttons holds the previous button mask for press-edge detection,
	// wheel bits stripped
	buttons tcell.ButtonMask

	lastX, lastY int
}

// NewAdapter creates an adapter for the given initial viewport size
func NewAdapter(width, height int) *Adapter {
	return &Adapter{
		width:  width,
		height: height,
		lastX:  -1,
		lastY:  -1,
	}
}

// Offset returns the current virtual scroll position in pixels
func (a *Adapter) Offset() float64 {
	return a.offset
}

// Process parses a terminal event and returns an Action
// Returns nil if the event changes nothing
func (a *Adapter) Process(ev tcell.Event) *Action {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.width, a.height = ev.Size()
		return &Action{Type: ActionResize}
	case *tcell.EventKey:
		return a.processKey(ev)
	case *tcell.EventMouse:
		return a.processMouse(ev)
	}
	return nil
}

func (a *Adapter) processKey(ev *tcell.EventKey) *Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return &Action{Type: ActionQuit}
	case tcell.KeyUp:
		return a.scrollBy(-parameter.ArrowStepPixels)
	case tcell.KeyDown:
		return a.scrollBy(parameter.ArrowStepPixels)
	case tcell.KeyPgUp:
		return a.scrollBy(-a.pageStep())
	case tcell.KeyPgDn:
		return a.scrollBy(a.pageStep())
	case tcell.KeyHome:
		return a.scrollTo(0)
	case tcell.KeyEnd:
		return a.scrollTo(parameter.VirtualPageHeight)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'j':
			return a.scrollBy(parameter.ArrowStepPixels)
		case 'k':
			return a.scrollBy(-parameter.ArrowStepPixels)
		case 'p':
			return &Action{Type: ActionShift}
		case 'd':
			return &Action{Type: ActionToggleDebug}
		case 'm':
			return &Action{Type: ActionToggleMute}
		case 'q':
			return &Action{Type: ActionQuit}
		}
	}
	return nil
}

func (a *Adapter) processMouse(ev *tcell.EventMouse) *Action {
	x, y := ev.Position()
	buttons := ev.Buttons()

	prev := a.buttons
	wheel := tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight
	a.buttons = buttons &^ wheel

	// Wheel notches scroll without counting as pointer movement
	switch {
	case buttons&tcell.WheelUp != 0:
		return a.scrollBy(-parameter.WheelNotchPixels)
	case buttons&tcell.WheelDown != 0:
		return a.scrollBy(parameter.WheelNotchPixels)
	}

	if buttons&tcell.Button1 != 0 && prev&tcell.Button1 == 0 {
		a.lastX, a.lastY = x, y
		nx, ny := a.normalize(x, y)
		return &Action{Type: ActionPointerDown, X: nx, Y: ny}
	}

	// Any position change is movement, drags included
	if x != a.lastX || y != a.lastY {
		a.lastX, a.lastY = x, y
		nx, ny := a.normalize(x, y)
		return &Action{Type: ActionPointerMove, X: nx, Y: ny}
	}
	return nil
}

// scrollTo clamps the target to the page. At a boundary a further notch
// moves nothing; a real document emits no scroll event there either.
func (a *Adapter) scrollTo(px float64) *Action {
	px = vmath.Clamp(px, 0, parameter.VirtualPageHeight)
	if px == a.offset {
		return nil
	}
	a.offset = px
	return &Action{Type: ActionScroll, Offset: px}
}

func (a *Adapter) scrollBy(px float64) *Action {
	return a.scrollTo(a.offset + px)
}

func (a *Adapter) pageStep() float64 {
	return float64(a.height) * parameter.CellPixelHeight
}

func (a *Adapter) normalize(x, y int) (nx, ny float64) {
	if a.width > 1 {
		nx = vmath.Clamp01(float64(x) / float64(a.width-1))
	}
	if a.height > 1 {
		ny = vmath.Clamp01(float64(y) / float64(a.height-1))
	}
	return nx, ny
}
