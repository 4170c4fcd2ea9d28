package retained

// GestureState is the lifecycle state of a continuous gesture.
type GestureState uint8

const (
	GesturePossible GestureState = iota
	GestureBegan
	GestureChanged
	GestureEnded
	GestureCancelled
)

func (s GestureState) String() string {
	switch s {
	case GesturePossible:
		return "possible"
	case GestureBegan:
		return "began"
	case GestureChanged:
		return "changed"
	case GestureEnded:
		return "ended"
	case GestureCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// IsFinished reports whether the state ends the gesture.
func (s GestureState) IsFinished() bool {
	return s == GestureEnded || s == GestureCancelled
}

// PanGestureRecognizer tracks a dragging pointer and fans every state change
// out to its targets, in the order they were added. Location is recomputed
// from each pointer sample; nothing else is carried between callbacks.
type PanGestureRecognizer struct {
	view    *Widget
	state   GestureState
	x, y    float32
	startX  float32
	startY  float32
	targets []func(*PanGestureRecognizer)

	// Slop is the distance the pointer must travel before the gesture begins.
	Slop float32

	// Dispatch wraps each fan-out; the armed-action cell uses it to bracket
	// one pointer sample across all targets. Nil means call targets directly.
	Dispatch func(g *PanGestureRecognizer, deliver func())
}

// NewPanGestureRecognizer creates a recognizer with a small default slop.
func NewPanGestureRecognizer() *PanGestureRecognizer {
	return &PanGestureRecognizer{Slop: 4}
}

// AddTarget registers a callback invoked on every state change.
func (g *PanGestureRecognizer) AddTarget(fn func(*PanGestureRecognizer)) {
	g.targets = append(g.targets, fn)
}

// View returns the widget the recognizer is attached to.
func (g *PanGestureRecognizer) View() *Widget {
	return g.view
}

// State returns the current gesture state.
func (g *PanGestureRecognizer) State() GestureState {
	return g.state
}

// Location returns the pointer position in screen coordinates.
func (g *PanGestureRecognizer) Location() (x, y float32) {
	return g.x, g.y
}

// Translation returns the pointer movement since the gesture started.
func (g *PanGestureRecognizer) Translation() (dx, dy float32) {
	return g.x - g.startX, g.y - g.startY
}

// track records a pointer-down without beginning the gesture.
func (g *PanGestureRecognizer) track(x, y float32) {
	g.state = GesturePossible
	g.startX, g.startY = x, y
	g.x, g.y = x, y
}

// move advances the gesture; it begins once the pointer exceeds the slop.
// Returns true when the recognizer consumed the sample.
func (g *PanGestureRecognizer) move(x, y float32) bool {
	g.x, g.y = x, y
	switch g.state {
	case GesturePossible:
		dx, dy := g.Translation()
		if dx*dx+dy*dy < g.Slop*g.Slop {
			return false
		}
		g.transition(GestureBegan)
		return true
	case GestureBegan, GestureChanged:
		g.transition(GestureChanged)
		return true
	}
	return false
}

// end finishes an active gesture. Returns false if it had not begun.
func (g *PanGestureRecognizer) end(x, y float32, cancelled bool) bool {
	active := g.state == GestureBegan || g.state == GestureChanged
	g.x, g.y = x, y
	if !active {
		g.state = GesturePossible
		return false
	}
	if cancelled {
		g.transition(GestureCancelled)
	} else {
		g.transition(GestureEnded)
	}
	g.state = GesturePossible
	return true
}

func (g *PanGestureRecognizer) transition(state GestureState) {
	g.state = state
	deliver := func() {
		for _, target := range g.targets {
			target(g)
		}
	}
	if g.Dispatch != nil {
		g.Dispatch(g, deliver)
		return
	}
	deliver()
}

// Simulate drives the recognizer directly, bypassing pointer dispatch.
// Hosts without raw pointer input (and tests) use it to feed gesture states.
func (g *PanGestureRecognizer) Simulate(state GestureState, x, y float32) {
	if state == GestureBegan {
		g.startX, g.startY = x, y
	}
	g.x, g.y = x, y
	g.transition(state)
	if state.IsFinished() {
		g.state = GesturePossible
	}
}
