package retained

// ============================================================================
// Event Dispatcher
// ============================================================================

// EventDispatcher routes raw pointer input into the widget tree: taps go to
// the nearest widget with a click handler, drags go to the nearest ancestor
// with a pan recognizer.
type EventDispatcher struct {
	root *Widget

	pressedWidget *Widget               // Widget where pointer down occurred
	pan           *PanGestureRecognizer // Recognizer tracking the current press
}

// NewEventDispatcher creates an event dispatcher for the given tree root.
func NewEventDispatcher(root *Widget) *EventDispatcher {
	return &EventDispatcher{root: root}
}

// SetRoot replaces the tree the dispatcher routes into. Any in-flight press
// is cancelled.
func (d *EventDispatcher) SetRoot(root *Widget) {
	d.Dispatch(PointerEvent{Phase: PointerCancel})
	d.root = root
}

// ============================================================================
// Hit Testing
// ============================================================================

// HitTestResult contains the result of a hit test.
type HitTestResult struct {
	Widget *Widget
	LocalX float32
	LocalY float32
	// Chain is the path from root to target
	Chain []*Widget
}

// HitTest finds the topmost visible widget at the given screen coordinates
// using the frames from the last Solve. Returns nil if nothing is there.
func (d *EventDispatcher) HitTest(screenX, screenY float32) *HitTestResult {
	if d.root == nil {
		return nil
	}

	chain := make([]*Widget, 0, 16)
	target := hitTestRecursive(d.root, screenX, screenY, &chain)
	if target == nil {
		return nil
	}

	localX, localY := target.Frame().LocalPoint(screenX, screenY)
	return &HitTestResult{
		Widget: target,
		LocalX: localX,
		LocalY: localY,
		Chain:  chain,
	}
}

func hitTestRecursive(w *Widget, screenX, screenY float32, chain *[]*Widget) *Widget {
	if w.IsHidden() || w.Opacity() <= 0 {
		return nil
	}

	frame := w.Frame()
	inside := frame.Contains(screenX, screenY)
	if !inside && w.MasksToBounds() {
		return nil
	}

	*chain = append(*chain, w)
	mark := len(*chain)

	// Last child first for z-order
	children := w.Children()
	for i := len(children) - 1; i >= 0; i-- {
		if hit := hitTestRecursive(children[i], screenX, screenY, chain); hit != nil {
			return hit
		}
		*chain = (*chain)[:mark]
	}

	if inside {
		return w
	}
	*chain = (*chain)[:mark-1]
	return nil
}

// ============================================================================
// Pointer Dispatch
// ============================================================================

// Dispatch routes one pointer sample. Returns true if the tree may need a
// redraw.
func (d *EventDispatcher) Dispatch(e PointerEvent) bool {
	switch e.Phase {
	case PointerDown:
		return d.pointerDown(e.X, e.Y)
	case PointerMove:
		if d.pan != nil {
			return d.pan.move(e.X, e.Y)
		}
	case PointerUp:
		return d.pointerUp(e.X, e.Y, false)
	case PointerCancel:
		return d.pointerUp(e.X, e.Y, true)
	}
	return false
}

func (d *EventDispatcher) pointerDown(x, y float32) bool {
	result := d.HitTest(x, y)
	if result == nil {
		return false
	}

	d.pressedWidget = result.Widget
	d.pressedWidget.SetHighlighted(d.pressedWidget.clickHandler() != nil)

	// Innermost recognizer wins
	for i := len(result.Chain) - 1; i >= 0; i-- {
		if recognizers := result.Chain[i].GestureRecognizers(); len(recognizers) > 0 {
			d.pan = recognizers[0]
			d.pan.track(x, y)
			break
		}
	}
	return true
}

func (d *EventDispatcher) pointerUp(x, y float32, cancelled bool) bool {
	pressed := d.pressedWidget
	pan := d.pan
	d.pressedWidget = nil
	d.pan = nil

	if pressed != nil {
		pressed.SetHighlighted(false)
	}

	if pan != nil && pan.end(x, y, cancelled) {
		// A recognized drag swallows the tap.
		return true
	}
	if cancelled || pressed == nil {
		return pressed != nil
	}

	result := d.HitTest(x, y)
	if result == nil {
		return true
	}
	for i := len(result.Chain) - 1; i >= 0; i-- {
		w := result.Chain[i]
		handler := w.clickHandler()
		if handler == nil {
			continue
		}
		if pressed.IsDescendant(w) {
			handler()
		}
		break
	}
	return true
}
