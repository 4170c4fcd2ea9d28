// Package retained provides the retained-mode widget tree that alerts and
// action sheets are composed from: widgets, declarative layout constraints
// with priorities, a constraint solver, an animation registry, and pointer
// gesture dispatch.
//
// Widgets are thread-safe for property updates, but layout, animation ticks
// and gesture callbacks are expected to run on a single UI goroutine.
package retained

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// Logger receives diagnostics from layout and event dispatch.
var Logger = slog.Default()

// SetLogger replaces the package logger. A nil logger restores slog.Default().
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	Logger = l
}

// WidgetID uniquely identifies a widget in the tree.
type WidgetID uint64

var nextWidgetID atomic.Uint64

func newWidgetID() WidgetID {
	return WidgetID(nextWidgetID.Add(1))
}

// WidgetKind identifies the type of widget for rendering.
type WidgetKind string

const (
	KindContainer WidgetKind = "container"
	KindVStack    WidgetKind = "vstack"
	KindLabel     WidgetKind = "label"
	KindButton    WidgetKind = "button"
	KindScroll    WidgetKind = "scroll_view"
	KindEffect    WidgetKind = "effect"
	KindCustom    WidgetKind = "custom"
)

// StackAlignment controls cross-axis placement of a stack's arranged widgets.
type StackAlignment int

const (
	AlignFill StackAlignment = iota
	AlignLeading
	AlignCenter
	AlignTrailing
)

// FontWeight is the weight of a label font.
type FontWeight int

const (
	WeightRegular FontWeight = iota
	WeightMedium
	WeightSemibold
	WeightBold
)

// Font describes the typeface used by labels and buttons.
type Font struct {
	Size   float32
	Weight FontWeight
}

// Ascent is the distance from the top of a line to its baseline.
func (f Font) Ascent() float32 { return f.Size * 0.8 }

// Descent is the distance from the baseline to the bottom of a line.
func (f Font) Descent() float32 { return f.Size * 0.2 }

// LineHeight is the height of one line of text.
func (f Font) LineHeight() float32 { return f.Size * 1.2 }

// Widget represents a UI element in the retained tree.
type Widget struct {
	mu sync.RWMutex

	id       WidgetID
	kind     WidgetKind
	parent   *Widget
	children []*Widget

	// Stack arrangement (KindVStack)
	arranged  []*Widget
	alignment StackAlignment
	spacing   float32

	// Visual properties
	backgroundColor *uint32
	cornerRadius    float32
	masksToBounds   bool
	opacity         float32
	scale           float32
	translateY      float32
	hidden          bool

	// Content
	text      string
	textColor uint32
	font      Font

	// Intrinsic size for custom leaf widgets (nil = none)
	intrinsicWidth  *float32
	intrinsicHeight *float32

	// Visual effect surface (KindEffect)
	effect        *Effect
	effectContent *Widget

	// Layout
	constraints []*Constraint
	frame       Bounds

	// Interaction
	onClick     func()
	recognizers []*PanGestureRecognizer
	highlighted bool

	// Custom data for application use
	data any
}

// NewWidget creates a widget with default values.
// The widget is not attached to any tree until added as a child.
func NewWidget(kind WidgetKind) *Widget {
	return &Widget{
		id:        newWidgetID(),
		kind:      kind,
		opacity:   1.0,
		scale:     1.0,
		textColor: 0x000000FF,
		font:      Font{Size: 13},
	}
}

// ID returns the widget's unique identifier.
func (w *Widget) ID() WidgetID {
	return w.id
}

// Kind returns the widget type.
func (w *Widget) Kind() WidgetKind {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.kind
}

// ============================================================================
// Tree Structure
// ============================================================================

// Parent returns the widget's parent, or nil if it's the root.
func (w *Widget) Parent() *Widget {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.parent
}

// Children returns a copy of the widget's children slice.
func (w *Widget) Children() []*Widget {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]*Widget, len(w.children))
	copy(result, w.children)
	return result
}

// HasChildren reports whether the widget has any subviews.
func (w *Widget) HasChildren() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.children) > 0
}

// AddChild appends a child widget. A child already attached elsewhere is
// moved.
func (w *Widget) AddChild(child *Widget) *Widget {
	child.RemoveFromParent()

	w.mu.Lock()
	defer w.mu.Unlock()

	child.mu.Lock()
	child.parent = w
	child.mu.Unlock()

	w.children = append(w.children, child)
	return w
}

// InsertChild inserts a child at the specified index.
func (w *Widget) InsertChild(index int, child *Widget) *Widget {
	child.RemoveFromParent()

	w.mu.Lock()
	defer w.mu.Unlock()

	child.mu.Lock()
	child.parent = w
	child.mu.Unlock()

	if index >= len(w.children) {
		w.children = append(w.children, child)
	} else {
		if index < 0 {
			index = 0
		}
		w.children = append(w.children[:index+1], w.children[index:]...)
		w.children[index] = child
	}
	return w
}

// RemoveChild removes a child by reference.
func (w *Widget) RemoveChild(child *Widget) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i, c := range w.children {
		if c == child {
			w.children = append(w.children[:i], w.children[i+1:]...)
			for j, a := range w.arranged {
				if a == child {
					w.arranged = append(w.arranged[:j], w.arranged[j+1:]...)
					break
				}
			}
			child.mu.Lock()
			child.parent = nil
			child.mu.Unlock()
			return true
		}
	}
	return false
}

// RemoveFromParent removes this widget from its parent.
func (w *Widget) RemoveFromParent() {
	w.mu.RLock()
	parent := w.parent
	w.mu.RUnlock()

	if parent != nil {
		parent.RemoveChild(w)
	}
}

// IsDescendant reports whether w is ancestor or lies beneath it.
func (w *Widget) IsDescendant(ancestor *Widget) bool {
	for cur := w; cur != nil; cur = cur.Parent() {
		if cur == ancestor {
			return true
		}
	}
	return false
}

// Walk visits w and its descendants in pre-order.
func (w *Widget) Walk(fn func(*Widget)) {
	fn(w)
	for _, c := range w.Children() {
		c.Walk(fn)
	}
}

// ============================================================================
// Stack Arrangement
// ============================================================================

// AddArrangedChild appends a child that participates in the stack's
// arrangement.
func (w *Widget) AddArrangedChild(child *Widget) *Widget {
	w.AddChild(child)
	w.mu.Lock()
	w.arranged = append(w.arranged, child)
	w.mu.Unlock()
	return w
}

// ArrangedChildren returns the stack's arranged children in order.
func (w *Widget) ArrangedChildren() []*Widget {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]*Widget, len(w.arranged))
	copy(result, w.arranged)
	return result
}

// SetAlignment sets cross-axis alignment for a stack.
func (w *Widget) SetAlignment(a StackAlignment) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.alignment = a
	return w
}

// Alignment returns the stack's cross-axis alignment.
func (w *Widget) Alignment() StackAlignment {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.alignment
}

// SetSpacing sets the gap between arranged children.
func (w *Widget) SetSpacing(spacing float32) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.spacing = spacing
	return w
}

// Spacing returns the gap between arranged children.
func (w *Widget) Spacing() float32 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.spacing
}

// ============================================================================
// Visual Properties
// ============================================================================

// SetBackgroundColor sets the background color (RGBA).
func (w *Widget) SetBackgroundColor(color uint32) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.backgroundColor = &color
	return w
}

// BackgroundColor returns the background color and whether one is set.
func (w *Widget) BackgroundColor() (uint32, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.backgroundColor == nil {
		return 0, false
	}
	return *w.backgroundColor, true
}

// SetCornerRadius sets the corner radius.
func (w *Widget) SetCornerRadius(radius float32) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cornerRadius = radius
	return w
}

// CornerRadius returns the corner radius.
func (w *Widget) CornerRadius() float32 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.cornerRadius
}

// SetMasksToBounds clips children to the widget's frame.
func (w *Widget) SetMasksToBounds(masks bool) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.masksToBounds = masks
	return w
}

// MasksToBounds reports whether children are clipped.
func (w *Widget) MasksToBounds() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.masksToBounds
}

// SetOpacity sets opacity (0.0 - 1.0).
func (w *Widget) SetOpacity(opacity float32) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.opacity = opacity
	return w
}

// Opacity returns the widget's opacity.
func (w *Widget) Opacity() float32 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.opacity
}

// SetScale sets a uniform scale applied around the widget's center.
func (w *Widget) SetScale(scale float32) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.scale = scale
	return w
}

// Scale returns the widget's scale.
func (w *Widget) Scale() float32 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.scale
}

// SetTranslateY offsets the rendered widget vertically without affecting layout.
func (w *Widget) SetTranslateY(dy float32) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.translateY = dy
	return w
}

// TranslateY returns the vertical render offset.
func (w *Widget) TranslateY() float32 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.translateY
}

// SetHidden hides the widget. Hidden widgets are skipped by stacks,
// rendering and hit testing.
func (w *Widget) SetHidden(hidden bool) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.hidden = hidden
	return w
}

// IsHidden reports whether the widget is hidden.
func (w *Widget) IsHidden() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.hidden
}

// SetHighlighted marks the widget as highlighted (pressed or armed).
func (w *Widget) SetHighlighted(highlighted bool) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.highlighted = highlighted
	return w
}

// IsHighlighted reports whether the widget is highlighted.
func (w *Widget) IsHighlighted() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.highlighted
}

// ============================================================================
// Text
// ============================================================================

// SetText sets the text content.
func (w *Widget) SetText(text string) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.text = text
	return w
}

// Text returns the text content.
func (w *Widget) Text() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.text
}

// SetTextColor sets the text color (RGBA).
func (w *Widget) SetTextColor(color uint32) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.textColor = color
	return w
}

// TextColor returns the text color.
func (w *Widget) TextColor() uint32 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.textColor
}

// SetFont sets the font.
func (w *Widget) SetFont(font Font) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.font = font
	return w
}

// Font returns the font.
func (w *Widget) Font() Font {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.font
}

// SetIntrinsicSize gives a custom leaf widget a natural size. Negative
// values leave that dimension without an intrinsic size.
func (w *Widget) SetIntrinsicSize(width, height float32) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.intrinsicWidth, w.intrinsicHeight = nil, nil
	if width >= 0 {
		w.intrinsicWidth = &width
	}
	if height >= 0 {
		w.intrinsicHeight = &height
	}
	return w
}

// ============================================================================
// Layout
// ============================================================================

// Frame returns the screen-space frame computed by the last Solve.
func (w *Widget) Frame() Bounds {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.frame
}

func (w *Widget) setFrame(b Bounds) {
	w.mu.Lock()
	w.frame = b
	w.mu.Unlock()
}

// Constraints returns the active constraints owned by this widget.
func (w *Widget) Constraints() []*Constraint {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]*Constraint, len(w.constraints))
	copy(result, w.constraints)
	return result
}

// ============================================================================
// Interaction
// ============================================================================

// OnClick sets the tap handler.
func (w *Widget) OnClick(handler func()) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onClick = handler
	return w
}

func (w *Widget) clickHandler() func() {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.onClick
}

// AddGestureRecognizer attaches a pan recognizer to the widget.
func (w *Widget) AddGestureRecognizer(g *PanGestureRecognizer) *Widget {
	w.mu.Lock()
	w.recognizers = append(w.recognizers, g)
	w.mu.Unlock()

	g.view = w
	return w
}

// GestureRecognizers returns the attached recognizers.
func (w *Widget) GestureRecognizers() []*PanGestureRecognizer {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]*PanGestureRecognizer, len(w.recognizers))
	copy(result, w.recognizers)
	return result
}

// SetData stores arbitrary application data on the widget.
func (w *Widget) SetData(data any) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.data = data
	return w
}

// Data returns the application data stored on the widget.
func (w *Widget) Data() any {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.data
}
