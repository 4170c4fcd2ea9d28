package retained

import "fmt"

// Attribute names one measurable edge, dimension, center or baseline of a widget.
type Attribute uint8

const (
	AttrLeading Attribute = iota + 1
	AttrTrailing
	AttrTop
	AttrBottom
	AttrWidth
	AttrHeight
	AttrCenterX
	AttrCenterY
	AttrFirstBaseline
	AttrLastBaseline
)

func (a Attribute) String() string {
	switch a {
	case AttrLeading:
		return "leading"
	case AttrTrailing:
		return "trailing"
	case AttrTop:
		return "top"
	case AttrBottom:
		return "bottom"
	case AttrWidth:
		return "width"
	case AttrHeight:
		return "height"
	case AttrCenterX:
		return "centerX"
	case AttrCenterY:
		return "centerY"
	case AttrFirstBaseline:
		return "firstBaseline"
	case AttrLastBaseline:
		return "lastBaseline"
	default:
		return "unknown"
	}
}

type axis uint8

const (
	axisX axis = iota
	axisY
)

func (a Attribute) axis() axis {
	switch a {
	case AttrLeading, AttrTrailing, AttrWidth, AttrCenterX:
		return axisX
	default:
		return axisY
	}
}

func (a Attribute) isDimension() bool {
	return a == AttrWidth || a == AttrHeight
}

// Priority orders constraints; when two constraints disagree the one with the
// higher priority is kept and the other is broken.
type Priority float32

const (
	PriorityRequired Priority = 1000
	PriorityHigh     Priority = 750
	PriorityLow      Priority = 250

	// priorityIntrinsicWidth sits just under PriorityLow so any explicit
	// width constraint wins over a label's natural text width.
	priorityIntrinsicWidth Priority = 249
)

// Anchor refers to one attribute of a widget.
type Anchor struct {
	Widget *Widget
	Attr   Attribute
}

func (w *Widget) LeadingAnchor() Anchor       { return Anchor{w, AttrLeading} }
func (w *Widget) TrailingAnchor() Anchor      { return Anchor{w, AttrTrailing} }
func (w *Widget) TopAnchor() Anchor           { return Anchor{w, AttrTop} }
func (w *Widget) BottomAnchor() Anchor        { return Anchor{w, AttrBottom} }
func (w *Widget) WidthAnchor() Anchor         { return Anchor{w, AttrWidth} }
func (w *Widget) HeightAnchor() Anchor        { return Anchor{w, AttrHeight} }
func (w *Widget) CenterXAnchor() Anchor       { return Anchor{w, AttrCenterX} }
func (w *Widget) CenterYAnchor() Anchor       { return Anchor{w, AttrCenterY} }
func (w *Widget) FirstBaselineAnchor() Anchor { return Anchor{w, AttrFirstBaseline} }
func (w *Widget) LastBaselineAnchor() Anchor  { return Anchor{w, AttrLastBaseline} }

// ConstraintEqualTo relates two anchors: a = other + constant.
func (a Anchor) ConstraintEqualTo(other Anchor, constant float32) *Constraint {
	second := other
	return &Constraint{
		First:    a,
		Second:   &second,
		Constant: constant,
		Priority: PriorityRequired,
	}
}

// ConstraintEqualToConstant fixes a dimension anchor: a = constant.
func (a Anchor) ConstraintEqualToConstant(constant float32) *Constraint {
	return &Constraint{
		First:    a,
		Constant: constant,
		Priority: PriorityRequired,
	}
}

// Constraint is a linear equality between two anchors (or an anchor and a
// constant) with a priority.
type Constraint struct {
	First    Anchor
	Second   *Anchor // nil for constant constraints
	Constant float32
	Priority Priority

	// Identifier is a free-form label used in diagnostics and tests.
	Identifier string

	active bool

	// resolve computes the constant at solve time for implicit constraints
	// whose value depends on other solved values (e.g. wrapped text height).
	resolve func(s *solver) (float32, bool)
}

// Prioritized sets the constraint's priority and returns it.
func (c *Constraint) Prioritized(p Priority) *Constraint {
	c.Priority = p
	return c
}

// Identified sets the diagnostic identifier and returns the constraint.
func (c *Constraint) Identified(id string) *Constraint {
	c.Identifier = id
	return c
}

// IsActive reports whether the constraint participates in layout.
func (c *Constraint) IsActive() bool {
	return c.active
}

// IsRequired reports whether the constraint has required priority.
func (c *Constraint) IsRequired() bool {
	return c.Priority >= PriorityRequired
}

func (c *Constraint) String() string {
	id := c.Identifier
	if id == "" {
		id = "constraint"
	}
	if c.Second == nil {
		return fmt.Sprintf("%s: #%d.%s == %g @%g", id, c.First.Widget.ID(), c.First.Attr, c.Constant, c.Priority)
	}
	return fmt.Sprintf("%s: #%d.%s == #%d.%s + %g @%g", id,
		c.First.Widget.ID(), c.First.Attr, c.Second.Widget.ID(), c.Second.Attr, c.Constant, c.Priority)
}

// Activate installs constraints on the widget of their first anchor.
func Activate(constraints ...*Constraint) {
	for _, c := range constraints {
		if c == nil || c.active {
			continue
		}
		w := c.First.Widget
		w.mu.Lock()
		w.constraints = append(w.constraints, c)
		w.mu.Unlock()
		c.active = true
	}
}

// Deactivate removes previously activated constraints.
func Deactivate(constraints ...*Constraint) {
	for _, c := range constraints {
		if c == nil || !c.active {
			continue
		}
		w := c.First.Widget
		w.mu.Lock()
		for i, existing := range w.constraints {
			if existing == c {
				w.constraints = append(w.constraints[:i], w.constraints[i+1:]...)
				break
			}
		}
		w.mu.Unlock()
		c.active = false
	}
}

// PinEdges returns four required constraints pinning child's edges to
// parent's edges.
func PinEdges(child, parent *Widget) []*Constraint {
	return []*Constraint{
		child.LeadingAnchor().ConstraintEqualTo(parent.LeadingAnchor(), 0),
		child.TrailingAnchor().ConstraintEqualTo(parent.TrailingAnchor(), 0),
		child.TopAnchor().ConstraintEqualTo(parent.TopAnchor(), 0),
		child.BottomAnchor().ConstraintEqualTo(parent.BottomAnchor(), 0),
	}
}
