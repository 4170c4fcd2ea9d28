package retained

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// ============================================================================
// Text Measurement
// ============================================================================

// measureTextWidthFunc estimates the rendered width of a single line of text.
// Hosts with real font metrics replace it with SetMeasureTextWidthFunc.
var measureTextWidthFunc = func(text string, font Font) float32 {
	return float32(utf8.RuneCountInString(text)) * font.Size * 0.5
}

// SetMeasureTextWidthFunc installs the text width measurement used by layout.
func SetMeasureTextWidthFunc(fn func(text string, font Font) float32) {
	if fn != nil {
		measureTextWidthFunc = fn
	}
}

// MeasureTextWidth returns the width of text on one line.
func MeasureTextWidth(text string, font Font) float32 {
	return measureTextWidthFunc(text, font)
}

// WrapText breaks text into lines no wider than width using greedy word
// wrapping. Explicit newlines always start a new line. A width <= 0 disables
// wrapping.
func WrapText(text string, font Font, width float32) []string {
	if text == "" {
		return nil
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		if width <= 0 {
			lines = append(lines, paragraph)
			continue
		}
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if MeasureTextWidth(candidate, font) <= width {
				current = candidate
				continue
			}
			lines = append(lines, current)
			current = word
		}
		lines = append(lines, current)
	}
	return lines
}

// ============================================================================
// Layout Result
// ============================================================================

// LayoutResult reports how the constraints of a tree were resolved.
type LayoutResult struct {
	// Broken lists optional constraints that yielded to higher-priority ones.
	Broken []*Constraint

	// Conflicts lists required constraints that could not be satisfied.
	Conflicts []*Constraint

	// Unresolved lists constraints whose inputs never became known, or that
	// relate incompatible attributes.
	Unresolved []*Constraint
}

// IsBroken reports whether c was not honored by the solve.
func (r *LayoutResult) IsBroken(c *Constraint) bool {
	for _, list := range [][]*Constraint{r.Broken, r.Conflicts, r.Unresolved} {
		for _, b := range list {
			if b == c {
				return true
			}
		}
	}
	return false
}

// IsSatisfied reports whether c is active and was honored by the solve.
func (r *LayoutResult) IsSatisfied(c *Constraint) bool {
	return c.IsActive() && !r.IsBroken(c)
}

// ============================================================================
// Solver
// ============================================================================

const layoutEpsilon = 0.01

type outcome uint8

const (
	outcomeApplied outcome = iota
	outcomeSatisfied
	outcomeBlocked
	outcomeConflict
	outcomeInvalid
)

// solver resolves equality constraints with a weighted union-find over edge
// positions. Every widget contributes four nodes (min/max on each axis);
// node values are only known relative to each other until a class is joined
// with the screen origin. Constraints are applied in priority order, so a
// constraint that contradicts an already established relation is the one
// that breaks.
type solver struct {
	widgets []*Widget
	index   map[*Widget]int
	parent  []int
	offset  []float32 // value(n) = value(parent[n]) + offset[n]
	origin  int
	result  *LayoutResult
}

func newSolver(root *Widget) *solver {
	s := &solver{
		index:  make(map[*Widget]int),
		result: &LayoutResult{},
	}
	root.Walk(func(w *Widget) {
		s.index[w] = len(s.widgets)
		s.widgets = append(s.widgets, w)
	})

	n := len(s.widgets)*4 + 1
	s.parent = make([]int, n)
	s.offset = make([]float32, n)
	for i := range s.parent {
		s.parent[i] = i
	}
	s.origin = n - 1
	return s
}

func (s *solver) node(w *Widget, ax axis, max bool) (int, bool) {
	i, ok := s.index[w]
	if !ok {
		return 0, false
	}
	n := i * 4
	if ax == axisY {
		n += 2
	}
	if max {
		n++
	}
	return n, true
}

func (s *solver) find(n int) (int, float32) {
	if s.parent[n] == n {
		return n, 0
	}
	root, off := s.find(s.parent[n])
	s.offset[n] += off
	s.parent[n] = root
	return root, s.offset[n]
}

// relate records value(a) - value(b) = diff.
func (s *solver) relate(a, b int, diff float32) outcome {
	ra, oa := s.find(a)
	rb, ob := s.find(b)
	if ra == rb {
		if abs32(oa-ob-diff) <= layoutEpsilon {
			return outcomeSatisfied
		}
		return outcomeConflict
	}
	// Keep the origin as a class root so absolute lookups stay shallow.
	if ra == s.origin {
		s.parent[rb] = ra
		s.offset[rb] = oa - ob - diff
		return outcomeApplied
	}
	s.parent[ra] = rb
	s.offset[ra] = diff + ob - oa
	return outcomeApplied
}

// difference returns value(a) - value(b) when both are in the same class.
func (s *solver) difference(a, b int) (float32, bool) {
	ra, oa := s.find(a)
	rb, ob := s.find(b)
	if ra != rb {
		return 0, false
	}
	return oa - ob, true
}

func (s *solver) absolute(n int) (float32, bool) {
	return s.difference(n, s.origin)
}

func (s *solver) span(w *Widget, ax axis) (float32, bool) {
	lo, ok := s.node(w, ax, false)
	if !ok {
		return 0, false
	}
	hi, _ := s.node(w, ax, true)
	return s.difference(hi, lo)
}

func (s *solver) relateSpan(w *Widget, ax axis, size float32) outcome {
	lo, ok := s.node(w, ax, false)
	if !ok {
		return outcomeInvalid
	}
	hi, _ := s.node(w, ax, true)
	return s.relate(hi, lo, size)
}

// term expresses a position anchor as value(node) + delta.
type term struct {
	node  int
	delta float32
}

func (s *solver) term(a Anchor) (term, outcome) {
	w := a.Widget
	ax := a.Attr.axis()
	lo, ok := s.node(w, ax, false)
	if !ok {
		return term{}, outcomeInvalid
	}
	hi := lo + 1

	switch a.Attr {
	case AttrLeading, AttrTop:
		return term{lo, 0}, outcomeApplied
	case AttrTrailing, AttrBottom:
		return term{hi, 0}, outcomeApplied
	case AttrCenterX, AttrCenterY:
		size, known := s.span(w, ax)
		if !known {
			return term{}, outcomeBlocked
		}
		return term{lo, size / 2}, outcomeApplied
	case AttrFirstBaseline:
		if hasBaseline(w) {
			return term{lo, w.Font().Ascent()}, outcomeApplied
		}
		return term{hi, 0}, outcomeApplied
	case AttrLastBaseline:
		if hasBaseline(w) {
			return term{hi, -w.Font().Descent()}, outcomeApplied
		}
		return term{hi, 0}, outcomeApplied
	default:
		return term{}, outcomeInvalid
	}
}

func hasBaseline(w *Widget) bool {
	k := w.Kind()
	return k == KindLabel || k == KindButton
}

func (s *solver) apply(c *Constraint) outcome {
	constant := c.Constant
	if c.resolve != nil {
		v, ok := c.resolve(s)
		if !ok {
			return outcomeBlocked
		}
		constant = v
	}

	first := c.First
	if first.Attr.isDimension() {
		ax := first.Attr.axis()
		if c.Second == nil {
			return s.relateSpan(first.Widget, ax, constant)
		}
		second := *c.Second
		if !second.Attr.isDimension() {
			return outcomeInvalid
		}
		if size, ok := s.span(second.Widget, second.Attr.axis()); ok {
			return s.relateSpan(first.Widget, ax, size+constant)
		}
		if size, ok := s.span(first.Widget, ax); ok {
			return s.relateSpan(second.Widget, second.Attr.axis(), size-constant)
		}
		return outcomeBlocked
	}

	t1, o := s.term(first)
	if o != outcomeApplied {
		return o
	}
	if c.Second == nil {
		return s.relate(t1.node, s.origin, constant-t1.delta)
	}

	second := *c.Second
	if second.Attr.isDimension() || second.Attr.axis() != first.Attr.axis() {
		return outcomeInvalid
	}
	t2, o := s.term(second)
	if o != outcomeApplied {
		return o
	}
	return s.relate(t1.node, t2.node, t2.delta+constant-t1.delta)
}

// Solve resolves every active constraint in root's subtree, plus the
// implicit constraints of stacks, effect views and labels, and stores the
// resulting screen-space frame on each widget. Root is placed at the origin
// with the given width; a height <= 0 lets the content determine it.
func Solve(root *Widget, width, height float32) *LayoutResult {
	s := newSolver(root)
	constraints := s.collect(root, width, height)

	sort.SliceStable(constraints, func(i, j int) bool {
		return constraints[i].Priority > constraints[j].Priority
	})

	var pending []*Constraint
	for i := 0; i < len(constraints); {
		level := constraints[i].Priority
		for i < len(constraints) && constraints[i].Priority == level {
			pending = append(pending, constraints[i])
			i++
		}
		pending = s.drain(pending)
	}
	for _, c := range pending {
		if c.resolve == nil {
			s.result.Unresolved = append(s.result.Unresolved, c)
		}
	}

	s.fallback(root, nil)
	for _, w := range s.widgets {
		w.setFrame(s.frame(w))
	}
	return s.result
}

// drain applies pending constraints until no more progress can be made and
// returns the ones still blocked.
func (s *solver) drain(pending []*Constraint) []*Constraint {
	for len(pending) > 0 {
		progress := false
		var blocked []*Constraint
		for _, c := range pending {
			switch s.apply(c) {
			case outcomeApplied:
				progress = true
			case outcomeSatisfied:
			case outcomeBlocked:
				blocked = append(blocked, c)
			case outcomeConflict:
				s.breakConstraint(c)
			case outcomeInvalid:
				Logger.Warn("invalid layout constraint", "constraint", c.String())
				s.result.Unresolved = append(s.result.Unresolved, c)
			}
		}
		pending = blocked
		if !progress {
			break
		}
	}
	return pending
}

func (s *solver) breakConstraint(c *Constraint) {
	if c.resolve != nil {
		// Implicit sizes yield silently, like content hugging.
		return
	}
	if c.IsRequired() {
		Logger.Warn("unable to simultaneously satisfy constraints", "constraint", c.String())
		s.result.Conflicts = append(s.result.Conflicts, c)
		return
	}
	s.result.Broken = append(s.result.Broken, c)
}

// fallback pins anything still undetermined to its parent's origin with a
// zero size, so every widget ends up with a concrete frame.
func (s *solver) fallback(w, parent *Widget) {
	for _, ax := range []axis{axisX, axisY} {
		lo, _ := s.node(w, ax, false)
		hi := lo + 1
		if _, ok := s.absolute(lo); !ok {
			if _, ok := s.absolute(hi); ok {
				s.relate(lo, hi, 0)
			} else if parent != nil {
				plo, _ := s.node(parent, ax, false)
				s.relate(lo, plo, 0)
			} else {
				s.relate(lo, s.origin, 0)
			}
		}
		if _, ok := s.difference(hi, lo); !ok {
			s.relate(hi, lo, 0)
		}
	}
	for _, c := range w.Children() {
		s.fallback(c, w)
	}
}

func (s *solver) frame(w *Widget) Bounds {
	x0, _ := s.node(w, axisX, false)
	y0, _ := s.node(w, axisY, false)
	x, _ := s.absolute(x0)
	y, _ := s.absolute(y0)
	width, _ := s.span(w, axisX)
	height, _ := s.span(w, axisY)
	return Bounds{X: x, Y: y, Width: width, Height: height}
}

// ============================================================================
// Implicit Constraints
// ============================================================================

func (s *solver) collect(root *Widget, width, height float32) []*Constraint {
	var all []*Constraint

	all = append(all,
		implicit(root.LeadingAnchor().ConstraintEqualToConstant(0), "root-leading"),
		implicit(root.TopAnchor().ConstraintEqualToConstant(0), "root-top"),
		implicit(root.WidthAnchor().ConstraintEqualToConstant(width), "root-width"),
	)
	if height > 0 {
		all = append(all, implicit(root.HeightAnchor().ConstraintEqualToConstant(height), "root-height"))
	}

	for _, w := range s.widgets {
		all = append(all, w.Constraints()...)

		switch w.Kind() {
		case KindVStack:
			all = append(all, stackConstraints(w, axisY)...)
		case KindEffect:
			if content := w.ContentView(); content != nil {
				for _, c := range PinEdges(content, w) {
					all = append(all, implicit(c, "effect-content"))
				}
			}
		case KindLabel:
			all = append(all, labelConstraints(w)...)
		}

		w.mu.RLock()
		iw, ih := w.intrinsicWidth, w.intrinsicHeight
		w.mu.RUnlock()
		if iw != nil {
			all = append(all, implicit(w.WidthAnchor().ConstraintEqualToConstant(*iw), "intrinsic-width").Prioritized(PriorityHigh))
		}
		if ih != nil {
			all = append(all, implicit(w.HeightAnchor().ConstraintEqualToConstant(*ih), "intrinsic-height").Prioritized(PriorityHigh))
		}
	}
	return all
}

func implicit(c *Constraint, id string) *Constraint {
	c.Identifier = id
	c.active = true
	return c
}

func labelConstraints(w *Widget) []*Constraint {
	height := w.HeightAnchor().ConstraintEqualToConstant(0).Prioritized(PriorityHigh)
	height.resolve = func(s *solver) (float32, bool) {
		width, ok := s.span(w, axisX)
		if !ok {
			return 0, false
		}
		font := w.Font()
		return float32(len(WrapText(w.Text(), font, width))) * font.LineHeight(), true
	}

	textWidth := w.WidthAnchor().ConstraintEqualToConstant(0).Prioritized(priorityIntrinsicWidth)
	textWidth.resolve = func(*solver) (float32, bool) {
		return MeasureTextWidth(w.Text(), w.Font()), true
	}

	return []*Constraint{
		implicit(height, "label-height"),
		implicit(textWidth, "label-width"),
	}
}

func stackConstraints(stack *Widget, main axis) []*Constraint {
	start, end := AttrTop, AttrBottom
	crossStart, crossEnd, crossCenter := AttrLeading, AttrTrailing, AttrCenterX
	mainSize := AttrHeight
	if main == axisX {
		start, end = AttrLeading, AttrTrailing
		crossStart, crossEnd, crossCenter = AttrTop, AttrBottom, AttrCenterY
		mainSize = AttrWidth
	}

	var visible []*Widget
	for _, child := range stack.ArrangedChildren() {
		if !child.IsHidden() {
			visible = append(visible, child)
		}
	}

	var out []*Constraint
	if len(visible) == 0 {
		out = append(out, implicit(Anchor{stack, mainSize}.ConstraintEqualToConstant(0), "stack-empty"))
		return out
	}

	spacing := stack.Spacing()
	alignment := stack.Alignment()
	for i, child := range visible {
		if i == 0 {
			out = append(out, implicit(Anchor{child, start}.ConstraintEqualTo(Anchor{stack, start}, 0), "stack-first"))
		} else {
			out = append(out, implicit(Anchor{child, start}.ConstraintEqualTo(Anchor{visible[i-1], end}, spacing), "stack-spacing"))
		}
		if i == len(visible)-1 {
			out = append(out, implicit(Anchor{child, end}.ConstraintEqualTo(Anchor{stack, end}, 0), "stack-last"))
		}

		switch alignment {
		case AlignFill:
			out = append(out,
				implicit(Anchor{child, crossStart}.ConstraintEqualTo(Anchor{stack, crossStart}, 0), "stack-fill"),
				implicit(Anchor{child, crossEnd}.ConstraintEqualTo(Anchor{stack, crossEnd}, 0), "stack-fill"),
			)
		case AlignLeading:
			out = append(out, implicit(Anchor{child, crossStart}.ConstraintEqualTo(Anchor{stack, crossStart}, 0), "stack-leading"))
		case AlignTrailing:
			out = append(out, implicit(Anchor{child, crossEnd}.ConstraintEqualTo(Anchor{stack, crossEnd}, 0), "stack-trailing"))
		case AlignCenter:
			out = append(out, implicit(Anchor{child, crossCenter}.ConstraintEqualTo(Anchor{stack, crossCenter}, 0), "stack-center"))
		}
	}
	return out
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
