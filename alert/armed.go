package alert

// ArmedCell holds the action currently armed by a drag gesture. It is shared
// by every section that listens to the same pointer stream, so all of them
// render the same armed row.
//
// One pointer sample is bracketed by Begin and Commit. Sections Offer the
// row under the pointer in between; Commit publishes the result to
// observers. A sample over no row disarms the cell.
type ArmedCell struct {
	armed   *Action
	pending *Action
	open    bool

	observers []func(*Action)
}

// NewArmedCell creates an empty cell.
func NewArmedCell() *ArmedCell {
	return &ArmedCell{}
}

// Armed returns the armed action, or nil.
func (c *ArmedCell) Armed() *Action {
	return c.armed
}

// Observe registers fn to be called with the armed action after every
// Commit and Clear.
func (c *ArmedCell) Observe(fn func(*Action)) {
	c.observers = append(c.observers, fn)
}

// Begin opens a dispatch for one pointer sample.
func (c *ArmedCell) Begin() {
	c.open = true
	c.pending = nil
}

// Offer proposes a for the current dispatch. Outside a dispatch the offer
// is committed immediately.
func (c *ArmedCell) Offer(a *Action) {
	if !c.open {
		c.Begin()
		c.Offer(a)
		c.Commit()
		return
	}
	if a == nil {
		return
	}
	if c.pending != nil && c.pending != a {
		// Two sections claimed the same pointer position.
		Logger.Warn("conflicting armed actions in one dispatch",
			"kept", c.pending.Title, "dropped", a.Title)
		return
	}
	c.pending = a
}

// Commit closes the dispatch and publishes the offered action.
func (c *ArmedCell) Commit() {
	if !c.open {
		return
	}
	c.open = false
	c.armed = c.pending
	c.pending = nil
	c.notify()
}

// Clear disarms the cell.
func (c *ArmedCell) Clear() {
	c.open = false
	c.pending = nil
	if c.armed == nil {
		return
	}
	c.armed = nil
	c.notify()
}

func (c *ArmedCell) notify() {
	for _, fn := range c.observers {
		fn(c.armed)
	}
}
