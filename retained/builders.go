package retained

// Builder helpers for common widget patterns.
// These provide a fluent API for constructing UI trees.

// Container creates a generic container widget.
func Container(children ...*Widget) *Widget {
	w := NewWidget(KindContainer)
	for _, child := range children {
		w.AddChild(child)
	}
	return w
}

// VStack creates a vertical stack container.
// Arranged children are laid out top-to-bottom; hidden ones are skipped.
func VStack(children ...*Widget) *Widget {
	w := NewWidget(KindVStack)
	for _, child := range children {
		w.AddArrangedChild(child)
	}
	return w
}

// ScrollView creates a clipping container whose content does not determine
// its size.
func ScrollView(children ...*Widget) *Widget {
	w := NewWidget(KindScroll)
	w.masksToBounds = true
	for _, child := range children {
		w.AddChild(child)
	}
	return w
}

// Label creates a text label.
func Label(text string, font Font, color uint32) *Widget {
	w := NewWidget(KindLabel)
	w.text = text
	w.font = font
	w.textColor = color
	return w
}

// Button creates a tappable text row.
func Button(text string, onClick func()) *Widget {
	w := NewWidget(KindButton)
	w.text = text
	w.onClick = onClick
	return w
}
