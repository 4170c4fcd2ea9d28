package retained

// EffectKind distinguishes blur surfaces from vibrancy surfaces.
type EffectKind uint8

const (
	EffectBlur EffectKind = iota + 1
	EffectVibrancy
)

// Effect is an opaque handle to a platform visual effect. Hosts decide how
// (or whether) to render it; the widget tree only carries it.
type Effect struct {
	Kind EffectKind

	// Style names the platform material, e.g. "regular" or "dark".
	Style string

	// Tint is composited over the blurred backdrop (RGBA). Zero means none.
	Tint uint32
}

// BlurEffect returns a blur effect with the given material style.
func BlurEffect(style string) *Effect {
	return &Effect{Kind: EffectBlur, Style: style}
}

// VibrancyEffect derives a vibrancy effect from a blur effect.
func VibrancyEffect(blur *Effect) *Effect {
	e := &Effect{Kind: EffectVibrancy}
	if blur != nil {
		e.Style = blur.Style
		e.Tint = blur.Tint
	}
	return e
}

// NewVisualEffectView creates an effect surface. Children belong in its
// ContentView, which is always pinned to the surface's edges.
func NewVisualEffectView(effect *Effect) *Widget {
	w := NewWidget(KindEffect)
	content := NewWidget(KindContainer)
	w.effect = effect
	w.effectContent = content
	w.AddChild(content)
	return w
}

// Effect returns the visual effect of an effect surface, or nil.
func (w *Widget) Effect() *Effect {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.effect
}

// SetEffect replaces the effect of an effect surface.
func (w *Widget) SetEffect(effect *Effect) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.effect = effect
	return w
}

// ContentView returns the content container of an effect surface, or nil for
// other widgets.
func (w *Widget) ContentView() *Widget {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.effectContent
}
