package alert

import "github.com/agiangrant/alertsheet/retained"

// Surface is a background a section is drawn on. It is either an opaque
// container or a visual-effect view; the variant is picked once when the
// view is built and callers only ever place children in Content.
type Surface interface {
	// Widget is the surface itself, as inserted into the tree.
	Widget() *retained.Widget

	// Content is where children go.
	Content() *retained.Widget

	// IsBlurred reports whether the surface is a visual-effect view.
	IsBlurred() bool
}

type opaqueSurface struct {
	w *retained.Widget
}

func (s opaqueSurface) Widget() *retained.Widget  { return s.w }
func (s opaqueSurface) Content() *retained.Widget { return s.w }
func (s opaqueSurface) IsBlurred() bool           { return false }

type effectSurface struct {
	w *retained.Widget
}

func (s effectSurface) Widget() *retained.Widget  { return s.w }
func (s effectSurface) Content() *retained.Widget { return s.w.ContentView() }
func (s effectSurface) IsBlurred() bool           { return true }

// newSurfaces returns the background and label-background surfaces for
// style. Exactly one pair exists per view: blur + vibrancy when BlurEnable
// is set, two opaque containers otherwise.
func newSurfaces(style VisualStyle) (background, labels Surface) {
	if style.BlurEnable {
		effect := style.BlurEffect
		if effect == nil {
			effect = retained.BlurEffect("regular")
		}
		return effectSurface{retained.NewVisualEffectView(effect)},
			effectSurface{retained.NewVisualEffectView(retained.VibrancyEffect(effect))}
	}

	bg := retained.Container()
	bg.SetBackgroundColor(style.BackgroundColor)
	return opaqueSurface{bg}, opaqueSurface{retained.Container()}
}

// newBackground returns a single background surface for style.
func newBackground(style VisualStyle) Surface {
	bg, _ := newSurfaces(style)
	return bg
}
