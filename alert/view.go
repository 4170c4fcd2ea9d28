package alert

import (
	"errors"

	"github.com/agiangrant/alertsheet/retained"
)

var (
	// ErrAlreadyBuilt is returned when a view's layout is prepared twice.
	ErrAlreadyBuilt = errors.New("view already built")
)

// View is the root view of an alert or action sheet.
type View interface {
	// Root returns the widget presented on screen.
	Root() *retained.Widget

	// PrepareLayout builds the view tree. It must run before presentation,
	// and only once.
	PrepareLayout() error

	// AddBehaviors installs optional interactions.
	AddBehaviors(b Behaviors)

	// SetActionTappedHandler sets the callback for an activated action,
	// whether tapped or released over while armed.
	SetActionTappedHandler(fn func(*Action))

	// SetSafeAreaInsets supplies the screen's safe area.
	SetSafeAreaInsets(insets retained.SafeAreaInsets)

	// ArmedCell returns the view's shared armed-action cell.
	ArmedCell() *ArmedCell
}

// NewView creates the view for style.Kind.
func NewView(style VisualStyle, title, message string, actions []*Action, content *retained.Widget) View {
	if content == nil {
		content = retained.Container()
	}
	if style.Kind == KindActionSheet {
		v := NewActionSheetView(style, actions, content)
		v.SetTitle(title)
		v.SetMessage(message)
		return v
	}
	v := NewAlertView(style, actions, content)
	v.SetTitle(title)
	v.SetMessage(message)
	return v
}

// newDragTap creates the pan recognizer behind drag-to-select. Each pointer
// sample is fanned out to targets inside one armed-cell dispatch; when the
// gesture ends, the armed action (if any) is activated.
func newDragTap(cell *ArmedCell, activate func(*Action), targets ...func(*retained.PanGestureRecognizer)) *retained.PanGestureRecognizer {
	pan := retained.NewPanGestureRecognizer()
	for _, target := range targets {
		pan.AddTarget(target)
	}
	pan.Dispatch = func(g *retained.PanGestureRecognizer, deliver func()) {
		cell.Begin()
		deliver()
		cell.Commit()

		switch g.State() {
		case retained.GestureEnded:
			armed := cell.Armed()
			cell.Clear()
			if armed != nil {
				Logger.Debug("armed action released", "action", armed.Title)
				activate(armed)
			}
		case retained.GestureCancelled:
			cell.Clear()
		}
	}
	return pan
}
