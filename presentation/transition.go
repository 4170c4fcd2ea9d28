// Package presentation drives the modal appearance and disappearance of
// alerts and action sheets: which controllers a style uses, the dimming
// backdrop, the scale/fade and slide animators, and the presenter state
// machine that sequences (and interrupts) transitions.
package presentation

import (
	"log/slog"

	"github.com/agiangrant/alertsheet/alert"
)

// Logger receives transition diagnostics.
var Logger = slog.Default()

// SetLogger replaces the package logger. A nil logger restores slog.Default().
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	Logger = l
}

// AnimatorKind tags which animator a transition uses.
type AnimatorKind int

const (
	// AnimatorNone means no custom animator; the default slide is used.
	AnimatorNone AnimatorKind = iota
	AnimatorPresenting
	AnimatorDismissing
)

func (k AnimatorKind) String() string {
	switch k {
	case AnimatorNone:
		return "none"
	case AnimatorPresenting:
		return "presenting"
	case AnimatorDismissing:
		return "dismissing"
	default:
		return "unknown"
	}
}

// Plan is the controller selection for one alert kind.
type Plan struct {
	DimmingColor uint32
	Presentation AnimatorKind
	Dismissal    AnimatorKind
}

// PlanFor maps an alert kind to its controllers. Alerts get the custom
// scale/fade animator in both directions; action sheets get none and slide.
func PlanFor(kind alert.Kind, dimmingColor uint32) Plan {
	p := Plan{DimmingColor: dimmingColor}
	if kind != alert.KindActionSheet {
		p.Presentation = AnimatorPresenting
	}
	if kind == alert.KindAlert {
		p.Dismissal = AnimatorDismissing
	}
	return p
}

// Transition selects the presentation controller and animators for a
// presentation of one visual style. It holds no state beyond its inputs.
type Transition struct {
	style     alert.VisualStyle
	behaviors alert.Behaviors
	plan      Plan
}

// NewTransition creates the transition for style.
func NewTransition(style alert.VisualStyle, behaviors alert.Behaviors) *Transition {
	return &Transition{
		style:     style,
		behaviors: behaviors,
		plan:      PlanFor(style.Kind, style.DimmingColor),
	}
}

// Plan returns the controller selection.
func (t *Transition) Plan() Plan { return t.plan }

// Style returns the visual style the transition was created for.
func (t *Transition) Style() alert.VisualStyle { return t.style }

// PresentationController returns a new presentation controller configured
// with the style's dimming color.
func (t *Transition) PresentationController() *PresentationController {
	return NewPresentationController(t.style, t.behaviors)
}

// AnimationControllerForPresented returns the presenting animator, or nil
// when the default slide should be used.
func (t *Transition) AnimationControllerForPresented() *AnimationController {
	return newAnimationController(t.plan.Presentation)
}

// AnimationControllerForDismissed returns the dismissing animator, or nil
// when the default slide should be used.
func (t *Transition) AnimationControllerForDismissed() *AnimationController {
	return newAnimationController(t.plan.Dismissal)
}

func newAnimationController(kind AnimatorKind) *AnimationController {
	switch kind {
	case AnimatorPresenting:
		return NewAnimationController(true)
	case AnimatorDismissing:
		return NewAnimationController(false)
	default:
		return nil
	}
}
