package presentation

import (
	"github.com/agiangrant/alertsheet/alert"
	"github.com/agiangrant/alertsheet/retained"
)

// DimmingOverlay is the translucent full-screen backdrop behind a modal.
type DimmingOverlay struct {
	w        *retained.Widget
	color    uint32
	inserted bool
	pins     []*retained.Constraint
}

// NewDimmingOverlay creates a detached overlay of the given RGBA color.
func NewDimmingOverlay(color uint32) *DimmingOverlay {
	w := retained.Container()
	w.SetBackgroundColor(color)
	return &DimmingOverlay{w: w, color: color}
}

// Widget returns the overlay's widget.
func (d *DimmingOverlay) Widget() *retained.Widget { return d.w }

// Color returns the overlay color.
func (d *DimmingOverlay) Color() uint32 { return d.color }

// IsInserted reports whether the overlay is in a container.
func (d *DimmingOverlay) IsInserted() bool { return d.inserted }

// Opacity returns the overlay's current opacity.
func (d *DimmingOverlay) Opacity() float32 { return d.w.Opacity() }

// SetOpacity sets the overlay's opacity.
func (d *DimmingOverlay) SetOpacity(opacity float32) { d.w.SetOpacity(opacity) }

// Insert places the overlay behind everything in container, fully
// transparent and pinned to the container's edges.
func (d *DimmingOverlay) Insert(container *retained.Widget) {
	d.w.SetOpacity(0)
	container.InsertChild(0, d.w)
	d.pins = retained.PinEdges(d.w, container)
	retained.Activate(d.pins...)
	d.inserted = true
}

// Remove detaches the overlay. Removing twice is a no-op.
func (d *DimmingOverlay) Remove() {
	if !d.inserted {
		return
	}
	retained.Deactivate(d.pins...)
	d.pins = nil
	d.w.RemoveFromParent()
	d.inserted = false
}

// PresentationController owns the dimming overlay for one presentation and
// positions the presented view in the container.
type PresentationController struct {
	style     alert.VisualStyle
	behaviors alert.Behaviors
	dimming   *DimmingOverlay

	container *retained.Widget
	presented *retained.Widget
	frame     []*retained.Constraint

	dismissHandler func()
}

// NewPresentationController creates a controller whose overlay uses the
// style's dimming color.
func NewPresentationController(style alert.VisualStyle, behaviors alert.Behaviors) *PresentationController {
	pc := &PresentationController{
		style:     style,
		behaviors: behaviors,
		dimming:   NewDimmingOverlay(style.DimmingColor),
	}
	pc.dimming.Widget().OnClick(pc.dimmingTapped)
	return pc
}

// Dimming returns the controller's overlay.
func (pc *PresentationController) Dimming() *DimmingOverlay { return pc.dimming }

// SetDismissHandler sets the callback run when the overlay is tapped and
// the behaviors allow tap-outside dismissal.
func (pc *PresentationController) SetDismissHandler(fn func()) {
	pc.dismissHandler = fn
}

func (pc *PresentationController) dimmingTapped() {
	if !pc.behaviors.Contains(alert.BehaviorTapOutsideToDismiss) || pc.dismissHandler == nil {
		return
	}
	pc.dismissHandler()
}

// FrameConstraints positions presented inside container: alerts are
// centered at the style's width; action sheets hug the bottom edge inset by
// the side margins.
func (pc *PresentationController) FrameConstraints(container, presented *retained.Widget) []*retained.Constraint {
	if pc.style.Kind == alert.KindActionSheet {
		return []*retained.Constraint{
			presented.LeadingAnchor().ConstraintEqualTo(container.LeadingAnchor(), pc.style.Margin),
			presented.TrailingAnchor().ConstraintEqualTo(container.TrailingAnchor(), -pc.style.Margin),
			presented.BottomAnchor().ConstraintEqualTo(container.BottomAnchor(), 0),
		}
	}
	return []*retained.Constraint{
		presented.CenterXAnchor().ConstraintEqualTo(container.CenterXAnchor(), 0),
		presented.CenterYAnchor().ConstraintEqualTo(container.CenterYAnchor(), 0),
		presented.WidthAnchor().ConstraintEqualToConstant(pc.style.Width),
	}
}

// ContainerWillLayout adds presented to container and installs its frame
// constraints.
func (pc *PresentationController) ContainerWillLayout(container, presented *retained.Widget) {
	pc.container = container
	pc.presented = presented
	if presented.Parent() != container {
		container.AddChild(presented)
	}
	if pc.frame == nil {
		pc.frame = pc.FrameConstraints(container, presented)
		retained.Activate(pc.frame...)
	}
}

// PresentationTransitionWillBegin inserts the overlay. With a custom
// animator its opacity tracks the transition; otherwise it snaps to full
// opacity.
func (pc *PresentationController) PresentationTransitionWillBegin(ctx *TransitionContext) {
	pc.dimming.Insert(ctx.ContainerView())
	if !ctx.HasCustomAnimator() {
		pc.dimming.SetOpacity(1)
		return
	}
	ctx.AnimateAlongside(func(progress float64) {
		pc.dimming.SetOpacity(float32(progress))
	})
}

// PresentationTransitionDidEnd removes the overlay if the presentation did
// not finish.
func (pc *PresentationController) PresentationTransitionDidEnd(completed bool) {
	if !completed {
		pc.dimming.Remove()
	}
}

// DismissalTransitionWillBegin fades the overlay out with a custom animator.
// Without one the overlay stays until the dismissal ends.
func (pc *PresentationController) DismissalTransitionWillBegin(ctx *TransitionContext) {
	if !ctx.HasCustomAnimator() {
		return
	}
	from := pc.dimming.Opacity()
	ctx.AnimateAlongside(func(progress float64) {
		pc.dimming.SetOpacity(retained.Lerp(from, 0, float32(progress)))
	})
}

// DismissalTransitionDidEnd removes the overlay and the frame constraints.
// It runs on every dismissal path, finished or not.
func (pc *PresentationController) DismissalTransitionDidEnd(completed bool) {
	pc.dimming.SetOpacity(0)
	pc.dimming.Remove()
	if pc.frame != nil {
		retained.Deactivate(pc.frame...)
		pc.frame = nil
	}
}
