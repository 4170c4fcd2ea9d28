package presentation

import (
	"time"

	"github.com/agiangrant/alertsheet/retained"
)

const (
	// DefaultTransitionDuration is the length of both directions.
	DefaultTransitionDuration = 250 * time.Millisecond

	// initialScale is the scale an alert grows from and shrinks back to.
	initialScale float32 = 0.9
)

// AnimationController is the scale and fade animator used by alerts. Its
// direction is fixed at construction.
type AnimationController struct {
	presenting bool

	Duration time.Duration
	Easing   retained.EasingFunc
}

// NewAnimationController creates a presenting or dismissing animator.
func NewAnimationController(presenting bool) *AnimationController {
	return &AnimationController{
		presenting: presenting,
		Duration:   DefaultTransitionDuration,
		Easing:     retained.EaseOutCubic,
	}
}

// IsPresenting reports the animator's direction.
func (a *AnimationController) IsPresenting() bool { return a.presenting }

// Kind returns the animator's tag.
func (a *AnimationController) Kind() AnimatorKind {
	if a.presenting {
		return AnimatorPresenting
	}
	return AnimatorDismissing
}

// TransitionDuration returns how long the animation runs.
func (a *AnimationController) TransitionDuration() time.Duration { return a.Duration }

// AnimateTransition animates the presented view. Presenting starts from the
// reduced scale at zero opacity; dismissing starts from the view's current
// values so an interrupted presentation reverses without a jump.
func (a *AnimationController) AnimateTransition(ctx *TransitionContext) {
	view := ctx.View()

	var fromScale, fromOpacity, toScale, toOpacity float32
	if a.presenting {
		fromScale, fromOpacity = initialScale, 0
		toScale, toOpacity = 1, 1
		view.SetScale(fromScale).SetOpacity(fromOpacity)
	} else {
		fromScale, fromOpacity = view.Scale(), view.Opacity()
		toScale, toOpacity = initialScale, 0
	}

	// The driver completes after every update of its final tick.
	animate := func() *retained.AnimationBuilder {
		return view.Animate(ctx.Registry()).Duration(a.Duration).Easing(a.Easing)
	}
	ctx.Track(animate().ScaleFromTo(fromScale, toScale))
	ctx.Track(animate().OpacityFromTo(fromOpacity, toOpacity))
	ctx.Track(animate().
		OnComplete(func() { ctx.CompleteTransition(true) }).
		Custom(ctx.Progress))
}

// ApplyFinalState snaps the view to the animator's end state.
func (a *AnimationController) ApplyFinalState(ctx *TransitionContext) {
	if a.presenting {
		ctx.View().SetScale(1).SetOpacity(1)
		return
	}
	ctx.View().SetScale(initialScale).SetOpacity(0)
}

// SlideTransition is the default animator, used when a style has no custom
// animator: the view slides up from below the screen and back down.
type SlideTransition struct {
	presenting bool

	Duration time.Duration
	Easing   retained.EasingFunc
}

// NewSlideTransition creates a presenting or dismissing slide.
func NewSlideTransition(presenting bool) *SlideTransition {
	return &SlideTransition{
		presenting: presenting,
		Duration:   DefaultTransitionDuration,
		Easing:     retained.EaseOutCubic,
	}
}

// offscreenOffset is the vertical offset that puts the view just below the
// container.
func offscreenOffset(ctx *TransitionContext) float32 {
	offset := ctx.ContainerView().Frame().MaxY() - ctx.View().Frame().Y
	if offset < 0 {
		return 0
	}
	return offset
}

func (s *SlideTransition) AnimateTransition(ctx *TransitionContext) {
	view := ctx.View()
	offset := offscreenOffset(ctx)

	from, to := view.TranslateY(), offset
	if s.presenting {
		from, to = offset, 0
		view.SetTranslateY(from)
	}

	ctx.Track(view.Animate(ctx.Registry()).
		Duration(s.Duration).
		Easing(s.Easing).
		OnComplete(func() { ctx.CompleteTransition(true) }).
		TranslateYFromTo(from, to))
}

func (s *SlideTransition) ApplyFinalState(ctx *TransitionContext) {
	if s.presenting {
		ctx.View().SetTranslateY(0)
		return
	}
	ctx.View().SetTranslateY(offscreenOffset(ctx))
}
