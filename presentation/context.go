package presentation

import (
	"github.com/agiangrant/alertsheet/retained"
)

// TransitionAnimator animates one transition.
type TransitionAnimator interface {
	// AnimateTransition starts the animation. It must eventually call
	// ctx.CompleteTransition, unless the context is interrupted first.
	AnimateTransition(ctx *TransitionContext)

	// ApplyFinalState sets the presented view to the animation's end state
	// without animating.
	ApplyFinalState(ctx *TransitionContext)
}

// TransitionContext carries one transition: the views involved, the
// animation registry that drives it, animations that run alongside, and
// the completion signal.
type TransitionContext struct {
	container  *retained.Widget
	view       *retained.Widget
	registry   *retained.AnimationRegistry
	presenting bool
	custom     bool

	alongside   []func(progress float64)
	completions []func(finished bool)
	animations  []*retained.Animation
	completed   bool
}

func newTransitionContext(container, view *retained.Widget, registry *retained.AnimationRegistry, presenting, custom bool) *TransitionContext {
	return &TransitionContext{
		container:  container,
		view:       view,
		registry:   registry,
		presenting: presenting,
		custom:     custom,
	}
}

// ContainerView returns the full-screen container the view is presented in.
func (c *TransitionContext) ContainerView() *retained.Widget { return c.container }

// View returns the presented view.
func (c *TransitionContext) View() *retained.Widget { return c.view }

// Registry returns the animation registry driving the transition.
func (c *TransitionContext) Registry() *retained.AnimationRegistry { return c.registry }

// IsPresenting reports the transition's direction.
func (c *TransitionContext) IsPresenting() bool { return c.presenting }

// HasCustomAnimator reports whether a custom animator (rather than the
// default slide) runs the transition.
func (c *TransitionContext) HasCustomAnimator() bool { return c.custom }

// IsCompleted reports whether completion has been signalled.
func (c *TransitionContext) IsCompleted() bool { return c.completed }

// AnimateAlongside registers fn to receive the transition's eased progress
// on every frame. It must be called before the animator starts.
func (c *TransitionContext) AnimateAlongside(fn func(progress float64)) {
	c.alongside = append(c.alongside, fn)
}

// Progress forwards eased progress to alongside animations. Animators call
// it from their update function.
func (c *TransitionContext) Progress(progress float64) {
	for _, fn := range c.alongside {
		fn(progress)
	}
}

// Track associates an animation with the context so an interruption can
// cancel it.
func (c *TransitionContext) Track(anim *retained.Animation) {
	c.animations = append(c.animations, anim)
}

// CompleteTransition signals the end of the transition. Only the first call
// has an effect.
func (c *TransitionContext) CompleteTransition(finished bool) {
	if c.completed {
		Logger.Warn("duplicate transition completion ignored",
			"presenting", c.presenting, "finished", finished)
		return
	}
	c.completed = true
	for _, fn := range c.completions {
		fn(finished)
	}
}

func (c *TransitionContext) onComplete(fn func(finished bool)) {
	c.completions = append(c.completions, fn)
}

// cancel stops every tracked animation. Cancelled animations never report
// completion on their own.
func (c *TransitionContext) cancel() {
	for _, anim := range c.animations {
		anim.Cancel()
	}
	c.animations = nil
}
