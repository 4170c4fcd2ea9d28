package presentation

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agiangrant/alertsheet/alert"
	"github.com/agiangrant/alertsheet/retained"
)

var (
	// ErrAlreadyPresented is returned by Present while a modal is showing.
	ErrAlreadyPresented = errors.New("a modal is already presented")

	// ErrNotPresented is returned by Dismiss when nothing can be dismissed.
	ErrNotPresented = errors.New("no modal is presented")

	// ErrNoView is returned by Present without a view.
	ErrNoView = errors.New("no view to present")
)

// State is the presenter's lifecycle state.
type State int

const (
	StateIdle State = iota
	StatePresenting
	StatePresented
	StateDismissing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePresenting:
		return "presenting"
	case StatePresented:
		return "presented"
	case StateDismissing:
		return "dismissing"
	default:
		return "unknown"
	}
}

// Session is one modal lifecycle: created when presentation begins and
// destroyed when dismissal completes.
type Session struct {
	ID         uuid.UUID
	View       alert.View
	Transition *Transition
	Controller *PresentationController
	Started    time.Time

	// Animator is the animator of the transition in flight, or nil.
	Animator TransitionAnimator
}

// Presenter shows at most one modal at a time in a full-screen container.
// The host drives it by ticking the animation registry and dispatching
// pointer events into Container.
type Presenter struct {
	screen    retained.Screen
	registry  *retained.AnimationRegistry
	container *retained.Widget

	state   State
	session *Session
	ctx     *TransitionContext

	// OnStateChange, when set, observes every state transition.
	OnStateChange func(from, to State)
}

// NewPresenter creates an idle presenter for screen.
func NewPresenter(screen retained.Screen, registry *retained.AnimationRegistry) *Presenter {
	return &Presenter{
		screen:    screen,
		registry:  registry,
		container: retained.Container(),
	}
}

// Container returns the full-screen widget modals are presented in.
func (p *Presenter) Container() *retained.Widget { return p.container }

// Registry returns the animation registry driving transitions.
func (p *Presenter) Registry() *retained.AnimationRegistry { return p.registry }

// Screen returns the screen the presenter lays out for.
func (p *Presenter) Screen() retained.Screen { return p.screen }

// SetScreen updates the screen size and lays out again.
func (p *Presenter) SetScreen(screen retained.Screen) {
	p.screen = screen
	p.Layout()
}

// State returns the lifecycle state.
func (p *Presenter) State() State { return p.state }

// InTransition reports whether a transition is in flight.
func (p *Presenter) InTransition() bool {
	return p.state == StatePresenting || p.state == StateDismissing
}

// Session returns the current session, or nil when idle.
func (p *Presenter) Session() *Session { return p.session }

// Layout solves the container at screen size.
func (p *Presenter) Layout() *retained.LayoutResult {
	return retained.Solve(p.container, p.screen.Width, p.screen.Height)
}

// Present shows view using transition t. The view must already be
// prepared. Presenting while a dismissal is in flight cuts the dismissal
// short first. Completion is called exactly once.
func (p *Presenter) Present(view alert.View, t *Transition, completion func(finished bool)) error {
	if view == nil || view.Root() == nil {
		return fmt.Errorf("present: %w", ErrNoView)
	}
	switch p.state {
	case StatePresenting, StatePresented:
		return fmt.Errorf("present: %w", ErrAlreadyPresented)
	case StateDismissing:
		p.interrupt("present")
		p.teardown()
	}

	pc := t.PresentationController()
	pc.SetDismissHandler(func() {
		if err := p.Dismiss(nil); err != nil {
			Logger.Debug("tap outside ignored", "error", err)
		}
	})
	session := &Session{
		ID:         uuid.New(),
		View:       view,
		Transition: t,
		Controller: pc,
		Started:    p.registry.Now(),
	}
	p.session = session
	Logger.Debug("presentation session created", "session", session.ID, "kind", t.Style().Kind)

	pc.ContainerWillLayout(p.container, view.Root())

	var animator TransitionAnimator = NewSlideTransition(true)
	custom := false
	if ac := t.AnimationControllerForPresented(); ac != nil {
		animator, custom = ac, true
	}
	session.Animator = animator

	ctx := newTransitionContext(p.container, view.Root(), p.registry, true, custom)
	ctx.onComplete(func(finished bool) {
		pc.PresentationTransitionDidEnd(finished)
		if p.ctx == ctx {
			p.ctx = nil
			session.Animator = nil
			p.setState(StatePresented)
		}
		Logger.Debug("presentation finished", "session", session.ID, "finished", finished)
		if completion != nil {
			completion(finished)
		}
	})
	p.ctx = ctx
	p.setState(StatePresenting)

	pc.PresentationTransitionWillBegin(ctx)
	// The view and the overlay are laid out before any animation starts.
	p.Layout()
	animator.AnimateTransition(ctx)
	return nil
}

// Dismiss hides the current modal. Dismissing during the presentation
// animation interrupts it: the presentation snaps to the dismissed end
// state and reports completion (not finished) before the dismissal starts.
// Completion is called exactly once.
func (p *Presenter) Dismiss(completion func(finished bool)) error {
	switch p.state {
	case StateIdle, StateDismissing:
		return fmt.Errorf("dismiss: %w", ErrNotPresented)
	}

	session := p.session
	t, pc := session.Transition, session.Controller
	root := session.View.Root()

	var animator TransitionAnimator = NewSlideTransition(false)
	custom := false
	if ac := t.AnimationControllerForDismissed(); ac != nil {
		animator, custom = ac, true
	}
	ctx := newTransitionContext(p.container, root, p.registry, false, custom)

	if p.state == StatePresenting {
		animator.ApplyFinalState(ctx)
		pc.Dimming().SetOpacity(0)
		p.interrupt("dismiss")
	}

	ctx.onComplete(func(finished bool) {
		pc.DismissalTransitionDidEnd(finished)
		if p.ctx == ctx {
			p.ctx = nil
			p.teardown()
		}
		if completion != nil {
			completion(finished)
		}
	})
	session.Animator = animator
	p.ctx = ctx
	p.setState(StateDismissing)

	pc.DismissalTransitionWillBegin(ctx)
	animator.AnimateTransition(ctx)
	return nil
}

// interrupt cancels the transition in flight and signals its completion as
// not finished.
func (p *Presenter) interrupt(by string) {
	ctx := p.ctx
	if ctx == nil {
		return
	}
	p.ctx = nil
	ctx.cancel()
	Logger.Debug("transition interrupted", "presenting", ctx.IsPresenting(), "by", by)
	ctx.CompleteTransition(false)
}

// teardown destroys the current session.
func (p *Presenter) teardown() {
	session := p.session
	if session == nil {
		return
	}
	session.Controller.DismissalTransitionDidEnd(false)
	session.View.Root().RemoveFromParent()
	session.Animator = nil
	p.session = nil
	p.setState(StateIdle)
	Logger.Debug("presentation session destroyed", "session", session.ID,
		"lifetime", p.registry.Now().Sub(session.Started))
}

func (p *Presenter) setState(s State) {
	if s == p.state {
		return
	}
	from := p.state
	p.state = s
	if p.OnStateChange != nil {
		p.OnStateChange(from, s)
	}
}
