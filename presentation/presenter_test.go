package presentation

import (
	"errors"
	"testing"
	"time"

	"github.com/agiangrant/alertsheet/alert"
	"github.com/agiangrant/alertsheet/retained"
)

var testScreen = retained.Screen{Width: 390, Height: 844}

func approx(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 0.01
}

type fixture struct {
	registry  *retained.AnimationRegistry
	clock     *testClock
	presenter *Presenter
	style     alert.VisualStyle
	view      alert.View
}

func newFixture(t *testing.T, kind alert.Kind, actions ...*alert.Action) *fixture {
	t.Helper()
	r := retained.NewAnimationRegistry()
	f := &fixture{
		registry:  r,
		clock:     newTestClock(r),
		presenter: NewPresenter(testScreen, r),
		style:     alert.DefaultVisualStyle(kind),
	}
	if len(actions) == 0 {
		actions = []*alert.Action{alert.NewAction("OK", alert.ActionPreferred, nil)}
	}
	f.view = alert.NewView(f.style, "Warning", "", actions, nil)
	if err := f.view.PrepareLayout(); err != nil {
		t.Fatalf("PrepareLayout() error = %v", err)
	}
	return f
}

func (f *fixture) present(t *testing.T, behaviors alert.Behaviors, completion func(bool)) *PresentationController {
	t.Helper()
	if err := f.presenter.Present(f.view, NewTransition(f.style, behaviors), completion); err != nil {
		t.Fatalf("Present() error = %v", err)
	}
	return f.presenter.Session().Controller
}

func (f *fixture) advance(d time.Duration) {
	f.clock.advance(f.registry, d)
}

func TestPresenterAlertLifecycle(t *testing.T) {
	f := newFixture(t, alert.KindAlert)
	var states []State
	f.presenter.OnStateChange = func(_, to State) { states = append(states, to) }

	var presented []bool
	pc := f.present(t, 0, func(ok bool) { presented = append(presented, ok) })
	root := f.view.Root()

	if f.presenter.State() != StatePresenting || !f.presenter.InTransition() {
		t.Fatalf("State() = %v, want presenting", f.presenter.State())
	}
	if !pc.Dimming().IsInserted() || pc.Dimming().Opacity() != 0 {
		t.Errorf("dimming should start inserted and transparent, opacity %v", pc.Dimming().Opacity())
	}
	if got := root.Frame(); got.X != 60 || got.Width != 270 {
		t.Errorf("alert frame = %+v, want X 60 width 270", got)
	}

	f.advance(100 * time.Millisecond)
	if root.Opacity() <= 0 || root.Opacity() >= 1 {
		t.Errorf("opacity mid-transition = %v", root.Opacity())
	}
	if pc.Dimming().Opacity() != root.Opacity() {
		t.Errorf("dimming opacity %v should track view opacity %v", pc.Dimming().Opacity(), root.Opacity())
	}

	f.advance(DefaultTransitionDuration)
	if f.presenter.State() != StatePresented {
		t.Fatalf("State() = %v, want presented", f.presenter.State())
	}
	if len(presented) != 1 || !presented[0] {
		t.Errorf("present completions = %v, want [true]", presented)
	}
	if root.Scale() != 1 || root.Opacity() != 1 || pc.Dimming().Opacity() != 1 {
		t.Errorf("presented scale/opacity/dimming = %v/%v/%v", root.Scale(), root.Opacity(), pc.Dimming().Opacity())
	}

	var dismissed []bool
	if err := f.presenter.Dismiss(func(ok bool) { dismissed = append(dismissed, ok) }); err != nil {
		t.Fatalf("Dismiss() error = %v", err)
	}
	f.advance(100 * time.Millisecond)
	if pc.Dimming().Opacity() <= 0 || pc.Dimming().Opacity() >= 1 {
		t.Errorf("dimming should fade with the dismissal, opacity %v", pc.Dimming().Opacity())
	}

	f.advance(DefaultTransitionDuration)
	if f.presenter.State() != StateIdle || f.presenter.Session() != nil {
		t.Errorf("State() = %v, want idle without a session", f.presenter.State())
	}
	if len(dismissed) != 1 || !dismissed[0] {
		t.Errorf("dismiss completions = %v, want [true]", dismissed)
	}
	if pc.Dimming().IsInserted() || root.Parent() != nil {
		t.Error("dimming and view should be removed")
	}
	if f.presenter.Container().HasChildren() {
		t.Errorf("container still has %d children", len(f.presenter.Container().Children()))
	}

	want := []State{StatePresenting, StatePresented, StateDismissing, StateIdle}
	if len(states) != len(want) {
		t.Fatalf("states = %v, want %v", states, want)
	}
	for i := range want {
		if states[i] != want[i] {
			t.Errorf("states[%d] = %v, want %v", i, states[i], want[i])
		}
	}
}

func TestDismissInterruptsPresentation(t *testing.T) {
	f := newFixture(t, alert.KindAlert)
	var presented, dismissed []bool
	pc := f.present(t, 0, func(ok bool) { presented = append(presented, ok) })
	root := f.view.Root()

	f.advance(100 * time.Millisecond)
	if err := f.presenter.Dismiss(func(ok bool) { dismissed = append(dismissed, ok) }); err != nil {
		t.Fatalf("Dismiss() error = %v", err)
	}

	if len(presented) != 1 || presented[0] {
		t.Errorf("present completions = %v, want [false]", presented)
	}
	if f.presenter.State() != StateDismissing {
		t.Errorf("State() = %v, want dismissing", f.presenter.State())
	}
	if root.Scale() != initialScale || root.Opacity() != 0 {
		t.Errorf("interrupted view = %v/%v, want %v/0", root.Scale(), root.Opacity(), initialScale)
	}
	if pc.Dimming().IsInserted() {
		t.Error("an unfinished presentation removes its dimming")
	}

	f.advance(DefaultTransitionDuration * 2)

	if len(presented) != 1 {
		t.Errorf("present completion called %d times", len(presented))
	}
	if len(dismissed) != 1 || !dismissed[0] {
		t.Errorf("dismiss completions = %v, want [true]", dismissed)
	}
	if root.Scale() != initialScale || root.Opacity() != 0 {
		t.Errorf("final view = %v/%v", root.Scale(), root.Opacity())
	}
	if f.presenter.State() != StateIdle {
		t.Errorf("State() = %v, want idle", f.presenter.State())
	}
}

func TestPresentInterruptsDismissal(t *testing.T) {
	f := newFixture(t, alert.KindAlert)
	f.present(t, 0, nil)
	f.advance(DefaultTransitionDuration)
	first := f.presenter.Session()

	var dismissed []bool
	if err := f.presenter.Dismiss(func(ok bool) { dismissed = append(dismissed, ok) }); err != nil {
		t.Fatal(err)
	}
	f.advance(50 * time.Millisecond)

	f.present(t, 0, nil)

	if len(dismissed) != 1 || dismissed[0] {
		t.Errorf("dismiss completions = %v, want [false]", dismissed)
	}
	if f.presenter.State() != StatePresenting {
		t.Errorf("State() = %v, want presenting", f.presenter.State())
	}
	if s := f.presenter.Session(); s == nil || s == first || s.ID == first.ID {
		t.Error("a new session should replace the interrupted one")
	}
	if f.view.Root().Parent() != f.presenter.Container() {
		t.Error("view should be back in the container")
	}
	if first.Controller.Dimming().IsInserted() {
		t.Error("the old session's dimming should be gone")
	}

	f.advance(DefaultTransitionDuration)
	if f.presenter.State() != StatePresented {
		t.Errorf("State() = %v, want presented", f.presenter.State())
	}
	if len(dismissed) != 1 {
		t.Errorf("dismiss completion called %d times", len(dismissed))
	}
}

func TestActionSheetSlide(t *testing.T) {
	f := newFixture(t, alert.KindActionSheet, alert.NewAction("Cancel", alert.ActionPreferred, nil))
	pc := f.present(t, 0, nil)
	root := f.view.Root()

	// Title section 46.6, no primary rows, 8pt gap, one 57pt row, 13pt
	// corner radius.
	frame := root.Frame()
	if frame.X != 10 || frame.Width != 370 || !approx(frame.MaxY(), 844) {
		t.Errorf("sheet frame = %+v, want X 10 width 370 bottom 844", frame)
	}
	if !approx(frame.Height, 124.6) {
		t.Errorf("sheet height = %v, want 124.6", frame.Height)
	}
	if pc.Dimming().Opacity() != 1 {
		t.Errorf("dimming opacity = %v, want 1 without a custom animator", pc.Dimming().Opacity())
	}
	if got := root.TranslateY(); !approx(got, frame.Height) {
		t.Errorf("initial TranslateY = %v, want %v", got, frame.Height)
	}

	f.advance(DefaultTransitionDuration)
	if root.TranslateY() != 0 || f.presenter.State() != StatePresented {
		t.Errorf("after slide: TranslateY %v, state %v", root.TranslateY(), f.presenter.State())
	}

	if err := f.presenter.Dismiss(nil); err != nil {
		t.Fatal(err)
	}
	f.advance(100 * time.Millisecond)
	if pc.Dimming().Opacity() != 1 {
		t.Errorf("dimming should hold during a slide dismissal, got %v", pc.Dimming().Opacity())
	}
	f.advance(DefaultTransitionDuration)
	if pc.Dimming().IsInserted() || f.presenter.State() != StateIdle {
		t.Error("dismissal should remove the dimming and end idle")
	}
}

func TestDimmingCoversScreen(t *testing.T) {
	for _, kind := range []alert.Kind{alert.KindAlert, alert.KindActionSheet} {
		t.Run(kind.String(), func(t *testing.T) {
			f := newFixture(t, kind)
			pc := f.present(t, 0, nil)

			want := retained.Bounds{Width: testScreen.Width, Height: testScreen.Height}
			if got := pc.Dimming().Widget().Frame(); got != want {
				t.Errorf("dimming frame at presentation start = %+v, want %+v", got, want)
			}

			f.advance(DefaultTransitionDuration)
			d := retained.NewEventDispatcher(f.presenter.Container())
			hit := d.HitTest(100, 100)
			if hit == nil || hit.Widget != pc.Dimming().Widget() {
				t.Errorf("HitTest(100, 100) = %+v, want the dimming overlay", hit)
			}
		})
	}
}

func TestPresenterErrors(t *testing.T) {
	f := newFixture(t, alert.KindAlert)
	p := f.presenter

	if err := p.Dismiss(nil); !errors.Is(err, ErrNotPresented) {
		t.Errorf("Dismiss() while idle = %v, want ErrNotPresented", err)
	}
	if err := p.Present(nil, NewTransition(f.style, 0), nil); !errors.Is(err, ErrNoView) {
		t.Errorf("Present(nil) = %v, want ErrNoView", err)
	}

	f.present(t, 0, nil)
	if err := p.Present(f.view, NewTransition(f.style, 0), nil); !errors.Is(err, ErrAlreadyPresented) {
		t.Errorf("Present() while presenting = %v, want ErrAlreadyPresented", err)
	}
	f.advance(DefaultTransitionDuration)
	if err := p.Present(f.view, NewTransition(f.style, 0), nil); !errors.Is(err, ErrAlreadyPresented) {
		t.Errorf("Present() while presented = %v, want ErrAlreadyPresented", err)
	}

	if err := p.Dismiss(nil); err != nil {
		t.Fatal(err)
	}
	if err := p.Dismiss(nil); !errors.Is(err, ErrNotPresented) {
		t.Errorf("Dismiss() while dismissing = %v, want ErrNotPresented", err)
	}
}

func TestTapOutsideToDismiss(t *testing.T) {
	tests := []struct {
		name      string
		behaviors alert.Behaviors
		want      State
	}{
		{"enabled", alert.BehaviorTapOutsideToDismiss, StateDismissing},
		{"disabled", 0, StatePresented},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, alert.KindActionSheet)
			f.present(t, tt.behaviors, nil)
			f.advance(DefaultTransitionDuration)

			d := retained.NewEventDispatcher(f.presenter.Container())
			d.Dispatch(retained.PointerEvent{Phase: retained.PointerDown, X: 100, Y: 100})
			d.Dispatch(retained.PointerEvent{Phase: retained.PointerUp, X: 100, Y: 100})

			if got := f.presenter.State(); got != tt.want {
				t.Errorf("State() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetScreenRelayouts(t *testing.T) {
	f := newFixture(t, alert.KindAlert)
	f.present(t, 0, nil)

	f.presenter.SetScreen(retained.Screen{Width: 600, Height: 400})
	if got := f.view.Root().Frame().X; got != 165 {
		t.Errorf("alert X after resize = %v, want 165", got)
	}
}
