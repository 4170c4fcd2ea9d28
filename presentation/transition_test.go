package presentation

import (
	"testing"
	"time"

	"github.com/agiangrant/alertsheet/alert"
	"github.com/agiangrant/alertsheet/retained"
)

func TestPlanFor(t *testing.T) {
	tests := []struct {
		name string
		kind alert.Kind
		want Plan
	}{
		{"alert", alert.KindAlert, Plan{DimmingColor: 0x66, Presentation: AnimatorPresenting, Dismissal: AnimatorDismissing}},
		{"action sheet", alert.KindActionSheet, Plan{DimmingColor: 0x66, Presentation: AnimatorNone, Dismissal: AnimatorNone}},
		{"other kind", alert.Kind(7), Plan{DimmingColor: 0x66, Presentation: AnimatorPresenting, Dismissal: AnimatorNone}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlanFor(tt.kind, 0x66); got != tt.want {
				t.Errorf("PlanFor(%v) = %+v, want %+v", tt.kind, got, tt.want)
			}
		})
	}
}

func TestTransitionAnimators(t *testing.T) {
	alertT := NewTransition(alert.DefaultVisualStyle(alert.KindAlert), 0)
	if ac := alertT.AnimationControllerForPresented(); ac == nil || !ac.IsPresenting() || ac.Kind() != AnimatorPresenting {
		t.Errorf("alert presenting animator = %+v", ac)
	}
	if ac := alertT.AnimationControllerForDismissed(); ac == nil || ac.IsPresenting() || ac.Kind() != AnimatorDismissing {
		t.Errorf("alert dismissing animator = %+v", ac)
	}

	sheetT := NewTransition(alert.DefaultVisualStyle(alert.KindActionSheet), 0)
	if sheetT.AnimationControllerForPresented() != nil || sheetT.AnimationControllerForDismissed() != nil {
		t.Error("action sheets use the default slide in both directions")
	}

	pc := alertT.PresentationController()
	if pc.Dimming().Color() != alertT.Style().DimmingColor {
		t.Errorf("dimming color = %#x, want %#x", pc.Dimming().Color(), alertT.Style().DimmingColor)
	}
}

// testClock is a manually advanced time source for an animation registry.
type testClock struct {
	now time.Time
}

func newTestClock(r *retained.AnimationRegistry) *testClock {
	c := &testClock{now: time.Unix(1700000000, 0)}
	r.SetClock(func() time.Time { return c.now })
	return c
}

// advance moves the clock forward and ticks the registry.
func (c *testClock) advance(r *retained.AnimationRegistry, d time.Duration) {
	c.now = c.now.Add(d)
	r.Tick(c.now)
}

func TestAnimationControllerPresenting(t *testing.T) {
	r := retained.NewAnimationRegistry()
	clock := newTestClock(r)
	view := retained.Container()
	ctx := newTransitionContext(retained.Container(), view, r, true, true)

	var progress []float64
	ctx.AnimateAlongside(func(p float64) { progress = append(progress, p) })
	finished := 0
	ctx.onComplete(func(ok bool) {
		if ok {
			finished++
		}
	})

	ac := NewAnimationController(true)
	ac.Easing = retained.EaseLinear
	ac.AnimateTransition(ctx)

	if view.Scale() != initialScale || view.Opacity() != 0 {
		t.Errorf("start = %v/%v, want %v/0", view.Scale(), view.Opacity(), initialScale)
	}

	clock.advance(r, ac.TransitionDuration()/2)
	if got := view.Opacity(); got < 0.49 || got > 0.51 {
		t.Errorf("opacity halfway = %v, want 0.5", got)
	}
	if got := view.Scale(); got < 0.949 || got > 0.951 {
		t.Errorf("scale halfway = %v, want 0.95", got)
	}

	clock.advance(r, ac.TransitionDuration())
	if view.Scale() != 1 || view.Opacity() != 1 {
		t.Errorf("end = %v/%v, want 1/1", view.Scale(), view.Opacity())
	}
	if finished != 1 || !ctx.IsCompleted() {
		t.Errorf("finished = %d, want 1", finished)
	}
	if len(progress) != 2 || progress[1] != 1 {
		t.Errorf("alongside progress = %v", progress)
	}
}

func TestAnimationControllerDismissingStartsFromCurrent(t *testing.T) {
	r := retained.NewAnimationRegistry()
	clock := newTestClock(r)
	view := retained.Container().SetScale(0.95).SetOpacity(0.5)
	ctx := newTransitionContext(retained.Container(), view, r, false, true)

	ac := NewAnimationController(false)
	ac.Easing = retained.EaseLinear
	ac.AnimateTransition(ctx)

	clock.advance(r, ac.TransitionDuration()/2)
	if got := view.Opacity(); got < 0.249 || got > 0.251 {
		t.Errorf("opacity halfway = %v, want 0.25", got)
	}

	clock.advance(r, ac.TransitionDuration())
	if view.Scale() != initialScale || view.Opacity() != 0 {
		t.Errorf("end = %v/%v, want %v/0", view.Scale(), view.Opacity(), initialScale)
	}
}

func TestApplyFinalState(t *testing.T) {
	view := retained.Container().SetScale(0.95).SetOpacity(0.3)
	ctx := newTransitionContext(retained.Container(), view, retained.NewAnimationRegistry(), false, true)

	NewAnimationController(false).ApplyFinalState(ctx)
	if view.Scale() != initialScale || view.Opacity() != 0 {
		t.Errorf("dismissed state = %v/%v", view.Scale(), view.Opacity())
	}
	NewAnimationController(true).ApplyFinalState(ctx)
	if view.Scale() != 1 || view.Opacity() != 1 {
		t.Errorf("presented state = %v/%v", view.Scale(), view.Opacity())
	}
}

func TestCompleteTransitionOnce(t *testing.T) {
	ctx := newTransitionContext(retained.Container(), retained.Container(), retained.NewAnimationRegistry(), true, false)
	var calls []bool
	ctx.onComplete(func(finished bool) { calls = append(calls, finished) })

	ctx.CompleteTransition(false)
	ctx.CompleteTransition(true)

	if len(calls) != 1 || calls[0] {
		t.Errorf("completions = %v, want [false]", calls)
	}
}

func TestDimmingOverlay(t *testing.T) {
	container := retained.Container(retained.Container())
	d := NewDimmingOverlay(0x00000066)

	d.Insert(container)
	if !d.IsInserted() || container.Children()[0] != d.Widget() {
		t.Fatal("overlay should be inserted behind existing children")
	}
	if d.Opacity() != 0 {
		t.Errorf("inserted opacity = %v, want 0", d.Opacity())
	}

	retained.Solve(container, 390, 844)
	if got := d.Widget().Frame(); got != (retained.Bounds{Width: 390, Height: 844}) {
		t.Errorf("overlay frame = %+v, want full screen", got)
	}

	d.Remove()
	d.Remove()
	if d.IsInserted() || d.Widget().Parent() != nil {
		t.Error("overlay should be detached")
	}
	if len(container.Children()) != 1 {
		t.Errorf("container children = %d, want 1", len(container.Children()))
	}
	if n := len(d.Widget().Constraints()); n != 0 {
		t.Errorf("removed overlay keeps %d constraints, want 0", n)
	}
}
