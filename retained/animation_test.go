package retained

import (
	"testing"
	"time"
)

func newTestRegistry() (*AnimationRegistry, time.Time) {
	start := time.Unix(1700000000, 0)
	r := NewAnimationRegistry()
	r.SetClock(func() time.Time { return start })
	return r, start
}

func TestAnimationRunsToCompletion(t *testing.T) {
	r, start := newTestRegistry()
	w := Container().SetOpacity(0)

	completed := 0
	w.Animate(r).
		Duration(100 * time.Millisecond).
		Easing(EaseLinear).
		OnComplete(func() { completed++ }).
		OpacityFromTo(0, 1)

	if !r.Tick(start.Add(50 * time.Millisecond)) {
		t.Fatal("animation should still be active halfway")
	}
	if got := w.Opacity(); !approx(got, 0.5) {
		t.Errorf("opacity at half = %v, want 0.5", got)
	}
	if completed != 0 {
		t.Error("completed too early")
	}

	if r.Tick(start.Add(100 * time.Millisecond)) {
		t.Error("no animation should remain after the end")
	}
	if got := w.Opacity(); got != 1 {
		t.Errorf("final opacity = %v, want 1", got)
	}

	r.Tick(start.Add(200 * time.Millisecond))
	if completed != 1 {
		t.Errorf("completion called %d times, want 1", completed)
	}
}

func TestAnimationCancel(t *testing.T) {
	r, start := newTestRegistry()
	w := Container()

	completed := false
	anim := w.Animate(r).
		Duration(100 * time.Millisecond).
		OnComplete(func() { completed = true }).
		ScaleFromTo(1, 2)

	anim.Cancel()
	r.Tick(start.Add(time.Second))

	if completed {
		t.Error("cancelled animation must not complete")
	}
	if w.Scale() != 1 {
		t.Errorf("cancelled animation updated scale to %v", w.Scale())
	}
	if r.Count() != 0 {
		t.Errorf("cancelled animation still registered (%d)", r.Count())
	}
}

func TestAnimationActiveChange(t *testing.T) {
	r, start := newTestRegistry()
	var changes []bool
	r.OnActiveChange(func(active bool) { changes = append(changes, active) })

	Container().Animate(r).Duration(10 * time.Millisecond).TranslateYFromTo(10, 0)
	r.Tick(start.Add(20 * time.Millisecond))

	if len(changes) != 2 || !changes[0] || changes[1] {
		t.Errorf("active changes = %v, want [true false]", changes)
	}
}

func TestCompletionMayStartAnimation(t *testing.T) {
	r, start := newTestRegistry()
	w := Container()

	w.Animate(r).
		Duration(10 * time.Millisecond).
		OnComplete(func() {
			w.Animate(r).Duration(10 * time.Millisecond).OpacityFromTo(1, 0)
		}).
		ScaleFromTo(0.5, 1)

	if !r.Tick(start.Add(10 * time.Millisecond)) {
		t.Error("follow-up animation should be active")
	}
}

func TestActiveChangeWithFollowUp(t *testing.T) {
	r, start := newTestRegistry()
	var changes []bool
	r.OnActiveChange(func(active bool) { changes = append(changes, active) })

	w := Container()
	w.Animate(r).
		Duration(10 * time.Millisecond).
		OnComplete(func() {
			w.Animate(r).Duration(10 * time.Millisecond).OpacityFromTo(1, 0)
		}).
		ScaleFromTo(0.5, 1)

	r.Tick(start.Add(10 * time.Millisecond))
	if n := len(changes); n == 0 || !changes[n-1] {
		t.Fatalf("active changes = %v, want to end active", changes)
	}

	r.Tick(start.Add(time.Second))
	if n := len(changes); changes[n-1] {
		t.Errorf("active changes = %v, want to end inactive", changes)
	}
}

func TestEasingEndpoints(t *testing.T) {
	easings := map[string]EasingFunc{
		"linear":   EaseLinear,
		"outCubic": EaseOutCubic,
	}
	for name, fn := range easings {
		t.Run(name, func(t *testing.T) {
			if got := fn(0); got != 0 {
				t.Errorf("f(0) = %v, want 0", got)
			}
			if got := fn(1); got != 1 {
				t.Errorf("f(1) = %v, want 1", got)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0.9, 1, 0.5); !approx(got, 0.95) {
		t.Errorf("Lerp(0.9, 1, 0.5) = %v, want 0.95", got)
	}
}
