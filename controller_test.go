package alertsheet

import (
	"errors"
	"testing"
	"time"

	"github.com/agiangrant/alertsheet/alert"
	"github.com/agiangrant/alertsheet/presentation"
	"github.com/agiangrant/alertsheet/retained"
)

type harness struct {
	now       time.Time
	registry  *retained.AnimationRegistry
	presenter *presentation.Presenter
}

func newHarness() *harness {
	h := &harness{now: time.Unix(1700000000, 0)}
	h.registry = retained.NewAnimationRegistry()
	h.registry.SetClock(func() time.Time { return h.now })
	h.presenter = presentation.NewPresenter(retained.Screen{Width: 390, Height: 844}, h.registry)
	return h
}

func (h *harness) settle() {
	h.now = h.now.Add(presentation.DefaultTransitionDuration)
	h.registry.Tick(h.now)
}

func (h *harness) tap(x, y float32) {
	d := retained.NewEventDispatcher(h.presenter.Container())
	d.Dispatch(retained.PointerEvent{Phase: retained.PointerDown, X: x, Y: y})
	d.Dispatch(retained.PointerEvent{Phase: retained.PointerUp, X: x, Y: y})
}

func TestControllerDefaults(t *testing.T) {
	c := New("Title", "Message", alert.DefaultVisualStyle(alert.KindAlert))
	if c.Title() != "Title" || c.Message() != "Message" {
		t.Errorf("Title/Message = %q/%q", c.Title(), c.Message())
	}
	if c.Behaviors() != alert.BehaviorDragTap {
		t.Errorf("Behaviors() = %v, want drag-tap", c.Behaviors())
	}
	if c.View() != nil {
		t.Error("view should not be built before Present")
	}
	if c.ContentView() == nil || c.ContentView().HasChildren() {
		t.Error("content view should start empty")
	}
	if err := c.Dismiss(nil); !errors.Is(err, presentation.ErrNotPresented) {
		t.Errorf("Dismiss() before Present = %v, want ErrNotPresented", err)
	}
}

func TestControllerFreezesActions(t *testing.T) {
	h := newHarness()
	c := New("Title", "", alert.DefaultVisualStyle(alert.KindAlert))
	if err := c.AddAction(alert.NewAction("OK", alert.ActionNormal, nil)); err != nil {
		t.Fatalf("AddAction() error = %v", err)
	}
	if err := c.Present(h.presenter, nil); err != nil {
		t.Fatalf("Present() error = %v", err)
	}
	if err := c.AddAction(alert.NewAction("Late", alert.ActionNormal, nil)); !errors.Is(err, ErrFrozen) {
		t.Errorf("AddAction() after Present = %v, want ErrFrozen", err)
	}
	if len(c.Actions()) != 1 {
		t.Errorf("Actions() = %v, want one action", c.Actions())
	}
}

func TestControllerActionRunsAfterDismissal(t *testing.T) {
	h := newHarness()
	c := New("Warning", "", alert.DefaultVisualStyle(alert.KindAlert))

	var handled []string
	ok := alert.NewAction("OK", alert.ActionPreferred, func(a *alert.Action) {
		handled = append(handled, a.Title)
	})
	if err := c.AddAction(ok); err != nil {
		t.Fatal(err)
	}
	if err := c.Present(h.presenter, nil); err != nil {
		t.Fatal(err)
	}
	h.settle()

	row := c.View().(*alert.AlertView).Primary().ActionsView().Rows()[0]
	f := row.Frame()
	h.tap(f.X+f.Width/2, f.Y+f.Height/2)

	if h.presenter.State() != presentation.StateDismissing {
		t.Fatalf("State() = %v, want dismissing", h.presenter.State())
	}
	if len(handled) != 0 {
		t.Error("handler should wait for the dismissal to finish")
	}

	h.settle()
	if len(handled) != 1 || handled[0] != "OK" {
		t.Errorf("handled = %v, want [OK]", handled)
	}
	if h.presenter.State() != presentation.StateIdle {
		t.Errorf("State() = %v, want idle", h.presenter.State())
	}
}

func TestControllerRepresentsSameView(t *testing.T) {
	h := newHarness()
	c := New("", "", alert.DefaultVisualStyle(alert.KindActionSheet))
	c.SetBehaviors(alert.BehaviorTapOutsideToDismiss)
	if err := c.AddAction(alert.NewAction("Cancel", alert.ActionPreferred, nil)); err != nil {
		t.Fatal(err)
	}

	if err := c.Present(h.presenter, nil); err != nil {
		t.Fatal(err)
	}
	first := c.View()
	h.settle()

	// Backdrop tap dismisses.
	h.tap(100, 100)
	h.settle()
	if h.presenter.State() != presentation.StateIdle {
		t.Fatalf("State() = %v, want idle after tap outside", h.presenter.State())
	}

	if err := c.Present(h.presenter, nil); err != nil {
		t.Fatalf("second Present() error = %v", err)
	}
	if c.View() != first {
		t.Error("the built view should be reused")
	}
	if err := c.Present(h.presenter, nil); !errors.Is(err, presentation.ErrAlreadyPresented) {
		t.Errorf("Present() while presenting = %v, want ErrAlreadyPresented", err)
	}
}
