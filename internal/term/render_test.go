package term

import (
	"strings"
	"testing"

	"github.com/agiangrant/alertsheet/retained"
)

// scene solves root at 10x3 cells of the default 8x16 size.
func scene(root *retained.Widget) {
	retained.Solve(root, 80, 48)
}

func pinned(child *retained.Widget, root *retained.Widget) {
	root.AddChild(child)
	retained.Activate(retained.PinEdges(child, root)...)
}

func TestDrawBackground(t *testing.T) {
	root := retained.Container().SetBackgroundColor(0xFF0000FF)
	scene(root)

	g := NewRenderer(DefaultOptions()).Draw(root, 10, 3)
	for _, pt := range [][2]int{{0, 0}, {9, 2}, {5, 1}} {
		if got := g.At(pt[0], pt[1]).BG.Hex(); got != "#ff0000" {
			t.Errorf("cell %v background = %s, want #ff0000", pt, got)
		}
	}
}

func TestDrawSkipsInvisible(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*retained.Widget)
	}{
		{"hidden", func(w *retained.Widget) { w.SetHidden(true) }},
		{"transparent", func(w *retained.Widget) { w.SetOpacity(0) }},
	}
	backdrop := toColor(DefaultOptions().Backdrop).Hex()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := retained.Container()
			child := retained.Container().SetBackgroundColor(0xFF0000FF)
			pinned(child, root)
			tt.modify(child)
			scene(root)

			g := NewRenderer(DefaultOptions()).Draw(root, 10, 3)
			if got := g.At(0, 0).BG.Hex(); got != backdrop {
				t.Errorf("background = %s, want backdrop %s", got, backdrop)
			}
		})
	}
}

func TestDrawLabel(t *testing.T) {
	root := retained.Container()
	label := retained.Label("Hi", retained.Font{Size: 10}, 0xFFFFFFFF)
	root.AddChild(label)
	retained.Activate(
		label.LeadingAnchor().ConstraintEqualTo(root.LeadingAnchor(), 0),
		label.TrailingAnchor().ConstraintEqualTo(root.TrailingAnchor(), 0),
		label.TopAnchor().ConstraintEqualTo(root.TopAnchor(), 0),
	)
	scene(root)

	g := NewRenderer(DefaultOptions()).Draw(root, 10, 3)
	if got := g.Line(0); !strings.HasPrefix(got, "Hi") {
		t.Errorf("Line(0) = %q, want prefix Hi", got)
	}
}

func TestDrawButtonCentered(t *testing.T) {
	root := retained.Container()
	btn := retained.Button("OK", func() {}).SetFont(retained.Font{Size: 10})
	pinned(btn, root)
	scene(root)

	r := NewRenderer(DefaultOptions())
	g := r.Draw(root, 10, 3)
	if got := g.Line(1); got != "    OK    " {
		t.Errorf("Line(1) = %q, want centered OK", got)
	}

	btn.SetHighlighted(true)
	g = r.Draw(root, 10, 3)
	if got := g.At(0, 0).BG.Hex(); got != toColor(DefaultOptions().HighlightColor).Hex() {
		t.Errorf("highlighted background = %s", got)
	}
}

func TestDrawTranslate(t *testing.T) {
	root := retained.Container()
	child := retained.Container().SetBackgroundColor(0xFF0000FF)
	root.AddChild(child)
	retained.Activate(
		child.LeadingAnchor().ConstraintEqualTo(root.LeadingAnchor(), 0),
		child.TrailingAnchor().ConstraintEqualTo(root.TrailingAnchor(), 0),
		child.TopAnchor().ConstraintEqualTo(root.TopAnchor(), 0),
		child.HeightAnchor().ConstraintEqualToConstant(16),
	)
	scene(root)
	child.SetTranslateY(16)

	g := NewRenderer(DefaultOptions()).Draw(root, 10, 3)
	backdrop := toColor(DefaultOptions().Backdrop).Hex()
	if got := g.At(0, 0).BG.Hex(); got != backdrop {
		t.Errorf("row 0 = %s, want backdrop", got)
	}
	if got := g.At(0, 1).BG.Hex(); got != "#ff0000" {
		t.Errorf("row 1 = %s, want #ff0000", got)
	}
}

func TestMeasureTextWidth(t *testing.T) {
	opts := DefaultOptions()
	if got := opts.MeasureTextWidth("héllo", retained.Font{Size: 13}); got != 40 {
		t.Errorf("MeasureTextWidth = %v, want 40", got)
	}
}

func TestRenderLines(t *testing.T) {
	root := retained.Container()
	btn := retained.Button("OK", nil).SetFont(retained.Font{Size: 10})
	pinned(btn, root)
	scene(root)

	out := NewRenderer(Options{}).Render(root, 10, 3)
	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("rendered %d line breaks, want 2", n)
	}
	if !strings.Contains(out, "OK") {
		t.Error("rendered output should contain the button text")
	}
}
