package retained

import "testing"

func TestWidgetCreation(t *testing.T) {
	tests := []struct {
		name     string
		widget   *Widget
		wantKind WidgetKind
	}{
		{"Container", Container(), KindContainer},
		{"VStack", VStack(), KindVStack},
		{"ScrollView", ScrollView(), KindScroll},
		{"Label", Label("Hello", Font{Size: 13}, 0xFFFFFFFF), KindLabel},
		{"Button", Button("OK", nil), KindButton},
		{"Effect", NewVisualEffectView(BlurEffect("regular")), KindEffect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.widget.Kind() != tt.wantKind {
				t.Errorf("Kind() = %v, want %v", tt.widget.Kind(), tt.wantKind)
			}
			if tt.widget.Opacity() != 1 || tt.widget.Scale() != 1 {
				t.Errorf("opacity/scale = %v/%v, want 1/1", tt.widget.Opacity(), tt.widget.Scale())
			}
		})
	}
}

func TestWidgetChildren(t *testing.T) {
	a, b, c := Container(), Container(), Container()
	parent := VStack(a, b)
	parent.InsertChild(0, c)

	children := parent.Children()
	if len(children) != 3 || children[0] != c || children[1] != a || children[2] != b {
		t.Fatalf("children order wrong: %v", children)
	}
	if len(parent.ArrangedChildren()) != 2 {
		t.Errorf("expected 2 arranged children, got %d", len(parent.ArrangedChildren()))
	}

	parent.RemoveChild(a)
	if a.Parent() != nil {
		t.Error("removed child should have no parent")
	}
	if got := parent.ArrangedChildren(); len(got) != 1 || got[0] != b {
		t.Errorf("arranged after removal = %v, want [b]", got)
	}
}

func TestAddChildMovesWidget(t *testing.T) {
	child := Container()
	first := Container(child)
	second := Container()

	second.AddChild(child)

	if first.HasChildren() {
		t.Error("child should have left its old parent")
	}
	if child.Parent() != second {
		t.Error("child parent should be the new container")
	}
}

func TestIsDescendant(t *testing.T) {
	leaf := Container()
	mid := Container(leaf)
	root := Container(mid)
	other := Container()

	if !leaf.IsDescendant(root) {
		t.Error("leaf should be a descendant of root")
	}
	if !leaf.IsDescendant(leaf) {
		t.Error("a widget counts as its own descendant")
	}
	if leaf.IsDescendant(other) {
		t.Error("leaf is not beneath other")
	}
}

func TestBackgroundColorUnsetByDefault(t *testing.T) {
	w := Container()
	if _, ok := w.BackgroundColor(); ok {
		t.Error("expected no background color")
	}
	w.SetBackgroundColor(0x112233FF)
	if c, ok := w.BackgroundColor(); !ok || c != 0x112233FF {
		t.Errorf("BackgroundColor() = %#x, %v", c, ok)
	}
}

func TestEffectViewContent(t *testing.T) {
	blur := BlurEffect("dark")
	blur.Tint = 0x10203040
	v := NewVisualEffectView(VibrancyEffect(blur))

	content := v.ContentView()
	if content == nil || content.Parent() != v {
		t.Fatal("effect view should own its content view")
	}
	if e := v.Effect(); e.Kind != EffectVibrancy || e.Style != "dark" || e.Tint != 0x10203040 {
		t.Errorf("vibrancy effect = %+v", e)
	}
	if Container().ContentView() != nil {
		t.Error("plain containers have no content view")
	}
}
