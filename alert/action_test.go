package alert

import (
	"reflect"
	"testing"
)

func TestExtractCancelAction(t *testing.T) {
	n1 := NewAction("One", ActionNormal, nil)
	n2 := NewAction("Two", ActionNormal, nil)
	p1 := NewAction("Cancel", ActionPreferred, nil)
	p2 := NewAction("Other", ActionPreferred, nil)
	d := NewAction("Delete", ActionDestructive, nil)

	tests := []struct {
		name       string
		actions    []*Action
		wantCancel *Action
		wantRest   []*Action
	}{
		{"empty", nil, nil, nil},
		{"single", []*Action{n1}, n1, []*Action{}},
		{"no preferred takes first", []*Action{n1, d, n2}, n1, []*Action{d, n2}},
		{"preferred in the middle", []*Action{n1, p1, n2}, p1, []*Action{n1, n2}},
		{"first preferred wins", []*Action{n1, p2, p1}, p2, []*Action{n1, p1}},
		{"preferred last", []*Action{d, n1, p1}, p1, []*Action{d, n1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := append([]*Action(nil), tt.actions...)
			cancel, rest := ExtractCancelAction(tt.actions)
			if cancel != tt.wantCancel {
				t.Errorf("cancel = %v, want %v", cancel, tt.wantCancel)
			}
			if !reflect.DeepEqual(rest, tt.wantRest) {
				t.Errorf("rest = %v, want %v", rest, tt.wantRest)
			}
			if !reflect.DeepEqual(tt.actions, input) {
				t.Error("input slice was modified")
			}
		})
	}
}

func TestActionStyleString(t *testing.T) {
	tests := []struct {
		style ActionStyle
		want  string
	}{
		{ActionNormal, "normal"},
		{ActionPreferred, "preferred"},
		{ActionDestructive, "destructive"},
		{ActionStyle(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.style.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestBehaviorsContains(t *testing.T) {
	b := BehaviorDragTap | BehaviorTapOutsideToDismiss
	if !b.Contains(BehaviorDragTap) || !b.Contains(BehaviorTapOutsideToDismiss) {
		t.Error("combined behaviors should contain both flags")
	}
	if Behaviors(0).Contains(BehaviorDragTap) {
		t.Error("empty behaviors should contain nothing")
	}
}
