package graphnode

import (
	"testing"

	"github.com/go-drift/nodegraph/pkg/focus"
	"github.com/go-drift/nodegraph/pkg/semantics"
)

func TestDescribeSemantics(t *testing.T) {
	n, surface := newInteractiveNode(t)
	surface.typeNames = map[int]string{0: "float"}
	surface.connections = map[int]string{100: "connected to other"}

	config := n.DescribeSemantics()
	if config.Role != semantics.SemanticsRoleList {
		t.Errorf("Role = %v, want list", config.Role)
	}
	if want := "graph node node (Title), has 2 slots"; config.Label != want {
		t.Errorf("Label = %q, want %q", config.Label, want)
	}
	for _, a := range []AccessibilityAction{ActionConnectInput, ActionConnectOutput, ActionFollowInput, ActionFollowOutput} {
		if !config.HasAction(int(a)) {
			t.Errorf("missing action %q", a)
		}
	}

	n.HandleKeyEvent(focus.Press(focus.ActionDown))
	if got, want := n.DescribeSemantics().Label, "graph node node (Title), slot 1 of 2, input port, type: float no connections"; got != want {
		t.Errorf("slot 1 label = %q, want %q", got, want)
	}

	surface.typeNames = nil
	surface.connecting = true
	n.AccessibilityName = "Mixer"
	n.HandleKeyEvent(focus.Press(focus.ActionDown))
	want := "graph node Mixer (Title), slot 2 of 2, output port, type: 0 connected to other, currently selecting target port"
	if got := n.DescribeSemantics().Label; got != want {
		t.Errorf("slot 2 label = %q, want %q", got, want)
	}
}

func TestDescribeSemanticsWithoutSurface(t *testing.T) {
	n := newTestNode(t, 0, NewBox("a", 1, 1))
	n.SetSlotsFocusMode(focus.ModeAll)
	n.SetSlot(0, true, 3, 0xffffffff, true, 4, 0xffffffff, nil, nil, false)
	n.HandleKeyEvent(focus.Press(focus.ActionDown))

	want := "graph node node (Title), slot 1 of 1, input port, type: 3, output port, type: 4"
	if got := n.DescribeSemantics().Label; got != want {
		t.Errorf("Label = %q, want %q", got, want)
	}
}

func TestAccessibilityContainerName(t *testing.T) {
	a, hidden, b := NewBox("a", 1, 1), NewBox("hidden", 1, 1), NewBox("b", 1, 1)
	hidden.Hidden = true
	n := newTestNode(t, 0, a, hidden, b)

	tests := []struct {
		child Child
		want  string
	}{
		{a, ", in slot 1 of graph node node (Title)"},
		{b, ", in slot 2 of graph node node (Title)"},
		{hidden, ""},
		{NewBox("stranger", 1, 1), ""},
	}
	for _, tt := range tests {
		if got := n.AccessibilityContainerName(tt.child); got != tt.want {
			t.Errorf("AccessibilityContainerName(%s) = %q, want %q", tt.child.(*Box).Label, got, tt.want)
		}
	}
}
