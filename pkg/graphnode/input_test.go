package graphnode

import (
	"testing"

	"github.com/go-drift/nodegraph/pkg/focus"
	"github.com/go-drift/nodegraph/pkg/rendering"
)

// newInteractiveNode returns a laid out node with two slots: slot 0 has an
// input port, slot 1 an output port.
func newInteractiveNode(t *testing.T) (*GraphNode, *fakeSurface) {
	t.Helper()
	surface := &fakeSurface{}
	n := newTestNode(t, 0, NewBox("a", 10, 10), NewBox("b", 10, 10))
	n.Surface = surface
	n.SetSlotsFocusMode(focus.ModeAll)
	n.SetSlotEnabledLeft(0, true)
	n.SetSlotEnabledRight(1, true)
	n.Resort(rendering.Size{Width: 50, Height: 20})
	return n, surface
}

func TestMoveSelection(t *testing.T) {
	n, _ := newInteractiveNode(t)

	tests := []struct {
		action    focus.Action
		selection int
		result    focus.KeyEventResult
	}{
		{focus.ActionDown, 0, focus.KeyEventHandled},
		{focus.ActionUp, -1, focus.KeyEventIgnored},
		{focus.ActionDown, 0, focus.KeyEventHandled},
		{focus.ActionDown, 1, focus.KeyEventHandled},
		{focus.ActionDown, -1, focus.KeyEventIgnored},
		{focus.ActionUp, -1, focus.KeyEventIgnored},
	}
	for i, tt := range tests {
		got := n.HandleKeyEvent(focus.Press(tt.action))
		if got != tt.result || n.SelectedSlot() != tt.selection {
			t.Errorf("step %d %v: result %v selection %d, want %v %d",
				i, tt.action, got, n.SelectedSlot(), tt.result, tt.selection)
		}
	}
}

func TestMoveSelectionGatedByFocusMode(t *testing.T) {
	n, _ := newInteractiveNode(t)
	n.SetSlotsFocusMode(focus.ModeAccessibility)

	if got := n.HandleKeyEvent(focus.Press(focus.ActionDown)); got != focus.KeyEventIgnored || n.SelectedSlot() != -1 {
		t.Errorf("without accessibility: result %v selection %d", got, n.SelectedSlot())
	}
	n.Semantics.SetEnabled(true)
	if got := n.HandleKeyEvent(focus.Press(focus.ActionDown)); got != focus.KeyEventHandled || n.SelectedSlot() != 0 {
		t.Errorf("with accessibility: result %v selection %d", got, n.SelectedSlot())
	}

	n.SetSlotsFocusMode(focus.ModeClick)
	if got := n.HandleKeyEvent(focus.Press(focus.ActionDown)); got != focus.KeyEventIgnored || n.SelectedSlot() != -1 {
		t.Errorf("click mode: result %v selection %d", got, n.SelectedSlot())
	}
}

func TestIgnoredWithoutPressOrSlots(t *testing.T) {
	n, _ := newInteractiveNode(t)
	if got := n.HandleKeyEvent(focus.KeyEvent{Action: focus.ActionDown}); got != focus.KeyEventIgnored || n.SelectedSlot() != -1 {
		t.Error("released key should be ignored")
	}

	empty := newTestNode(t, 0)
	empty.SetSlotsFocusMode(focus.ModeAll)
	if got := empty.HandleKeyEvent(focus.Press(focus.ActionDown)); got != focus.KeyEventIgnored {
		t.Error("node without slots should ignore keys")
	}
}

func TestConnectToggles(t *testing.T) {
	n, surface := newInteractiveNode(t)
	n.HandleKeyEvent(focus.Press(focus.ActionDown))

	if got := n.HandleKeyEvent(focus.Press(focus.ActionLeft)); got != focus.KeyEventHandled {
		t.Fatalf("left: %v, want handled", got)
	}
	if got := n.HandleKeyEvent(focus.Press(focus.ActionLeft)); got != focus.KeyEventHandled {
		t.Fatalf("second left: %v, want handled", got)
	}
	want := []connectCall{{start: true, inPort: 0, outPort: -1}, {inPort: 0, outPort: -1}}
	if len(surface.calls) != 2 || surface.calls[0] != want[0] || surface.calls[1] != want[1] {
		t.Errorf("calls = %+v, want %+v", surface.calls, want)
	}

	if got := n.HandleKeyEvent(focus.Press(focus.ActionRight)); got != focus.KeyEventIgnored {
		t.Errorf("right on slot without output: %v, want ignored", got)
	}

	n.HandleKeyEvent(focus.Press(focus.ActionDown))
	surface.calls = nil
	n.HandleKeyEvent(focus.Press(focus.ActionRight))
	if len(surface.calls) != 1 || surface.calls[0] != (connectCall{start: true, inPort: -1, outPort: 0}) {
		t.Errorf("right calls = %+v", surface.calls)
	}
}

func TestCancelAndDelete(t *testing.T) {
	n, surface := newInteractiveNode(t)

	if got := n.HandleKeyEvent(focus.Press(focus.ActionCancel)); got != focus.KeyEventIgnored {
		t.Errorf("cancel while idle: %v, want ignored", got)
	}
	surface.connecting = true
	if got := n.HandleKeyEvent(focus.Press(focus.ActionCancel)); got != focus.KeyEventHandled || surface.forcedEnds != 1 {
		t.Errorf("cancel while connecting: %v, forced ends %d", got, surface.forcedEnds)
	}

	surface.connecting = true
	if got := n.HandleKeyEvent(focus.Press(focus.ActionGraphDelete)); got != focus.KeyEventHandled {
		t.Errorf("delete while connecting: %v, want handled", got)
	}
	if len(surface.calls) != 1 || surface.calls[0] != (connectCall{inPort: -1, outPort: -1}) {
		t.Errorf("delete calls = %+v", surface.calls)
	}
	if got := n.HandleKeyEvent(focus.Press(focus.ActionGraphDelete)); got != focus.KeyEventIgnored {
		t.Errorf("delete while idle: %v, want ignored", got)
	}
}

func TestFollowConnection(t *testing.T) {
	n, surface := newInteractiveNode(t)
	manager := n.Focus.Manager
	target := focus.NewFocusNode("target", manager)
	surface.outputs = map[int]focus.Focusable{0: target}

	n.HandleKeyEvent(focus.Press(focus.ActionDown))
	if got := n.HandleKeyEvent(focus.Press(focus.ActionGraphFollowLeft)); got != focus.KeyEventIgnored {
		t.Errorf("follow left without target: %v, want ignored", got)
	}

	n.HandleKeyEvent(focus.Press(focus.ActionDown))
	if got := n.HandleKeyEvent(focus.Press(focus.ActionGraphFollowRight)); got != focus.KeyEventHandled {
		t.Fatalf("follow right: %v, want handled", got)
	}
	if !target.HasFocus() {
		t.Error("target should have focus")
	}
	if len(surface.calls) != 0 {
		t.Errorf("follow should not touch connections, got %+v", surface.calls)
	}
}

func TestAcceptFocusesSlotChild(t *testing.T) {
	n, _ := newInteractiveNode(t)
	child := n.Children()[1].(*Box)
	child.Focus = focus.NewFocusNode("b", n.Focus.Manager)

	n.RequestFocus()
	n.HandleKeyEvent(focus.Press(focus.ActionDown))
	n.HandleKeyEvent(focus.Press(focus.ActionDown))
	if got := n.HandleKeyEvent(focus.Press(focus.ActionAccept)); got != focus.KeyEventHandled {
		t.Fatalf("accept: %v, want handled", got)
	}
	if !child.Focus.HasFocus() || n.HasFocus() {
		t.Error("focus should move to the slot child")
	}
	if n.SelectedSlot() != -1 {
		t.Errorf("SelectedSlot = %d, want -1", n.SelectedSlot())
	}
	if got := n.HandleKeyEvent(focus.Press(focus.ActionAccept)); got != focus.KeyEventIgnored {
		t.Errorf("accept without selection: %v, want ignored", got)
	}
}

func TestFocusLossClearsSelection(t *testing.T) {
	n, _ := newInteractiveNode(t)
	other := focus.NewFocusNode("other", n.Focus.Manager)

	n.RequestFocus()
	n.HandleKeyEvent(focus.Press(focus.ActionDown))
	other.RequestFocus()
	if n.SelectedSlot() != -1 {
		t.Errorf("SelectedSlot = %d, want -1 after focus loss", n.SelectedSlot())
	}
}

func TestSelectionResetWhenSlotsShrink(t *testing.T) {
	n, _ := newInteractiveNode(t)
	n.HandleKeyEvent(focus.Press(focus.ActionDown))
	n.HandleKeyEvent(focus.Press(focus.ActionDown))

	n.RemoveChild(n.Children()[1])
	n.InputPortCount()
	if n.SelectedSlot() != -1 {
		t.Errorf("SelectedSlot = %d, want -1", n.SelectedSlot())
	}
}

func TestPerformAccessibilityAction(t *testing.T) {
	n, surface := newInteractiveNode(t)
	target := focus.NewFocusNode("target", n.Focus.Manager)
	surface.inputs = map[int]focus.Focusable{0: target}

	if n.PerformAccessibilityAction(ActionConnectInput) {
		t.Error("no selection should do nothing")
	}
	n.HandleKeyEvent(focus.Press(focus.ActionDown))
	if !n.PerformAccessibilityAction(ActionConnectInput) || len(surface.calls) != 1 {
		t.Errorf("connect input calls = %+v", surface.calls)
	}
	if n.PerformAccessibilityAction(ActionConnectOutput) {
		t.Error("slot 0 has no output port")
	}
	if !n.PerformAccessibilityAction(ActionFollowInput) || !target.HasFocus() {
		t.Error("follow input should focus the target")
	}
}
