package graphnode

import (
	"testing"

	"github.com/go-drift/nodegraph/pkg/errors"
	"github.com/go-drift/nodegraph/pkg/focus"
	"github.com/go-drift/nodegraph/pkg/semantics"
	"github.com/go-drift/nodegraph/pkg/theme"
)

// flatTheme has no margins, no separation and no port offset.
func flatTheme(separation int) *theme.GraphNodeThemeData {
	t := &theme.GraphNodeThemeData{Separation: separation}
	return t.Resolve()
}

func newTestNode(t *testing.T, separation int, children ...Child) *GraphNode {
	t.Helper()
	n := New("node",
		WithTitle("Title"),
		WithTheme(flatTheme(separation)),
		WithTitlebar(NewBox("titlebar", 0, 0)),
		WithFocusManager(focus.NewFocusManager()),
		WithSemantics(&semantics.SemanticsBinding{}),
	)
	for _, c := range children {
		n.AddChild(c)
	}
	return n
}

func collectErrors(t *testing.T) *errors.Collector {
	t.Helper()
	c := &errors.Collector{}
	errors.SetHandler(c)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return c
}

type connectCall struct {
	start   bool
	inPort  int
	outPort int
}

type fakeSurface struct {
	connecting  bool
	calls       []connectCall
	forcedEnds  int
	inputs      map[int]focus.Focusable
	outputs     map[int]focus.Focusable
	typeNames   map[int]string
	connections map[int]string
}

func (s *fakeSurface) IsKeyboardConnecting() bool { return s.connecting }

func (s *fakeSurface) StartKeyboardConnecting(_ *GraphNode, inPort, outPort int) {
	s.calls = append(s.calls, connectCall{start: true, inPort: inPort, outPort: outPort})
	s.connecting = true
}

func (s *fakeSurface) EndKeyboardConnecting(_ *GraphNode, inPort, outPort int) {
	s.calls = append(s.calls, connectCall{inPort: inPort, outPort: outPort})
	s.connecting = false
}

func (s *fakeSurface) ForceConnectionDragEnd() {
	s.forcedEnds++
	s.connecting = false
}

func (s *fakeSurface) InputConnectionTarget(_ string, port int) focus.Focusable {
	if t, ok := s.inputs[port]; ok {
		return t
	}
	return nil
}

func (s *fakeSurface) OutputConnectionTarget(_ string, port int) focus.Focusable {
	if t, ok := s.outputs[port]; ok {
		return t
	}
	return nil
}

func (s *fakeSurface) TypeNames() map[int]string { return s.typeNames }

func (s *fakeSurface) ConnectionsDescription(_ string, port int, output bool) string {
	if output {
		port += 100
	}
	return s.connections[port]
}

func TestNewDefaults(t *testing.T) {
	n := New("")
	if n.Name == "" {
		t.Error("empty name should be replaced")
	}
	if n.SelectedSlot() != -1 {
		t.Errorf("SelectedSlot = %d, want -1", n.SelectedSlot())
	}
	if n.SlotsFocusMode() != focus.ModeAccessibility {
		t.Errorf("SlotsFocusMode = %v, want accessibility", n.SlotsFocusMode())
	}
	if !n.NeedsLayout() || !n.NeedsPaint() || !n.NeedsSemanticsUpdate() {
		t.Error("new node should need layout, paint and semantics")
	}
}

func TestSetSlotsFocusModeRejectsNone(t *testing.T) {
	c := collectErrors(t)
	n := newTestNode(t, 0)
	if err := n.SetSlotsFocusMode(focus.ModeNone); err == nil {
		t.Fatal("expected error")
	}
	if c.Last() == nil || c.Last().Kind != errors.KindProperty {
		t.Errorf("reported %v, want property error", c.Last())
	}
	if n.SlotsFocusMode() != focus.ModeAccessibility {
		t.Error("mode changed after rejected value")
	}
}

func TestSetSlotsFocusModeClickClearsSelection(t *testing.T) {
	n := newTestNode(t, 0, NewBox("a", 10, 10))
	n.SetSlotsFocusMode(focus.ModeAll)
	n.Resort(n.MinimumSize())
	n.HandleKeyEvent(focus.Press(focus.ActionDown))
	if n.SelectedSlot() != 0 {
		t.Fatalf("SelectedSlot = %d, want 0", n.SelectedSlot())
	}
	n.SetSlotsFocusMode(focus.ModeClick)
	if n.SelectedSlot() != -1 {
		t.Errorf("SelectedSlot = %d, want -1", n.SelectedSlot())
	}
}

func TestChildrenChangesInvalidatePorts(t *testing.T) {
	n := newTestNode(t, 0, NewBox("a", 10, 10))
	n.SetSlotEnabledLeft(1, true)
	if got := n.InputPortCount(); got != 0 {
		t.Fatalf("InputPortCount = %d, want 0", got)
	}
	b := NewBox("b", 10, 10)
	n.AddChild(b)
	if got := n.InputPortCount(); got != 1 {
		t.Fatalf("after AddChild InputPortCount = %d, want 1", got)
	}
	b.Hidden = true
	n.ChildChanged()
	if got := n.InputPortCount(); got != 0 {
		t.Errorf("after hiding InputPortCount = %d, want 0", got)
	}
	if !n.RemoveChild(b) || n.RemoveChild(b) {
		t.Error("RemoveChild should succeed once")
	}
}

func TestRemoveChildDropsStaleSelection(t *testing.T) {
	a := NewBox("a", 10, 10)
	b := NewBox("b", 10, 10)
	n := newTestNode(t, 0, a, b)
	n.SetSlotsFocusMode(focus.ModeAll)
	n.Resort(n.MinimumSize())
	n.HandleKeyEvent(focus.Press(focus.ActionDown))
	n.HandleKeyEvent(focus.Press(focus.ActionDown))
	if n.SelectedSlot() != 1 {
		t.Fatalf("SelectedSlot = %d, want 1", n.SelectedSlot())
	}

	n.RemoveChild(b)
	if n.SlotCount() != 1 {
		t.Errorf("SlotCount = %d, want 1", n.SlotCount())
	}
	if n.SelectedSlot() != -1 {
		t.Errorf("SelectedSlot = %d, want -1", n.SelectedSlot())
	}

	n.AddChild(b)
	if n.SlotCount() != 2 {
		t.Errorf("after AddChild SlotCount = %d, want 2", n.SlotCount())
	}
}

func TestSetTitleMarksLayout(t *testing.T) {
	n := newTestNode(t, 0)
	n.Resort(n.MinimumSize())
	n.SetTitle("Other")
	if !n.NeedsLayout() {
		t.Error("title change should schedule layout")
	}
	if !n.LayoutIfNeeded() || n.LayoutIfNeeded() {
		t.Error("LayoutIfNeeded should run exactly once")
	}
}
