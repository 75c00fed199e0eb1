package graphnode

import (
	"slices"
	"testing"

	"github.com/go-drift/nodegraph/pkg/rendering"
)

func expandBox(label string, minHeight, ratio float64) *Box {
	b := NewBox(label, 10, minHeight)
	b.Expand = true
	b.Ratio = ratio
	return b
}

func TestResortThreeStretchingChildren(t *testing.T) {
	n := newTestNode(t, 10,
		expandBox("a", 50, 1),
		expandBox("b", 50, 1),
		expandBox("c", 50, 1),
	)
	rects := n.Resort(rendering.Size{Width: 100, Height: 120})

	want := []rendering.Rect{
		rendering.RectFromLTWH(0, 0, 100, 50),
		rendering.RectFromLTWH(0, 60, 100, 50),
		rendering.RectFromLTWH(0, 120, 100, 50),
	}
	if len(rects) != len(want) {
		t.Fatalf("got %d rects, want %d", len(rects), len(want))
	}
	for i := range want {
		if !rects[i].Equal(want[i]) {
			t.Errorf("rect %d = %+v, want %+v", i, rects[i], want[i])
		}
	}
	if got := n.SlotCenters(); !slices.Equal(got, []int{25, 85, 145}) {
		t.Errorf("SlotCenters = %v, want [25 85 145]", got)
	}
	if n.SlotCount() != 3 {
		t.Errorf("SlotCount = %d, want 3", n.SlotCount())
	}
}

func TestResortDemotesChildBelowMinimum(t *testing.T) {
	a := expandBox("a", 200, 1)
	b := expandBox("b", 10, 3)
	n := newTestNode(t, 0, a, b)
	rects := n.Resort(rendering.Size{Width: 80, Height: 300})

	if want := rendering.RectFromLTWH(0, 0, 80, 200); !rects[0].Equal(want) {
		t.Errorf("demoted child rect = %+v, want %+v", rects[0], want)
	}
	if want := rendering.RectFromLTWH(0, 200, 80, 100); !rects[1].Equal(want) {
		t.Errorf("stretching child rect = %+v, want %+v", rects[1], want)
	}
}

func TestResortStretchTerminatesAndRespectsMinimums(t *testing.T) {
	children := []Child{
		expandBox("a", 50, 1),
		expandBox("b", 50, 2),
		expandBox("c", 50, 3),
		NewBox("fixed", 10, 30),
	}
	for _, height := range []float64{0, 40, 100, 150, 400} {
		n := newTestNode(t, 4, children...)
		rects := n.Resort(rendering.Size{Width: 50, Height: height})
		for i, r := range rects {
			if minH := children[i].MinSize().Height; r.Height() < minH {
				t.Errorf("height %v: child %d height %v below minimum %v", height, i, r.Height(), minH)
			}
		}
	}
}

func TestResortIsIdempotent(t *testing.T) {
	n := newTestNode(t, 3, expandBox("a", 20, 1), NewBox("b", 10, 15), expandBox("c", 5, 2))
	n.SetSlotDrawStylebox(1, true)
	size := rendering.Size{Width: 120, Height: 200}

	first := n.Resort(size)
	centers := n.SlotCenters()
	second := n.Resort(size)
	if !slices.EqualFunc(first, second, rendering.Rect.Equal) {
		t.Errorf("rects changed: %v then %v", first, second)
	}
	if !slices.Equal(centers, n.SlotCenters()) {
		t.Errorf("centers changed: %v then %v", centers, n.SlotCenters())
	}
}

func TestResortAppliesThemeMargins(t *testing.T) {
	n := newTestNode(t, 2, NewBox("a", 10, 20), NewBox("b", 10, 20))
	n.Theme.Panel.Margins = rendering.EdgeInsets{Left: 5, Top: 7, Right: 3, Bottom: 1}
	n.Theme.Slot.Margins = rendering.EdgeInsets{Left: 4, Right: 6}
	n.SetSlotDrawStylebox(1, true)

	rects := n.Resort(rendering.Size{Width: 100, Height: 80})
	if want := rendering.RectFromLTWH(5, 7, 92, 20); !rects[0].Equal(want) {
		t.Errorf("rect 0 = %+v, want %+v", rects[0], want)
	}
	if want := rendering.RectFromLTWH(9, 29, 82, 20); !rects[1].Equal(want) {
		t.Errorf("rect 1 = %+v, want %+v", rects[1], want)
	}
}

func TestResortSkipsHiddenChildrenAndResetsSelection(t *testing.T) {
	a, b := NewBox("a", 10, 10), NewBox("b", 10, 10)
	n := newTestNode(t, 0, a, b)
	n.Resort(rendering.Size{Width: 10, Height: 20})
	n.selectedSlot = 1

	b.Hidden = true
	n.ChildChanged()
	rects := n.Resort(rendering.Size{Width: 10, Height: 20})
	if len(rects) != 1 || n.SlotCount() != 1 {
		t.Fatalf("got %d rects, slot count %d, want 1", len(rects), n.SlotCount())
	}
	if n.SelectedSlot() != -1 {
		t.Errorf("SelectedSlot = %d, want -1", n.SelectedSlot())
	}
}

func TestResortSideEffects(t *testing.T) {
	n := newTestNode(t, 0, NewBox("a", 10, 10))
	changed := 0
	n.OnSlotSizesChanged = func() { changed++ }
	n.ports.get()
	n.ClearNeedsPaint()
	n.ClearNeedsSemanticsUpdate()

	n.Resort(rendering.Size{Width: 10, Height: 10})
	if changed != 1 {
		t.Errorf("OnSlotSizesChanged calls = %d, want 1", changed)
	}
	if !n.ports.isDirty() || !n.NeedsPaint() || !n.NeedsSemanticsUpdate() {
		t.Error("Resort should invalidate ports and request paint and semantics")
	}
}

func TestResortEmptyNode(t *testing.T) {
	n := newTestNode(t, 5)
	if rects := n.Resort(rendering.Size{}); len(rects) != 0 {
		t.Errorf("got %d rects for empty node", len(rects))
	}
	if n.SlotCount() != 0 {
		t.Errorf("SlotCount = %d, want 0", n.SlotCount())
	}
}

func TestMinimumSize(t *testing.T) {
	n := newTestNode(t, 4, NewBox("a", 30, 10), NewBox("b", 50, 20))
	n.Theme.Panel.Margins = rendering.EdgeInsetsAll(2)
	n.Theme.Slot.Margins = rendering.EdgeInsets{Left: 1, Top: 3, Right: 1, Bottom: 3}
	n.SetSlotDrawStylebox(0, true)

	// Width: max(30+4+2, 50+4). Height: 16 + 20 + 4 separation + 4 panel.
	want := rendering.Size{Width: 54, Height: 44}
	if got := n.MinimumSize(); got != want {
		t.Errorf("MinimumSize = %+v, want %+v", got, want)
	}
}

func TestSlotEditsScheduleLayout(t *testing.T) {
	a := NewBox("a", 100, 10)
	b := NewBox("b", 100, 10)
	n := newTestNode(t, 0, a, b)
	n.Theme.Slot.Margins = rendering.EdgeInsets{Top: 5, Bottom: 5}
	n.Resize(rendering.Size{Width: 100, Height: 40})
	n.LayoutIfNeeded()
	if b.Rect().Top != 10 {
		t.Fatalf("b top = %v, want 10", b.Rect().Top)
	}

	white := rendering.ColorWhite
	if err := n.SetSlot(0, true, 1, white, false, 0, white, nil, nil, true); err != nil {
		t.Fatal(err)
	}
	if !n.NeedsLayout() || !n.LayoutIfNeeded() {
		t.Fatal("SetSlot should schedule a layout pass")
	}
	if b.Rect().Top != 20 {
		t.Errorf("after SetSlot b top = %v, want 20", b.Rect().Top)
	}
	if got := n.SlotCenters(); !slices.Equal(got, []int{10, 25}) {
		t.Errorf("SlotCenters = %v, want [10 25]", got)
	}

	n.ClearSlot(0)
	if !n.LayoutIfNeeded() {
		t.Fatal("ClearSlot should schedule a layout pass")
	}
	if b.Rect().Top != 10 {
		t.Errorf("after ClearSlot b top = %v, want 10", b.Rect().Top)
	}

	if _, err := n.Set("slot/1/draw_stylebox", true); err != nil {
		t.Fatal(err)
	}
	if !n.NeedsLayout() {
		t.Error("draw_stylebox property should schedule a layout pass")
	}
	n.LayoutIfNeeded()
	n.ClearAllSlots()
	if !n.NeedsLayout() {
		t.Error("ClearAllSlots should schedule a layout pass")
	}
}
