package graphnode

import (
	"testing"

	"github.com/go-drift/nodegraph/pkg/rendering"
)

func TestSlotTablePrunesDefault(t *testing.T) {
	var table SlotTable
	table.Put(0, DefaultSlot())
	if table.Len() != 0 {
		t.Fatal("default slot must not be stored")
	}

	table.Update(2, func(s *Slot) { s.EnableLeft = true })
	if !table.Has(2) {
		t.Fatal("expected entry at 2")
	}
	table.Update(2, func(s *Slot) { s.EnableLeft = false })
	if table.Has(2) {
		t.Error("entry returning to default should be pruned")
	}
}

func TestSlotTableDrawStyleboxOnlyIsStored(t *testing.T) {
	var table SlotTable
	table.Update(1, func(s *Slot) { s.DrawStylebox = true })
	if !table.Has(1) {
		t.Error("draw_stylebox alone is not the default and should be stored")
	}
}

func TestSlotTableIndicesSorted(t *testing.T) {
	var table SlotTable
	for _, i := range []int{5, 1, 3} {
		table.Put(i, Slot{EnableRight: true, ColorLeft: rendering.ColorWhite, ColorRight: rendering.ColorWhite})
	}
	got := table.Indices()
	want := []int{1, 3, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Indices() = %v, want %v", got, want)
		}
	}
	table.Clear()
	if table.Len() != 0 {
		t.Error("Clear should remove all entries")
	}
}

func TestLookupAbsentReturnsDefault(t *testing.T) {
	var table SlotTable
	if got := table.Lookup(9); got != DefaultSlot() {
		t.Errorf("Lookup(absent) = %+v, want default", got)
	}
}
