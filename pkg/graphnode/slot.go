package graphnode

import (
	"slices"

	"github.com/go-drift/nodegraph/pkg/rendering"
)

// Slot holds the port configuration of one slot.
type Slot struct {
	EnableLeft bool
	TypeLeft   int
	ColorLeft  rendering.Color
	// IconLeft overrides the theme port icon. Nil uses the theme icon.
	IconLeft *rendering.Texture

	EnableRight bool
	TypeRight   int
	ColorRight  rendering.Color
	IconRight   *rendering.Texture

	// DrawStylebox draws the theme slot panel behind the slot's child.
	DrawStylebox bool
}

// DefaultSlot returns the configuration of a slot with no entry.
func DefaultSlot() Slot {
	return Slot{ColorLeft: rendering.ColorWhite, ColorRight: rendering.ColorWhite}
}

// hasDefaultPorts reports whether both sides are at their disabled baseline.
// DrawStylebox is not considered.
func (s Slot) hasDefaultPorts() bool {
	return !s.EnableLeft && s.TypeLeft == 0 && s.ColorLeft == rendering.ColorWhite &&
		!s.EnableRight && s.TypeRight == 0 && s.ColorRight == rendering.ColorWhite &&
		s.IconLeft == nil && s.IconRight == nil
}

// IsDefault reports whether s carries no information beyond DefaultSlot.
func (s Slot) IsDefault() bool {
	return s.hasDefaultPorts() && !s.DrawStylebox
}

// SlotTable is a sparse map from slot index to Slot.
// Entries equal to DefaultSlot are never stored.
type SlotTable struct {
	entries map[int]Slot
}

// Get returns the entry at index and whether it exists.
func (t *SlotTable) Get(index int) (Slot, bool) {
	s, ok := t.entries[index]
	return s, ok
}

// Lookup returns the entry at index, or DefaultSlot when absent.
func (t *SlotTable) Lookup(index int) Slot {
	if s, ok := t.entries[index]; ok {
		return s
	}
	return DefaultSlot()
}

// Has reports whether index has an entry.
func (t *SlotTable) Has(index int) bool {
	_, ok := t.entries[index]
	return ok
}

// Put stores s at index, pruning it when it equals the default.
func (t *SlotTable) Put(index int, s Slot) {
	if s.IsDefault() {
		delete(t.entries, index)
		return
	}
	if t.entries == nil {
		t.entries = make(map[int]Slot)
	}
	t.entries[index] = s
}

// Update applies fn to the entry at index (or a default slot) and stores the
// result through Put.
func (t *SlotTable) Update(index int, fn func(s *Slot)) {
	s := t.Lookup(index)
	fn(&s)
	t.Put(index, s)
}

// Delete removes the entry at index.
func (t *SlotTable) Delete(index int) {
	delete(t.entries, index)
}

// Clear removes every entry.
func (t *SlotTable) Clear() {
	clear(t.entries)
}

// Len returns the number of stored entries.
func (t *SlotTable) Len() int {
	return len(t.entries)
}

// Indices returns the stored indices in ascending order.
func (t *SlotTable) Indices() []int {
	keys := make([]int, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
