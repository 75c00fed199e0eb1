package graphnode

import (
	"github.com/go-drift/nodegraph/pkg/errors"
	"github.com/go-drift/nodegraph/pkg/rendering"
)

// SetSlot configures both ports of the slot at index.
//
// A configuration with no enabled ports, zero types, white colors and no
// icons removes the entry instead, regardless of drawStylebox.
func (n *GraphNode) SetSlot(index int, enableLeft bool, typeLeft int, colorLeft rendering.Color,
	enableRight bool, typeRight int, colorRight rendering.Color,
	iconLeft, iconRight *rendering.Texture, drawStylebox bool) error {
	if index < 0 {
		return n.fail("graphnode.SetSlot", errors.KindInvalidIndex, index, errors.ErrNegativeIndex)
	}
	s := Slot{
		EnableLeft:   enableLeft,
		TypeLeft:     typeLeft,
		ColorLeft:    colorLeft,
		IconLeft:     iconLeft,
		EnableRight:  enableRight,
		TypeRight:    typeRight,
		ColorRight:   colorRight,
		IconRight:    iconRight,
		DrawStylebox: drawStylebox,
	}
	if s.hasDefaultPorts() {
		n.slots.Delete(index)
	} else {
		n.slots.Put(index, s)
	}
	n.slotChanged(index)
	return nil
}

// SetSlotConfig is SetSlot taking a Slot value.
func (n *GraphNode) SetSlotConfig(index int, s Slot) error {
	return n.SetSlot(index, s.EnableLeft, s.TypeLeft, s.ColorLeft,
		s.EnableRight, s.TypeRight, s.ColorRight, s.IconLeft, s.IconRight, s.DrawStylebox)
}

// Slot returns the configuration of the slot at index, or DefaultSlot.
func (n *GraphNode) Slot(index int) Slot {
	return n.slots.Lookup(index)
}

// HasSlot reports whether the slot at index has an entry.
func (n *GraphNode) HasSlot(index int) bool {
	return n.slots.Has(index)
}

// SlotIndices returns the indices of all configured slots in ascending order.
func (n *GraphNode) SlotIndices() []int {
	return n.slots.Indices()
}

// ClearSlot removes the entry at index.
func (n *GraphNode) ClearSlot(index int) {
	n.slots.Delete(index)
	n.slotsCleared()
}

// ClearAllSlots removes every entry.
func (n *GraphNode) ClearAllSlots() {
	n.slots.Clear()
	n.slotsCleared()
}

func (n *GraphNode) slotsCleared() {
	n.ports.invalidate()
	n.MarkNeedsLayout()
	n.MarkNeedsPaint()
	n.MarkNeedsSemanticsUpdate()
}

func (n *GraphNode) slotChanged(index int) {
	n.ports.invalidate()
	n.MarkNeedsLayout()
	n.MarkNeedsPaint()
	n.MarkNeedsSemanticsUpdate()
	n.notifySlotUpdated(index)
}

// notifySlotUpdated calls OnSlotUpdated, reporting a panic instead of
// propagating it into the mutation that triggered it.
func (n *GraphNode) notifySlotUpdated(index int) {
	if n.OnSlotUpdated == nil {
		return
	}
	defer errors.Recover("graphnode.OnSlotUpdated")
	n.OnSlotUpdated(index)
}

// IsSlotEnabledLeft reports whether the slot has an input port.
func (n *GraphNode) IsSlotEnabledLeft(index int) bool {
	return n.slots.Lookup(index).EnableLeft
}

// SetSlotEnabledLeft toggles the input port, creating the entry if needed.
func (n *GraphNode) SetSlotEnabledLeft(index int, enable bool) error {
	if index < 0 {
		return n.fail("graphnode.SetSlotEnabledLeft", errors.KindInvalidIndex, index, errors.ErrNegativeIndex)
	}
	if n.slots.Lookup(index).EnableLeft == enable {
		return nil
	}
	n.slots.Update(index, func(s *Slot) { s.EnableLeft = enable })
	n.slotChanged(index)
	return nil
}

// IsSlotEnabledRight reports whether the slot has an output port.
func (n *GraphNode) IsSlotEnabledRight(index int) bool {
	return n.slots.Lookup(index).EnableRight
}

// SetSlotEnabledRight toggles the output port, creating the entry if needed.
func (n *GraphNode) SetSlotEnabledRight(index int, enable bool) error {
	if index < 0 {
		return n.fail("graphnode.SetSlotEnabledRight", errors.KindInvalidIndex, index, errors.ErrNegativeIndex)
	}
	if n.slots.Lookup(index).EnableRight == enable {
		return nil
	}
	n.slots.Update(index, func(s *Slot) { s.EnableRight = enable })
	n.slotChanged(index)
	return nil
}

// SlotTypeLeft returns the input port type tag, or 0.
func (n *GraphNode) SlotTypeLeft(index int) int {
	return n.slots.Lookup(index).TypeLeft
}

// SetSlotTypeLeft sets the input port type of an existing slot.
func (n *GraphNode) SetSlotTypeLeft(index, typ int) error {
	return n.updateExisting("graphnode.SetSlotTypeLeft", index, func(s *Slot) bool {
		if s.TypeLeft == typ {
			return false
		}
		s.TypeLeft = typ
		return true
	})
}

// SlotTypeRight returns the output port type tag, or 0.
func (n *GraphNode) SlotTypeRight(index int) int {
	return n.slots.Lookup(index).TypeRight
}

// SetSlotTypeRight sets the output port type of an existing slot.
func (n *GraphNode) SetSlotTypeRight(index, typ int) error {
	return n.updateExisting("graphnode.SetSlotTypeRight", index, func(s *Slot) bool {
		if s.TypeRight == typ {
			return false
		}
		s.TypeRight = typ
		return true
	})
}

// SlotColorLeft returns the input port color, or white.
func (n *GraphNode) SlotColorLeft(index int) rendering.Color {
	return n.slots.Lookup(index).ColorLeft
}

// SetSlotColorLeft sets the input port color of an existing slot.
func (n *GraphNode) SetSlotColorLeft(index int, c rendering.Color) error {
	return n.updateExisting("graphnode.SetSlotColorLeft", index, func(s *Slot) bool {
		if s.ColorLeft == c {
			return false
		}
		s.ColorLeft = c
		return true
	})
}

// SlotColorRight returns the output port color, or white.
func (n *GraphNode) SlotColorRight(index int) rendering.Color {
	return n.slots.Lookup(index).ColorRight
}

// SetSlotColorRight sets the output port color of an existing slot.
func (n *GraphNode) SetSlotColorRight(index int, c rendering.Color) error {
	return n.updateExisting("graphnode.SetSlotColorRight", index, func(s *Slot) bool {
		if s.ColorRight == c {
			return false
		}
		s.ColorRight = c
		return true
	})
}

// SlotCustomIconLeft returns the input port icon override, or nil.
func (n *GraphNode) SlotCustomIconLeft(index int) *rendering.Texture {
	return n.slots.Lookup(index).IconLeft
}

// SetSlotCustomIconLeft overrides the input port icon of an existing slot.
func (n *GraphNode) SetSlotCustomIconLeft(index int, icon *rendering.Texture) error {
	return n.updateExisting("graphnode.SetSlotCustomIconLeft", index, func(s *Slot) bool {
		if s.IconLeft == icon {
			return false
		}
		s.IconLeft = icon
		return true
	})
}

// SlotCustomIconRight returns the output port icon override, or nil.
func (n *GraphNode) SlotCustomIconRight(index int) *rendering.Texture {
	return n.slots.Lookup(index).IconRight
}

// SetSlotCustomIconRight overrides the output port icon of an existing slot.
func (n *GraphNode) SetSlotCustomIconRight(index int, icon *rendering.Texture) error {
	return n.updateExisting("graphnode.SetSlotCustomIconRight", index, func(s *Slot) bool {
		if s.IconRight == icon {
			return false
		}
		s.IconRight = icon
		return true
	})
}

// IsSlotDrawStylebox reports whether the slot panel is drawn.
func (n *GraphNode) IsSlotDrawStylebox(index int) bool {
	return n.slots.Lookup(index).DrawStylebox
}

// SetSlotDrawStylebox toggles the slot panel, creating the entry if needed.
// The slot updated notification fires even when the value is unchanged.
func (n *GraphNode) SetSlotDrawStylebox(index int, enable bool) error {
	if index < 0 {
		return n.fail("graphnode.SetSlotDrawStylebox", errors.KindInvalidIndex, index, errors.ErrNegativeIndex)
	}
	n.slots.Update(index, func(s *Slot) { s.DrawStylebox = enable })
	n.slotChanged(index)
	return nil
}

// updateExisting applies fn to an existing entry. fn reports whether it
// changed anything.
func (n *GraphNode) updateExisting(op string, index int, fn func(s *Slot) bool) error {
	s, ok := n.slots.Get(index)
	if !ok {
		return n.fail(op, errors.KindMissingSlot, index, errors.ErrSlotNotEnabled)
	}
	if !fn(&s) {
		return nil
	}
	n.slots.Put(index, s)
	n.slotChanged(index)
	return nil
}
