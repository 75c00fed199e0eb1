package graphnode

import (
	"github.com/go-drift/nodegraph/pkg/errors"
	"github.com/go-drift/nodegraph/pkg/rendering"
)

// PortCacheEntry is a resolved port.
type PortCacheEntry struct {
	// Position is the port center in node coordinates.
	Position rendering.Offset
	// Slot is the slot index that owns the port.
	Slot  int
	Type  int
	Color rendering.Color
}

type portSet struct {
	inputs  []PortCacheEntry
	outputs []PortCacheEntry
}

// buildPorts derives both port lists from the slot table and the current
// child geometry.
func (n *GraphNode) buildPorts() portSet {
	edgeOfs := n.Theme.PortHOffset
	separation := n.Theme.Separation

	titlebarHeight := 0.0
	if n.titlebar != nil {
		titlebarHeight = n.titlebar.Rect().Height()
	}
	verticalOfs := int(titlebarHeight + n.Theme.Titlebar.MinimumSize().Height + n.Theme.Panel.Margins.Top)

	var set portSet
	slot := 0
	for _, child := range n.slotChildren() {
		r := child.Rect()
		h := r.Height()
		if s, ok := n.slots.Get(slot); ok {
			var y int
			if len(n.slotYCache) == 0 {
				y = int(float64(verticalOfs) + h*0.5)
			} else {
				y = int(r.Top + h*0.5)
			}
			if s.EnableLeft {
				set.inputs = append(set.inputs, PortCacheEntry{
					Position: rendering.Offset{X: float64(edgeOfs), Y: float64(y)},
					Slot:     slot,
					Type:     s.TypeLeft,
					Color:    s.ColorLeft,
				})
			}
			if s.EnableRight {
				set.outputs = append(set.outputs, PortCacheEntry{
					Position: rendering.Offset{X: float64(int(n.size.Width - float64(edgeOfs))), Y: float64(y)},
					Slot:     slot,
					Type:     s.TypeRight,
					Color:    s.ColorRight,
				})
			}
		}
		verticalOfs = int(float64(verticalOfs) + h + float64(separation))
		slot++
	}
	n.setSlotCount(slot)
	return set
}

// InputPorts returns a copy of the input port cache.
func (n *GraphNode) InputPorts() []PortCacheEntry {
	return append([]PortCacheEntry(nil), n.ports.get().inputs...)
}

// OutputPorts returns a copy of the output port cache.
func (n *GraphNode) OutputPorts() []PortCacheEntry {
	return append([]PortCacheEntry(nil), n.ports.get().outputs...)
}

// InputPortCount returns the number of enabled input ports.
func (n *GraphNode) InputPortCount() int {
	return len(n.ports.get().inputs)
}

// OutputPortCount returns the number of enabled output ports.
func (n *GraphNode) OutputPortCount() int {
	return len(n.ports.get().outputs)
}

func (n *GraphNode) inputPort(op string, port int) (PortCacheEntry, bool) {
	return n.port(op, n.ports.get().inputs, port)
}

func (n *GraphNode) outputPort(op string, port int) (PortCacheEntry, bool) {
	return n.port(op, n.ports.get().outputs, port)
}

func (n *GraphNode) port(op string, ports []PortCacheEntry, port int) (PortCacheEntry, bool) {
	if port < 0 || port >= len(ports) {
		_ = n.fail(op, errors.KindPortRange, port, errors.ErrPortOutOfRange)
		return PortCacheEntry{}, false
	}
	return ports[port], true
}

// InputPortPosition returns the position of an input port.
func (n *GraphNode) InputPortPosition(port int) rendering.Offset {
	p, _ := n.inputPort("graphnode.InputPortPosition", port)
	return p.Position
}

// InputPortType returns the type tag of an input port.
func (n *GraphNode) InputPortType(port int) int {
	p, _ := n.inputPort("graphnode.InputPortType", port)
	return p.Type
}

// InputPortColor returns the color of an input port.
func (n *GraphNode) InputPortColor(port int) rendering.Color {
	p, _ := n.inputPort("graphnode.InputPortColor", port)
	return p.Color
}

// InputPortSlot returns the slot that owns an input port, or -1.
func (n *GraphNode) InputPortSlot(port int) int {
	p, ok := n.inputPort("graphnode.InputPortSlot", port)
	if !ok {
		return -1
	}
	return p.Slot
}

// OutputPortPosition returns the position of an output port.
func (n *GraphNode) OutputPortPosition(port int) rendering.Offset {
	p, _ := n.outputPort("graphnode.OutputPortPosition", port)
	return p.Position
}

// OutputPortType returns the type tag of an output port.
func (n *GraphNode) OutputPortType(port int) int {
	p, _ := n.outputPort("graphnode.OutputPortType", port)
	return p.Type
}

// OutputPortColor returns the color of an output port.
func (n *GraphNode) OutputPortColor(port int) rendering.Color {
	p, _ := n.outputPort("graphnode.OutputPortColor", port)
	return p.Color
}

// OutputPortSlot returns the slot that owns an output port, or -1.
func (n *GraphNode) OutputPortSlot(port int) int {
	p, ok := n.outputPort("graphnode.OutputPortSlot", port)
	if !ok {
		return -1
	}
	return p.Slot
}

// inputPortIndex returns the input port index of slot, or -1.
func (n *GraphNode) inputPortIndex(slot int) int {
	for i, p := range n.ports.get().inputs {
		if p.Slot == slot {
			return i
		}
	}
	return -1
}

// outputPortIndex returns the output port index of slot, or -1.
func (n *GraphNode) outputPortIndex(slot int) int {
	for i, p := range n.ports.get().outputs {
		if p.Slot == slot {
			return i
		}
	}
	return -1
}
