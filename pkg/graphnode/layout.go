package graphnode

import (
	"github.com/go-drift/nodegraph/pkg/errors"
	"github.com/go-drift/nodegraph/pkg/rendering"
)

// layoutEntry is the per-child frame of one layout pass.
type layoutEntry struct {
	child       Child
	slot        int
	minSize     int
	willStretch bool
	finalSize   int
}

// Resize sets the node size and schedules a layout pass.
func (n *GraphNode) Resize(size rendering.Size) {
	if n.size == size {
		return
	}
	n.size = size
	n.MarkNeedsLayout()
}

// LayoutIfNeeded runs Resort with the current size when a layout pass is
// pending. It reports whether a pass ran.
func (n *GraphNode) LayoutIfNeeded() bool {
	if !n.needsLayout {
		return false
	}
	n.Resort(n.size)
	return true
}

// Resort lays out the titlebar and every visible child for a node of the
// given size and returns the child rectangles in slot order.
//
// Heights are integer pixels. Children that expand vertically share the
// surplus height by stretch ratio; a child whose share would be smaller
// than its minimum stops stretching and keeps its minimum. The last child,
// if it stretches, ends exactly at the bottom margin of the panel.
func (n *GraphNode) Resort(size rendering.Size) []rendering.Rect {
	n.size = size
	n.needsLayout = false

	panel := n.Theme.Panel
	titlebarStyle := n.Theme.Titlebar
	slotStyle := n.Theme.Slot
	separation := n.Theme.Separation

	titlebarMin := 0.0
	if n.titlebar != nil {
		titlebarSize := rendering.Size{Width: size.Width, Height: n.titlebar.Rect().Height()}
		tbMin := titlebarStyle.MinimumSize()
		off := titlebarStyle.Offset()
		fitChildInRect(n.titlebar, rendering.RectFromLTWH(off.X, off.Y,
			titlebarSize.Width-tbMin.Width, titlebarSize.Height-tbMin.Height))
		titlebarMin = float64(int(n.titlebar.MinSize().Height))
	}

	// First pass: minimum sizes and the stretching set.
	children := n.slotChildren()
	frame := make([]layoutEntry, len(children))
	stretchMin := 0
	availableStretchSpace := 0
	stretchRatioTotal := 0.0
	for i, child := range children {
		h := child.MinSize().Height
		if n.slots.Lookup(i).DrawStylebox {
			h += slotStyle.MinimumSize().Height
		}
		minSize := int(h)
		stretchMin += minSize
		frame[i] = layoutEntry{
			child:       child,
			slot:        i,
			minSize:     minSize,
			willStretch: child.ExpandsVertically(),
			finalSize:   minSize,
		}
		if frame[i].willStretch {
			availableStretchSpace += minSize
			stretchRatioTotal += child.StretchRatio()
		}
	}
	n.setSlotCount(len(children))

	stretchMax := int(size.Height) - (len(children)-1)*separation
	stretchDiff := max(stretchMax-stretchMin, 0)
	availableStretchSpace = int(float64(availableStretchSpace+stretchDiff) -
		panel.Margins.Bottom - panel.Margins.Top - titlebarMin - titlebarStyle.MinimumSize().Height)

	// Second pass: demote children whose share is below their minimum
	// until a full pass demotes nobody.
	for stretchRatioTotal > 0 {
		refitSuccessful := true
		for i := range frame {
			e := &frame[i]
			if !e.willStretch {
				continue
			}
			ratio := e.child.StretchRatio()
			share := int(float64(availableStretchSpace) * ratio / stretchRatioTotal)
			if share < e.minSize {
				e.willStretch = false
				stretchRatioTotal -= ratio
				availableStretchSpace -= e.minSize
				e.finalSize = e.minSize
				refitSuccessful = false
				break
			}
			e.finalSize = share
		}
		if refitSuccessful {
			break
		}
	}

	// Final pass: place children top to bottom.
	ofsY := int(panel.Margins.Top + titlebarMin + titlebarStyle.MinimumSize().Height)
	width := int(size.Width - panel.MinimumSize().Width)
	n.slotYCache = n.slotYCache[:0]
	rects := make([]rendering.Rect, len(frame))
	for i, e := range frame {
		if i > 0 {
			ofsY += separation
		}
		from := ofsY
		to := ofsY + e.finalSize
		if e.willStretch && i == len(frame)-1 {
			to = int(size.Height - panel.Margins.Bottom)
		}

		left := panel.Margins.Left
		finalWidth := float64(width)
		if n.slots.Lookup(e.slot).DrawStylebox {
			left += slotStyle.Margins.Left
			finalWidth -= slotStyle.MinimumSize().Width
		}
		fitChildInRect(e.child, rendering.RectFromLTWH(left, float64(from), finalWidth, float64(to-from)))

		r := e.child.Rect()
		rects[i] = r
		n.slotYCache = append(n.slotYCache, int(r.Top+r.Height()*0.5))
		ofsY = to
	}

	n.ports.invalidate()
	n.MarkNeedsSemanticsUpdate()
	n.MarkNeedsPaint()
	n.notifySlotSizesChanged()
	return rects
}

func (n *GraphNode) notifySlotSizesChanged() {
	if n.OnSlotSizesChanged == nil {
		return
	}
	defer errors.Recover("graphnode.OnSlotSizesChanged")
	n.OnSlotSizesChanged()
}

// SlotCenters returns the vertical center of each slot from the last
// layout pass.
func (n *GraphNode) SlotCenters() []int {
	return append([]int(nil), n.slotYCache...)
}

// MinimumSize returns the smallest size that fits the titlebar and every
// visible child at its minimum.
func (n *GraphNode) MinimumSize() rendering.Size {
	panel := n.Theme.Panel.MinimumSize()
	slotMin := n.Theme.Slot.MinimumSize()

	minSize := n.Theme.Titlebar.MinimumSize()
	if n.titlebar != nil {
		minSize = minSize.Add(n.titlebar.MinSize())
	}
	for i, child := range n.slotChildren() {
		size := child.MinSize()
		size.Width += panel.Width
		if n.slots.Lookup(i).DrawStylebox {
			size = size.Add(slotMin)
		}
		minSize.Height += size.Height
		minSize.Width = max(minSize.Width, size.Width)
		if i > 0 {
			minSize.Height += float64(n.Theme.Separation)
		}
	}
	minSize.Height += panel.Height
	return minSize
}
