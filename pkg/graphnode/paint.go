package graphnode

import "github.com/go-drift/nodegraph/pkg/rendering"

// PortPainter draws ports in place of the default icon painter.
type PortPainter interface {
	// PaintPort draws the port of slot centered at position. It reports
	// false to fall back to the default icon.
	PaintPort(canvas rendering.Canvas, slot int, position rendering.Offset, left bool, color rendering.Color) bool
}

// PortPainterFunc adapts a function to PortPainter.
type PortPainterFunc func(canvas rendering.Canvas, slot int, position rendering.Offset, left bool, color rendering.Color) bool

// PaintPort implements PortPainter.
func (f PortPainterFunc) PaintPort(canvas rendering.Canvas, slot int, position rendering.Offset, left bool, color rendering.Color) bool {
	return f(canvas, slot, position, left, color)
}

// DrawPort draws one port through the node's Painter, falling back to the
// slot's custom icon or the theme port icon centered at position.
func (n *GraphNode) DrawPort(canvas rendering.Canvas, slot int, position rendering.Offset, left bool, color rendering.Color) {
	if n.Painter != nil && n.Painter.PaintPort(canvas, slot, position, left, color) {
		return
	}
	icon := n.portIcon(slot, left)
	if icon == nil {
		return
	}
	canvas.DrawTexture(icon, rendering.Offset{
		X: position.X - icon.Size.Width*0.5,
		Y: position.Y - icon.Size.Height*0.5,
	}, color)
}

func (n *GraphNode) portIcon(slot int, left bool) *rendering.Texture {
	s := n.slots.Lookup(slot)
	icon := s.IconRight
	if left {
		icon = s.IconLeft
	}
	if icon == nil {
		icon = n.Theme.Port
	}
	return icon
}

// Paint draws the node body, titlebar, slot panels, ports, the selected
// slot highlight and the resize handle, then clears the paint flag.
func (n *GraphNode) Paint(canvas rendering.Canvas) {
	if canvas == nil {
		return
	}
	t := n.Theme
	panel, titlebar := t.Panel, t.Titlebar
	if n.Selected {
		panel, titlebar = t.PanelSelected, t.TitlebarSelected
	}

	titlebarHeight := t.Titlebar.MinimumSize().Height
	if n.titlebar != nil {
		titlebarHeight += n.titlebar.Rect().Height()
	}
	titlebarRect := rendering.RectFromLTWH(0, 0, n.size.Width, titlebarHeight)
	bodyRect := rendering.RectFromLTWH(0, titlebarHeight, n.size.Width, n.size.Height-titlebarHeight)
	panel.Draw(canvas, bodyRect)
	titlebar.Draw(canvas, titlebarRect)

	width := float64(int(n.size.Width - t.Panel.MinimumSize().Width))
	edgeOfs := float64(t.PortHOffset)
	children := n.slotChildren()
	for _, index := range n.slots.Indices() {
		if index >= len(n.slotYCache) {
			continue
		}
		s := n.slots.Lookup(index)
		y := float64(n.slotYCache[index])

		if s.DrawStylebox && index < len(children) {
			r := children[index].Rect()
			t.Slot.Draw(canvas, rendering.RectFromLTWH(t.Panel.Margins.Left, r.Top, width, r.Height()))
		}
		if s.EnableLeft {
			n.DrawPort(canvas, index, rendering.Offset{X: edgeOfs, Y: y}, true, s.ColorLeft)
		}
		if s.EnableRight {
			n.DrawPort(canvas, index, rendering.Offset{X: float64(int(n.size.Width - edgeOfs)), Y: y}, false, s.ColorRight)
		}
		if index == n.selectedSlot {
			n.drawSelection(canvas, n.portIcon(index, true), edgeOfs, y)
			n.drawSelection(canvas, n.portIcon(index, false), n.size.Width-edgeOfs, y)
		}
	}

	if n.Resizable && t.Resizer != nil {
		canvas.DrawTexture(t.Resizer, rendering.Offset{
			X: n.size.Width - t.Resizer.Size.Width,
			Y: n.size.Height - t.Resizer.Size.Height,
		}, t.ResizerColor)
	}
	n.ClearNeedsPaint()
}

// drawSelection frames the port icon centered at (x, y).
func (n *GraphNode) drawSelection(canvas rendering.Canvas, icon *rendering.Texture, x, y float64) {
	var size rendering.Size
	if icon != nil {
		size = icon.Size
	}
	size = size.Add(n.Theme.SlotSelected.MinimumSize())
	rect := rendering.RectFromLTWH(float64(int(x-size.Width*0.5)), float64(int(y-size.Height*0.5)), size.Width, size.Height)
	n.Theme.SlotSelected.Draw(canvas, rect)
}
