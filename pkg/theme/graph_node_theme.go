// Package theme provides the visual metrics of graph nodes.
//
// A [GraphNodeThemeData] carries the style boxes, spacing constants and port
// icon consumed by the layout engine and the port painter. Start from
// [DefaultGraphNodeTheme] and override fields, or load overrides from a YAML
// or TOML file with [Load].
package theme

import "github.com/go-drift/nodegraph/pkg/rendering"

// StyleBox describes a rectangular panel with content margins.
type StyleBox struct {
	// Background fills the box.
	Background rendering.Color `yaml:"background" toml:"background"`
	// BorderColor strokes the box when BorderWidth is positive.
	BorderColor rendering.Color `yaml:"border_color" toml:"border_color"`
	// BorderWidth is the stroke width in pixels.
	BorderWidth float64 `yaml:"border_width" toml:"border_width"`
	// Margins are the content margins on each side.
	Margins rendering.EdgeInsets `yaml:"margins" toml:"margins"`
}

// MinimumSize returns the size taken by the content margins.
func (s StyleBox) MinimumSize() rendering.Size {
	return s.Margins.MinSize()
}

// Offset returns the top-left content offset.
func (s StyleBox) Offset() rendering.Offset {
	return rendering.Offset{X: s.Margins.Left, Y: s.Margins.Top}
}

// Draw paints the box into rect.
func (s StyleBox) Draw(canvas rendering.Canvas, rect rendering.Rect) {
	if canvas == nil {
		return
	}
	if s.Background != rendering.ColorTransparent {
		canvas.DrawRect(rect, rendering.Paint{Color: s.Background, Style: rendering.PaintStyleFill})
	}
	if s.BorderWidth > 0 {
		canvas.DrawRect(rect, rendering.Paint{Color: s.BorderColor, Style: rendering.PaintStyleStroke, StrokeWidth: s.BorderWidth})
	}
}

// GraphNodeThemeData contains the theme configuration for graph nodes.
type GraphNodeThemeData struct {
	// Panel is the body style box; its margins inset the slots.
	Panel StyleBox `yaml:"panel" toml:"panel"`
	// PanelSelected replaces Panel when drawing a selected node.
	PanelSelected StyleBox `yaml:"panel_selected" toml:"panel_selected"`
	// Titlebar frames the title region above the slots.
	Titlebar StyleBox `yaml:"titlebar" toml:"titlebar"`
	// TitlebarSelected replaces Titlebar when drawing a selected node.
	TitlebarSelected StyleBox `yaml:"titlebar_selected" toml:"titlebar_selected"`
	// Slot is drawn behind a slot's child when the slot asks for it.
	Slot StyleBox `yaml:"slot" toml:"slot"`
	// SlotSelected highlights the ports of the keyboard-selected slot.
	SlotSelected StyleBox `yaml:"slot_selected" toml:"slot_selected"`

	// Separation is the vertical gap between slots in pixels.
	Separation int `yaml:"separation" toml:"separation"`
	// PortHOffset is the horizontal distance of ports from the node edges.
	PortHOffset int `yaml:"port_h_offset" toml:"port_h_offset"`

	// PortIconSize sizes the default port icon.
	PortIconSize float64 `yaml:"port_icon_size" toml:"port_icon_size"`
	// ResizerColor tints the resize handle.
	ResizerColor rendering.Color `yaml:"resizer_color" toml:"resizer_color"`

	// Port is the default port icon. Built from PortIconSize by Resolve.
	Port *rendering.Texture `yaml:"-" toml:"-"`
	// Resizer is the resize handle icon.
	Resizer *rendering.Texture `yaml:"-" toml:"-"`
}

// DefaultGraphNodeTheme returns the default graph node theme.
func DefaultGraphNodeTheme() *GraphNodeThemeData {
	panel := StyleBox{
		Background:  rendering.RGBA(0x1f, 0x1f, 0x24, 0xe6),
		BorderColor: rendering.RGB(0x3a, 0x3a, 0x44),
		BorderWidth: 1,
		Margins:     rendering.EdgeInsets{Left: 18, Top: 12, Right: 18, Bottom: 12},
	}
	panelSelected := panel
	panelSelected.BorderColor = rendering.RGB(0xe0, 0xe0, 0xe0)

	titlebar := StyleBox{
		Background: rendering.RGB(0x2c, 0x2c, 0x33),
		Margins:    rendering.EdgeInsets{Left: 12, Top: 4, Right: 12, Bottom: 4},
	}
	titlebarSelected := titlebar
	titlebarSelected.Background = rendering.RGB(0x3b, 0x3b, 0x46)

	t := &GraphNodeThemeData{
		Panel:            panel,
		PanelSelected:    panelSelected,
		Titlebar:         titlebar,
		TitlebarSelected: titlebarSelected,
		Slot: StyleBox{
			Background: rendering.RGBA(0xff, 0xff, 0xff, 0x10),
			Margins:    rendering.EdgeInsets{Left: 12, Right: 12},
		},
		SlotSelected: StyleBox{
			BorderColor: rendering.ColorWhite,
			BorderWidth: 2,
			Margins:     rendering.EdgeInsetsAll(2),
		},
		Separation:   2,
		PortHOffset:  0,
		PortIconSize: 10,
		ResizerColor: rendering.RGBA(0xff, 0xff, 0xff, 0x99),
	}
	return t.Resolve()
}

// Resolve fills the derived icon fields and returns t.
func (t *GraphNodeThemeData) Resolve() *GraphNodeThemeData {
	if t.PortIconSize <= 0 {
		t.PortIconSize = 10
	}
	if t.Port == nil || t.Port.Size.Width != t.PortIconSize {
		t.Port = rendering.NewTexture("port", t.PortIconSize, t.PortIconSize)
	}
	if t.Resizer == nil {
		t.Resizer = rendering.NewTexture("resizer", 12, 12)
	}
	return t
}

// Copy returns a shallow copy of t. Icons are shared.
func (t *GraphNodeThemeData) Copy() *GraphNodeThemeData {
	c := *t
	return &c
}
