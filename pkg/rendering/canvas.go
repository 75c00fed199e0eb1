package rendering

import "fmt"

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// Paint describes how to draw a shape.
type Paint struct {
	Color       Color
	Style       PaintStyle
	StrokeWidth float64
}

// DefaultPaint returns a basic opaque fill paint.
func DefaultPaint() Paint {
	return Paint{Color: ColorBlack, Style: PaintStyleFill, StrokeWidth: 1}
}

// Texture is a named image resource with a fixed pixel size.
// Textures are compared by identity, so share pointers for the same icon.
type Texture struct {
	Name string
	Size Size
}

// NewTexture creates a texture of the given size.
func NewTexture(name string, width, height float64) *Texture {
	return &Texture{Name: name, Size: Size{Width: width, Height: height}}
}

// Canvas receives drawing commands.
type Canvas interface {
	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawTexture draws a texture with its top-left corner at position,
	// modulated by tint.
	DrawTexture(texture *Texture, position Offset, tint Color)
}
