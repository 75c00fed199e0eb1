package graphnode

import (
	"math"

	"github.com/go-drift/nodegraph/pkg/focus"
	"github.com/go-drift/nodegraph/pkg/rendering"
)

// Child is a widget placed in a slot.
type Child interface {
	focus.Focusable

	// MinSize is the smallest size the child accepts.
	MinSize() rendering.Size
	// Visible reports whether the child takes part in layout.
	Visible() bool
	// ExpandsVertically reports whether the child wants surplus height.
	ExpandsVertically() bool
	// StretchRatio weighs the child's share of surplus height.
	StretchRatio() float64
	// Rect is the child's current rectangle in node coordinates.
	Rect() rendering.Rect
	// SetRect places the child.
	SetRect(rect rendering.Rect)
}

// Box is a plain Child with fixed minimum size.
type Box struct {
	Label  string
	Min    rendering.Size
	Hidden bool
	Expand bool
	// Ratio is the stretch ratio; zero is treated as 1.
	Ratio float64
	// Focus receives focus when the slot is accepted. May be nil.
	Focus *focus.FocusNode

	rect rendering.Rect
}

// NewBox returns a visible box with the given minimum size.
func NewBox(label string, width, height float64) *Box {
	return &Box{Label: label, Min: rendering.Size{Width: width, Height: height}}
}

// MinSize implements Child.
func (b *Box) MinSize() rendering.Size { return b.Min }

// Visible implements Child.
func (b *Box) Visible() bool { return !b.Hidden }

// ExpandsVertically implements Child.
func (b *Box) ExpandsVertically() bool { return b.Expand }

// StretchRatio implements Child.
func (b *Box) StretchRatio() float64 {
	if b.Ratio <= 0 {
		return 1
	}
	return b.Ratio
}

// Rect implements Child.
func (b *Box) Rect() rendering.Rect { return b.rect }

// SetRect implements Child.
func (b *Box) SetRect(rect rendering.Rect) { b.rect = rect }

// RequestFocus implements focus.Focusable.
func (b *Box) RequestFocus() {
	if b.Focus != nil {
		b.Focus.RequestFocus()
	}
}

// fitChildInRect places child in rect, never below its minimum size.
func fitChildInRect(child Child, rect rendering.Rect) {
	minSize := child.MinSize()
	w := math.Max(rect.Width(), minSize.Width)
	h := math.Max(rect.Height(), minSize.Height)
	child.SetRect(rendering.RectFromLTWH(rect.Left, rect.Top, w, h))
}
