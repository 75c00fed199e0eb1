package graphnode

import (
	"slices"

	"github.com/google/uuid"

	"github.com/go-drift/nodegraph/pkg/errors"
	"github.com/go-drift/nodegraph/pkg/focus"
	"github.com/go-drift/nodegraph/pkg/rendering"
	"github.com/go-drift/nodegraph/pkg/semantics"
	"github.com/go-drift/nodegraph/pkg/theme"
)

// GraphNode is a container that lays its children out as slots with ports.
type GraphNode struct {
	// Name identifies the node to its Surface.
	Name string
	// AccessibilityName overrides Name in accessibility descriptions.
	AccessibilityName string
	// Theme supplies style boxes, spacing and icons.
	Theme *theme.GraphNodeThemeData
	// Surface is the enclosing graph surface. May be nil.
	Surface Surface
	// Painter replaces the default port drawing when set.
	Painter PortPainter
	// Semantics reports whether assistive technology is active.
	// Nil uses the global binding.
	Semantics *semantics.SemanticsBinding
	// Focus is the node's own focus node.
	Focus *focus.FocusNode

	// Selected draws the node with the selected style boxes.
	Selected bool
	// Resizable draws the resize handle.
	Resizable bool
	// IgnoreInvalidConnectionType lets the surface accept mismatched port types.
	IgnoreInvalidConnectionType bool

	// OnSlotUpdated is called with the slot index after a slot changes.
	OnSlotUpdated func(index int)
	// OnSlotSizesChanged is called after every layout pass.
	OnSlotSizesChanged func()

	title    string
	titlebar Child
	children []Child

	slots          SlotTable
	slotsFocusMode focus.Mode
	selectedSlot   int
	slotCount      int
	slotYCache     []int
	ports          *derivedCache[portSet]
	icons          map[string]*rendering.Texture

	size                 rendering.Size
	needsLayout          bool
	needsPaint           bool
	needsSemanticsUpdate bool
}

// Option configures a GraphNode.
type Option func(*GraphNode)

// WithTheme sets the node theme.
func WithTheme(t *theme.GraphNodeThemeData) Option {
	return func(n *GraphNode) { n.Theme = t }
}

// WithSurface attaches the node to a graph surface.
func WithSurface(s Surface) Option {
	return func(n *GraphNode) { n.Surface = s }
}

// WithTitle sets the title text.
func WithTitle(title string) Option {
	return func(n *GraphNode) { n.title = title }
}

// WithTitlebar replaces the title region widget.
func WithTitlebar(c Child) Option {
	return func(n *GraphNode) { n.titlebar = c }
}

// WithPainter installs a custom port painter.
func WithPainter(p PortPainter) Option {
	return func(n *GraphNode) { n.Painter = p }
}

// WithFocusManager binds the node's focus node to manager.
func WithFocusManager(m *focus.FocusManager) Option {
	return func(n *GraphNode) { n.Focus.Manager = m }
}

// WithSemantics binds the node to an accessibility binding.
func WithSemantics(b *semantics.SemanticsBinding) Option {
	return func(n *GraphNode) { n.Semantics = b }
}

// New creates a graph node. An empty name is replaced with a random UUID.
func New(name string, opts ...Option) *GraphNode {
	if name == "" {
		name = uuid.NewString()
	}
	n := &GraphNode{
		Name:                 name,
		Theme:                theme.DefaultGraphNodeTheme(),
		Focus:                focus.NewFocusNode(name, nil),
		titlebar:             NewBox("titlebar", 0, 20),
		slotsFocusMode:       focus.ModeAccessibility,
		selectedSlot:         -1,
		needsLayout:          true,
		needsPaint:           true,
		needsSemanticsUpdate: true,
	}
	n.ports = newDerivedCache(n.buildPorts)
	n.Focus.OnFocusChange = func(hasFocus bool) {
		if !hasFocus {
			n.FocusExit()
		}
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Title returns the title text.
func (n *GraphNode) Title() string {
	return n.title
}

// SetTitle updates the title text.
func (n *GraphNode) SetTitle(title string) {
	if n.title == title {
		return
	}
	n.title = title
	n.MarkNeedsLayout()
	n.MarkNeedsSemanticsUpdate()
}

// Titlebar returns the title region widget.
func (n *GraphNode) Titlebar() Child {
	return n.titlebar
}

// Size returns the size of the last layout pass.
func (n *GraphNode) Size() rendering.Size {
	return n.size
}

// RequestFocus gives the node primary focus.
func (n *GraphNode) RequestFocus() {
	n.Focus.RequestFocus()
}

// HasFocus reports whether the node has primary focus.
func (n *GraphNode) HasFocus() bool {
	return n.Focus.HasFocus()
}

// AddChild appends a child widget. It becomes the last slot once visible.
func (n *GraphNode) AddChild(child Child) {
	n.children = append(n.children, child)
	n.childrenChanged()
}

// InsertChild inserts child before position i.
func (n *GraphNode) InsertChild(i int, child Child) {
	i = max(0, min(i, len(n.children)))
	n.children = slices.Insert(n.children, i, child)
	n.childrenChanged()
}

// RemoveChild removes child and reports whether it was present.
// Later children shift up one slot; slot entries stay keyed by index.
func (n *GraphNode) RemoveChild(child Child) bool {
	i := slices.Index(n.children, child)
	if i < 0 {
		return false
	}
	n.children = slices.Delete(n.children, i, i+1)
	n.childrenChanged()
	return true
}

// Children returns all child widgets, visible or not.
func (n *GraphNode) Children() []Child {
	return slices.Clone(n.children)
}

// ChildChanged must be called after a child changes visibility, minimum
// size or stretch settings.
func (n *GraphNode) ChildChanged() {
	n.childrenChanged()
}

func (n *GraphNode) childrenChanged() {
	n.setSlotCount(len(n.slotChildren()))
	n.ports.invalidate()
	n.MarkNeedsLayout()
	n.MarkNeedsSemanticsUpdate()
}

// slotChildren returns the visible children in slot order.
func (n *GraphNode) slotChildren() []Child {
	visible := make([]Child, 0, len(n.children))
	for _, c := range n.children {
		if c != nil && c.Visible() {
			visible = append(visible, c)
		}
	}
	return visible
}

// SlotCount returns the number of slots found by the last layout or port
// cache rebuild.
func (n *GraphNode) SlotCount() int {
	return n.slotCount
}

// SelectedSlot returns the keyboard slot cursor, or -1.
func (n *GraphNode) SelectedSlot() int {
	return n.selectedSlot
}

// SlotsFocusMode returns the slot focus mode.
func (n *GraphNode) SlotsFocusMode() focus.Mode {
	return n.slotsFocusMode
}

// SetSlotsFocusMode controls when slots accept keyboard selection.
// Valid modes are ModeClick, ModeAll and ModeAccessibility.
func (n *GraphNode) SetSlotsFocusMode(mode focus.Mode) error {
	if n.slotsFocusMode == mode {
		return nil
	}
	if mode < focus.ModeClick || mode > focus.ModeAccessibility {
		return n.fail("graphnode.SetSlotsFocusMode", errors.KindProperty, int(mode), errors.ErrInvalidValue)
	}
	n.slotsFocusMode = mode
	if mode == focus.ModeClick && n.selectedSlot > -1 {
		n.selectedSlot = -1
		n.MarkNeedsPaint()
	}
	return nil
}

// setSlotCount records the number of slots and drops a cursor that no
// longer points at one.
func (n *GraphNode) setSlotCount(count int) {
	n.slotCount = count
	if n.selectedSlot >= count {
		n.selectedSlot = -1
	}
}

// MarkNeedsLayout schedules a layout pass for LayoutIfNeeded.
func (n *GraphNode) MarkNeedsLayout() { n.needsLayout = true }

// NeedsLayout reports whether a layout pass is pending.
func (n *GraphNode) NeedsLayout() bool { return n.needsLayout }

// MarkNeedsPaint requests a redraw.
func (n *GraphNode) MarkNeedsPaint() { n.needsPaint = true }

// NeedsPaint reports whether a redraw is pending.
func (n *GraphNode) NeedsPaint() bool { return n.needsPaint }

// ClearNeedsPaint marks the node as painted.
func (n *GraphNode) ClearNeedsPaint() { n.needsPaint = false }

// MarkNeedsSemanticsUpdate requests an accessibility tree refresh.
func (n *GraphNode) MarkNeedsSemanticsUpdate() { n.needsSemanticsUpdate = true }

// NeedsSemanticsUpdate reports whether an accessibility refresh is pending.
func (n *GraphNode) NeedsSemanticsUpdate() bool { return n.needsSemanticsUpdate }

// ClearNeedsSemanticsUpdate marks the accessibility description as sent.
func (n *GraphNode) ClearNeedsSemanticsUpdate() { n.needsSemanticsUpdate = false }

func (n *GraphNode) accessibilityEnabled() bool {
	if n.Semantics != nil {
		return n.Semantics.IsEnabled()
	}
	return semantics.GetSemanticsBinding().IsEnabled()
}

// fail reports an error on the diagnostic channel and returns it.
func (n *GraphNode) fail(op string, kind errors.ErrorKind, index int, err error) error {
	return errors.Report(&errors.NodeError{
		Op:         op,
		Kind:       kind,
		Node:       n.Name,
		Index:      index,
		Err:        err,
		StackTrace: errors.CaptureStack(),
	})
}
