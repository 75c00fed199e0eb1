// Package focus provides keyboard focus management structures.
package focus

import "fmt"

// Mode controls whether and how an element accepts focus.
type Mode int

const (
	// ModeNone never accepts focus.
	ModeNone Mode = iota

	// ModeClick accepts focus from pointer clicks only.
	ModeClick

	// ModeAll accepts focus from pointer and keyboard.
	ModeAll

	// ModeAccessibility accepts keyboard focus only while a screen reader
	// or other assistive technology is active.
	ModeAccessibility
)

// String returns a human-readable representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeClick:
		return "click"
	case ModeAll:
		return "all"
	case ModeAccessibility:
		return "accessibility"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// AllowsKeyboard reports whether keyboard focus is permitted given the
// current accessibility state.
func (m Mode) AllowsKeyboard(accessibilityEnabled bool) bool {
	return m == ModeAll || (m == ModeAccessibility && accessibilityEnabled)
}

// Focusable is anything that can take primary focus.
type Focusable interface {
	RequestFocus()
}

// KeyEventResult indicates how a key event was handled.
type KeyEventResult int

const (
	// KeyEventIgnored indicates the event was not handled.
	KeyEventIgnored KeyEventResult = iota

	// KeyEventHandled indicates the event was consumed.
	KeyEventHandled
)

// FocusNode represents a focusable element in the tree.
type FocusNode struct {
	CanRequestFocus bool
	DebugLabel      string

	OnFocusChange func(hasFocus bool)

	// Manager owns this node's focus state. Nil means the global manager.
	Manager *FocusManager

	hasFocus bool
}

// NewFocusNode creates a focusable node bound to manager.
func NewFocusNode(label string, manager *FocusManager) *FocusNode {
	return &FocusNode{CanRequestFocus: true, DebugLabel: label, Manager: manager}
}

func (n *FocusNode) manager() *FocusManager {
	if n.Manager != nil {
		return n.Manager
	}
	return GetFocusManager()
}

// HasFocus reports whether this node has primary focus.
func (n *FocusNode) HasFocus() bool {
	return n.hasFocus
}

// RequestFocus requests that this node receive primary focus.
func (n *FocusNode) RequestFocus() {
	if n == nil || !n.CanRequestFocus {
		return
	}
	n.manager().setPrimaryFocus(n)
}

// Unfocus removes focus from this node if it has primary focus.
func (n *FocusNode) Unfocus() {
	manager := n.manager()
	if manager.PrimaryFocus == n {
		manager.setPrimaryFocus(nil)
	}
}

// FocusManager manages the primary focus.
type FocusManager struct {
	PrimaryFocus *FocusNode
}

var focusManager = &FocusManager{}

// GetFocusManager returns the singleton focus manager.
func GetFocusManager() *FocusManager {
	return focusManager
}

// NewFocusManager returns an independent focus manager.
func NewFocusManager() *FocusManager {
	return &FocusManager{}
}

// setPrimaryFocus updates the primary focus to the given node.
func (m *FocusManager) setPrimaryFocus(node *FocusNode) {
	if m.PrimaryFocus == node {
		return
	}
	previous := m.PrimaryFocus
	m.PrimaryFocus = node
	if previous != nil {
		previous.setFocusState(false)
	}
	if node != nil {
		node.setFocusState(true)
	}
}

// setFocusState updates the focus flag and notifies the callback.
func (n *FocusNode) setFocusState(hasFocus bool) {
	n.hasFocus = hasFocus
	if n.OnFocusChange != nil {
		n.OnFocusChange(hasFocus)
	}
}
