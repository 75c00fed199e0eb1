package graphnode

import "github.com/go-drift/nodegraph/pkg/focus"

// AccessibilityAction is a custom action offered to assistive technology.
type AccessibilityAction int

const (
	// ActionConnectInput starts or finishes a connection at the selected
	// slot's input port.
	ActionConnectInput AccessibilityAction = iota
	// ActionConnectOutput starts or finishes a connection at the selected
	// slot's output port.
	ActionConnectOutput
	// ActionFollowInput focuses the element connected to the selected
	// slot's input port.
	ActionFollowInput
	// ActionFollowOutput focuses the element connected to the selected
	// slot's output port.
	ActionFollowOutput
)

var accessibilityActionLabels = map[AccessibilityAction]string{
	ActionConnectInput:  "Edit Input Port Connection",
	ActionConnectOutput: "Edit Output Port Connection",
	ActionFollowInput:   "Follow Input Port Connection",
	ActionFollowOutput:  "Follow Output Port Connection",
}

// String returns the label shown to assistive technology.
func (a AccessibilityAction) String() string {
	return accessibilityActionLabels[a]
}

// HandleKeyEvent runs the slot state machine for one key event.
//
// Up and down move the slot cursor when the focus mode allows keyboard slot
// focus. Moving past either end clears the cursor and leaves the event
// unhandled. The remaining actions act on the selected slot and need only a
// pressed event on a node with slots.
func (n *GraphNode) HandleKeyEvent(event focus.KeyEvent) focus.KeyEventResult {
	n.ports.ensureFresh()

	if !event.Pressed || n.slotCount <= 0 {
		return focus.KeyEventIgnored
	}

	handled := false
	if n.slotsFocusMode.AllowsKeyboard(n.accessibilityEnabled()) {
		switch event.Action {
		case focus.ActionUp:
			n.selectedSlot--
			if n.selectedSlot < 0 {
				n.selectedSlot = -1
			} else {
				handled = true
			}
		case focus.ActionDown:
			n.selectedSlot++
			if n.selectedSlot >= n.slotCount {
				n.selectedSlot = -1
			} else {
				handled = true
			}
		}
	}

	switch event.Action {
	case focus.ActionCancel:
		if n.Surface != nil && n.Surface.IsKeyboardConnecting() {
			n.Surface.ForceConnectionDragEnd()
			handled = true
		}
	case focus.ActionGraphDelete:
		if n.Surface != nil && n.Surface.IsKeyboardConnecting() {
			n.Surface.EndKeyboardConnecting(n, -1, -1)
			handled = true
		}
	case focus.ActionGraphFollowLeft:
		handled = n.followInput() || handled
	case focus.ActionGraphFollowRight:
		handled = n.followOutput() || handled
	case focus.ActionLeft:
		handled = n.connectInput() || handled
	case focus.ActionRight:
		handled = n.connectOutput() || handled
	case focus.ActionAccept:
		if n.selectedSlot != -1 {
			if children := n.slotChildren(); n.selectedSlot < len(children) {
				slot := children[n.selectedSlot]
				n.selectedSlot = -1
				slot.RequestFocus()
			}
			handled = true
		}
	}

	n.MarkNeedsSemanticsUpdate()
	n.MarkNeedsPaint()
	if handled {
		return focus.KeyEventHandled
	}
	return focus.KeyEventIgnored
}

// PerformAccessibilityAction runs a custom accessibility action on the
// selected slot. It reports whether the action did anything.
func (n *GraphNode) PerformAccessibilityAction(action AccessibilityAction) bool {
	n.ports.ensureFresh()

	var done bool
	switch action {
	case ActionConnectInput:
		done = n.connectInput()
	case ActionConnectOutput:
		done = n.connectOutput()
	case ActionFollowInput:
		done = n.followInput()
	case ActionFollowOutput:
		done = n.followOutput()
	}
	if done {
		n.MarkNeedsSemanticsUpdate()
		n.MarkNeedsPaint()
	}
	return done
}

// FocusExit clears the slot cursor. It runs whenever the node loses focus.
func (n *GraphNode) FocusExit() {
	n.selectedSlot = -1
	n.MarkNeedsPaint()
}

// connectInput toggles a keyboard connection at the selected slot's input port.
func (n *GraphNode) connectInput() bool {
	if n.Surface == nil || n.selectedSlot < 0 || !n.slots.Lookup(n.selectedSlot).EnableLeft {
		return false
	}
	port := n.inputPortIndex(n.selectedSlot)
	if port < 0 {
		return false
	}
	if n.Surface.IsKeyboardConnecting() {
		n.Surface.EndKeyboardConnecting(n, port, -1)
	} else {
		n.Surface.StartKeyboardConnecting(n, port, -1)
	}
	return true
}

// connectOutput toggles a keyboard connection at the selected slot's output port.
func (n *GraphNode) connectOutput() bool {
	if n.Surface == nil || n.selectedSlot < 0 || !n.slots.Lookup(n.selectedSlot).EnableRight {
		return false
	}
	port := n.outputPortIndex(n.selectedSlot)
	if port < 0 {
		return false
	}
	if n.Surface.IsKeyboardConnecting() {
		n.Surface.EndKeyboardConnecting(n, -1, port)
	} else {
		n.Surface.StartKeyboardConnecting(n, -1, port)
	}
	return true
}

// followInput focuses whatever is connected to the selected slot's input port.
func (n *GraphNode) followInput() bool {
	if n.Surface == nil || n.selectedSlot < 0 || !n.slots.Lookup(n.selectedSlot).EnableLeft {
		return false
	}
	port := n.inputPortIndex(n.selectedSlot)
	if port < 0 {
		return false
	}
	target := n.Surface.InputConnectionTarget(n.Name, port)
	if target == nil {
		return false
	}
	target.RequestFocus()
	return true
}

// followOutput focuses whatever is connected to the selected slot's output port.
func (n *GraphNode) followOutput() bool {
	if n.Surface == nil || n.selectedSlot < 0 || !n.slots.Lookup(n.selectedSlot).EnableRight {
		return false
	}
	port := n.outputPortIndex(n.selectedSlot)
	if port < 0 {
		return false
	}
	target := n.Surface.OutputConnectionTarget(n.Name, port)
	if target == nil {
		return false
	}
	target.RequestFocus()
	return true
}
