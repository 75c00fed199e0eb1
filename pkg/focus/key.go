package focus

import "fmt"

// Action is a logical input action, independent of the physical key.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionAccept
	ActionCancel
	// ActionGraphDelete removes the connection being edited.
	ActionGraphDelete
	// ActionGraphFollowLeft jumps to the node connected to the input port.
	ActionGraphFollowLeft
	// ActionGraphFollowRight jumps to the node connected to the output port.
	ActionGraphFollowRight
)

var actionNames = map[Action]string{
	ActionNone:             "none",
	ActionUp:               "up",
	ActionDown:             "down",
	ActionLeft:             "left",
	ActionRight:            "right",
	ActionAccept:           "accept",
	ActionCancel:           "cancel",
	ActionGraphDelete:      "graph_delete",
	ActionGraphFollowLeft:  "graph_follow_left",
	ActionGraphFollowRight: "graph_follow_right",
}

// String returns the action name.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ParseAction returns the action with the given name.
func ParseAction(name string) (Action, error) {
	for action, n := range actionNames {
		if n == name {
			return action, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}

// KeyEvent is a keyboard event already mapped to a logical action.
type KeyEvent struct {
	Action  Action
	Pressed bool
}

// Press returns a pressed event for action.
func Press(action Action) KeyEvent {
	return KeyEvent{Action: action, Pressed: true}
}
