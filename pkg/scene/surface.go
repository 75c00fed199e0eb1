package scene

import (
	"fmt"
	"strconv"

	"github.com/go-drift/nodegraph/pkg/focus"
	"github.com/go-drift/nodegraph/pkg/graphnode"
)

// Surface is a graph surface with a fixed set of connections around a
// single node. It records the keyboard connection requests it receives.
type Surface struct {
	// Log holds one line per connection request, in order.
	Log []string

	connecting bool
	typeNames  map[int]string
	inputs     map[int]Connection
	outputs    map[int]Connection
	targets    map[string]*focus.FocusNode
	manager    *focus.FocusManager
}

var _ graphnode.Surface = (*Surface)(nil)

func newSurface(s *Scene, manager *focus.FocusManager) *Surface {
	surface := &Surface{
		typeNames: make(map[int]string, len(s.TypeNames)),
		inputs:    make(map[int]Connection),
		outputs:   make(map[int]Connection),
		targets:   make(map[string]*focus.FocusNode),
		manager:   manager,
	}
	for key, name := range s.TypeNames {
		typ, _ := strconv.Atoi(key)
		surface.typeNames[typ] = name
	}
	for _, c := range s.Connections {
		if c.Output {
			surface.outputs[c.Port] = c
		} else {
			surface.inputs[c.Port] = c
		}
	}
	return surface
}

// IsKeyboardConnecting implements graphnode.Surface.
func (s *Surface) IsKeyboardConnecting() bool {
	return s.connecting
}

// StartKeyboardConnecting implements graphnode.Surface.
func (s *Surface) StartKeyboardConnecting(node *graphnode.GraphNode, inPort, outPort int) {
	s.connecting = true
	s.Log = append(s.Log, fmt.Sprintf("start %s in=%d out=%d", node.Name, inPort, outPort))
}

// EndKeyboardConnecting implements graphnode.Surface.
func (s *Surface) EndKeyboardConnecting(node *graphnode.GraphNode, inPort, outPort int) {
	s.connecting = false
	if inPort == -1 && outPort == -1 {
		s.Log = append(s.Log, fmt.Sprintf("delete %s", node.Name))
		return
	}
	s.Log = append(s.Log, fmt.Sprintf("end %s in=%d out=%d", node.Name, inPort, outPort))
}

// ForceConnectionDragEnd implements graphnode.Surface.
func (s *Surface) ForceConnectionDragEnd() {
	s.connecting = false
	s.Log = append(s.Log, "cancel")
}

// InputConnectionTarget implements graphnode.Surface.
func (s *Surface) InputConnectionTarget(_ string, port int) focus.Focusable {
	return s.target(s.inputs, port)
}

// OutputConnectionTarget implements graphnode.Surface.
func (s *Surface) OutputConnectionTarget(_ string, port int) focus.Focusable {
	return s.target(s.outputs, port)
}

func (s *Surface) target(conns map[int]Connection, port int) focus.Focusable {
	c, ok := conns[port]
	if !ok || c.Target == "" {
		return nil
	}
	node, ok := s.targets[c.Target]
	if !ok {
		node = focus.NewFocusNode(c.Target, s.manager)
		s.targets[c.Target] = node
	}
	return node
}

// TypeNames implements graphnode.Surface.
func (s *Surface) TypeNames() map[int]string {
	return s.typeNames
}

// ConnectionsDescription implements graphnode.Surface.
func (s *Surface) ConnectionsDescription(_ string, port int, output bool) string {
	conns := s.inputs
	if output {
		conns = s.outputs
	}
	c, ok := conns[port]
	if !ok {
		return ""
	}
	if c.Description != "" {
		return c.Description
	}
	if c.Target == "" {
		return ""
	}
	return "connected to " + c.Target
}

// Focused returns the debug label of the focused element, or "".
func (s *Surface) Focused() string {
	if s.manager == nil || s.manager.PrimaryFocus == nil {
		return ""
	}
	return s.manager.PrimaryFocus.DebugLabel
}
