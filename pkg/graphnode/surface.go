package graphnode

import "github.com/go-drift/nodegraph/pkg/focus"

// Surface is the graph editing surface that owns a node and its connections.
//
// The node only signals intent; routing, validation and storage of
// connections belong to the surface. Port arguments are indices into the
// node's input or output port cache, with -1 meaning "not specified".
type Surface interface {
	// IsKeyboardConnecting reports whether a keyboard connection is in progress.
	IsKeyboardConnecting() bool
	// StartKeyboardConnecting begins a keyboard connection from a port of node.
	StartKeyboardConnecting(node *GraphNode, inPort, outPort int)
	// EndKeyboardConnecting finishes the connection at a port of node.
	// Both ports -1 asks the surface to delete the pending connection.
	EndKeyboardConnecting(node *GraphNode, inPort, outPort int)
	// ForceConnectionDragEnd aborts the connection in progress.
	ForceConnectionDragEnd()

	// InputConnectionTarget returns the element connected to an input port, or nil.
	InputConnectionTarget(nodeName string, port int) focus.Focusable
	// OutputConnectionTarget returns the element connected to an output port, or nil.
	OutputConnectionTarget(nodeName string, port int) focus.Focusable

	// TypeNames maps port type tags to display names.
	TypeNames() map[int]string
	// ConnectionsDescription summarizes the connections of one port.
	// An empty string means the port has no connections.
	ConnectionsDescription(nodeName string, port int, output bool) string
}
