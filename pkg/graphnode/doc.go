// Package graphnode implements the graph node widget of a node-graph editor.
//
// A [GraphNode] stacks its child widgets vertically into slots. Each slot may
// expose an input port on the left edge and an output port on the right edge.
// The node keeps three pieces of state in step with each other:
//
//   - the slot table, a sparse map from slot index to port attributes;
//   - the slot layout, produced by [GraphNode.Resort];
//   - the port cache, rebuilt lazily from the two above whenever it is read
//     after a mutation.
//
// Slot indices are ordinals among visible children, not stable identities:
// removing an earlier child shifts the meaning of every later slot.
//
// # Interaction
//
// When slot focus is permitted (see [GraphNode.SetSlotsFocusMode]) the up and
// down actions move a slot cursor; left and right start or finish a keyboard
// connection through the enclosing [Surface], and the follow actions move
// focus to the node on the other end of a connection.
//
// # Threading
//
// A GraphNode is owned by the UI thread and is not safe for concurrent use.
package graphnode
