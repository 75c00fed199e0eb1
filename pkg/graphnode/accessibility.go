package graphnode

import (
	"fmt"
	"strings"

	"github.com/go-drift/nodegraph/pkg/semantics"
)

// DescribeSemantics returns the accessibility description of the node.
//
// The label names the node and its title. With a slot selected it adds the
// slot ordinal, the type and connections of each enabled port, and whether
// the surface is waiting for a target port; otherwise it gives the slot
// count.
func (n *GraphNode) DescribeSemantics() semantics.SemanticsConfiguration {
	n.ports.ensureFresh()

	var sb strings.Builder
	fmt.Fprintf(&sb, "graph node %s (%s)", n.accessibleName(), n.title)

	if n.selectedSlot != -1 {
		slot := n.slots.Lookup(n.selectedSlot)
		var typeNames map[int]string
		if n.Surface != nil {
			typeNames = n.Surface.TypeNames()
		}
		fmt.Fprintf(&sb, ", slot %d of %d", n.selectedSlot+1, n.slotCount)
		if slot.EnableLeft {
			fmt.Fprintf(&sb, ", input port, type: %s", typeName(typeNames, slot.TypeLeft))
			if port := n.inputPortIndex(n.selectedSlot); port >= 0 && n.Surface != nil {
				sb.WriteString(" " + connectionSummary(n.Surface.ConnectionsDescription(n.Name, port, false)))
			}
		}
		if slot.EnableRight {
			fmt.Fprintf(&sb, ", output port, type: %s", typeName(typeNames, slot.TypeRight))
			if port := n.outputPortIndex(n.selectedSlot); port >= 0 && n.Surface != nil {
				sb.WriteString(" " + connectionSummary(n.Surface.ConnectionsDescription(n.Name, port, true)))
			}
		}
		if n.Surface != nil && n.Surface.IsKeyboardConnecting() {
			sb.WriteString(", currently selecting target port")
		}
	} else {
		fmt.Fprintf(&sb, ", has %d slots", n.slotCount)
	}

	actions := make([]semantics.CustomAction, 0, len(accessibilityActionLabels))
	for _, a := range []AccessibilityAction{ActionConnectInput, ActionConnectOutput, ActionFollowInput, ActionFollowOutput} {
		actions = append(actions, semantics.CustomAction{ID: int(a), Label: a.String()})
	}
	return semantics.SemanticsConfiguration{
		Role:          semantics.SemanticsRoleList,
		Label:         sb.String(),
		CustomActions: actions,
	}
}

// AccessibilityContainerName describes where child sits inside the node,
// or returns "" when child is not a slot of this node.
func (n *GraphNode) AccessibilityContainerName(child Child) string {
	for i, c := range n.slotChildren() {
		if c == child {
			return fmt.Sprintf(", in slot %d of graph node %s (%s)", i+1, n.accessibleName(), n.title)
		}
	}
	return ""
}

func (n *GraphNode) accessibleName() string {
	if n.AccessibilityName != "" {
		return n.AccessibilityName
	}
	return n.Name
}

func typeName(names map[int]string, typ int) string {
	if name, ok := names[typ]; ok {
		return name
	}
	return fmt.Sprint(typ)
}

func connectionSummary(desc string) string {
	if desc == "" {
		return "no connections"
	}
	return desc
}
