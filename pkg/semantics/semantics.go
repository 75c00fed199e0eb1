// Package semantics describes graph elements to assistive technology.
package semantics

import (
	"fmt"
	"sync"
)

// SemanticsRole is the accessibility role of an element.
type SemanticsRole int

const (
	SemanticsRoleNone SemanticsRole = iota
	SemanticsRoleList
)

// String returns a human-readable representation of the role.
func (r SemanticsRole) String() string {
	switch r {
	case SemanticsRoleNone:
		return "none"
	case SemanticsRoleList:
		return "list"
	default:
		return fmt.Sprintf("SemanticsRole(%d)", int(r))
	}
}

// CustomAction is an element-specific action offered to assistive technology.
type CustomAction struct {
	ID    int
	Label string
}

// SemanticsConfiguration describes an element for the accessibility tree.
type SemanticsConfiguration struct {
	Role          SemanticsRole
	Label         string
	CustomActions []CustomAction
}

// IsEmpty reports whether the configuration contains any semantic information.
func (c SemanticsConfiguration) IsEmpty() bool {
	return c.Role == SemanticsRoleNone && c.Label == "" && len(c.CustomActions) == 0
}

// HasAction reports whether an action with id is offered.
func (c SemanticsConfiguration) HasAction(id int) bool {
	for _, a := range c.CustomActions {
		if a.ID == id {
			return true
		}
	}
	return false
}

// SemanticsBinding tracks whether assistive technology is active.
type SemanticsBinding struct {
	mu      sync.RWMutex
	enabled bool
}

var binding = &SemanticsBinding{}

// GetSemanticsBinding returns the global semantics binding.
func GetSemanticsBinding() *SemanticsBinding {
	return binding
}

// SetEnabled enables or disables accessibility.
func (b *SemanticsBinding) SetEnabled(enabled bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.enabled = enabled
}

// IsEnabled reports whether accessibility is enabled.
func (b *SemanticsBinding) IsEnabled() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.enabled
}
