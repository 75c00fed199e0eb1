// Package errors provides structured error reporting for graph nodes.
//
// Graph node operations never abort the process. A failing operation builds
// a [NodeError], sends it to the global [ErrorHandler] through [Report], and
// returns it to the caller, which is free to ignore it.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInvalidIndex indicates a negative slot index on mutation.
	KindInvalidIndex
	// KindMissingSlot indicates mutation of an attribute of a slot that was never enabled.
	KindMissingSlot
	// KindPortRange indicates a port query outside the port cache.
	KindPortRange
	// KindProperty indicates a malformed property path or value.
	KindProperty
	// KindConfig indicates a theme or scene loading error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidIndex:
		return "invalid_index"
	case KindMissingSlot:
		return "missing_slot"
	case KindPortRange:
		return "port_range"
	case KindProperty:
		return "property"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinel causes wrapped by NodeError.
var (
	ErrNegativeIndex   = stderrors.New("slot index is lesser than zero")
	ErrSlotNotEnabled  = stderrors.New("slot hasn't been enabled")
	ErrPortOutOfRange  = stderrors.New("port index out of range")
	ErrUnknownProperty = stderrors.New("unknown property")
	ErrInvalidValue    = stderrors.New("invalid property value")
)

// NodeError represents a structured error raised by a graph node.
type NodeError struct {
	// Op is the operation that failed (e.g., "graphnode.SetSlotTypeLeft").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Node is the name of the graph node, if known.
	Node string
	// Index is the slot or port index involved, or -1.
	Index int
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *NodeError) Error() string {
	if e.Node != "" {
		return fmt.Sprintf("%s [%s] node=%s index=%d: %v", e.Op, e.Kind, e.Node, e.Index, e.Err)
	}
	return fmt.Sprintf("%s [%s] index=%d: %v", e.Op, e.Kind, e.Index, e.Err)
}

func (e *NodeError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "graphnode.HandleKeyEvent").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by graph nodes.
type ErrorHandler interface {
	// HandleError is called when an operation fails.
	HandleError(err *NodeError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}
