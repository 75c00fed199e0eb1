package errors

import (
	"os"

	"github.com/charmbracelet/log"
)

// LogHandler is an ErrorHandler that writes diagnostics to a structured logger.
type LogHandler struct {
	// Logger receives the diagnostics.
	Logger *log.Logger
	// Verbose enables stack traces in the output.
	Verbose bool
}

// NewLogHandler returns a handler writing to logger, or to a stderr logger
// when logger is nil.
func NewLogHandler(logger *log.Logger) *LogHandler {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "nodegraph"})
	}
	return &LogHandler{Logger: logger}
}

// HandleError logs a NodeError as a warning with its fields as key/values.
func (h *LogHandler) HandleError(err *NodeError) {
	if err == nil {
		return
	}
	kv := []any{"op", err.Op, "kind", err.Kind.String(), "index", err.Index}
	if err.Node != "" {
		kv = append(kv, "node", err.Node)
	}
	if h.Verbose && err.StackTrace != "" {
		kv = append(kv, "stack", err.StackTrace)
	}
	h.Logger.Warn(err.Err, kv...)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	kv := []any{"op", err.Op}
	if h.Verbose && err.StackTrace != "" {
		kv = append(kv, "stack", err.StackTrace)
	}
	h.Logger.Error(err.Value, kv...)
}
