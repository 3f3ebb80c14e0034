package errors

import "github.com/go-aria/aria/pkg/logging"

// LogHandler is a Handler that forwards errors to the logging package.
type LogHandler struct {
	// Verbose enables stack traces for recovered panics.
	Verbose bool
}

// HandleError logs a WidgetError.
func (h *LogHandler) HandleError(err *WidgetError) {
	if err == nil {
		return
	}
	logging.Error(subsystemFor(err.Widget), err.Err, "%s [%s]", err.Op, err.Kind)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	if h.Verbose && err.StackTrace != "" {
		logging.Error("Panic", nil, "panic in %s: %v\n%s", err.Op, err.Value, err.StackTrace)
		return
	}
	logging.Error("Panic", nil, "panic in %s: %v", err.Op, err.Value)
}

func subsystemFor(widget string) string {
	switch widget {
	case "accordion":
		return logging.SubsystemAccordion
	case "toggle":
		return logging.SubsystemToggle
	case "tabs":
		return logging.SubsystemTabs
	default:
		return logging.SubsystemRegistry
	}
}
