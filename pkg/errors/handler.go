package errors

import (
	"runtime"
	"sync"
	"time"
)

// Handler receives engine errors and recovered panics.
type Handler interface {
	HandleError(*WidgetError)
	HandlePanic(*PanicError)
}

var (
	handlerMu sync.RWMutex

	// defaultHandler is the global error handler, a LogHandler by default.
	defaultHandler Handler = &LogHandler{}
)

// SetHandler configures the global error handler.
// Pass nil to restore the default LogHandler.
func SetHandler(h Handler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		defaultHandler = &LogHandler{}
	} else {
		defaultHandler = h
	}
}

func getHandler() Handler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return defaultHandler
}

// Report sends an error to the global handler.
// If err.Timestamp is zero, it is set to the current time.
func Report(err *WidgetError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	getHandler().HandleError(err)
}

// ReportPanic sends a recovered panic to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	getHandler().HandlePanic(err)
}

// Recover is a helper for deferred panic recovery around consumer callbacks.
// Usage: defer errors.Recover("accordion.onOpen")
func Recover(op string) {
	if r := recover(); r != nil {
		buf := make([]byte, 16*1024)
		n := runtime.Stack(buf, false)
		ReportPanic(&PanicError{
			Op:         op,
			Value:      r,
			StackTrace: string(buf[:n]),
		})
	}
}

// Guard invokes fn with panic recovery. A nil fn is a no-op.
func Guard(op string, fn func()) {
	if fn == nil {
		return
	}
	defer Recover(op)
	fn()
}
