// Package errors provides structured error reporting for the widget engine.
//
// Engine operations never panic and never report failure by throwing: init
// returns false, lookups return absent values, and selector misses degrade
// to no-ops. This package is the channel through which those conditions (and
// panics recovered from consumer callbacks) are surfaced to a handler for
// logging or collection.
package errors

import (
	"fmt"
	"time"
)

// Kind identifies the category of a widget error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindConfig indicates an unusable widget configuration, such as a
	// toggle with no resolvable target and no click callback.
	KindConfig
	// KindSelector indicates a selector that matched nothing where a match
	// was expected.
	KindSelector
	// KindAnimation indicates an animation port failure.
	KindAnimation
	// KindPanic indicates a panic recovered from a consumer callback.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindSelector:
		return "selector"
	case KindAnimation:
		return "animation"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// WidgetError is a structured error raised by the widget engine.
type WidgetError struct {
	// Op is the operation that failed (e.g. "toggle.Init").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Widget is the widget family, if applicable.
	Widget string
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *WidgetError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *WidgetError) Unwrap() error {
	return e.Err
}

// PanicError represents a panic recovered from a consumer callback.
type PanicError struct {
	// Op is the operation that panicked (e.g. "accordion.onOpen").
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
