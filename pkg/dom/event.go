package dom

// EventType identifies a class of events.
type EventType string

const (
	// EventClick is an activation event on an element.
	EventClick EventType = "click"
	// EventFocus fires when an element gains focus.
	EventFocus EventType = "focus"
	// EventBlur fires when an element loses focus.
	EventBlur EventType = "blur"
	// EventKeydown fires for a key press, targeted at the active element.
	EventKeydown EventType = "keydown"
)

// Key names used by keydown events.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyHome       = "Home"
	KeyEnd        = "End"
	KeyEnter      = "Enter"
	KeySpace      = " "
	KeyEscape     = "Escape"
)

// Event carries the details of a dispatched event. Events are delivered
// synchronously; handlers run to completion before Dispatch returns.
type Event struct {
	// Type is the event class.
	Type EventType
	// Target is the element the event was dispatched at.
	Target *Element
	// Key is the key name for keydown events, empty otherwise.
	Key string

	defaultPrevented   bool
	propagationStopped bool
}

// PreventDefault marks the event consumed. The event keeps propagating;
// later handlers can check DefaultPrevented to avoid double-handling.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether any handler consumed the event.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// StopPropagation prevents the event from reaching ancestor and
// document-level listeners.
func (e *Event) StopPropagation() {
	e.propagationStopped = true
}

// Handler is an event callback.
type Handler func(*Event)
