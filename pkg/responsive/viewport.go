// Package responsive provides media-query-driven widget activation: the
// viewport observable, media query matching, breakpoint parsing, and the
// controller that calls a widget's init/destroy as breakpoints cross.
package responsive

// Viewport is an observable viewport size. The showcase feeds terminal
// resizes into it; tests script it directly.
type Viewport struct {
	width, height int

	listeners      map[int]func(width, height int)
	nextListenerID int
}

// NewViewport creates a viewport with the given initial size.
func NewViewport(width, height int) *Viewport {
	return &Viewport{
		width:     width,
		height:    height,
		listeners: make(map[int]func(int, int)),
	}
}

// Width returns the current viewport width in pixels.
func (v *Viewport) Width() int { return v.width }

// Height returns the current viewport height in pixels.
func (v *Viewport) Height() int { return v.height }

// Resize updates the viewport size and notifies every listener. Listeners
// are notified even when the size is unchanged; consumers throttle.
func (v *Viewport) Resize(width, height int) {
	v.width = width
	v.height = height
	for _, fn := range v.listeners {
		fn(width, height)
	}
}

// Listen registers a resize listener and returns its unsubscribe function.
func (v *Viewport) Listen(fn func(width, height int)) (remove func()) {
	id := v.nextListenerID
	v.nextListenerID++
	v.listeners[id] = fn
	return func() {
		delete(v.listeners, id)
	}
}
