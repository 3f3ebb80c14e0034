package responsive

import "fmt"

// MediaQuery is the breakpoint observable consumed by the engine. The
// engine never owns a query's lifecycle; it only reads the current match
// and subscribes to change notifications.
type MediaQuery interface {
	// Media returns the query text, e.g. "(min-width: 768px)".
	Media() string
	// Matches reports whether the query is currently satisfied.
	Matches() bool
	// Listen registers a notification callback invoked with the current
	// match whenever the underlying source changes. The returned function
	// unsubscribes.
	Listen(fn func(matches bool)) (remove func())
}

// ViewportQuery is a MediaQuery evaluated against a Viewport. Only
// min-width/max-width query text is supported.
type ViewportQuery struct {
	viewport *Viewport
	media    string
	bp       Breakpoint
}

// NewQuery builds a MediaQuery from media text and a viewport. It returns
// an error for text it cannot evaluate.
func NewQuery(viewport *Viewport, media string) (*ViewportQuery, error) {
	bp, ok := ParseBreakpoint(media)
	if !ok {
		return nil, fmt.Errorf("responsive: unsupported media query %q", media)
	}
	return &ViewportQuery{viewport: viewport, media: media, bp: bp}, nil
}

// MustQuery is NewQuery for statically known media text; it panics on
// unparseable input.
func MustQuery(viewport *Viewport, media string) *ViewportQuery {
	q, err := NewQuery(viewport, media)
	if err != nil {
		panic(err)
	}
	return q
}

// Media returns the query text.
func (q *ViewportQuery) Media() string { return q.media }

// Matches evaluates the query against the current viewport width.
func (q *ViewportQuery) Matches() bool {
	return q.bp.Matches(float64(q.viewport.Width()))
}

// Listen notifies on every viewport resize with the current match value.
func (q *ViewportQuery) Listen(fn func(matches bool)) (remove func()) {
	return q.viewport.Listen(func(int, int) {
		fn(q.Matches())
	})
}
