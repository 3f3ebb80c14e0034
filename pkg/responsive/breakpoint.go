package responsive

import (
	"regexp"
	"strconv"
)

// Breakpoint is a numeric viewport threshold parsed from media query text.
type Breakpoint struct {
	// Px is the threshold in pixels.
	Px float64
	// Min reports whether the threshold is a min-width (true) or
	// max-width (false) constraint.
	Min bool
}

var breakpointRe = regexp.MustCompile(`(min|max)-width\s*:\s*([0-9]+(?:\.[0-9]+)?)\s*px`)

// ParseBreakpoint extracts a numeric breakpoint from media query text such
// as "(min-width: 768px)". The second return value is false when no
// breakpoint can be parsed; callers skip breakpoint tracking in that case
// rather than treating it as an error.
func ParseBreakpoint(media string) (Breakpoint, bool) {
	m := breakpointRe.FindStringSubmatch(media)
	if m == nil {
		return Breakpoint{}, false
	}
	px, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Breakpoint{}, false
	}
	return Breakpoint{Px: px, Min: m[1] == "min"}, true
}

// Matches evaluates the breakpoint against a viewport width.
func (b Breakpoint) Matches(width float64) bool {
	if b.Min {
		return width >= b.Px
	}
	return width <= b.Px
}
