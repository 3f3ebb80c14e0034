package widgets

import (
	"strconv"

	"github.com/go-aria/aria/pkg/dom"
)

// Attribute names the widgets read and write. Together with id/data-id and
// the inline display style these are the wire format observed by
// accessibility tooling; they must match exactly.
const (
	ariaControls   = "aria-controls"
	ariaLabelledBy = "aria-labelledby"
	ariaExpanded   = "aria-expanded"
	ariaHidden     = "aria-hidden"
	ariaSelected   = "aria-selected"
)

func setExpanded(trigger *dom.Element, expanded bool) {
	trigger.SetAttribute(ariaExpanded, strconv.FormatBool(expanded))
}

func isExpanded(trigger *dom.Element) bool {
	return trigger.Attr(ariaExpanded) == "true"
}

func setHidden(panel *dom.Element, hidden bool) {
	panel.SetAttribute(ariaHidden, strconv.FormatBool(hidden))
}

func isHidden(panel *dom.Element) bool {
	return panel.Attr(ariaHidden) == "true"
}
