package dom

import "strings"

// focusableTags are tags that can receive focus without an explicit tabindex.
var focusableTags = map[string]bool{
	"a":        true,
	"button":   true,
	"input":    true,
	"select":   true,
	"textarea": true,
}

// Element is a node in the document tree. Elements hold a tag name,
// attributes, inline styles, text content, children, and event listeners.
//
// Elements are not safe for concurrent use; see the package comment.
type Element struct {
	doc      *Document
	tag      string
	parent   *Element
	children []*Element
	text     string

	attrs  map[string]string
	styles map[string]string

	listeners      map[EventType]map[int]Handler
	nextListenerID int
}

// Tag returns the element's tag name, always lower case.
func (el *Element) Tag() string { return el.tag }

// Document returns the owning document.
func (el *Element) Document() *Document { return el.doc }

// Parent returns the parent element, or nil for the root and detached nodes.
func (el *Element) Parent() *Element { return el.parent }

// Children returns the child elements in document order. The returned slice
// is the element's own; callers must not mutate it.
func (el *Element) Children() []*Element { return el.children }

// AppendChild attaches child as the last child of el. A child already
// attached elsewhere is detached first.
func (el *Element) AppendChild(child *Element) {
	if child == nil || child == el {
		return
	}
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = el
	el.children = append(el.children, child)
}

func (el *Element) removeChild(child *Element) {
	for i, c := range el.children {
		if c == child {
			el.children = append(el.children[:i], el.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Remove detaches el from its parent.
func (el *Element) Remove() {
	if el.parent != nil {
		el.parent.removeChild(el)
	}
}

// Text returns the element's text content.
func (el *Element) Text() string { return el.text }

// SetText replaces the element's text content.
func (el *Element) SetText(s string) { el.text = s }

// ID returns the element's id attribute.
func (el *Element) ID() string { return el.attrs["id"] }

// SetID sets the element's id and updates the document id index.
func (el *Element) SetID(id string) {
	el.SetAttribute("id", id)
}

// Attribute returns the value of the named attribute and whether it is set.
func (el *Element) Attribute(name string) (string, bool) {
	v, ok := el.attrs[name]
	return v, ok
}

// Attr returns the value of the named attribute, or "" when unset.
func (el *Element) Attr(name string) string { return el.attrs[name] }

// HasAttribute reports whether the named attribute is set.
func (el *Element) HasAttribute(name string) bool {
	_, ok := el.attrs[name]
	return ok
}

// SetAttribute sets the named attribute. Setting "id" keeps the document
// id index current.
func (el *Element) SetAttribute(name, value string) {
	if name == "id" {
		if old, ok := el.attrs["id"]; ok {
			el.doc.unindexID(old, el)
		}
		el.doc.indexID(value, el)
	}
	el.attrs[name] = value
}

// RemoveAttribute removes the named attribute. Removing an unset attribute
// is a no-op.
func (el *Element) RemoveAttribute(name string) {
	if name == "id" {
		if old, ok := el.attrs["id"]; ok {
			el.doc.unindexID(old, el)
		}
	}
	delete(el.attrs, name)
}

// Style returns the value of the named inline style, or "" when unset.
func (el *Element) Style(name string) string { return el.styles[name] }

// SetStyle sets an inline style value.
func (el *Element) SetStyle(name, value string) { el.styles[name] = value }

// RemoveStyle removes an inline style. Removing an unset style is a no-op.
func (el *Element) RemoveStyle(name string) { delete(el.styles, name) }

// Classes returns the element's class list.
func (el *Element) Classes() []string {
	c := el.attrs["class"]
	if c == "" {
		return nil
	}
	return strings.Fields(c)
}

// HasClass reports whether the element carries the given class.
func (el *Element) HasClass(class string) bool {
	for _, c := range el.Classes() {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass appends a class if not already present.
func (el *Element) AddClass(class string) {
	if el.HasClass(class) {
		return
	}
	c := el.attrs["class"]
	if c == "" {
		el.attrs["class"] = class
		return
	}
	el.attrs["class"] = c + " " + class
}

// AddListener registers a handler for the given event type on this element.
// The returned function removes the listener; calling it more than once is
// harmless.
func (el *Element) AddListener(t EventType, fn Handler) (remove func()) {
	if el.listeners == nil {
		el.listeners = make(map[EventType]map[int]Handler)
	}
	m := el.listeners[t]
	if m == nil {
		m = make(map[int]Handler)
		el.listeners[t] = m
	}
	id := el.nextListenerID
	el.nextListenerID++
	m[id] = fn
	return func() {
		delete(m, id)
	}
}

// ListenerCount returns the number of handlers registered for the given
// event type on this element.
func (el *Element) ListenerCount(t EventType) int {
	return len(el.listeners[t])
}

// Focusable reports whether the element can receive focus: it has a
// focusable tag or an explicit tabindex, and is not inside a hidden subtree.
func (el *Element) Focusable() bool {
	if !focusableTags[el.tag] && !el.HasAttribute("tabindex") {
		return false
	}
	for n := el; n != nil; n = n.parent {
		if n.Attr("aria-hidden") == "true" || n.Style("display") == "none" {
			return false
		}
	}
	return true
}

// FirstFocusableDescendant returns the first focusable element under el in
// document order, or nil when the subtree contains none.
func (el *Element) FirstFocusableDescendant() *Element {
	for _, child := range el.children {
		if child.Focusable() {
			return child
		}
		if found := child.FirstFocusableDescendant(); found != nil {
			return found
		}
	}
	return nil
}

// Contains reports whether other is el or a descendant of el.
func (el *Element) Contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == el {
			return true
		}
	}
	return false
}

// QuerySelector returns the first descendant matching the selector, or nil.
// Invalid selectors match nothing.
func (el *Element) QuerySelector(sel string) *Element {
	results := queryAll(el, sel, 1)
	if len(results) == 0 {
		return nil
	}
	return results[0]
}

// QuerySelectorAll returns every descendant matching the selector, in
// document order. Invalid selectors match nothing.
func (el *Element) QuerySelectorAll(sel string) []*Element {
	return queryAll(el, sel, -1)
}

// dispatch runs the element's own listeners for the event. Listeners are
// snapshotted so a handler removing itself (or a sibling) mid-dispatch does
// not skip entries.
func (el *Element) dispatch(e *Event) {
	m := el.listeners[e.Type]
	if len(m) == 0 {
		return
	}
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	// Listener ids are monotonically assigned; fire in registration order.
	sortInts(ids)
	for _, id := range ids {
		if fn, ok := m[id]; ok {
			fn(e)
		}
	}
}

func sortInts(a []int) {
	// Insertion sort; listener sets are tiny.
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j] < a[j-1]; j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}
