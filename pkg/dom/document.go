package dom

// Document owns an element tree, the id index, focus tracking, and the
// scheduler used for deferred callbacks.
type Document struct {
	root   *Element
	byID   map[string][]*Element
	active *Element

	listeners      map[EventType]map[int]Handler
	nextListenerID int

	scheduler Scheduler
}

// NewDocument creates an empty document with a "body" root element and a
// real-time scheduler.
func NewDocument() *Document {
	doc := &Document{
		byID:      make(map[string][]*Element),
		listeners: make(map[EventType]map[int]Handler),
		scheduler: TimerScheduler{},
	}
	doc.root = doc.CreateElement("body")
	return doc
}

// Root returns the document's root (body) element.
func (d *Document) Root() *Element { return d.root }

// Scheduler returns the document's scheduler.
func (d *Document) Scheduler() Scheduler { return d.scheduler }

// SetScheduler replaces the document's scheduler. Intended for tests and
// embedders that drive their own event loop.
func (d *Document) SetScheduler(s Scheduler) {
	if s != nil {
		d.scheduler = s
	}
}

// After schedules fn on the document scheduler.
func (d *Document) After(ms int64, fn func()) (cancel func()) {
	return d.scheduler.After(millis(ms), fn)
}

// CreateElement returns a new detached element owned by this document.
func (d *Document) CreateElement(tag string) *Element {
	return &Element{
		doc:    d,
		tag:    lower(tag),
		attrs:  make(map[string]string),
		styles: make(map[string]string),
	}
}

// ElementByID returns the element with the given id, or nil. When duplicate
// ids exist (invalid markup), the first registered wins.
func (d *Document) ElementByID(id string) *Element {
	els := d.byID[id]
	if len(els) == 0 {
		return nil
	}
	return els[0]
}

// HasID reports whether any element carries the given id.
func (d *Document) HasID(id string) bool {
	return len(d.byID[id]) > 0
}

func (d *Document) indexID(id string, el *Element) {
	if id == "" {
		return
	}
	d.byID[id] = append(d.byID[id], el)
}

func (d *Document) unindexID(id string, el *Element) {
	els := d.byID[id]
	for i, e := range els {
		if e == el {
			els = append(els[:i], els[i+1:]...)
			break
		}
	}
	if len(els) == 0 {
		delete(d.byID, id)
	} else {
		d.byID[id] = els
	}
}

// QuerySelector returns the first element in the document matching the
// selector, or nil.
func (d *Document) QuerySelector(sel string) *Element {
	return d.root.QuerySelector(sel)
}

// QuerySelectorAll returns all elements in the document matching the
// selector, in document order.
func (d *Document) QuerySelectorAll(sel string) []*Element {
	return d.root.QuerySelectorAll(sel)
}

// AddListener registers a document-level handler. Document-level handlers
// run after the target and its ancestors, unless propagation was stopped.
// The returned function removes the listener.
func (d *Document) AddListener(t EventType, fn Handler) (remove func()) {
	m := d.listeners[t]
	if m == nil {
		m = make(map[int]Handler)
		d.listeners[t] = m
	}
	id := d.nextListenerID
	d.nextListenerID++
	m[id] = fn
	return func() {
		delete(m, id)
	}
}

// ListenerCount returns the number of document-level handlers for the given
// event type.
func (d *Document) ListenerCount(t EventType) int {
	return len(d.listeners[t])
}

// Dispatch delivers the event to its target, the target's ancestors, and
// finally the document-level listeners. It returns the event so callers can
// inspect DefaultPrevented.
func (d *Document) Dispatch(e *Event) *Event {
	if e.Target != nil {
		for n := e.Target; n != nil; n = n.parent {
			n.dispatch(e)
			if e.propagationStopped {
				return e
			}
		}
	}
	m := d.listeners[e.Type]
	if len(m) == 0 {
		return e
	}
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sortInts(ids)
	for _, id := range ids {
		if fn, ok := m[id]; ok {
			fn(e)
		}
	}
	return e
}

// Click synthesizes a click event on the element.
func (d *Document) Click(el *Element) *Event {
	return d.Dispatch(&Event{Type: EventClick, Target: el})
}

// ActiveElement returns the currently focused element, or nil.
func (d *Document) ActiveElement() *Element { return d.active }

// Focus moves focus to el, dispatching blur on the previously focused
// element and focus on el. Focusing the active element is a no-op.
func (d *Document) Focus(el *Element) {
	if d.active == el {
		return
	}
	prev := d.active
	d.active = el
	if prev != nil {
		d.Dispatch(&Event{Type: EventBlur, Target: prev})
	}
	if el != nil {
		d.Dispatch(&Event{Type: EventFocus, Target: el})
	}
}

// Blur removes focus from el if it is the active element.
func (d *Document) Blur(el *Element) {
	if d.active != el || el == nil {
		return
	}
	d.active = nil
	d.Dispatch(&Event{Type: EventBlur, Target: el})
}

// DispatchKey synthesizes a keydown event targeted at the active element
// (or the root when nothing is focused) and returns it so callers can check
// DefaultPrevented.
func (d *Document) DispatchKey(key string) *Event {
	target := d.active
	if target == nil {
		target = d.root
	}
	return d.Dispatch(&Event{Type: EventKeydown, Target: target, Key: key})
}

func lower(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
