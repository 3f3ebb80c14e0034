// Package dom provides a minimal single-threaded document model for
// attaching widget behavior to existing markup.
//
// The package is deliberately small: it models only what the widget engine
// needs — an element tree with attributes and inline styles, simple selector
// queries, synchronous bubbling event dispatch, focus tracking, and a
// pluggable scheduler for short deferred callbacks.
//
// # Elements and Documents
//
// A Document owns a root element (the body) and an id index. Elements are
// created through the document and attached with AppendChild:
//
//	doc := dom.NewDocument()
//	section := doc.CreateElement("section")
//	doc.Root().AppendChild(section)
//
// # Events
//
// Dispatch is synchronous and runs to completion before the caller regains
// control: target listeners fire first, then listeners on each ancestor,
// then document-level listeners. StopPropagation halts the walk;
// PreventDefault marks the event consumed without stopping it, so later
// handlers can still observe that another handler claimed the event.
//
// # Threading
//
// Everything in this package assumes a single goroutine. All mutation is
// expected to happen inside event handlers or scheduler callbacks, in the
// manner of a browser event loop.
package dom
