package core

import "github.com/go-aria/aria/pkg/dom"

// ResolveAll resolves a construction-surface target to elements. A target
// may be:
//
//   - a selector string, resolved against the whole document
//   - a *dom.Element
//   - a []*dom.Element
//
// Anything else (including nil) resolves to no elements; lookup misses are
// not errors.
func ResolveAll(doc *dom.Document, target any) []*dom.Element {
	switch t := target.(type) {
	case string:
		if doc == nil {
			return nil
		}
		return doc.QuerySelectorAll(t)
	case *dom.Element:
		if t == nil {
			return nil
		}
		return []*dom.Element{t}
	case []*dom.Element:
		return t
	default:
		return nil
	}
}

// Resolve returns the first element the target resolves to, or nil.
func Resolve(doc *dom.Document, target any) *dom.Element {
	els := ResolveAll(doc, target)
	if len(els) == 0 {
		return nil
	}
	return els[0]
}
