// Package scrolllock provides the scroll-lock port: containment of document
// scrolling while a modal-like disclosure is open.
package scrolllock

import "github.com/go-aria/aria/pkg/dom"

// LockedAttr marks the body while at least one holder owns a lock.
const LockedAttr = "data-scroll-locked"

// Locker is the scroll-lock port. Acquire and Release are idempotent per
// holder: acquiring twice for the same element is one hold, and releasing a
// hold that was never acquired is a no-op.
type Locker interface {
	Acquire(holder *dom.Element)
	Release(holder *dom.Element)
}

// Lock scroll-locks a document body by projecting overflow:hidden and the
// LockedAttr attribute while any holder remains.
type Lock struct {
	body    *dom.Element
	holders map[*dom.Element]struct{}
}

// New creates a Lock for the given body element.
func New(body *dom.Element) *Lock {
	return &Lock{
		body:    body,
		holders: make(map[*dom.Element]struct{}),
	}
}

// Acquire adds a hold for the element.
func (l *Lock) Acquire(holder *dom.Element) {
	if holder == nil {
		return
	}
	if _, ok := l.holders[holder]; ok {
		return
	}
	l.holders[holder] = struct{}{}
	if len(l.holders) == 1 {
		l.body.SetStyle("overflow", "hidden")
		l.body.SetAttribute(LockedAttr, "true")
	}
}

// Release drops the element's hold.
func (l *Lock) Release(holder *dom.Element) {
	if holder == nil {
		return
	}
	if _, ok := l.holders[holder]; !ok {
		return
	}
	delete(l.holders, holder)
	if len(l.holders) == 0 {
		l.body.RemoveStyle("overflow")
		l.body.RemoveAttribute(LockedAttr)
	}
}

// Held reports whether any holder currently owns the lock.
func (l *Lock) Held() bool {
	return len(l.holders) > 0
}
