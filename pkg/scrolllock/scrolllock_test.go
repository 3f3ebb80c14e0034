package scrolllock_test

import (
	"testing"

	"github.com/go-aria/aria/pkg/dom"
	"github.com/go-aria/aria/pkg/scrolllock"
)

func TestLock_ProjectsWhileHeld(t *testing.T) {
	doc := dom.NewDocument()
	body := doc.Root()
	a := doc.CreateElement("div")
	b := doc.CreateElement("div")
	body.AppendChild(a)
	body.AppendChild(b)

	lock := scrolllock.New(body)
	if lock.Held() {
		t.Fatal("fresh lock held")
	}

	lock.Acquire(a)
	if body.Style("overflow") != "hidden" || body.Attr(scrolllock.LockedAttr) != "true" {
		t.Fatal("lock not projected onto body")
	}

	lock.Acquire(b)
	lock.Release(a)
	if body.Style("overflow") != "hidden" {
		t.Error("lock dropped while another holder remains")
	}

	lock.Release(b)
	if body.Style("overflow") != "" || body.HasAttribute(scrolllock.LockedAttr) {
		t.Error("lock not cleared after last release")
	}
	if lock.Held() {
		t.Error("Held after all releases")
	}
}

func TestLock_IdempotentPerHolder(t *testing.T) {
	doc := dom.NewDocument()
	body := doc.Root()
	a := doc.CreateElement("div")
	body.AppendChild(a)

	lock := scrolllock.New(body)
	lock.Acquire(a)
	lock.Acquire(a)
	lock.Release(a)
	if lock.Held() {
		t.Error("double acquire counted as two holds")
	}
	if body.Style("overflow") != "" {
		t.Error("body still locked after release")
	}

	// Releasing without a hold is a no-op.
	lock.Release(a)
	lock.Acquire(nil)
	lock.Release(nil)
	if lock.Held() {
		t.Error("nil holder acquired a lock")
	}
}
