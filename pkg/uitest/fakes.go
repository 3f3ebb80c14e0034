package uitest

import (
	"time"

	"github.com/go-aria/aria/pkg/dom"
)

// AnimCall records one animation port invocation.
type AnimCall struct {
	Dir string // "down" or "up"
	El  *dom.Element
	D   time.Duration
}

// RecordingAnimator records slide requests and lets the test decide when
// completions fire. With Sync set, completions fire immediately.
type RecordingAnimator struct {
	Sync  bool
	Calls []AnimCall

	pending []func()
}

func (r *RecordingAnimator) SlideDown(el *dom.Element, d time.Duration, onComplete func()) {
	r.record("down", el, d, onComplete, func() { el.RemoveStyle("display") })
}

func (r *RecordingAnimator) SlideUp(el *dom.Element, d time.Duration, onComplete func()) {
	r.record("up", el, d, onComplete, func() { el.SetStyle("display", "none") })
}

func (r *RecordingAnimator) record(dir string, el *dom.Element, d time.Duration, onComplete, finish func()) {
	r.Calls = append(r.Calls, AnimCall{Dir: dir, El: el, D: d})
	complete := func() {
		finish()
		if onComplete != nil {
			onComplete()
		}
	}
	if r.Sync {
		complete()
		return
	}
	r.pending = append(r.pending, complete)
}

// FinishAll fires every pending completion callback in request order.
func (r *RecordingAnimator) FinishAll() {
	pending := r.pending
	r.pending = nil
	for _, fn := range pending {
		fn()
	}
}

// PendingCount returns the number of unfired completions.
func (r *RecordingAnimator) PendingCount() int {
	return len(r.pending)
}

// RecordingLocker counts scroll-lock port calls while tracking holders
// idempotently.
type RecordingLocker struct {
	Acquires int
	Releases int

	holders map[*dom.Element]struct{}
}

func (l *RecordingLocker) Acquire(holder *dom.Element) {
	l.Acquires++
	if l.holders == nil {
		l.holders = make(map[*dom.Element]struct{})
	}
	l.holders[holder] = struct{}{}
}

func (l *RecordingLocker) Release(holder *dom.Element) {
	l.Releases++
	delete(l.holders, holder)
}

// Held reports whether any holder currently owns the lock.
func (l *RecordingLocker) Held() bool {
	return len(l.holders) > 0
}
