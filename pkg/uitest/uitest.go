// Package uitest provides the deterministic harness the widget tests are
// built on: a manual scheduler in place of real timers, markup builders for
// the widget families, and recording fakes for the animation and
// scroll-lock ports.
package uitest

import (
	"sort"
	"time"

	"github.com/go-aria/aria/pkg/dom"
)

// ManualScheduler is a dom.Scheduler driven by explicit Advance calls,
// giving tests full control over blur delays, throttling windows, and
// animation completion.
type ManualScheduler struct {
	now    time.Duration
	nextID int
	timers map[int]*timer
}

type timer struct {
	id  int
	due time.Duration
	fn  func()
}

// NewScheduler returns a ManualScheduler at time zero.
func NewScheduler() *ManualScheduler {
	return &ManualScheduler{timers: make(map[int]*timer)}
}

// After implements dom.Scheduler.
func (s *ManualScheduler) After(d time.Duration, fn func()) (cancel func()) {
	id := s.nextID
	s.nextID++
	s.timers[id] = &timer{id: id, due: s.now + d, fn: fn}
	return func() {
		delete(s.timers, id)
	}
}

// Advance moves the clock forward by d and runs every timer that comes due,
// in due order (registration order breaks ties). Callbacks scheduling new
// timers within the window are honored.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		s.now = next.due
		delete(s.timers, next.id)
		next.fn()
	}
	s.now = target
}

func (s *ManualScheduler) nextDue(limit time.Duration) *timer {
	var due []*timer
	for _, t := range s.timers {
		if t.due <= limit {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].id < due[j].id
	})
	return due[0]
}

// Pending returns the number of scheduled, not-yet-fired timers.
func (s *ManualScheduler) Pending() int {
	return len(s.timers)
}

// NewDoc returns an empty document on a manual scheduler.
func NewDoc() (*dom.Document, *ManualScheduler) {
	doc := dom.NewDocument()
	sched := NewScheduler()
	doc.SetScheduler(sched)
	return doc, sched
}
