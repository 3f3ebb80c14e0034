package showcase

import (
	"sort"
	"time"

	"github.com/go-aria/aria/pkg/dom"
)

// frameScheduler is a dom.Scheduler advanced from the bubbletea update loop,
// keeping every deferred callback on the program's single goroutine. Real
// timers would fire concurrently with Update and View, which the document
// model does not allow.
type frameScheduler struct {
	now    time.Duration
	nextID int
	timers map[int]*frameTimer
}

type frameTimer struct {
	id  int
	due time.Duration
	fn  func()
}

func newFrameScheduler() *frameScheduler {
	return &frameScheduler{timers: make(map[int]*frameTimer)}
}

// After implements dom.Scheduler.
func (s *frameScheduler) After(d time.Duration, fn func()) (cancel func()) {
	id := s.nextID
	s.nextID++
	s.timers[id] = &frameTimer{id: id, due: s.now + d, fn: fn}
	return func() {
		delete(s.timers, id)
	}
}

// step advances the clock by the frame interval and runs due callbacks in
// due order.
func (s *frameScheduler) step(d time.Duration) {
	target := s.now + d
	for {
		var due []*frameTimer
		for _, t := range s.timers {
			if t.due <= target {
				due = append(due, t)
			}
		}
		if len(due) == 0 {
			break
		}
		sort.Slice(due, func(i, j int) bool {
			if due[i].due != due[j].due {
				return due[i].due < due[j].due
			}
			return due[i].id < due[j].id
		})
		next := due[0]
		s.now = next.due
		delete(s.timers, next.id)
		next.fn()
	}
	s.now = target
}

var _ dom.Scheduler = (*frameScheduler)(nil)
