// Package anim defines the animation port used for open/close transitions
// and provides the default implementations.
//
// Animation is cosmetic: widgets apply their logical state (the ARIA
// attributes) before requesting a transition, so the exposed state is
// consistent while a slide is in flight. Implementations must invoke the
// completion callback exactly once, on the same tick model as the rest of
// the engine.
package anim

import (
	"time"

	"github.com/go-aria/aria/pkg/dom"
)

// DefaultDuration is the slide duration used when a widget configures
// animation without an explicit duration.
const DefaultDuration = 350 * time.Millisecond

// Animator is the animation port: it slides an element open or closed and
// reports completion.
type Animator interface {
	// SlideDown reveals the element over the given duration, then calls
	// onComplete exactly once.
	SlideDown(el *dom.Element, d time.Duration, onComplete func())
	// SlideUp hides the element over the given duration, then calls
	// onComplete exactly once.
	SlideUp(el *dom.Element, d time.Duration, onComplete func())
}

// Immediate is an Animator that applies the final visual state and
// completes synchronously. It is the fallback when no real animation is
// wanted.
type Immediate struct{}

// SlideDown implements Animator.
func (Immediate) SlideDown(el *dom.Element, _ time.Duration, onComplete func()) {
	finishDown(el)
	if onComplete != nil {
		onComplete()
	}
}

// SlideUp implements Animator.
func (Immediate) SlideUp(el *dom.Element, _ time.Duration, onComplete func()) {
	finishUp(el)
	if onComplete != nil {
		onComplete()
	}
}

// Slide is a scheduler-driven Animator. While a transition is in flight the
// element carries a data-animating attribute; the final visual state is
// applied when the duration elapses. Restarting a slide on an element whose
// previous slide has not completed cancels the pending completion, so
// onComplete never fires for a superseded transition.
type Slide struct {
	scheduler dom.Scheduler
	pending   map[*dom.Element]func()
}

// NewSlide creates a Slide animator on the given scheduler.
func NewSlide(scheduler dom.Scheduler) *Slide {
	return &Slide{
		scheduler: scheduler,
		pending:   make(map[*dom.Element]func()),
	}
}

// SlideDown implements Animator.
func (s *Slide) SlideDown(el *dom.Element, d time.Duration, onComplete func()) {
	s.start(el, d, "down", func() {
		finishDown(el)
		if onComplete != nil {
			onComplete()
		}
	})
}

// SlideUp implements Animator.
func (s *Slide) SlideUp(el *dom.Element, d time.Duration, onComplete func()) {
	s.start(el, d, "up", func() {
		finishUp(el)
		if onComplete != nil {
			onComplete()
		}
	})
}

func (s *Slide) start(el *dom.Element, d time.Duration, direction string, finish func()) {
	if cancel := s.pending[el]; cancel != nil {
		cancel()
	}
	el.SetAttribute("data-animating", direction)
	s.pending[el] = s.scheduler.After(d, func() {
		delete(s.pending, el)
		el.RemoveAttribute("data-animating")
		finish()
	})
}

func finishDown(el *dom.Element) {
	el.RemoveStyle("display")
}

func finishUp(el *dom.Element) {
	el.SetStyle("display", "none")
}
