package responsive_test

import (
	"testing"
	"time"

	"github.com/go-aria/aria/pkg/responsive"
	"github.com/go-aria/aria/pkg/uitest"
)

// harness drives a controller against a scripted viewport and records every
// lifecycle and crossing callback in order.
type harness struct {
	vp     *responsive.Viewport
	sched  *uitest.ManualScheduler
	ctrl   *responsive.Controller
	active bool
	events []string
}

func newHarness(t *testing.T, width int, media string) *harness {
	t.Helper()
	h := &harness{
		vp:    responsive.NewViewport(width, 600),
		sched: uitest.NewScheduler(),
	}
	var query responsive.MediaQuery
	if media != "" {
		query = responsive.MustQuery(h.vp, media)
	}
	h.ctrl = responsive.NewController(responsive.Config{
		Query:     query,
		Scheduler: h.sched,
		OnReachBreakpoint: func(matches bool) {
			if matches {
				h.events = append(h.events, "cross:true")
			} else {
				h.events = append(h.events, "cross:false")
			}
		},
		Init: func() {
			h.active = true
			h.events = append(h.events, "init")
		},
		Destroy: func() {
			h.active = false
			h.events = append(h.events, "destroy")
		},
		Active: func() bool { return h.active },
	})
	return h
}

// resize scripts one viewport change and drains the throttle window so each
// change is observed individually.
func (h *harness) resize(width int) {
	h.vp.Resize(width, 600)
	h.sched.Advance(responsive.DefaultThrottle)
}

func (h *harness) check(t *testing.T, want ...string) {
	t.Helper()
	if len(h.events) != len(want) {
		t.Fatalf("events = %v, want %v", h.events, want)
	}
	for i := range want {
		if h.events[i] != want[i] {
			t.Fatalf("events = %v, want %v", h.events, want)
		}
	}
}

func TestController_NilQueryInitsImmediately(t *testing.T) {
	h := &harness{sched: uitest.NewScheduler()}
	responsive.NewController(responsive.Config{
		Scheduler: h.sched,
		Init: func() {
			h.active = true
			h.events = append(h.events, "init")
		},
		Active: func() bool { return h.active },
	})
	h.check(t, "init")
}

func TestController_InitialEvaluationNeverCrosses(t *testing.T) {
	h := newHarness(t, 800, "(min-width: 768px)")
	// Matching at construction: init, no crossing.
	h.check(t, "init")

	h2 := newHarness(t, 500, "(min-width: 768px)")
	// Not matching at construction: nothing at all.
	h2.check(t)
}

func TestController_ResizesOnSameSideFireNothing(t *testing.T) {
	h := newHarness(t, 800, "(min-width: 768px)")
	h.resize(900)
	h.resize(1000)
	h.check(t, "init")
}

func TestController_CrossingFiresOncePerTransition(t *testing.T) {
	h := newHarness(t, 800, "(min-width: 768px)")
	h.resize(700)
	h.check(t, "init", "cross:false", "destroy")

	h.resize(650)
	h.check(t, "init", "cross:false", "destroy")

	h.resize(900)
	h.check(t, "init", "cross:false", "destroy", "cross:true", "init")
}

func TestController_CrossingPrecedesLifecycle(t *testing.T) {
	h := newHarness(t, 800, "(min-width: 768px)")
	h.resize(700)
	// The crossing callback must land before destroy on the same
	// notification, and before init on the way back.
	h.check(t, "init", "cross:false", "destroy")
	h.resize(800)
	h.check(t, "init", "cross:false", "destroy", "cross:true", "init")
}

func TestController_ThrottleCollapsesBurst(t *testing.T) {
	h := newHarness(t, 800, "(min-width: 768px)")

	// Leading edge evaluates the first resize; the rest of the burst folds
	// into a single trailing evaluation at the final width.
	h.vp.Resize(700, 600)
	h.vp.Resize(760, 600)
	h.vp.Resize(900, 600)
	h.check(t, "init", "cross:false", "destroy")

	h.sched.Advance(responsive.DefaultThrottle)
	h.check(t, "init", "cross:false", "destroy", "cross:true", "init")
}

func TestController_BurstEndingOnSameSideSettlesQuietly(t *testing.T) {
	h := newHarness(t, 800, "(min-width: 768px)")
	h.vp.Resize(900, 600)
	h.vp.Resize(1000, 600)
	h.sched.Advance(responsive.DefaultThrottle)
	h.check(t, "init")
}

func TestController_CloseStopsNotifications(t *testing.T) {
	h := newHarness(t, 800, "(min-width: 768px)")
	h.ctrl.Close()
	h.ctrl.Close()
	h.resize(700)
	h.check(t, "init")
	if h.sched.Pending() != 0 {
		t.Errorf("pending timers after Close = %d", h.sched.Pending())
	}
}

func TestController_CustomThrottleWindow(t *testing.T) {
	vp := responsive.NewViewport(800, 600)
	sched := uitest.NewScheduler()
	var evals []bool
	responsive.NewController(responsive.Config{
		Query:     responsive.MustQuery(vp, "(min-width: 768px)"),
		Scheduler: sched,
		Throttle:  250 * time.Millisecond,
		OnReachBreakpoint: func(matches bool) {
			evals = append(evals, matches)
		},
	})

	vp.Resize(700, 600)
	vp.Resize(800, 600)
	sched.Advance(100 * time.Millisecond)
	if len(evals) != 1 {
		t.Fatalf("trailing evaluation ran before the window closed: %v", evals)
	}
	sched.Advance(150 * time.Millisecond)
	if len(evals) != 2 || evals[1] != true {
		t.Fatalf("evals = %v, want [false true]", evals)
	}
}
