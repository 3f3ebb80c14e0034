package responsive

import (
	"time"

	"github.com/go-aria/aria/pkg/dom"
	"github.com/go-aria/aria/pkg/logging"
)

// DefaultThrottle bounds how often a burst of resize notifications is
// re-evaluated.
const DefaultThrottle = 100 * time.Millisecond

// matchState is the tri-state crossing tracker: unknown until the first
// evaluation, then the last observed match.
type matchState int

const (
	matchUnknown matchState = iota
	matchNo
	matchYes
)

// Config configures a Controller.
type Config struct {
	// Query gates the widget's active state. A nil Query means the widget
	// is active unconditionally from construction.
	Query MediaQuery

	// Scheduler carries the throttle's trailing evaluation. Required when
	// Query is set.
	Scheduler dom.Scheduler

	// Throttle is the minimum spacing between evaluations of a
	// notification burst. Zero means DefaultThrottle.
	Throttle time.Duration

	// OnReachBreakpoint, when set together with parseable query text, is
	// invoked with the current match exactly once per breakpoint crossing.
	OnReachBreakpoint func(matches bool)

	// Init activates the widget. Called when the query is satisfied while
	// the widget is inactive.
	Init func()

	// Destroy deactivates the widget. Called when the query is
	// unsatisfied while the widget is active.
	Destroy func()

	// Active reports the widget's current lifecycle state.
	Active func() bool
}

// Controller observes a media query and schedules a widget's init/destroy
// as the viewport crosses the configured breakpoint.
//
// For every notification the controller first resolves breakpoint-crossing
// callbacks, then re-evaluates the init/destroy decision, so a consumer's
// OnReachBreakpoint can rely on fresh crossing information even when
// init/destroy fires in the same tick.
type Controller struct {
	cfg Config

	// bp is parsed once from the query text and shared by crossing
	// detection and match evaluation.
	bp    Breakpoint
	bpOK  bool
	last  matchState
	unsub func()

	// Throttle state: the leading notification evaluates immediately;
	// anything arriving within the window marks dirty and is folded into
	// one trailing evaluation.
	throttling     bool
	dirty          bool
	cancelTrailing func()
	closed         bool
}

// NewController builds a controller and performs the initial activation
// decision synchronously: with no query the widget is initialized
// immediately; with a query, init runs now if the query is currently
// satisfied. The initial evaluation never fires OnReachBreakpoint — the
// callback reports crossings, not starting conditions.
func NewController(cfg Config) *Controller {
	if cfg.Throttle <= 0 {
		cfg.Throttle = DefaultThrottle
	}
	c := &Controller{cfg: cfg}

	if cfg.Query == nil {
		if cfg.Init != nil && (cfg.Active == nil || !cfg.Active()) {
			cfg.Init()
		}
		return c
	}

	c.bp, c.bpOK = ParseBreakpoint(cfg.Query.Media())
	if !c.bpOK {
		logging.Debug(logging.SubsystemResponsive,
			"no numeric breakpoint in %q; crossing tracking disabled", cfg.Query.Media())
	}

	// Seed the crossing tracker before subscribing.
	c.last = toMatchState(cfg.Query.Matches())
	c.applyActivation()

	c.unsub = cfg.Query.Listen(func(bool) {
		c.notify()
	})
	return c
}

// notify coalesces a burst of notifications into a leading evaluation plus
// at most one trailing evaluation per throttle window.
func (c *Controller) notify() {
	if c.closed {
		return
	}
	if c.throttling {
		c.dirty = true
		return
	}
	c.evaluate()
	c.throttling = true
	c.cancelTrailing = c.cfg.Scheduler.After(c.cfg.Throttle, func() {
		c.throttling = false
		c.cancelTrailing = nil
		if c.dirty {
			c.dirty = false
			c.evaluate()
		}
	})
}

// evaluate resolves crossing callbacks, then the init/destroy decision.
func (c *Controller) evaluate() {
	matches := c.cfg.Query.Matches()

	if c.bpOK && c.cfg.OnReachBreakpoint != nil {
		now := toMatchState(matches)
		if now != c.last {
			c.last = now
			c.cfg.OnReachBreakpoint(matches)
		}
	} else {
		c.last = toMatchState(matches)
	}

	c.applyActivation()
}

func (c *Controller) applyActivation() {
	matches := c.cfg.Query == nil || c.cfg.Query.Matches()
	active := c.cfg.Active != nil && c.cfg.Active()
	switch {
	case matches && !active:
		if c.cfg.Init != nil {
			c.cfg.Init()
		}
	case !matches && active:
		if c.cfg.Destroy != nil {
			c.cfg.Destroy()
		}
	}
}

// Close unsubscribes from the query and drops any pending trailing
// evaluation. The widget's active state is left untouched. Idempotent.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	if c.cancelTrailing != nil {
		c.cancelTrailing()
		c.cancelTrailing = nil
	}
	if c.unsub != nil {
		c.unsub()
		c.unsub = nil
	}
}

func toMatchState(matches bool) matchState {
	if matches {
		return matchYes
	}
	return matchNo
}
