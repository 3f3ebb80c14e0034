package dom

import "time"

// Scheduler defers callbacks. The engine uses it for blur-close delays,
// resize throttling, and animation completion. Implementations must invoke
// fn at most once; the returned cancel function prevents a pending fn from
// running and is safe to call after fn has fired.
type Scheduler interface {
	After(d time.Duration, fn func()) (cancel func())
}

// TimerScheduler schedules on real time via time.AfterFunc.
//
// Callbacks fire on a timer goroutine. Embedders that require the
// single-threaded model (see the package comment) should route callbacks
// back onto their event loop, or install their own Scheduler.
type TimerScheduler struct{}

// After implements Scheduler.
func (TimerScheduler) After(d time.Duration, fn func()) (cancel func()) {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

func millis(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
