// Package clock schedules the page's deferred work: timeouts, intervals and animation frames.
package clock

import "time"

// Timer cancels a pending timeout or interval.
type Timer interface {
	Stop()
}

// Scheduler is the event loop's timer surface (setTimeout, setInterval, requestAnimationFrame).
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
	Every(d time.Duration, fn func()) Timer
	AnimationFrame(fn func())
}

// Debounce returns a function that runs fn once wait has elapsed without another call.
func Debounce(s Scheduler, wait time.Duration, fn func()) func() {
	var pending Timer
	return func() {
		if pending != nil {
			pending.Stop()
		}
		pending = s.AfterFunc(wait, func() {
			pending = nil
			fn()
		})
	}
}

// Throttle returns a function that runs fn at most once per limit window.
func Throttle(s Scheduler, limit time.Duration, fn func()) func() {
	blocked := false
	return func() {
		if blocked {
			return
		}
		fn()
		blocked = true
		s.AfterFunc(limit, func() { blocked = false })
	}
}
