//go:build js && wasm

package wasm

import (
	"syscall/js"
	"time"

	"github.com/Its-donkey/portfolio-fx/internal/ui/clock"
)

// jsScheduler drives clock.Scheduler from setTimeout, setInterval and requestAnimationFrame.
type jsScheduler struct {
	v js.Value
}

type jsTimer struct {
	clear  string
	id     js.Value
	fn     js.Func
	sched  js.Value
	closed bool
}

func (t *jsTimer) Stop() {
	if t.closed {
		return
	}
	t.closed = true
	t.sched.Call(t.clear, t.id)
	release(t.fn)
}

func (s *jsScheduler) AfterFunc(d time.Duration, fn func()) clock.Timer {
	t := &jsTimer{clear: "clearTimeout", sched: s.v}
	t.fn = js.FuncOf(func(js.Value, []js.Value) any {
		if !t.closed {
			t.closed = true
			release(t.fn)
			fn()
		}
		return nil
	})
	retain(t.fn)
	t.id = s.v.Call("setTimeout", t.fn, d.Milliseconds())
	return t
}

func (s *jsScheduler) Every(d time.Duration, fn func()) clock.Timer {
	if d < time.Millisecond {
		d = time.Millisecond
	}
	t := &jsTimer{clear: "clearInterval", sched: s.v}
	t.fn = js.FuncOf(func(js.Value, []js.Value) any {
		if !t.closed {
			fn()
		}
		return nil
	})
	retain(t.fn)
	t.id = s.v.Call("setInterval", t.fn, d.Milliseconds())
	return t
}

func (s *jsScheduler) AnimationFrame(fn func()) {
	var cb js.Func
	cb = js.FuncOf(func(js.Value, []js.Value) any {
		release(cb)
		fn()
		return nil
	})
	retain(cb)
	s.v.Call("requestAnimationFrame", cb)
}
