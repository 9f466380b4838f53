package clock

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestVirtualRunsTimersInDueOrder(t *testing.T) {
	v := NewVirtual()
	var got []string
	v.AfterFunc(30*time.Millisecond, func() { got = append(got, "c") })
	v.AfterFunc(10*time.Millisecond, func() { got = append(got, "a") })
	v.AfterFunc(10*time.Millisecond, func() { got = append(got, "b") })

	v.Advance(20 * time.Millisecond)
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Fatalf("after 20ms (-want +got):\n%s", diff)
	}
	v.Advance(10 * time.Millisecond)
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Fatalf("after 30ms (-want +got):\n%s", diff)
	}
	if v.Pending() != 0 {
		t.Fatalf("expected no pending timers, got %d", v.Pending())
	}
}

func TestVirtualChainedTimersFireWithinOneAdvance(t *testing.T) {
	v := NewVirtual()
	var at []time.Duration
	var tick func()
	tick = func() {
		at = append(at, v.Now())
		if len(at) < 3 {
			v.AfterFunc(100*time.Millisecond, tick)
		}
	}
	v.AfterFunc(100*time.Millisecond, tick)

	v.Advance(time.Second)
	want := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 300 * time.Millisecond}
	if diff := cmp.Diff(want, at); diff != "" {
		t.Fatalf("chained ticks (-want +got):\n%s", diff)
	}
}

func TestVirtualEveryStopsItself(t *testing.T) {
	v := NewVirtual()
	count := 0
	var timer Timer
	timer = v.Every(20*time.Millisecond, func() {
		count++
		if count == 5 {
			timer.Stop()
		}
	})
	v.Advance(time.Second)
	if count != 5 {
		t.Fatalf("expected 5 ticks, got %d", count)
	}
	if v.Pending() != 0 {
		t.Fatalf("interval still pending")
	}
}

func TestVirtualFrameRunsOnlyQueuedCallbacks(t *testing.T) {
	v := NewVirtual()
	runs := 0
	v.AnimationFrame(func() {
		runs++
		v.AnimationFrame(func() { runs++ })
	})
	if n := v.Frame(); n != 1 || runs != 1 {
		t.Fatalf("first frame ran %d callbacks, runs=%d", n, runs)
	}
	if n := v.Frame(); n != 1 || runs != 2 {
		t.Fatalf("second frame ran %d callbacks, runs=%d", n, runs)
	}
}

func TestDebounceCoalescesBursts(t *testing.T) {
	v := NewVirtual()
	calls := 0
	fn := Debounce(v, 250*time.Millisecond, func() { calls++ })

	for i := 0; i < 5; i++ {
		fn()
		v.Advance(100 * time.Millisecond)
	}
	if calls != 0 {
		t.Fatalf("debounced fn ran early: %d", calls)
	}
	v.Advance(250 * time.Millisecond)
	if calls != 1 {
		t.Fatalf("expected one call, got %d", calls)
	}
}

func TestThrottleDropsCallsInsideWindow(t *testing.T) {
	v := NewVirtual()
	calls := 0
	fn := Throttle(v, 100*time.Millisecond, func() { calls++ })
	fn()
	fn()
	v.Advance(50 * time.Millisecond)
	fn()
	v.Advance(60 * time.Millisecond)
	fn()
	if calls != 2 {
		t.Fatalf("expected 2 calls, got %d", calls)
	}
}
