package clock

import (
	"sort"
	"time"
)

// Virtual is a deterministic Scheduler driven by Advance and Frame.
//
// Callbacks run on the caller's goroutine in due-time order; ties run in scheduling order.
// It is not safe for concurrent use, matching the single page event loop it stands in for.
type Virtual struct {
	now    time.Duration
	seq    uint64
	timers []*virtualTimer
	frames []func()
}

type virtualTimer struct {
	owner   *Virtual
	at      time.Duration
	every   time.Duration
	seq     uint64
	fn      func()
	stopped bool
}

// NewVirtual returns a scheduler positioned at time zero.
func NewVirtual() *Virtual {
	return &Virtual{}
}

func (t *virtualTimer) Stop() {
	if t == nil || t.stopped {
		return
	}
	t.stopped = true
	t.owner.drop(t)
}

// Now reports elapsed virtual time.
func (v *Virtual) Now() time.Duration {
	return v.now
}

// AfterFunc schedules fn once after d.
func (v *Virtual) AfterFunc(d time.Duration, fn func()) Timer {
	return v.add(d, 0, fn)
}

// Every schedules fn repeatedly with period d until stopped.
func (v *Virtual) Every(d time.Duration, fn func()) Timer {
	if d <= 0 {
		d = time.Millisecond
	}
	return v.add(d, d, fn)
}

// AnimationFrame queues fn for the next Frame call.
func (v *Virtual) AnimationFrame(fn func()) {
	v.frames = append(v.frames, fn)
}

// Pending reports how many timers are still scheduled.
func (v *Virtual) Pending() int {
	return len(v.timers)
}

// PendingFrames reports how many animation frame callbacks are queued.
func (v *Virtual) PendingFrames() int {
	return len(v.frames)
}

// Frame runs the callbacks queued before the call and returns how many ran.
// Callbacks queued while running wait for the next Frame.
func (v *Virtual) Frame() int {
	queued := v.frames
	v.frames = nil
	for _, fn := range queued {
		fn()
	}
	return len(queued)
}

// Advance moves time forward by d, running every callback that falls due.
func (v *Virtual) Advance(d time.Duration) {
	target := v.now + d
	for {
		t := v.next(target)
		if t == nil {
			break
		}
		v.now = t.at
		if t.every > 0 {
			v.seq++
			t.at += t.every
			t.seq = v.seq
			v.sortTimers()
		} else {
			v.drop(t)
		}
		t.fn()
	}
	v.now = target
}

// RunFor is Advance split into fixed steps, useful to interleave frames with timers.
func (v *Virtual) RunFor(total, step time.Duration) {
	if step <= 0 {
		step = time.Millisecond
	}
	for elapsed := time.Duration(0); elapsed < total; elapsed += step {
		v.Advance(min(step, total-elapsed))
		v.Frame()
	}
}

func (v *Virtual) add(d, every time.Duration, fn func()) *virtualTimer {
	if d < 0 {
		d = 0
	}
	v.seq++
	t := &virtualTimer{owner: v, at: v.now + d, every: every, seq: v.seq, fn: fn}
	v.timers = append(v.timers, t)
	v.sortTimers()
	return t
}

func (v *Virtual) next(limit time.Duration) *virtualTimer {
	if len(v.timers) == 0 {
		return nil
	}
	if t := v.timers[0]; t.at <= limit {
		return t
	}
	return nil
}

func (v *Virtual) drop(t *virtualTimer) {
	for i, cur := range v.timers {
		if cur == t {
			v.timers = append(v.timers[:i], v.timers[i+1:]...)
			return
		}
	}
}

func (v *Virtual) sortTimers() {
	sort.SliceStable(v.timers, func(i, j int) bool {
		if v.timers[i].at != v.timers[j].at {
			return v.timers[i].at < v.timers[j].at
		}
		return v.timers[i].seq < v.timers[j].seq
	})
}
