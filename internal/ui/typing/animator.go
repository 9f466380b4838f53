package typing

import (
	"time"

	"github.com/Its-donkey/portfolio-fx/internal/ui/clock"
	"github.com/Its-donkey/portfolio-fx/internal/ui/dom"
)

// SubtitleSelector locates the animated element.
const SubtitleSelector = ".hero .subtitle"

// Animator drives a Machine on the page's scheduler.
type Animator struct {
	doc     dom.Document
	sched   clock.Scheduler
	machine *Machine
	target  dom.Element
	started bool
}

// NewAnimator binds the default titles to doc.
func NewAnimator(doc dom.Document, sched clock.Scheduler, texts []string) *Animator {
	return &Animator{doc: doc, sched: sched, machine: NewMachine(texts)}
}

// Machine exposes the state for inspection.
func (a *Animator) Machine() *Machine {
	return a.machine
}

// StartAfter begins the cycle after delay. Later calls are ignored.
func (a *Animator) StartAfter(delay time.Duration) {
	if a.started {
		return
	}
	a.started = true
	a.sched.AfterFunc(delay, func() { a.begin() })
}

// Start begins the cycle immediately. It reports false when the subtitle is missing
// or the animator was already started.
func (a *Animator) Start() bool {
	if a.started {
		return false
	}
	a.started = true
	return a.begin()
}

func (a *Animator) begin() bool {
	a.target = a.doc.Query(SubtitleSelector)
	if a.target == nil {
		return false
	}
	a.target.SetText("")
	a.tick()
	return true
}

func (a *Animator) tick() {
	text, wait := a.machine.Step()
	a.target.SetText(text)
	a.sched.AfterFunc(wait, a.tick)
}
