// Package parallax shifts the hero and particle layers at different rates while scrolling.
package parallax

import (
	"strconv"

	"github.com/Its-donkey/portfolio-fx/internal/ui/clock"
	"github.com/Its-donkey/portfolio-fx/internal/ui/dom"
)

// Layer is one element moved relative to the scroll offset.
type Layer struct {
	Selector string
	Rate     float64
}

// DefaultLayers are the hero (half speed) and the particles (a fifth).
var DefaultLayers = []Layer{
	{Selector: ".hero", Rate: -0.5},
	{Selector: ".particles", Rate: -0.2},
}

// Updater coalesces scroll events into at most one update per animation frame.
type Updater struct {
	doc     dom.Document
	win     dom.Window
	sched   clock.Scheduler
	layers  []Layer
	pending bool
	frames  int
}

// New returns an Updater for layers; nil means DefaultLayers.
func New(doc dom.Document, win dom.Window, sched clock.Scheduler, layers []Layer) *Updater {
	if layers == nil {
		layers = DefaultLayers
	}
	return &Updater{doc: doc, win: win, sched: sched, layers: layers}
}

// Bind schedules an update on scroll.
func (u *Updater) Bind() dom.Subscription {
	return u.win.Listen(dom.EventScroll, func(*dom.Event) { u.Request() })
}

// Request asks for an update on the next frame unless one is already pending.
func (u *Updater) Request() {
	if u.pending {
		return
	}
	u.pending = true
	u.sched.AnimationFrame(u.update)
}

// Frames reports how many updates ran.
func (u *Updater) Frames() int {
	return u.frames
}

func (u *Updater) update() {
	u.frames++
	u.pending = false
	scrolled := u.win.ScrollY()
	if scrolled >= u.win.InnerHeight() {
		return
	}
	for _, l := range u.layers {
		el := u.doc.Query(l.Selector)
		if el == nil {
			continue
		}
		el.SetStyle("transform", Translate(scrolled*l.Rate))
	}
}

// Translate renders a vertical translation in pixels.
func Translate(offset float64) string {
	if offset == 0 {
		offset = 0 // normalise -0
	}
	return "translateY(" + strconv.FormatFloat(offset, 'f', -1, 64) + "px)"
}
