package htmldom

import (
	"github.com/Its-donkey/portfolio-fx/internal/ui/dom"
)

// ScrollCall records one ScrollTo request.
type ScrollCall struct {
	Top    float64
	Smooth bool
}

// Window is the viewport of an in-memory Document.
type Window struct {
	d            *Document
	scrollY      float64
	width        float64
	height       float64
	scrollHeight float64
	listeners    *listenerSet
	alerts       []string
	scrolls      []ScrollCall
}

var _ dom.Window = (*Window)(nil)

func newWindow(d *Document, width, height float64) *Window {
	return &Window{d: d, width: width, height: height, listeners: newListenerSet()}
}

func (w *Window) ScrollY() float64      { return w.scrollY }
func (w *Window) InnerWidth() float64   { return w.width }
func (w *Window) InnerHeight() float64  { return w.height }
func (w *Window) ScrollHeight() float64 { return w.scrollHeight }

// ScrollTo jumps to top immediately and fires a scroll event.
func (w *Window) ScrollTo(top float64, smooth bool) {
	w.scrolls = append(w.scrolls, ScrollCall{Top: top, Smooth: smooth})
	w.SetScroll(top)
}

func (w *Window) Alert(message string) {
	w.alerts = append(w.alerts, message)
}

func (w *Window) Listen(event string, h dom.Handler) dom.Subscription {
	return w.listeners.add(event, h)
}

// Observe registers an intersection observer; Document.Intersect drives it.
func (w *Window) Observe(opts dom.ObserverOptions, fn dom.ObserverFunc) dom.Observer {
	obs := &observer{d: w.d, opts: opts, fn: fn}
	w.d.observers = append(w.d.observers, obs)
	return obs
}

// SetScroll moves the viewport and fires a scroll event.
func (w *Window) SetScroll(y float64) {
	if y < 0 {
		y = 0
	}
	w.scrollY = y
	w.Dispatch(&dom.Event{Type: dom.EventScroll})
}

// SetScrollHeight sets the document's total scrollable height.
func (w *Window) SetScrollHeight(h float64) {
	w.scrollHeight = h
}

// Resize changes the viewport size and fires a resize event.
func (w *Window) Resize(width, height float64) {
	w.width = width
	w.height = height
	w.Dispatch(&dom.Event{Type: dom.EventResize})
}

// SetSize changes the viewport size without firing events.
func (w *Window) SetSize(width, height float64) {
	w.width = width
	w.height = height
}

// Dispatch delivers ev to window listeners.
func (w *Window) Dispatch(ev *dom.Event) *dom.Event {
	w.listeners.fire(ev)
	return ev
}

// Alerts returns every message passed to Alert.
func (w *Window) Alerts() []string {
	return append([]string(nil), w.alerts...)
}

// Scrolls returns every ScrollTo call.
func (w *Window) Scrolls() []ScrollCall {
	return append([]ScrollCall(nil), w.scrolls...)
}

// ListenerCount reports how many window handlers exist for event.
func (w *Window) ListenerCount(event string) int {
	return w.listeners.count(event)
}

type observer struct {
	d            *Document
	opts         dom.ObserverOptions
	fn           dom.ObserverFunc
	order        []*Element
	disconnected bool
}

func (o *observer) Observe(el dom.Element) {
	e, ok := el.(*Element)
	if !ok || e == nil || o.disconnected {
		return
	}
	if o.find(e) != nil {
		return
	}
	o.order = append(o.order, e)
}

func (o *observer) Unobserve(el dom.Element) {
	e, ok := el.(*Element)
	if !ok || e == nil {
		return
	}
	if cur := o.find(e); cur != nil {
		for i, t := range o.order {
			if t == cur {
				o.order = append(o.order[:i], o.order[i+1:]...)
				break
			}
		}
	}
}

func (o *observer) Disconnect() {
	o.disconnected = true
	o.order = nil
}

// find matches by node since wrappers are created per lookup.
func (o *observer) find(e *Element) *Element {
	for _, t := range o.order {
		if t.n == e.n {
			return t
		}
	}
	return nil
}

// Intersect reports el as visible at ratio to every observer watching it.
// An entry counts as intersecting when ratio is positive and reaches the observer threshold.
func (d *Document) Intersect(el dom.Element, ratio float64) {
	e, ok := el.(*Element)
	if !ok || e == nil {
		return
	}
	for _, o := range append([]*observer(nil), d.observers...) {
		if o.disconnected {
			continue
		}
		target := o.find(e)
		if target == nil {
			continue
		}
		entry := dom.IntersectionEntry{
			Target:         target,
			IsIntersecting: ratio > 0 && ratio >= o.opts.Threshold,
			Ratio:          ratio,
		}
		o.fn([]dom.IntersectionEntry{entry}, o)
	}
}

// ObservedCount reports how many observers currently watch el.
func (d *Document) ObservedCount(el dom.Element) int {
	e, ok := el.(*Element)
	if !ok || e == nil {
		return 0
	}
	n := 0
	for _, o := range d.observers {
		if !o.disconnected && o.find(e) != nil {
			n++
		}
	}
	return n
}
