//go:build js && wasm

package wasm

import (
	"syscall/js"

	"github.com/Its-donkey/portfolio-fx/internal/ui/dom"
)

// jsWindow adapts the global window object.
type jsWindow struct {
	v   js.Value
	doc js.Value
}

func (w *jsWindow) ScrollY() float64     { return number(w.v, "scrollY") }
func (w *jsWindow) InnerWidth() float64  { return number(w.v, "innerWidth") }
func (w *jsWindow) InnerHeight() float64 { return number(w.v, "innerHeight") }

func (w *jsWindow) ScrollHeight() float64 {
	return number(w.doc.Get("body"), "scrollHeight")
}

func (w *jsWindow) ScrollTo(top float64, smooth bool) {
	behavior := "auto"
	if smooth {
		behavior = "smooth"
	}
	opts := js.Global().Get("Object").New()
	opts.Set("top", top)
	opts.Set("behavior", behavior)
	w.v.Call("scrollTo", opts)
}

func (w *jsWindow) Alert(message string) { w.v.Call("alert", message) }

func (w *jsWindow) Listen(event string, h dom.Handler) dom.Subscription {
	return listen(w.v, event, h)
}

// Observe returns a no-op observer when IntersectionObserver is unavailable.
func (w *jsWindow) Observe(opts dom.ObserverOptions, fn dom.ObserverFunc) dom.Observer {
	ctor := w.v.Get("IntersectionObserver")
	if ctor.Type() != js.TypeFunction {
		return noopObserver{}
	}
	o := &jsObserver{}
	o.cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		list := args[0]
		entries := make([]dom.IntersectionEntry, 0, list.Length())
		for i := 0; i < list.Length(); i++ {
			e := list.Index(i)
			entries = append(entries, dom.IntersectionEntry{
				Target:         wrapElement(e.Get("target")),
				IsIntersecting: e.Get("isIntersecting").Bool(),
				Ratio:          number(e, "intersectionRatio"),
			})
		}
		fn(entries, o)
		return nil
	})
	options := js.Global().Get("Object").New()
	options.Set("threshold", opts.Threshold)
	if opts.RootMargin != "" {
		options.Set("rootMargin", opts.RootMargin)
	}
	o.v = ctor.New(o.cb, options)
	retain(o.cb)
	return o
}

type jsObserver struct {
	v  js.Value
	cb js.Func
}

func (o *jsObserver) Observe(el dom.Element) {
	if e, ok := el.(*jsElement); ok && e != nil {
		o.v.Call("observe", e.v)
	}
}

func (o *jsObserver) Unobserve(el dom.Element) {
	if e, ok := el.(*jsElement); ok && e != nil {
		o.v.Call("unobserve", e.v)
	}
}

func (o *jsObserver) Disconnect() {
	o.v.Call("disconnect")
	release(o.cb)
}

type noopObserver struct{}

func (noopObserver) Observe(dom.Element)   {}
func (noopObserver) Unobserve(dom.Element) {}
func (noopObserver) Disconnect()           {}
