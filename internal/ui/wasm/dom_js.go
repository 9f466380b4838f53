//go:build js && wasm

package wasm

import (
	"fmt"
	"syscall/js"

	"github.com/Its-donkey/portfolio-fx/internal/ui/dom"
)

// jsElement adapts a DOM node.
type jsElement struct {
	v js.Value
}

func wrapElement(v js.Value) dom.Element {
	if !v.Truthy() {
		return nil
	}
	return &jsElement{v: v}
}

func (e *jsElement) ID() string { return e.v.Get("id").String() }

func (e *jsElement) Attr(name string) string {
	v := e.v.Call("getAttribute", name)
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}

func (e *jsElement) SetAttr(name, value string) { e.v.Call("setAttribute", name, value) }

func (e *jsElement) AddClass(names ...string) {
	for _, n := range names {
		e.v.Get("classList").Call("add", n)
	}
}

func (e *jsElement) RemoveClass(names ...string) {
	for _, n := range names {
		e.v.Get("classList").Call("remove", n)
	}
}

func (e *jsElement) ToggleClass(name string) { e.v.Get("classList").Call("toggle", name) }

func (e *jsElement) HasClass(name string) bool {
	return e.v.Get("classList").Call("contains", name).Bool()
}

func (e *jsElement) Style(prop string) string {
	return e.v.Get("style").Call("getPropertyValue", prop).String()
}

func (e *jsElement) SetStyle(prop, value string) {
	if value == "" {
		e.v.Get("style").Call("removeProperty", prop)
		return
	}
	e.v.Get("style").Call("setProperty", prop, value)
}

func (e *jsElement) SetCSSText(css string) { e.v.Get("style").Set("cssText", css) }

func (e *jsElement) Text() string { return e.v.Get("textContent").String() }

func (e *jsElement) SetText(text string) { e.v.Set("textContent", text) }

func (e *jsElement) AppendChild(child dom.Element) {
	if c, ok := child.(*jsElement); ok && c != nil {
		e.v.Call("appendChild", c.v)
	}
}

func (e *jsElement) Empty() { e.v.Set("innerHTML", "") }

func (e *jsElement) Remove() { e.v.Call("remove") }

func (e *jsElement) Children() []dom.Element {
	return collect(e.v.Get("children"))
}

func (e *jsElement) Rect() dom.Rect {
	r := e.v.Call("getBoundingClientRect")
	return dom.Rect{
		Left:   number(r, "left"),
		Top:    number(r, "top"),
		Width:  number(r, "width"),
		Height: number(r, "height"),
	}
}

func (e *jsElement) OffsetTop() float64    { return number(e.v, "offsetTop") }
func (e *jsElement) OffsetHeight() float64 { return number(e.v, "offsetHeight") }

// Click dispatches a native click; a thrown exception comes back as an error.
func (e *jsElement) Click() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("click: %v", r)
		}
	}()
	e.v.Call("click")
	return nil
}

func (e *jsElement) Reset() {
	if e.v.Get("reset").Type() == js.TypeFunction {
		e.v.Call("reset")
	}
}

func (e *jsElement) Listen(event string, h dom.Handler) dom.Subscription {
	return listen(e.v, event, h)
}

// jsDocument adapts window.document.
type jsDocument struct {
	v js.Value
}

func (d *jsDocument) ByID(id string) dom.Element {
	return wrapElement(d.v.Call("getElementById", id))
}

func (d *jsDocument) Query(selector string) dom.Element {
	return wrapElement(d.v.Call("querySelector", selector))
}

func (d *jsDocument) QueryAll(selector string) []dom.Element {
	return collect(d.v.Call("querySelectorAll", selector))
}

func (d *jsDocument) Create(tag string) dom.Element {
	return wrapElement(d.v.Call("createElement", tag))
}

func (d *jsDocument) Body() dom.Element { return wrapElement(d.v.Get("body")) }
func (d *jsDocument) Head() dom.Element { return wrapElement(d.v.Get("head")) }

func (d *jsDocument) Listen(event string, h dom.Handler) dom.Subscription {
	return listen(d.v, event, h)
}

// listen registers h and keeps the js.Func alive until the subscription is cancelled.
func listen(target js.Value, event string, h dom.Handler) dom.Subscription {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := &dom.Event{Type: event}
		var raw js.Value
		if len(args) > 0 {
			raw = args[0]
			ev = convertEvent(event, raw)
		}
		h(ev)
		if ev.DefaultPrevented() && raw.Truthy() {
			raw.Call("preventDefault")
		}
		return nil
	})
	target.Call("addEventListener", event, fn)
	retain(fn)
	return dom.SubscriptionFunc(func() {
		target.Call("removeEventListener", event, fn)
		release(fn)
	})
}

func convertEvent(event string, raw js.Value) *dom.Event {
	ev := &dom.Event{
		Type:    event,
		Target:  wrapElement(raw.Get("currentTarget")),
		ClientX: number(raw, "clientX"),
		ClientY: number(raw, "clientY"),
	}
	if k := raw.Get("key"); k.Type() == js.TypeString {
		ev.Key = k.String()
	}
	if c := raw.Get("ctrlKey"); c.Type() == js.TypeBoolean {
		ev.Ctrl = c.Bool()
	}
	if e := raw.Get("error"); e.Truthy() {
		if m := e.Get("message"); m.Type() == js.TypeString {
			ev.Message = m.String()
		}
	}
	return ev
}

func collect(list js.Value) []dom.Element {
	if !list.Truthy() {
		return nil
	}
	n := list.Length()
	out := make([]dom.Element, 0, n)
	for i := 0; i < n; i++ {
		if el := wrapElement(list.Index(i)); el != nil {
			out = append(out, el)
		}
	}
	return out
}

func number(v js.Value, key string) float64 {
	if !v.Truthy() {
		return 0
	}
	x := v.Get(key)
	if x.Type() != js.TypeNumber {
		return 0
	}
	return x.Float()
}
