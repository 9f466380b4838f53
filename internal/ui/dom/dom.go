// Package dom describes the slice of the browser document the page effects rely on.
//
// Components depend only on these interfaces so they can run against the real page
// (internal/ui/wasm) or against an in-memory document (internal/ui/dom/htmldom).
package dom

// Rect is an element box in CSS pixels.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Handler receives a dispatched event.
type Handler func(ev *Event)

// Subscription detaches a handler when cancelled.
type Subscription interface {
	Cancel()
}

// SubscriptionFunc adapts a plain function to Subscription.
type SubscriptionFunc func()

// Cancel calls f.
func (f SubscriptionFunc) Cancel() {
	if f != nil {
		f()
	}
}

// EventTarget is anything that accepts event listeners.
type EventTarget interface {
	Listen(event string, h Handler) Subscription
}

// Element is a single node in the page.
type Element interface {
	EventTarget

	ID() string
	Attr(name string) string
	SetAttr(name, value string)

	AddClass(names ...string)
	RemoveClass(names ...string)
	ToggleClass(name string)
	HasClass(name string) bool

	Style(prop string) string
	SetStyle(prop, value string)
	SetCSSText(css string)

	Text() string
	SetText(text string)

	AppendChild(child Element)
	Empty()
	Remove()
	Children() []Element

	// Rect is the bounding box relative to the viewport.
	Rect() Rect
	OffsetTop() float64
	OffsetHeight() float64

	Click() error
	Reset()
}

// Document is the page document.
type Document interface {
	EventTarget

	ByID(id string) Element
	Query(selector string) Element
	QueryAll(selector string) []Element
	Create(tag string) Element
	Body() Element
	Head() Element
}

// Window exposes viewport state and page-wide services.
type Window interface {
	EventTarget

	ScrollY() float64
	InnerWidth() float64
	InnerHeight() float64
	ScrollHeight() float64
	ScrollTo(top float64, smooth bool)
	Alert(message string)
	Observe(opts ObserverOptions, fn ObserverFunc) Observer
}

// Event is the subset of DOM event data the effects read.
type Event struct {
	Type    string
	Target  Element
	ClientX float64
	ClientY float64
	Key     string
	Ctrl    bool
	// Message carries the error text for "error" events.
	Message string

	defaultPrevented bool
}

// PreventDefault marks the event so the browser skips its default action.
func (e *Event) PreventDefault() {
	if e != nil {
		e.defaultPrevented = true
	}
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e != nil && e.defaultPrevented
}

// Event names used across the page.
const (
	EventClick      = "click"
	EventScroll     = "scroll"
	EventResize     = "resize"
	EventMouseEnter = "mouseenter"
	EventMouseLeave = "mouseleave"
	EventTouchStart = "touchstart"
	EventKeyDown    = "keydown"
	EventSubmit     = "submit"
	EventLoad       = "load"
	EventError      = "error"
	EventDOMReady   = "DOMContentLoaded"
)
