// Package htmldom implements the dom interfaces over a parsed HTML document.
//
// Markup, selectors and class/attribute manipulation go through goquery. Layout is not
// computed: callers assign boxes with SetLayout, and viewport state lives on Window.
// Events, intersections and scrolling are driven explicitly through Dispatch, Intersect
// and Window.SetScroll, so page behavior can be exercised without a browser.
package htmldom

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/Its-donkey/portfolio-fx/internal/ui/dom"
)

// Document is an in-memory page.
type Document struct {
	doc       *goquery.Document
	layout    map[*html.Node]dom.Rect
	listeners map[*html.Node]*listenerSet
	observers []*observer
	window    *Window
	clickErr  error
	clicked   []*html.Node
	resets    map[*html.Node]int
}

// Parse builds a Document from markup with a 1280x800 viewport.
func Parse(markup string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	d := &Document{
		doc:       doc,
		layout:    make(map[*html.Node]dom.Rect),
		listeners: make(map[*html.Node]*listenerSet),
		resets:    make(map[*html.Node]int),
	}
	d.window = newWindow(d, 1280, 800)
	return d, nil
}

// MustParse is Parse for fixtures; it panics on malformed input.
func MustParse(markup string) *Document {
	d, err := Parse(markup)
	if err != nil {
		panic(err)
	}
	return d
}

// Window returns the viewport attached to this document.
func (d *Document) Window() *Window {
	return d.window
}

// Selection exposes the underlying goquery document for assertions.
func (d *Document) Selection() *goquery.Selection {
	return d.doc.Selection
}

// HTML renders the current document.
func (d *Document) HTML() string {
	out, err := goquery.OuterHtml(d.doc.Selection)
	if err != nil {
		return ""
	}
	return out
}

// ByID returns the element with the given id or nil.
func (d *Document) ByID(id string) dom.Element {
	if strings.TrimSpace(id) == "" {
		return nil
	}
	return d.Query(fmt.Sprintf("[id=%q]", id))
}

// Query returns the first element matching selector or nil.
func (d *Document) Query(selector string) dom.Element {
	sel := d.doc.Find(selector)
	if sel.Length() == 0 {
		return nil
	}
	return d.wrap(sel.Get(0))
}

// QueryAll returns every element matching selector in document order.
func (d *Document) QueryAll(selector string) []dom.Element {
	sel := d.doc.Find(selector)
	out := make([]dom.Element, 0, sel.Length())
	for _, n := range sel.Nodes {
		out = append(out, d.wrap(n))
	}
	return out
}

// Create returns a detached element.
func (d *Document) Create(tag string) dom.Element {
	tag = strings.ToLower(strings.TrimSpace(tag))
	n := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
	return d.wrap(n)
}

// Body returns the <body> element.
func (d *Document) Body() dom.Element {
	return d.Query("body")
}

// Head returns the <head> element.
func (d *Document) Head() dom.Element {
	return d.Query("head")
}

// Listen registers a document-level handler.
func (d *Document) Listen(event string, h dom.Handler) dom.Subscription {
	return d.listen(d.doc.Nodes[0], event, h)
}

// SetLayout assigns el a document-relative box.
func (d *Document) SetLayout(el dom.Element, r dom.Rect) {
	if e, ok := el.(*Element); ok && e != nil {
		d.layout[e.n] = r
	}
}

// SetLayoutByID is SetLayout for the element with the given id; it reports whether it exists.
func (d *Document) SetLayoutByID(id string, r dom.Rect) bool {
	el := d.ByID(id)
	if el == nil {
		return false
	}
	d.SetLayout(el, r)
	return true
}

// Dispatch delivers ev to listeners on el and returns it.
func (d *Document) Dispatch(el dom.Element, ev *dom.Event) *dom.Event {
	e, ok := el.(*Element)
	if !ok || e == nil {
		return ev
	}
	if ev.Target == nil {
		ev.Target = el
	}
	d.fire(e.n, ev)
	return ev
}

// DispatchDocument delivers ev to document-level listeners.
func (d *Document) DispatchDocument(ev *dom.Event) *dom.Event {
	d.fire(d.doc.Nodes[0], ev)
	return ev
}

// FailClicks makes every subsequent Element.Click return err; nil restores normal clicks.
func (d *Document) FailClicks(err error) {
	d.clickErr = err
}

// Clicked returns the elements Click was called on, oldest first.
func (d *Document) Clicked() []dom.Element {
	out := make([]dom.Element, 0, len(d.clicked))
	for _, n := range d.clicked {
		out = append(out, d.wrap(n))
	}
	return out
}

// Resets reports how many times Reset was called on el.
func (d *Document) Resets(el dom.Element) int {
	if e, ok := el.(*Element); ok && e != nil {
		return d.resets[e.n]
	}
	return 0
}

func (d *Document) wrap(n *html.Node) *Element {
	return &Element{d: d, n: n}
}
