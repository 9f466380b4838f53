package htmldom

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/Its-donkey/portfolio-fx/internal/ui/dom"
)

// Element wraps one html node of a Document.
type Element struct {
	d *Document
	n *html.Node
}

var _ dom.Element = (*Element)(nil)

func (e *Element) sel() *goquery.Selection {
	return goquery.NewDocumentFromNode(e.n).Selection
}

// Node returns the wrapped html node.
func (e *Element) Node() *html.Node {
	return e.n
}

// Tag returns the lower-case element name.
func (e *Element) Tag() string {
	return e.n.Data
}

func (e *Element) ID() string {
	return e.Attr("id")
}

func (e *Element) Attr(name string) string {
	v, _ := e.sel().Attr(name)
	return v
}

func (e *Element) SetAttr(name, value string) {
	e.sel().SetAttr(name, value)
}

func (e *Element) AddClass(names ...string) {
	e.sel().AddClass(names...)
}

func (e *Element) RemoveClass(names ...string) {
	if len(names) == 0 {
		return
	}
	e.sel().RemoveClass(names...)
}

func (e *Element) ToggleClass(name string) {
	e.sel().ToggleClass(name)
}

func (e *Element) HasClass(name string) bool {
	return e.sel().HasClass(name)
}

func (e *Element) Style(prop string) string {
	return parseStyle(e.Attr("style")).get(prop)
}

func (e *Element) SetStyle(prop, value string) {
	st := parseStyle(e.Attr("style"))
	st.set(prop, value)
	e.writeStyle(st)
}

func (e *Element) SetCSSText(css string) {
	e.writeStyle(parseStyle(css))
}

func (e *Element) writeStyle(st style) {
	if len(st) == 0 {
		e.sel().RemoveAttr("style")
		return
	}
	e.SetAttr("style", st.String())
}

func (e *Element) Text() string {
	return e.sel().Text()
}

func (e *Element) SetText(text string) {
	e.sel().SetText(text)
}

// AppendChild moves child under e, detaching it from any previous parent.
func (e *Element) AppendChild(child dom.Element) {
	c, ok := child.(*Element)
	if !ok || c == nil || c.n == e.n {
		return
	}
	if c.n.Parent != nil {
		c.n.Parent.RemoveChild(c.n)
	}
	e.n.AppendChild(c.n)
}

func (e *Element) Empty() {
	e.sel().Empty()
}

func (e *Element) Remove() {
	if e.n.Parent != nil {
		e.n.Parent.RemoveChild(e.n)
	}
}

// Attached reports whether the element is still part of the document tree.
func (e *Element) Attached() bool {
	for p := e.n; p != nil; p = p.Parent {
		if p == e.d.doc.Nodes[0] {
			return true
		}
	}
	return false
}

func (e *Element) Children() []dom.Element {
	kids := e.sel().Children()
	out := make([]dom.Element, 0, kids.Length())
	for _, n := range kids.Nodes {
		out = append(out, e.d.wrap(n))
	}
	return out
}

// Rect reports the assigned layout box shifted by the window's scroll offset.
func (e *Element) Rect() dom.Rect {
	r := e.d.layout[e.n]
	r.Top -= e.d.window.ScrollY()
	return r
}

func (e *Element) OffsetTop() float64 {
	return e.d.layout[e.n].Top
}

func (e *Element) OffsetHeight() float64 {
	return e.d.layout[e.n].Height
}

// Click records the click and dispatches a click event, unless the document
// was told to fail clicks.
func (e *Element) Click() error {
	if e.d.clickErr != nil {
		return e.d.clickErr
	}
	e.d.clicked = append(e.d.clicked, e.n)
	e.d.Dispatch(e, &dom.Event{Type: dom.EventClick})
	return nil
}

// Reset clears input values below a form element.
func (e *Element) Reset() {
	e.d.resets[e.n]++
	e.sel().Find("input, textarea").Each(func(_ int, s *goquery.Selection) {
		s.RemoveAttr("value")
		if goquery.NodeName(s) == "textarea" {
			s.SetText("")
		}
	})
}

func (e *Element) Listen(event string, h dom.Handler) dom.Subscription {
	return e.d.listen(e.n, event, h)
}
