// Package nav handles in-page navigation: smooth anchor scrolling, the sticky navbar state,
// active-link tracking, the scroll-to-top control, keyboard shortcuts and the mobile menu.
package nav

import (
	"strings"

	"github.com/Its-donkey/portfolio-fx/internal/ui/dom"
	"github.com/Its-donkey/portfolio-fx/logging"
)

const (
	NavbarID    = "navbar"
	ScrollTopID = "scrollTop"

	// ScrolledThreshold is the offset past which the navbar shrinks and the top control shows.
	ScrolledThreshold = 100
	// ActiveOffset shifts the probe point below the fixed navbar.
	ActiveOffset = 150

	classScrolled = "scrolled"
	classActive   = "active"
)

// Controller owns the navigation wiring for one document.
type Controller struct {
	doc    dom.Document
	win    dom.Window
	logger *logging.Logger
	subs   []dom.Subscription
}

// New returns a Controller bound to doc and win.
func New(doc dom.Document, win dom.Window, logger *logging.Logger) *Controller {
	return &Controller{doc: doc, win: win, logger: logger}
}

// Close detaches every handler the controller registered.
func (c *Controller) Close() {
	for _, s := range c.subs {
		s.Cancel()
	}
	c.subs = nil
}

// BindSmoothScroll intercepts clicks on same-page anchors.
func (c *Controller) BindSmoothScroll() {
	dom.Each(c.doc.QueryAll(`a[href^="#"]`), func(_ int, a dom.Element) {
		href := a.Attr("href")
		c.subs = append(c.subs, a.Listen(dom.EventClick, func(ev *dom.Event) {
			ev.PreventDefault()
			c.ScrollToAnchor(href)
		}))
	})
}

// ScrollToAnchor smooth-scrolls so the target sits just below the navbar.
// It reports false when href does not name an element on the page.
func (c *Controller) ScrollToAnchor(href string) bool {
	id := strings.TrimPrefix(strings.TrimSpace(href), "#")
	if id == "" {
		return false
	}
	target := c.doc.ByID(id)
	if target == nil {
		return false
	}
	c.win.ScrollTo(TargetOffset(target.Rect().Top, c.win.ScrollY(), c.navHeight()), true)
	return true
}

// TargetOffset is the document offset that puts an element at rectTop right under the navbar.
func TargetOffset(rectTop, scrollY, navHeight float64) float64 {
	return rectTop + scrollY - navHeight
}

func (c *Controller) navHeight() float64 {
	if bar := c.doc.Query("nav"); bar != nil {
		return bar.OffsetHeight()
	}
	return 0
}

// BindScrollEffects updates the navbar, the top control and the active link on scroll.
func (c *Controller) BindScrollEffects() {
	c.subs = append(c.subs, c.win.Listen(dom.EventScroll, func(*dom.Event) {
		c.OnScroll()
	}))
}

// OnScroll applies scroll-dependent state for the current offset.
func (c *Controller) OnScroll() {
	y := c.win.ScrollY()
	scrolled := y > ScrolledThreshold

	if bar := c.doc.ByID(NavbarID); bar != nil {
		if scrolled {
			bar.AddClass(classScrolled)
		} else {
			bar.RemoveClass(classScrolled)
		}
	}
	if top := c.doc.ByID(ScrollTopID); top != nil {
		if scrolled {
			top.SetStyle("display", "flex")
		} else {
			top.SetStyle("display", "none")
		}
	}
	c.UpdateActiveLink()
}

// Span is a section's vertical extent in document coordinates.
type Span struct {
	ID     string
	Top    float64
	Height float64
}

// ActiveSection returns the id of the section containing probe. When spans overlap,
// the last match in document order wins; ok is false when nothing contains probe.
func ActiveSection(spans []Span, probe float64) (id string, ok bool) {
	for _, s := range spans {
		if probe >= s.Top && probe < s.Top+s.Height {
			id, ok = s.ID, true
		}
	}
	return id, ok
}

// UpdateActiveLink marks the nav link of the section under the probe point.
// Links keep their state when no section contains the probe.
func (c *Controller) UpdateActiveLink() {
	sections := c.doc.QueryAll("section")
	spans := make([]Span, 0, len(sections))
	for _, s := range sections {
		spans = append(spans, Span{ID: s.ID(), Top: s.OffsetTop(), Height: s.OffsetHeight()})
	}
	id, ok := ActiveSection(spans, c.win.ScrollY()+ActiveOffset)
	if !ok {
		return
	}
	dom.Each(c.doc.QueryAll(".nav-links a"), func(_ int, a dom.Element) {
		a.RemoveClass(classActive)
	})
	if id == "" {
		return
	}
	if link := c.doc.Query(`.nav-links a[href="#` + id + `"]`); link != nil {
		link.AddClass(classActive)
	}
}

// BindScrollTop makes the floating control return to the top of the page.
func (c *Controller) BindScrollTop() {
	top := c.doc.ByID(ScrollTopID)
	if top == nil {
		return
	}
	c.subs = append(c.subs, top.Listen(dom.EventClick, func(*dom.Event) {
		c.win.ScrollTo(0, true)
	}))
}

// BindKeyboard wires Escape (close menu), Ctrl+Home and Ctrl+End.
func (c *Controller) BindKeyboard() {
	c.subs = append(c.subs, c.doc.Listen(dom.EventKeyDown, c.OnKey))
}

// OnKey handles one keydown event.
func (c *Controller) OnKey(ev *dom.Event) {
	switch {
	case ev.Key == "Escape":
		c.CloseMenu()
	case ev.Key == "Home" && ev.Ctrl:
		ev.PreventDefault()
		c.win.ScrollTo(0, true)
	case ev.Key == "End" && ev.Ctrl:
		ev.PreventDefault()
		c.win.ScrollTo(c.win.ScrollHeight(), true)
	}
}

// ToggleMenu opens or closes the mobile menu and its hamburger icon.
func (c *Controller) ToggleMenu() {
	if links := c.doc.Query(".nav-links"); links != nil {
		links.ToggleClass(classActive)
	}
	if burger := c.doc.Query(".hamburger"); burger != nil {
		burger.ToggleClass(classActive)
	}
}

// CloseMenu collapses the mobile menu.
func (c *Controller) CloseMenu() {
	if links := c.doc.Query(".nav-links"); links != nil {
		links.RemoveClass(classActive)
	}
}
