package nav

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Its-donkey/portfolio-fx/internal/ui/dom"
	"github.com/Its-donkey/portfolio-fx/internal/ui/dom/htmldom"
)

const page = `<html><body>
<nav id="navbar"><ul class="nav-links">
  <li><a href="#home">Home</a></li>
  <li><a href="#about">About</a></li>
  <li><a href="#projects">Projects</a></li>
</ul><div class="hamburger"></div></nav>
<button id="scrollTop"></button>
<section id="home"></section>
<section id="about"></section>
<section id="projects"></section>
<a id="dead" href="#nowhere">dead</a>
</body></html>`

func setup(t *testing.T) (*htmldom.Document, *Controller) {
	t.Helper()
	doc := htmldom.MustParse(page)
	doc.SetLayoutByID("navbar", dom.Rect{Top: 0, Height: 70, Width: 1280})
	doc.SetLayoutByID("home", dom.Rect{Top: 0, Height: 800})
	doc.SetLayoutByID("about", dom.Rect{Top: 800, Height: 700})
	doc.SetLayoutByID("projects", dom.Rect{Top: 1500, Height: 900})
	doc.Window().SetScrollHeight(2400)
	c := New(doc, doc.Window(), nil)
	c.BindSmoothScroll()
	c.BindScrollEffects()
	c.BindScrollTop()
	c.BindKeyboard()
	return doc, c
}

func activeLinks(doc *htmldom.Document) []string {
	var out []string
	for _, a := range doc.QueryAll(".nav-links a") {
		if a.HasClass("active") {
			out = append(out, a.Attr("href"))
		}
	}
	return out
}

func TestAnchorClickScrollsBelowNavbar(t *testing.T) {
	doc, _ := setup(t)
	doc.Window().SetScroll(200)
	link := doc.Query(`.nav-links a[href="#about"]`)
	ev := doc.Dispatch(link, &dom.Event{Type: dom.EventClick})
	if !ev.DefaultPrevented() {
		t.Fatalf("anchor click default not prevented")
	}
	scrolls := doc.Window().Scrolls()
	want := []htmldom.ScrollCall{{Top: 730, Smooth: true}}
	if diff := cmp.Diff(want, scrolls); diff != "" {
		t.Fatalf("scroll calls (-want +got):\n%s", diff)
	}
}

func TestAnchorWithoutTargetDoesNotScroll(t *testing.T) {
	doc, _ := setup(t)
	ev := doc.Dispatch(doc.ByID("dead"), &dom.Event{Type: dom.EventClick})
	if !ev.DefaultPrevented() {
		t.Fatalf("default should still be cancelled")
	}
	if len(doc.Window().Scrolls()) != 0 {
		t.Fatalf("unexpected scroll for missing target")
	}
}

func TestScrollTopVisibilityThreshold(t *testing.T) {
	doc, _ := setup(t)
	tests := []struct {
		y        float64
		display  string
		scrolled bool
	}{
		{0, "none", false},
		{100, "none", false},
		{101, "flex", true},
		{600, "flex", true},
		{40, "none", false},
	}
	for _, tt := range tests {
		doc.Window().SetScroll(tt.y)
		if got := doc.ByID(ScrollTopID).Style("display"); got != tt.display {
			t.Fatalf("y=%v: display %q, want %q", tt.y, got, tt.display)
		}
		if got := doc.ByID(NavbarID).HasClass("scrolled"); got != tt.scrolled {
			t.Fatalf("y=%v: scrolled=%v, want %v", tt.y, got, tt.scrolled)
		}
	}
}

func TestExactlyOneActiveLink(t *testing.T) {
	doc, _ := setup(t)
	tests := []struct {
		y    float64
		want string
	}{
		{0, "#home"},
		{649, "#home"},
		{650, "#about"},
		{1349, "#about"},
		{1350, "#projects"},
		{400, "#home"},
	}
	for _, tt := range tests {
		doc.Window().SetScroll(tt.y)
		if diff := cmp.Diff([]string{tt.want}, activeLinks(doc)); diff != "" {
			t.Fatalf("y=%v active links (-want +got):\n%s", tt.y, diff)
		}
	}
}

func TestActiveSectionOverlapLastMatchWins(t *testing.T) {
	spans := []Span{
		{ID: "a", Top: 0, Height: 500},
		{ID: "b", Top: 400, Height: 500},
	}
	if id, ok := ActiveSection(spans, 450); !ok || id != "b" {
		t.Fatalf("ActiveSection overlap = %q,%v", id, ok)
	}
	if _, ok := ActiveSection(spans, 950); ok {
		t.Fatalf("probe past every section should not match")
	}
}

func TestScrollTopAndKeyboard(t *testing.T) {
	doc, _ := setup(t)
	doc.Window().SetScroll(900)
	doc.Dispatch(doc.ByID(ScrollTopID), &dom.Event{Type: dom.EventClick})
	if doc.Window().ScrollY() != 0 {
		t.Fatalf("scroll-to-top did not reach 0")
	}

	end := doc.DispatchDocument(&dom.Event{Type: dom.EventKeyDown, Key: "End", Ctrl: true})
	if !end.DefaultPrevented() || doc.Window().ScrollY() != 2400 {
		t.Fatalf("ctrl+end: prevented=%v y=%v", end.DefaultPrevented(), doc.Window().ScrollY())
	}
	plainHome := doc.DispatchDocument(&dom.Event{Type: dom.EventKeyDown, Key: "Home"})
	if plainHome.DefaultPrevented() || doc.Window().ScrollY() != 2400 {
		t.Fatalf("plain Home should be ignored")
	}
	doc.DispatchDocument(&dom.Event{Type: dom.EventKeyDown, Key: "Home", Ctrl: true})
	if doc.Window().ScrollY() != 0 {
		t.Fatalf("ctrl+home did not scroll to top")
	}
}

func TestMenuToggleAndEscape(t *testing.T) {
	doc, c := setup(t)
	c.ToggleMenu()
	if !doc.Query(".nav-links").HasClass("active") || !doc.Query(".hamburger").HasClass("active") {
		t.Fatalf("menu not opened")
	}
	doc.DispatchDocument(&dom.Event{Type: dom.EventKeyDown, Key: "Escape"})
	if doc.Query(".nav-links").HasClass("active") {
		t.Fatalf("escape did not close the menu")
	}
	c.ToggleMenu()
	c.ToggleMenu()
	if doc.Query(".nav-links").HasClass("active") {
		t.Fatalf("double toggle should close the menu")
	}
}

func TestCloseDetachesHandlers(t *testing.T) {
	doc, c := setup(t)
	c.Close()
	doc.Window().SetScroll(500)
	if doc.ByID(NavbarID).HasClass("scrolled") {
		t.Fatalf("handler still attached after Close")
	}
}
