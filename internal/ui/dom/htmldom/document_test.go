package htmldom

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Its-donkey/portfolio-fx/internal/ui/dom"
)

const fixture = `<!doctype html><html><head></head><body>
<nav id="navbar"><ul class="nav-links"><li><a href="#about">About</a></li></ul></nav>
<section id="about"><p class="stat-number">150+</p></section>
<form id="contact-form"><input name="email" value="a@b.c"><textarea name="message">hi</textarea></form>
</body></html>`

func TestQueryAndClassManipulation(t *testing.T) {
	d := MustParse(fixture)
	nav := d.ByID("navbar")
	if nav == nil {
		t.Fatalf("navbar not found")
	}
	nav.AddClass("scrolled")
	if !d.ByID("navbar").HasClass("scrolled") {
		t.Fatalf("class not persisted on node")
	}
	nav.ToggleClass("scrolled")
	if nav.HasClass("scrolled") {
		t.Fatalf("toggle did not remove class")
	}
	if d.ByID("missing") != nil {
		t.Fatalf("expected nil for missing id")
	}
	if link := d.Query(`.nav-links a[href="#about"]`); link == nil || link.Text() != "About" {
		t.Fatalf("attribute selector lookup failed: %v", link)
	}
}

func TestStyleRoundTrip(t *testing.T) {
	d := MustParse(fixture)
	el := d.Create("div")
	el.SetStyle("transform", "scale(1.05)")
	el.SetStyle("opacity", "0")
	el.SetStyle("Transform", "scale(1)")
	if got := el.Attr("style"); got != "transform: scale(1); opacity: 0" {
		t.Fatalf("unexpected style attribute %q", got)
	}
	el.SetStyle("opacity", "")
	if el.Style("opacity") != "" || el.Style("transform") != "scale(1)" {
		t.Fatalf("unexpected style after removal: %q", el.Attr("style"))
	}
	el.SetCSSText(`
		position: absolute;
		left: 4px;
	`)
	if el.Style("position") != "absolute" || el.Style("transform") != "" {
		t.Fatalf("cssText did not replace declarations: %q", el.Attr("style"))
	}
}

func TestAppendRemoveAndAttached(t *testing.T) {
	d := MustParse(fixture)
	body := d.Body()
	child := d.Create("span").(*Element)
	if child.Attached() {
		t.Fatalf("new element should be detached")
	}
	body.AppendChild(child)
	if !child.Attached() {
		t.Fatalf("appended element should be attached")
	}
	child.Remove()
	if child.Attached() {
		t.Fatalf("removed element still attached")
	}
}

func TestDispatchAndCancel(t *testing.T) {
	d := MustParse(fixture)
	link := d.Query(".nav-links a")
	var got []string
	sub := link.Listen(dom.EventClick, func(ev *dom.Event) {
		got = append(got, ev.Type)
		ev.PreventDefault()
	})
	ev := d.Dispatch(link, &dom.Event{Type: dom.EventClick})
	if !ev.DefaultPrevented() {
		t.Fatalf("expected default prevented")
	}
	sub.Cancel()
	d.Dispatch(link, &dom.Event{Type: dom.EventClick})
	if diff := cmp.Diff([]string{"click"}, got); diff != "" {
		t.Fatalf("events (-want +got):\n%s", diff)
	}
}

func TestRectFollowsScroll(t *testing.T) {
	d := MustParse(fixture)
	d.SetLayoutByID("about", dom.Rect{Top: 900, Height: 600, Width: 1280})
	d.Window().SetScroll(400)
	about := d.ByID("about")
	if got := about.Rect().Top; got != 500 {
		t.Fatalf("expected viewport top 500, got %v", got)
	}
	if about.OffsetTop() != 900 || about.OffsetHeight() != 600 {
		t.Fatalf("unexpected offsets %v/%v", about.OffsetTop(), about.OffsetHeight())
	}
}

func TestIntersectHonoursThresholdAndUnobserve(t *testing.T) {
	d := MustParse(fixture)
	about := d.ByID("about")
	var ratios []float64
	obs := d.Window().Observe(dom.ObserverOptions{Threshold: 0.5}, func(entries []dom.IntersectionEntry, o dom.Observer) {
		for _, e := range entries {
			if e.IsIntersecting {
				ratios = append(ratios, e.Ratio)
			}
		}
	})
	obs.Observe(about)
	d.Intersect(about, 0.2)
	d.Intersect(about, 0.6)
	obs.Unobserve(d.ByID("about"))
	d.Intersect(about, 0.9)
	if diff := cmp.Diff([]float64{0.6}, ratios); diff != "" {
		t.Fatalf("intersections (-want +got):\n%s", diff)
	}
	if d.ObservedCount(about) != 0 {
		t.Fatalf("target still observed")
	}
}

func TestClickFailureAndReset(t *testing.T) {
	d := MustParse(fixture)
	a := d.Create("a")
	boom := errors.New("blocked")
	d.FailClicks(boom)
	if err := a.Click(); !errors.Is(err, boom) {
		t.Fatalf("expected click failure, got %v", err)
	}
	d.FailClicks(nil)
	if err := a.Click(); err != nil {
		t.Fatalf("unexpected click error: %v", err)
	}
	if len(d.Clicked()) != 1 {
		t.Fatalf("expected one recorded click")
	}

	form := d.ByID("contact-form")
	form.Reset()
	if d.Resets(form) != 1 {
		t.Fatalf("reset not recorded")
	}
	if v := d.Query(`input[name="email"]`).Attr("value"); v != "" {
		t.Fatalf("input not cleared: %q", v)
	}
	if txt := d.Query("textarea").Text(); txt != "" {
		t.Fatalf("textarea not cleared: %q", txt)
	}
}
