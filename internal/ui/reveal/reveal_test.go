package reveal

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/Its-donkey/portfolio-fx/internal/ui/clock"
	"github.com/Its-donkey/portfolio-fx/internal/ui/dom/htmldom"
)

const page = `<html><body>
<section id="home"><div class="skill-category">Go</div></section>
<section id="about">
  <div class="stat-item"><span class="stat-number">150+</span></div>
  <div class="stat-item"><span class="stat-number">5 yrs</span></div>
  <div class="stat-item"><span class="stat-number">∞</span></div>
</section>
</body></html>`

func setup(t *testing.T) (*htmldom.Document, *clock.Virtual, *Set) {
	t.Helper()
	doc := htmldom.MustParse(page)
	sched := clock.NewVirtual()
	s := New(doc, doc.Window(), sched, nil)
	s.Bind()
	return doc, sched, s
}

func TestParseCounter(t *testing.T) {
	tests := []struct {
		in     string
		target int
		suffix string
		ok     bool
	}{
		{"150+", 150, "+", true},
		{"5 yrs", 5, " yrs", true},
		{"99%", 99, "%", true},
		{"~40k", 40, "~k", true},
		{"none", 0, "", false},
	}
	for _, tt := range tests {
		target, suffix, ok := ParseCounter(tt.in)
		if target != tt.target || suffix != tt.suffix || ok != tt.ok {
			t.Fatalf("ParseCounter(%q) = %d,%q,%v", tt.in, target, suffix, ok)
		}
	}
}

func TestRevealIsOneWay(t *testing.T) {
	doc, _, _ := setup(t)
	el := doc.Query(".skill-category")
	if el.Style("opacity") != "0" || el.Style("transform") != "translateY(30px)" {
		t.Fatalf("element not hidden initially: %q", el.Attr("style"))
	}
	doc.Intersect(el, 0.05)
	if el.HasClass(ClassAnimated) {
		t.Fatalf("revealed below threshold")
	}
	doc.Intersect(el, 0.1)
	if !el.HasClass(ClassAnimated) || el.Style("opacity") != "1" || el.Style("transform") != "translateY(0)" {
		t.Fatalf("element not revealed: %q", el.Attr("style"))
	}
	doc.Intersect(el, 0)
	if !el.HasClass(ClassAnimated) || el.Style("opacity") != "1" {
		t.Fatalf("reveal must not be undone")
	}
}

func TestSectionVisibility(t *testing.T) {
	doc, _, _ := setup(t)
	home := doc.ByID("home")
	doc.Intersect(home, 0.19)
	if home.HasClass(ClassSectionVisible) {
		t.Fatalf("section visible below threshold")
	}
	doc.Intersect(home, 0.2)
	doc.Intersect(home, 0)
	if !home.HasClass(ClassSectionVisible) {
		t.Fatalf("section visibility missing")
	}
}

func TestStatsCounterRampsToExactTarget(t *testing.T) {
	doc, sched, s := setup(t)
	about := doc.ByID(AboutID)
	doc.Intersect(about, 0.6)
	if !s.StatsAnimated() {
		t.Fatalf("stats should be marked animated")
	}
	stat := doc.Query(StatsSelector)

	last := -1
	for elapsed := time.Duration(0); elapsed < CounterDuration; elapsed += CounterInterval {
		sched.Advance(CounterInterval)
		text := stat.Text()
		if !strings.HasSuffix(text, "+") {
			t.Fatalf("suffix lost during ramp: %q", text)
		}
		n, err := strconv.Atoi(strings.TrimSuffix(text, "+"))
		if err != nil {
			t.Fatalf("non-integer prefix %q", text)
		}
		if n < last || n > 150 {
			t.Fatalf("ramp went from %d to %d", last, n)
		}
		last = n
	}
	if got := stat.Text(); got != "150+" {
		t.Fatalf("final text %q", got)
	}
	if got := doc.QueryAll(StatsSelector)[1].Text(); got != "5 yrs" {
		t.Fatalf("second counter final text %q", got)
	}
	if got := doc.QueryAll(StatsSelector)[2].Text(); got != "∞" {
		t.Fatalf("non numeric counter changed: %q", got)
	}
	if sched.Pending() != 0 {
		t.Fatalf("counter intervals still running: %d", sched.Pending())
	}
}

func TestStatsRunAtMostOnce(t *testing.T) {
	doc, sched, s := setup(t)
	about := doc.ByID(AboutID)
	doc.Intersect(about, 0.4)
	if s.StatsAnimated() {
		t.Fatalf("stats triggered below threshold")
	}
	doc.Intersect(about, 0.5)
	if doc.ObservedCount(about) != 1 {
		t.Fatalf("about should only remain in the section watcher, got %d", doc.ObservedCount(about))
	}
	sched.Advance(CounterDuration)

	doc.Query(StatsSelector).SetText("150+")
	doc.Intersect(about, 1)
	s.AnimateStats()
	sched.Advance(CounterInterval)
	if got := doc.Query(StatsSelector).Text(); got != "150+" {
		t.Fatalf("counter restarted: %q", got)
	}
}

func TestCounterFrameZeroTarget(t *testing.T) {
	text, done := CounterFrame(0, "+", 1)
	if text != "0+" || !done {
		t.Fatalf("CounterFrame(0) = %q,%v", text, done)
	}
}
