// Package reveal fades content in as it scrolls into view and runs the about-section
// statistics counters once.
package reveal

import (
	"github.com/Its-donkey/portfolio-fx/internal/ui/clock"
	"github.com/Its-donkey/portfolio-fx/internal/ui/dom"
	"github.com/Its-donkey/portfolio-fx/logging"
)

const (
	AnimatedSelector = ".skill-category, .project-card, .contact-item, .stat-item"
	StatsSelector    = ".stat-number"
	AboutID          = "about"

	RevealThreshold  = 0.1
	RevealMargin     = "0px 0px -100px 0px"
	SectionThreshold = 0.2
	StatsThreshold   = 0.5

	ClassAnimated       = "animated"
	ClassSectionVisible = "section-visible"
)

// Set owns the three intersection watchers and the one-shot stats flag.
type Set struct {
	doc    dom.Document
	win    dom.Window
	sched  clock.Scheduler
	logger *logging.Logger

	observers     []dom.Observer
	statsAnimated bool
}

// New returns an unbound Set.
func New(doc dom.Document, win dom.Window, sched clock.Scheduler, logger *logging.Logger) *Set {
	return &Set{doc: doc, win: win, sched: sched, logger: logger}
}

// StatsAnimated reports whether the counters already ran this session.
func (s *Set) StatsAnimated() bool {
	return s.statsAnimated
}

// Bind hides the animated elements and starts watching them, every section and #about.
func (s *Set) Bind() {
	reveal := s.win.Observe(dom.ObserverOptions{Threshold: RevealThreshold, RootMargin: RevealMargin}, s.onReveal)
	dom.Each(s.doc.QueryAll(AnimatedSelector), func(_ int, el dom.Element) {
		el.SetStyle("opacity", "0")
		el.SetStyle("transform", "translateY(30px)")
		el.SetStyle("transition", "opacity 0.6s ease, transform 0.6s ease")
		reveal.Observe(el)
	})

	sections := s.win.Observe(dom.ObserverOptions{Threshold: SectionThreshold}, s.onSection)
	dom.Each(s.doc.QueryAll("section"), func(_ int, el dom.Element) {
		sections.Observe(el)
	})

	stats := s.win.Observe(dom.ObserverOptions{Threshold: StatsThreshold}, s.onStats)
	if about := s.doc.ByID(AboutID); about != nil {
		stats.Observe(about)
	}
	s.observers = append(s.observers, reveal, sections, stats)
}

// Close disconnects every watcher.
func (s *Set) Close() {
	for _, o := range s.observers {
		o.Disconnect()
	}
	s.observers = nil
}

func (s *Set) onReveal(entries []dom.IntersectionEntry, _ dom.Observer) {
	for _, e := range entries {
		if !e.IsIntersecting {
			continue
		}
		e.Target.SetStyle("opacity", "1")
		e.Target.SetStyle("transform", "translateY(0)")
		e.Target.AddClass(ClassAnimated)
	}
}

func (s *Set) onSection(entries []dom.IntersectionEntry, _ dom.Observer) {
	for _, e := range entries {
		if e.IsIntersecting {
			e.Target.AddClass(ClassSectionVisible)
		}
	}
}

func (s *Set) onStats(entries []dom.IntersectionEntry, obs dom.Observer) {
	for _, e := range entries {
		if !e.IsIntersecting || s.statsAnimated {
			continue
		}
		s.AnimateStats()
		obs.Unobserve(e.Target)
	}
}

// AnimateStats starts every counter ramp; it runs at most once per Set.
func (s *Set) AnimateStats() {
	if s.statsAnimated {
		return
	}
	s.statsAnimated = true
	started := 0
	dom.Each(s.doc.QueryAll(StatsSelector), func(_ int, el dom.Element) {
		if AnimateCounter(s.sched, el) {
			started++
		}
	})
	s.logger.Debug("reveal", "stats counters started", map[string]any{"counters": started})
}
