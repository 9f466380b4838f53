// Package contract checks that a portfolio page carries the markup the effects look for.
package contract

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Its-donkey/portfolio-fx/internal/ui/nav"
	"github.com/Its-donkey/portfolio-fx/internal/ui/particles"
	"github.com/Its-donkey/portfolio-fx/internal/ui/pointer"
	"github.com/Its-donkey/portfolio-fx/internal/ui/reveal"
	"github.com/Its-donkey/portfolio-fx/internal/ui/typing"
)

// InlineHandlers are the global functions markup may call from on* attributes.
var InlineHandlers = []string{"downloadResume", "toggleMobileMenu", "toggleTheme"}

// Region is a named part of the page located by a selector.
type Region struct {
	Name     string
	Selector string
}

// Regions lists every region an effect binds to.
var Regions = []Region{
	{"particles", "#" + particles.ContainerID + ", .particles"},
	{"navbar", "#" + nav.NavbarID + ", nav"},
	{"nav links", ".nav-links"},
	{"scroll to top", "#" + nav.ScrollTopID},
	{"subtitle", typing.SubtitleSelector},
	{"stats", reveal.StatsSelector},
	{"tech items", pointer.TechSelector},
	{"project cards", pointer.CardSelector},
}

// Report is the outcome of one audit. Missing regions degrade to no-ops at runtime,
// so none of these are fatal.
type Report struct {
	Title            string
	Missing          []string
	Sections         []string
	UnlinkedSections []string
	UnknownHandlers  []string
}

// OK reports whether nothing was flagged.
func (r Report) OK() bool {
	return len(r.Missing) == 0 && len(r.UnlinkedSections) == 0 && len(r.UnknownHandlers) == 0
}

// Problems flattens the report into readable lines.
func (r Report) Problems() []string {
	var out []string
	for _, m := range r.Missing {
		out = append(out, "missing region: "+m)
	}
	for _, s := range r.UnlinkedSections {
		out = append(out, fmt.Sprintf("section %q has no nav link", s))
	}
	for _, h := range r.UnknownHandlers {
		out = append(out, fmt.Sprintf("inline handler %q is not exported", h))
	}
	return out
}

var callPattern = regexp.MustCompile(`([A-Za-z_$][\w$]*)\s*\(`)

// Audit parses an HTML page and checks it.
func Audit(r io.Reader) (Report, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Report{}, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return AuditDocument(doc), nil
}

// AuditFile audits the page stored at path.
func AuditFile(path string) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("open page: %w", err)
	}
	defer f.Close()
	return Audit(f)
}

// AuditDocument checks an already parsed page.
func AuditDocument(doc *goquery.Document) Report {
	rep := Report{Title: strings.TrimSpace(doc.Find("title").First().Text())}

	for _, reg := range Regions {
		if doc.Find(reg.Selector).Length() == 0 {
			rep.Missing = append(rep.Missing, reg.Name)
		}
	}

	linked := map[string]bool{}
	doc.Find(`.nav-links a[href^="#"]`).Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		linked[strings.TrimPrefix(href, "#")] = true
	})
	doc.Find("section[id]").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		rep.Sections = append(rep.Sections, id)
		if !linked[id] {
			rep.UnlinkedSections = append(rep.UnlinkedSections, id)
		}
	})

	known := map[string]bool{}
	for _, h := range InlineHandlers {
		known[h] = true
	}
	unknown := map[string]bool{}
	doc.Find("[onclick], [onsubmit]").Each(func(_ int, s *goquery.Selection) {
		for _, attr := range []string{"onclick", "onsubmit"} {
			code, ok := s.Attr(attr)
			if !ok {
				continue
			}
			for _, m := range callPattern.FindAllStringSubmatch(code, -1) {
				if !known[m[1]] {
					unknown[m[1]] = true
				}
			}
		}
	})
	for name := range unknown {
		rep.UnknownHandlers = append(rep.UnknownHandlers, name)
	}
	sort.Strings(rep.UnknownHandlers)
	return rep
}
