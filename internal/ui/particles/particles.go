// Package particles fills the hero background with floating decorative dots.
package particles

import (
	"math"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/Its-donkey/portfolio-fx/internal/ui/clock"
	"github.com/Its-donkey/portfolio-fx/internal/ui/dom"
	"github.com/Its-donkey/portfolio-fx/logging"
)

const (
	ContainerID = "particles"

	// MobileBreakpoint is the viewport width below which the sparse field is used.
	MobileBreakpoint = 768
	MobileCount      = 30
	DesktopCount     = 50

	// RegenerateDelta is the width change that triggers a fresh field after resize.
	RegenerateDelta = 200
	ResizeDebounce  = 250 * time.Millisecond
)

// Count returns how many particles a viewport of the given width gets.
func Count(viewportWidth float64) int {
	if viewportWidth < MobileBreakpoint {
		return MobileCount
	}
	return DesktopCount
}

// Params are the randomized presentation values of one particle.
type Params struct {
	LeftPercent float64
	Delay       float64 // seconds
	Duration    float64 // seconds
	Size        float64 // px
}

// RandomParams draws one particle's parameters from r.
func RandomParams(r *rand.Rand) Params {
	return Params{
		LeftPercent: r.Float64() * 100,
		Delay:       r.Float64() * 20,
		Duration:    r.Float64()*10 + 10,
		Size:        r.Float64()*3 + 2,
	}
}

// Field owns the particle container and its one-time initialization flag.
type Field struct {
	doc    dom.Document
	win    dom.Window
	rand   *rand.Rand
	logger *logging.Logger

	initialized bool
	lastWidth   float64
}

// New builds a Field; a nil rand source falls back to a time-seeded PCG.
func New(doc dom.Document, win dom.Window, r *rand.Rand, logger *logging.Logger) *Field {
	if r == nil {
		seed := uint64(time.Now().UnixNano())
		r = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return &Field{doc: doc, win: win, rand: r, logger: logger}
}

// Initialized reports whether the current field has been generated.
func (f *Field) Initialized() bool {
	return f.initialized
}

// Populate appends the particles once. A missing container is ignored.
func (f *Field) Populate() {
	if f.initialized {
		return
	}
	container := f.doc.ByID(ContainerID)
	if container == nil {
		return
	}
	width := f.win.InnerWidth()
	n := Count(width)
	for i := 0; i < n; i++ {
		container.AppendChild(f.particle(RandomParams(f.rand)))
	}
	f.initialized = true
	f.lastWidth = width
	f.logger.Debug("particles", "field generated", map[string]any{"count": n, "width": width})
}

func (f *Field) particle(p Params) dom.Element {
	el := f.doc.Create("div")
	el.AddClass("particle")
	el.SetStyle("left", formatFloat(p.LeftPercent)+"%")
	el.SetStyle("animation-delay", formatFloat(p.Delay)+"s")
	el.SetStyle("animation-duration", formatFloat(p.Duration)+"s")
	size := formatFloat(p.Size) + "px"
	el.SetStyle("width", size)
	el.SetStyle("height", size)
	return el
}

// Resize regenerates the field when the width moved more than RegenerateDelta
// since the last generation.
func (f *Field) Resize() {
	width := f.win.InnerWidth()
	if math.Abs(width-f.lastWidth) <= RegenerateDelta {
		return
	}
	container := f.doc.Query(".particles")
	if container == nil {
		container = f.doc.ByID(ContainerID)
	}
	if container == nil {
		return
	}
	container.Empty()
	f.initialized = false
	f.Populate()
}

// Bind subscribes the debounced resize handler on win.
func (f *Field) Bind(s clock.Scheduler) dom.Subscription {
	resize := clock.Debounce(s, ResizeDebounce, f.Resize)
	return f.win.Listen(dom.EventResize, func(*dom.Event) { resize() })
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
