// Package pointer adds hover, tap and click feedback to tech badges and project cards.
package pointer

import (
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/Its-donkey/portfolio-fx/internal/ui/clock"
	"github.com/Its-donkey/portfolio-fx/internal/ui/dom"
)

const (
	TechSelector = ".tech-item"
	CardSelector = ".project-card"

	TechHover = "scale(1.05) rotate(2deg)"
	TechRest  = "scale(1) rotate(0deg)"

	CardHover       = "translateY(-10px)"
	CardRest        = "translateY(0)"
	CardPressed     = "translateY(-15px) scale(1.02)"
	CardReleased    = "translateY(-10px) scale(1)"
	CardHoverShadow = "0 20px 40px rgba(0, 255, 255, 0.15)"
	CardRestShadow  = "0 10px 20px rgba(0, 255, 255, 0.05)"

	TapRevert      = 200 * time.Millisecond
	BounceRevert   = 200 * time.Millisecond
	RippleLifetime = 600 * time.Millisecond

	// RippleStyleID marks the injected keyframes so they are added only once.
	RippleStyleID = "fx-ripple-keyframes"
)

const rippleKeyframes = `
    @keyframes ripple {
        to {
            transform: scale(2);
            opacity: 0;
        }
    }
`

// Effects wires pointer feedback for one document.
type Effects struct {
	doc   dom.Document
	sched clock.Scheduler
	subs  []dom.Subscription
}

// New returns unbound Effects.
func New(doc dom.Document, sched clock.Scheduler) *Effects {
	return &Effects{doc: doc, sched: sched}
}

// Close detaches every handler.
func (e *Effects) Close() {
	for _, s := range e.subs {
		s.Cancel()
	}
	e.subs = nil
}

func (e *Effects) on(el dom.Element, event string, h dom.Handler) {
	e.subs = append(e.subs, el.Listen(event, h))
}

// BindTechItems applies the hover transform on enter/touch and reverts it on leave or
// TapRevert after a touch.
func (e *Effects) BindTechItems() {
	dom.Each(e.doc.QueryAll(TechSelector), func(_ int, item dom.Element) {
		e.on(item, dom.EventMouseEnter, func(*dom.Event) {
			item.SetStyle("transform", TechHover)
		})
		e.on(item, dom.EventMouseLeave, func(*dom.Event) {
			item.SetStyle("transform", TechRest)
		})
		e.on(item, dom.EventTouchStart, func(*dom.Event) {
			item.SetStyle("transform", TechHover)
			e.sched.AfterFunc(TapRevert, func() {
				item.SetStyle("transform", TechRest)
			})
		})
	})
}

// BindCards adds hover lift, a click bounce and a ripple to project cards.
func (e *Effects) BindCards() {
	dom.Each(e.doc.QueryAll(CardSelector), func(_ int, card dom.Element) {
		e.on(card, dom.EventClick, func(ev *dom.Event) {
			card.SetStyle("transform", CardPressed)
			e.sched.AfterFunc(BounceRevert, func() {
				card.SetStyle("transform", CardReleased)
			})
			e.Ripple(card, ev.ClientX, ev.ClientY)
		})
		e.on(card, dom.EventMouseEnter, func(*dom.Event) {
			card.SetStyle("transform", CardHover)
			card.SetStyle("box-shadow", CardHoverShadow)
		})
		e.on(card, dom.EventMouseLeave, func(*dom.Event) {
			card.SetStyle("transform", CardRest)
			card.SetStyle("box-shadow", CardRestShadow)
		})
	})
}

// RippleGeometry returns the ripple diameter and its offset inside a box clicked at
// (clientX, clientY).
func RippleGeometry(box dom.Rect, clientX, clientY float64) (size, x, y float64) {
	size = math.Max(box.Width, box.Height)
	x = clientX - box.Left - size/2
	y = clientY - box.Top - size/2
	return size, x, y
}

// Ripple spawns an expanding circle centered on the click point; it removes itself
// after RippleLifetime.
func (e *Effects) Ripple(el dom.Element, clientX, clientY float64) dom.Element {
	e.InjectKeyframes()
	size, x, y := RippleGeometry(el.Rect(), clientX, clientY)

	ripple := e.doc.Create("span")
	ripple.AddClass("ripple")
	ripple.SetAttr("data-fx-id", uuid.NewString())
	ripple.SetCSSText(`
        position: absolute;
        border-radius: 50%;
        background: rgba(0, 255, 255, 0.3);
        transform: scale(0);
        animation: ripple 0.6s linear;
        width: ` + px(size) + `;
        height: ` + px(size) + `;
        left: ` + px(x) + `;
        top: ` + px(y) + `;
        pointer-events: none;
    `)

	el.SetStyle("position", "relative")
	el.SetStyle("overflow", "hidden")
	el.AppendChild(ripple)
	e.sched.AfterFunc(RippleLifetime, ripple.Remove)
	return ripple
}

// InjectKeyframes adds the ripple @keyframes to <head> unless already present.
func (e *Effects) InjectKeyframes() {
	if e.doc.ByID(RippleStyleID) != nil {
		return
	}
	head := e.doc.Head()
	if head == nil {
		return
	}
	style := e.doc.Create("style")
	style.SetAttr("id", RippleStyleID)
	style.SetText(rippleKeyframes)
	head.AppendChild(style)
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
