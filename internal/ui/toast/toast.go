// Package toast shows transient notifications that slide in from the right edge.
package toast

import (
	"time"

	"github.com/google/uuid"

	"github.com/Its-donkey/portfolio-fx/internal/ui/clock"
	"github.com/Its-donkey/portfolio-fx/internal/ui/dom"
	"github.com/Its-donkey/portfolio-fx/logging"
)

// Severity selects the toast styling.
type Severity string

const (
	Info    Severity = "info"
	Success Severity = "success"
	Error   Severity = "error"
)

// ParseSeverity maps unknown values to Info.
func ParseSeverity(s string) Severity {
	switch Severity(s) {
	case Success:
		return Success
	case Error:
		return Error
	default:
		return Info
	}
}

func (s Severity) background() string {
	switch s {
	case Success:
		return "rgba(0, 255, 136, 0.9)"
	case Error:
		return "rgba(255, 85, 85, 0.95)"
	default:
		return "rgba(0, 255, 255, 0.9)"
	}
}

const (
	SlideInDelay = 100 * time.Millisecond
	Visible      = 5000 * time.Millisecond
	SlideOut     = 300 * time.Millisecond

	Hidden = "translateX(400px)"
	Shown  = "translateX(0)"
)

// Emitter creates toasts on the document body.
type Emitter struct {
	doc    dom.Document
	sched  clock.Scheduler
	logger *logging.Logger
}

// New returns an Emitter.
func New(doc dom.Document, sched clock.Scheduler, logger *logging.Logger) *Emitter {
	return &Emitter{doc: doc, sched: sched, logger: logger}
}

// Show displays message and schedules its removal. Concurrent toasts stack independently.
// It returns nil when the page has no body.
func (e *Emitter) Show(message string, severity Severity) dom.Element {
	body := e.doc.Body()
	if body == nil {
		return nil
	}
	severity = ParseSeverity(string(severity))

	n := e.doc.Create("div")
	id := uuid.NewString()
	n.SetAttr("data-fx-id", id)
	n.AddClass("notification", "notification-"+string(severity))
	n.SetText(message)
	n.SetCSSText(`
        position: fixed;
        top: 20px;
        right: 20px;
        background: ` + severity.background() + `;
        color: #0a0a0a;
        padding: 1rem 2rem;
        border-radius: 5px;
        z-index: 10000;
        transform: ` + Hidden + `;
        transition: transform 0.3s ease;
        max-width: 300px;
        word-wrap: break-word;
    `)
	body.AppendChild(n)
	e.logger.Debug("toast", "notification shown", map[string]any{"id": id, "severity": string(severity)})

	e.sched.AfterFunc(SlideInDelay, func() {
		n.SetStyle("transform", Shown)
	})
	e.sched.AfterFunc(Visible, func() {
		n.SetStyle("transform", Hidden)
		e.sched.AfterFunc(SlideOut, n.Remove)
	})
	return n
}
