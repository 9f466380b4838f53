// Package actions implements the operations markup calls inline: downloading the resume,
// toggling the mobile menu and the theme, and acknowledging the contact form.
package actions

import (
	"path"

	"github.com/Its-donkey/portfolio-fx/internal/ui/dom"
	"github.com/Its-donkey/portfolio-fx/internal/ui/nav"
	"github.com/Its-donkey/portfolio-fx/internal/ui/theme"
	"github.com/Its-donkey/portfolio-fx/internal/ui/toast"
	"github.com/Its-donkey/portfolio-fx/logging"
)

const (
	DefaultResumePath = "./resources/resume.pdf"
	ContactFormID     = "contact-form"

	DownloadFallback = "Resume download will be available soon. Please contact me directly for my latest resume."
	ContactThanks    = "Thank you for your message! I'll get back to you soon."
)

// Analytics receives categorized events, e.g. a gtag bridge.
type Analytics interface {
	Track(event string, params map[string]string)
}

// Actions groups the inline entry points. Analytics may be nil.
type Actions struct {
	Doc        dom.Document
	Win        dom.Window
	Nav        *nav.Controller
	Theme      *theme.Preference
	Toasts     *toast.Emitter
	Analytics  Analytics
	Logger     *logging.Logger
	ResumePath string
}

func (a *Actions) resumePath() string {
	if a.ResumePath == "" {
		return DefaultResumePath
	}
	return a.ResumePath
}

// DownloadResume clicks a synthetic download link and alerts the visitor if the click fails.
func (a *Actions) DownloadResume() {
	href := a.resumePath()
	link := a.Doc.Create("a")
	link.SetAttr("href", href)
	link.SetAttr("download", path.Base(href))
	link.SetAttr("target", "_blank")

	if err := link.Click(); err != nil {
		a.Logger.Error("actions", "resume download failed", err, map[string]any{"href": href})
		a.Win.Alert(DownloadFallback)
	}

	if a.Analytics != nil {
		a.Analytics.Track("download", map[string]string{
			"event_category": "resume",
			"event_label":    "header_download",
		})
	}
}

// ToggleMobileMenu opens or closes the navigation menu.
func (a *Actions) ToggleMobileMenu() {
	if a.Nav != nil {
		a.Nav.ToggleMenu()
	}
}

// ToggleTheme flips and persists the color scheme.
func (a *Actions) ToggleTheme() theme.Mode {
	if a.Theme == nil {
		return theme.Default
	}
	return a.Theme.Toggle()
}

// HandleContactForm acknowledges a submission locally and clears the form.
func (a *Actions) HandleContactForm(ev *dom.Event) {
	ev.PreventDefault()
	if a.Toasts != nil {
		a.Toasts.Show(ContactThanks, toast.Success)
	}
	if ev.Target != nil {
		ev.Target.Reset()
	}
}

// BindContactForm attaches HandleContactForm to #contact-form when present.
func (a *Actions) BindContactForm() dom.Subscription {
	form := a.Doc.ByID(ContactFormID)
	if form == nil {
		return dom.SubscriptionFunc(nil)
	}
	return form.Listen(dom.EventSubmit, a.HandleContactForm)
}
