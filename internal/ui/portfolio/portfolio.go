// Package portfolio wires every page effect to one document.
package portfolio

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/Its-donkey/portfolio-fx/internal/ui/actions"
	"github.com/Its-donkey/portfolio-fx/internal/ui/clock"
	"github.com/Its-donkey/portfolio-fx/internal/ui/dom"
	"github.com/Its-donkey/portfolio-fx/internal/ui/nav"
	"github.com/Its-donkey/portfolio-fx/internal/ui/parallax"
	"github.com/Its-donkey/portfolio-fx/internal/ui/particles"
	"github.com/Its-donkey/portfolio-fx/internal/ui/pointer"
	"github.com/Its-donkey/portfolio-fx/internal/ui/reveal"
	"github.com/Its-donkey/portfolio-fx/internal/ui/theme"
	"github.com/Its-donkey/portfolio-fx/internal/ui/toast"
	"github.com/Its-donkey/portfolio-fx/internal/ui/typing"
	"github.com/Its-donkey/portfolio-fx/logging"
)

// ErrorToast is shown when an uncaught page error carries a message.
const ErrorToast = "Something went wrong. Please refresh the page."

// Console prints styled developer output (console.log with %c in the browser).
type Console interface {
	Styled(style, text string)
}

// Env is everything the page layer needs from its host.
type Env struct {
	Doc       dom.Document
	Win       dom.Window
	Sched     clock.Scheduler
	Store     theme.Store
	Analytics actions.Analytics
	Console   Console
	Logger    *logging.Logger
	Rand      *rand.Rand

	ResumePath string
	Texts      []string
}

// App holds one instance of every component.
type App struct {
	env Env

	Particles *particles.Field
	Nav       *nav.Controller
	Typing    *typing.Animator
	Reveal    *reveal.Set
	Pointer   *pointer.Effects
	Parallax  *parallax.Updater
	Toasts    *toast.Emitter
	Theme     *theme.Preference
	Actions   *actions.Actions

	initialized bool
	loaded      bool
}

// New builds the components without touching the page.
func New(env Env) *App {
	a := &App{env: env}
	a.Particles = particles.New(env.Doc, env.Win, env.Rand, env.Logger)
	a.Nav = nav.New(env.Doc, env.Win, env.Logger)
	a.Typing = typing.NewAnimator(env.Doc, env.Sched, env.Texts)
	a.Reveal = reveal.New(env.Doc, env.Win, env.Sched, env.Logger)
	a.Pointer = pointer.New(env.Doc, env.Sched)
	a.Parallax = parallax.New(env.Doc, env.Win, env.Sched, nil)
	a.Toasts = toast.New(env.Doc, env.Sched, env.Logger)
	a.Theme = theme.New(env.Doc, env.Store, env.Logger)
	a.Actions = &actions.Actions{
		Doc:        env.Doc,
		Win:        env.Win,
		Nav:        a.Nav,
		Theme:      a.Theme,
		Toasts:     a.Toasts,
		Analytics:  env.Analytics,
		Logger:     env.Logger,
		ResumePath: env.ResumePath,
	}
	return a
}

// Start runs Init now when the document is ready, otherwise on DOMContentLoaded, and
// arranges for OnLoad on the window load event. elapsed reports navigation-to-load time.
func (a *App) Start(ready bool, elapsed func() time.Duration) {
	a.env.Win.Listen(dom.EventError, a.OnError)
	if ready {
		a.Init()
	} else {
		a.env.Doc.Listen(dom.EventDOMReady, func(*dom.Event) { a.Init() })
	}
	a.env.Win.Listen(dom.EventLoad, func(*dom.Event) {
		var d time.Duration
		if elapsed != nil {
			d = elapsed()
		}
		a.OnLoad(d)
	})
}

// Init wires every component once.
func (a *App) Init() {
	if a.initialized {
		return
	}
	a.initialized = true

	a.Theme.Load()
	a.Particles.Populate()
	a.Nav.BindSmoothScroll()
	a.Nav.BindScrollEffects()
	a.Nav.BindScrollTop()
	a.Reveal.Bind()
	a.Pointer.BindTechItems()
	a.Pointer.BindCards()
	a.Pointer.InjectKeyframes()
	a.Parallax.Bind()
	a.Nav.BindKeyboard()
	a.Actions.BindContactForm()
	a.Particles.Bind(a.env.Sched)
	a.developerMessage()

	a.env.Logger.Info("init", "page effects initialized", map[string]any{
		"width":  a.env.Win.InnerWidth(),
		"height": a.env.Win.InnerHeight(),
	})
}

// OnLoad fades the page in and starts the typing animation.
func (a *App) OnLoad(elapsed time.Duration) {
	if a.loaded {
		return
	}
	a.loaded = true
	if body := a.env.Doc.Body(); body != nil {
		body.SetStyle("opacity", "1")
	}
	a.Typing.StartAfter(typing.StartDelay)
	if elapsed > 0 {
		a.styled(styleTiming, fmt.Sprintf("Portfolio loaded in %dms", elapsed.Milliseconds()))
		a.env.Logger.Info("init", "page loaded", map[string]any{"load_ms": elapsed.Milliseconds()})
	}
}

// OnError logs an uncaught page error and, when it carries a message, tells the visitor.
func (a *App) OnError(ev *dom.Event) {
	var err error
	if ev != nil && ev.Message != "" {
		err = errors.New(ev.Message)
	}
	a.env.Logger.Error("error", "uncaught page error", err, nil)
	if err != nil {
		a.Toasts.Show(ErrorToast, toast.Error)
	}
}

// Notify shows a toast.
func (a *App) Notify(message string, severity toast.Severity) {
	a.Toasts.Show(message, severity)
}

// Exports are the functions markup invokes inline, keyed by their global name.
func (a *App) Exports() map[string]func() {
	return map[string]func(){
		"downloadResume":   a.Actions.DownloadResume,
		"toggleMobileMenu": a.Actions.ToggleMobileMenu,
		"toggleTheme":      func() { a.Actions.ToggleTheme() },
	}
}
