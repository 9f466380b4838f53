//go:build js && wasm

package wasm

import (
	"syscall/js"
	"time"

	"github.com/Its-donkey/portfolio-fx/internal/ui/portfolio"
	"github.com/Its-donkey/portfolio-fx/logging"
)

// LogLevelAttr on <html> sets the page logger's minimum level.
const LogLevelAttr = "data-log-level"

// RunApp bootstraps the portfolio page effects and blocks forever.
func RunApp() {
	done := make(chan struct{})
	window := js.Global()
	document := window.Get("document")

	level := logging.INFO
	if attr := document.Get("documentElement").Call("getAttribute", LogLevelAttr); attr.Type() == js.TypeString {
		level, _ = logging.ParseLevel(attr.String())
	}
	logger := logging.New("page", level, ConsoleWriter{})

	doc := &jsDocument{v: document}
	app := portfolio.New(portfolio.Env{
		Doc:       doc,
		Win:       &jsWindow{v: window, doc: document},
		Sched:     &jsScheduler{v: window},
		Store:     localStore{},
		Analytics: gtagAnalytics{},
		Console:   browserConsole{},
		Logger:    logger,
	})

	for name, fn := range app.Exports() {
		exportFunc(window, name, fn)
	}
	window.Set("releasePortfolio", js.FuncOf(func(js.Value, []js.Value) any {
		releaseAll()
		close(done)
		return nil
	}))

	readyState := document.Get("readyState").String()
	app.Start(readyState != "loading", func() time.Duration { return sinceNavigation(window) })
	// The load event may have fired before the module finished instantiating.
	if readyState == "complete" {
		app.OnLoad(sinceNavigation(window))
	}
	<-done
}

func exportFunc(window js.Value, name string, fn func()) {
	f := js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	})
	retain(f)
	window.Set(name, f)
}

func sinceNavigation(window js.Value) time.Duration {
	perf := window.Get("performance")
	if !perf.Truthy() {
		return 0
	}
	ms := perf.Call("now").Float()
	return time.Duration(ms * float64(time.Millisecond))
}
