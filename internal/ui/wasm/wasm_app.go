//go:build js && wasm

package wasm

import (
	"fmt"
	"strings"
	"sync"
	"syscall/js"
)

var (
	funcsMu sync.Mutex
	// liveFuncs stores bound js.Func callbacks so they can be released later.
	liveFuncs = map[*js.Func]struct{}{}
)

func retain(fn js.Func) {
	funcsMu.Lock()
	liveFuncs[&fn] = struct{}{}
	funcsMu.Unlock()
}

// release frees fn. Releasing twice is harmless.
func release(fn js.Func) {
	funcsMu.Lock()
	defer funcsMu.Unlock()
	for p := range liveFuncs {
		if p.Value.Equal(fn.Value) {
			delete(liveFuncs, p)
			fn.Release()
			return
		}
	}
}

// releaseAll frees every callback still registered.
func releaseAll() {
	funcsMu.Lock()
	defer funcsMu.Unlock()
	for p := range liveFuncs {
		p.Release()
	}
	clear(liveFuncs)
}

// localStore persists preferences in window.localStorage.
// Storage access can throw (private mode, disabled cookies); failures read as missing.
type localStore struct{}

func (localStore) Get(key string) (value string, ok bool) {
	defer func() {
		if recover() != nil {
			value, ok = "", false
		}
	}()
	storage := js.Global().Get("localStorage")
	if !storage.Truthy() {
		return "", false
	}
	v := storage.Call("getItem", key)
	if v.Type() != js.TypeString {
		return "", false
	}
	return strings.TrimSpace(v.String()), true
}

func (localStore) Set(key, value string) {
	defer func() { _ = recover() }()
	storage := js.Global().Get("localStorage")
	if storage.Truthy() {
		storage.Call("setItem", key, value)
	}
}

// gtagAnalytics forwards events to window.gtag when the page loads it.
type gtagAnalytics struct{}

func (gtagAnalytics) Track(event string, params map[string]string) {
	gtag := js.Global().Get("gtag")
	if gtag.Type() != js.TypeFunction {
		return
	}
	obj := js.Global().Get("Object").New()
	for k, v := range params {
		obj.Set(k, v)
	}
	gtag.Invoke("event", event, obj)
}

// browserConsole prints styled lines with console.log("%c...").
type browserConsole struct{}

func (browserConsole) Styled(style, text string) {
	js.Global().Get("console").Call("log", "%c"+text, style)
}

// ConsoleWriter feeds JSON log lines to the devtools console.
type ConsoleWriter struct{}

func (ConsoleWriter) Write(p []byte) (int, error) {
	line := strings.TrimRight(string(p), "\n")
	method := "log"
	switch {
	case strings.Contains(line, `"level":"ERROR"`):
		method = "error"
	case strings.Contains(line, `"level":"WARN"`):
		method = "warn"
	case strings.Contains(line, `"level":"DEBUG"`):
		method = "debug"
	}
	console := js.Global().Get("console")
	if !console.Truthy() {
		return 0, fmt.Errorf("console unavailable")
	}
	console.Call(method, line)
	return len(p), nil
}
