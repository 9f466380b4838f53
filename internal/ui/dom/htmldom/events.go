package htmldom

import (
	"golang.org/x/net/html"

	"github.com/Its-donkey/portfolio-fx/internal/ui/dom"
)

type listener struct {
	fn      dom.Handler
	removed bool
}

type listenerSet struct {
	byEvent map[string][]*listener
}

func newListenerSet() *listenerSet {
	return &listenerSet{byEvent: make(map[string][]*listener)}
}

func (s *listenerSet) add(event string, h dom.Handler) dom.Subscription {
	l := &listener{fn: h}
	s.byEvent[event] = append(s.byEvent[event], l)
	return dom.SubscriptionFunc(func() {
		l.removed = true
		list := s.byEvent[event]
		for i, cur := range list {
			if cur == l {
				s.byEvent[event] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	})
}

// fire runs a snapshot of the handlers so handlers may (un)subscribe while dispatching.
func (s *listenerSet) fire(ev *dom.Event) {
	if s == nil || ev == nil {
		return
	}
	snapshot := append([]*listener(nil), s.byEvent[ev.Type]...)
	for _, l := range snapshot {
		if l.removed || l.fn == nil {
			continue
		}
		l.fn(ev)
	}
}

func (s *listenerSet) count(event string) int {
	if s == nil {
		return 0
	}
	return len(s.byEvent[event])
}

func (d *Document) listen(n *html.Node, event string, h dom.Handler) dom.Subscription {
	set, ok := d.listeners[n]
	if !ok {
		set = newListenerSet()
		d.listeners[n] = set
	}
	return set.add(event, h)
}

func (d *Document) fire(n *html.Node, ev *dom.Event) {
	d.listeners[n].fire(ev)
}

// ListenerCount reports how many handlers el has for event.
func (d *Document) ListenerCount(el dom.Element, event string) int {
	e, ok := el.(*Element)
	if !ok || e == nil {
		return 0
	}
	return d.listeners[e.n].count(event)
}
