// Package theme persists the light/dark preference and applies it to the page.
package theme

import (
	"sync"

	"github.com/Its-donkey/portfolio-fx/internal/ui/dom"
	"github.com/Its-donkey/portfolio-fx/logging"
)

// Mode is the page color scheme.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"

	// StorageKey is the persisted key.
	StorageKey = "theme"
	// Attribute is set on <body>.
	Attribute = "data-theme"

	Default = Dark
)

// ParseMode maps anything but "light" to Dark.
func ParseMode(s string) Mode {
	if Mode(s) == Light {
		return Light
	}
	return Dark
}

// Flip returns the other mode.
func (m Mode) Flip() Mode {
	if m == Light {
		return Dark
	}
	return Light
}

// Store is a string key/value persistence surface such as localStorage.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Preference applies and persists the theme of one document.
type Preference struct {
	doc    dom.Document
	store  Store
	logger *logging.Logger
}

// New returns a Preference; a nil store keeps the value only for this page view.
func New(doc dom.Document, store Store, logger *logging.Logger) *Preference {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Preference{doc: doc, store: store, logger: logger}
}

// Load reads the stored mode (Default when absent) and applies it.
func (p *Preference) Load() Mode {
	mode := Default
	if v, ok := p.store.Get(StorageKey); ok && v != "" {
		mode = ParseMode(v)
	}
	p.apply(mode)
	return mode
}

// Current reads the mode applied to the page.
func (p *Preference) Current() Mode {
	if body := p.doc.Body(); body != nil {
		return ParseMode(body.Attr(Attribute))
	}
	return Default
}

// Toggle flips the applied mode, persists it and returns the new mode.
func (p *Preference) Toggle() Mode {
	next := p.Current().Flip()
	p.apply(next)
	p.store.Set(StorageKey, string(next))
	p.logger.Debug("theme", "theme toggled", map[string]any{"theme": string(next)})
	return next
}

func (p *Preference) apply(mode Mode) {
	if body := p.doc.Body(); body != nil {
		body.SetAttr(Attribute, string(mode))
	}
}
