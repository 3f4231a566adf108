// Package ui formalizes the page lifecycle every screen of the console
// follows: render, bind, fetch, display, release. A Page moves from
// Uninitialized to Active via Init and to Destroyed via Cleanup; Cleanup
// is idempotent and safe without a prior Init.
package ui

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/sevaops/temple-console/pkg/eventbus"
	"github.com/sevaops/temple-console/pkg/feature"
)

// Params carries navigation parameters into Init. Detail and edit pages
// require an identifier param; its absence is a client-side validation
// failure handled by the page (notice + redirect), not an error return.
type Params map[string]string

func (p Params) Get(key string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(p[key])
}

func (p Params) Has(key string) bool {
	return p.Get(key) != ""
}

// Page is one screen's lifecycle surface. Init renders and binds; a
// failure during the initial data load surfaces as a notification, not
// an error return. Cleanup releases everything the instance owns and
// must tolerate repeated calls and calls without a prior Init.
type Page interface {
	PageID() string
	Feature() string
	Init(ctx context.Context, params Params)
	Cleanup()
}

// ViewState is the sub-state of a data-driven page while Active.
type ViewState int

const (
	StateLoading ViewState = iota
	StateLoaded
	StateError
)

// Lifecycle is the shared Active/Destroyed bookkeeping pages embed: the
// feature registration, the instance event namespace, and the owned
// timers. It keeps Cleanup idempotent so pages only implement their own
// resource release on top.
type Lifecycle struct {
	id       string
	registry *feature.Registry
	bus      eventbus.EventBus
	timers   *TimerSet

	mu     sync.Mutex
	active bool
}

// NewLifecycle mints a unique page instance id from the screen kind, so
// two instances of the same screen never share an event namespace.
func NewLifecycle(kind string, registry *feature.Registry, bus eventbus.EventBus) *Lifecycle {
	return &Lifecycle{
		id:       kind + "-" + uuid.NewString()[:8],
		registry: registry,
		bus:      bus,
		timers:   NewTimerSet(),
	}
}

func (l *Lifecycle) PageID() string {
	return l.id
}

func (l *Lifecycle) Feature() string {
	return l.registry.Feature()
}

// Namespace is this instance's handler namespace: feature name plus
// instance id, so cleanup of one page never unbinds a sibling's
// handlers.
func (l *Lifecycle) Namespace() string {
	return l.registry.PageNamespace(l.id)
}

func (l *Lifecycle) Timers() *TimerSet {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.timers
}

func (l *Lifecycle) Active() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active
}

// Begin registers the instance with its feature registry.
func (l *Lifecycle) Begin() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.active {
		return
	}
	l.active = true
	// A fresh timer set per activation: a re-Init after Cleanup must not
	// inherit the stopped state.
	l.timers = NewTimerSet()
	l.registry.RegisterPage(l.id)
}

// End releases the instance's own resources and unregisters it. Calling
// End twice, or without Begin, leaves the registry untouched.
func (l *Lifecycle) End() {
	l.mu.Lock()
	if !l.active {
		l.mu.Unlock()
		return
	}
	l.active = false
	timers := l.timers
	l.mu.Unlock()

	timers.StopAll()
	if l.bus != nil {
		l.bus.UnsubscribeNamespace(l.Namespace())
	}
	l.registry.UnregisterPage(l.id)
}
