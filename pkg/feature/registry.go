// Package feature implements the shared feature module: a per-feature
// registry of active page instances that owns the resources shared by
// every page of that feature: the feature stylesheet, the feature event
// namespace and feature-scoped animation handles. The registry inserts
// the stylesheet when the first page registers and performs a
// feature-wide teardown when the last page unregisters.
package feature

import (
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/sevaops/temple-console/pkg/eventbus"
)

type Options struct {
	// StylesheetID defaults to "<feature>-styles".
	StylesheetID   string
	StylesheetHref string
	Bus            eventbus.EventBus
	Stylesheets    *StylesheetSet
	Logger         *logrus.Logger
}

// Registry is the single source of truth for one feature's shared
// resources. Exactly one instance exists per feature for the process
// lifetime; it is constructed lazily on first reference and never torn
// down structurally, cleanup is resource-level.
type Registry struct {
	feature        string
	stylesheetID   string
	stylesheetHref string
	bus            eventbus.EventBus
	sheets         *StylesheetSet
	log            *logrus.Logger

	mu          sync.Mutex
	activePages map[string]struct{}
	tweens      []func()
}

func New(feature string, opts Options) *Registry {
	id := opts.StylesheetID
	if id == "" {
		id = feature + "-styles"
	}
	return &Registry{
		feature:        feature,
		stylesheetID:   id,
		stylesheetHref: opts.StylesheetHref,
		bus:            opts.Bus,
		sheets:         opts.Stylesheets,
		log:            opts.Logger,
		activePages:    make(map[string]struct{}),
	}
}

func (r *Registry) Feature() string {
	return r.feature
}

// Namespace is the feature-wide event namespace, used only for the
// registry's own teardown. Pages bind handlers under PageNamespace.
func (r *Registry) Namespace() string {
	return r.feature
}

// PageNamespace returns the per-instance namespace a page binds its
// handlers under, so one page's cleanup cannot unbind a sibling's.
func (r *Registry) PageNamespace(pageID string) string {
	return r.feature + "." + pageID
}

// RegisterPage adds pageID to the active set and ensures the feature
// stylesheet is present. Idempotent for repeated registration of the
// same id.
func (r *Registry) RegisterPage(pageID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activePages[pageID] = struct{}{}
	if r.sheets != nil {
		r.sheets.Insert(r.stylesheetID, r.stylesheetHref)
	}
}

// UnregisterPage removes pageID from the active set; when the set
// becomes empty it triggers the feature-wide cleanup. Unregistering an
// unknown id is a no-op.
func (r *Registry) UnregisterPage(pageID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.activePages[pageID]; !ok {
		return
	}
	delete(r.activePages, pageID)
	if len(r.activePages) == 0 {
		r.cleanupLocked()
	}
}

// AddTween registers a cancel handle for a feature-scoped animation; all
// handles are cancelled during the feature-wide cleanup.
func (r *Registry) AddTween(cancel func()) {
	if cancel == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tweens = append(r.tweens, cancel)
}

func (r *Registry) HasActivePages() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.activePages) > 0
}

func (r *Registry) ActivePages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.activePages))
	for id := range r.activePages {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// cleanupLocked tears down every shared resource of the feature. It must
// only fire when no page of the feature remains active; firing earlier
// would break a still-active sibling page.
func (r *Registry) cleanupLocked() {
	if r.sheets != nil {
		r.sheets.Remove(r.stylesheetID)
	}
	for _, cancel := range r.tweens {
		cancel()
	}
	r.tweens = nil
	if r.bus != nil {
		r.bus.UnsubscribePrefix(r.feature)
	}
	r.activePages = make(map[string]struct{})
	if r.log != nil {
		r.log.WithField("feature", r.feature).Debug("feature resources released")
	}
}

// Set lazily constructs one Registry per feature and hands controllers
// the same instance for the process lifetime.
type Set struct {
	bus    eventbus.EventBus
	sheets *StylesheetSet
	log    *logrus.Logger

	mu         sync.Mutex
	registries map[string]*Registry
	hrefs      map[string]string
}

func NewSet(bus eventbus.EventBus, sheets *StylesheetSet, log *logrus.Logger) *Set {
	return &Set{
		bus:        bus,
		sheets:     sheets,
		log:        log,
		registries: make(map[string]*Registry),
		hrefs:      make(map[string]string),
	}
}

// DeclareStylesheet records the hashed asset href a feature's registry
// will insert. Modules call this during registration, before any page
// references the feature.
func (s *Set) DeclareStylesheet(feature, href string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hrefs[feature] = href
}

func (s *Set) Get(feature string) *Registry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.registries[feature]; ok {
		return r
	}
	r := New(feature, Options{
		StylesheetHref: s.hrefs[feature],
		Bus:            s.bus,
		Stylesheets:    s.sheets,
		Logger:         s.log,
	})
	s.registries[feature] = r
	return r
}

func (s *Set) Stylesheets() *StylesheetSet {
	return s.sheets
}
