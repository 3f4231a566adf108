package feature

import (
	"sort"
	"sync"
)

// StylesheetLink is a stylesheet entry rendered into the layout head.
type StylesheetLink struct {
	ID   string
	Href string
}

// StylesheetSet models the set of feature stylesheets currently present
// in the rendered document. Feature registries insert their sheet when
// the first page registers and remove it when the last page leaves.
type StylesheetSet struct {
	mu    sync.RWMutex
	links map[string]string
}

func NewStylesheetSet() *StylesheetSet {
	return &StylesheetSet{links: make(map[string]string)}
}

// Insert is idempotent: inserting an id that is already present keeps the
// existing entry.
func (s *StylesheetSet) Insert(id, href string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.links[id]; ok {
		return
	}
	s.links[id] = href
}

func (s *StylesheetSet) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.links, id)
}

func (s *StylesheetSet) Contains(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.links[id]
	return ok
}

// Links returns the current entries in stable order for rendering.
func (s *StylesheetSet) Links() []StylesheetLink {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]StylesheetLink, 0, len(s.links))
	for id, href := range s.links {
		out = append(out, StylesheetLink{ID: id, Href: href})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
