// Package spotlight backs the global quick-search palette: data sources
// register themselves and are fuzzy-matched against the user's query.
package spotlight

import "context"

// DataSource contributes items to the palette for a query.
type DataSource interface {
	Find(ctx context.Context, q string) []Item
}

type Spotlight interface {
	Register(ds DataSource)
	Find(ctx context.Context, q string) []Item
}

func New() Spotlight {
	return &spotlight{}
}

type spotlight struct {
	sources []DataSource
}

func (s *spotlight) Register(ds DataSource) {
	s.sources = append(s.sources, ds)
}

func (s *spotlight) Find(ctx context.Context, q string) []Item {
	var out []Item
	for _, ds := range s.sources {
		out = append(out, ds.Find(ctx, q)...)
	}
	return out
}
