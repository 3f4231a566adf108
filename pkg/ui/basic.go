package ui

import (
	"context"

	"github.com/sevaops/temple-console/pkg/eventbus"
	"github.com/sevaops/temple-console/pkg/feature"
)

// BasicPage is the common Page shape controllers activate per request:
// lifecycle bookkeeping plus an optional load hook run on Init.
type BasicPage struct {
	*Lifecycle
	load func(ctx context.Context, params Params)
}

func NewBasicPage(kind string, registry *feature.Registry, bus eventbus.EventBus, load func(ctx context.Context, params Params)) *BasicPage {
	return &BasicPage{
		Lifecycle: NewLifecycle(kind, registry, bus),
		load:      load,
	}
}

func (p *BasicPage) Init(ctx context.Context, params Params) {
	p.Begin()
	if p.load != nil {
		p.load(ctx, params)
	}
}

func (p *BasicPage) Cleanup() {
	p.End()
}
