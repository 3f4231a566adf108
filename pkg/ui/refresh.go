package ui

import (
	"context"
	"sync/atomic"
	"time"
)

// PageRefreshed is published each time a background poll brings back
// fresh data for a still-active page.
type PageRefreshed struct {
	PageID  string
	Feature string
	Data    any
}

// Refresher re-polls a page's data while the page stays active. Every
// poll takes a fetch-guard token before issuing the request and
// publishes only while its token is still the latest, so a response
// that straggles in behind a newer poll is dropped instead of
// overwriting it.
type Refresher struct {
	life      *Lifecycle
	fetch     func(ctx context.Context) (any, error)
	guard     FetchGuard
	cancelled atomic.Bool
}

// StartRefresh schedules fetch on the instance's timer set, so the
// ticker dies with the page's Cleanup. The cancel handle also joins the
// feature-wide cleanup, covering a page that was abandoned without one.
// A non-positive interval disables the ticker; Kick still works.
func (l *Lifecycle) StartRefresh(interval time.Duration, fetch func(ctx context.Context) (any, error)) *Refresher {
	r := &Refresher{life: l, fetch: fetch}
	l.registry.AddTween(func() { r.cancelled.Store(true) })
	if interval > 0 {
		l.Timers().Every(interval, r.poll)
	}
	return r
}

// Kick runs one guarded poll immediately, ahead of the next tick.
func (r *Refresher) Kick() {
	r.poll()
}

func (r *Refresher) poll() {
	if r.cancelled.Load() || !r.life.Active() {
		return
	}
	token := r.guard.Next()
	data, err := r.fetch(context.Background())
	if err != nil || !r.guard.Latest(token) {
		return
	}
	if r.cancelled.Load() || !r.life.Active() {
		return
	}
	if r.life.bus != nil {
		r.life.bus.Publish(PageRefreshed{
			PageID:  r.life.PageID(),
			Feature: r.life.Feature(),
			Data:    data,
		})
	}
}
