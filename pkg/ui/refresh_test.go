package ui

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type refreshLog struct {
	mu   sync.Mutex
	data []any
}

func (l *refreshLog) record(ev PageRefreshed) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.data = append(l.data, ev.Data)
}

func (l *refreshLog) snapshot() []any {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]any(nil), l.data...)
}

func TestRefresher_PublishesFreshData(t *testing.T) {
	page, _ := newFakePage(t)
	page.Init(context.Background(), nil)
	defer page.Cleanup()

	log := &refreshLog{}
	page.bus.SubscribeNS(page.Namespace(), log.record)

	r := page.StartRefresh(0, func(ctx context.Context) (any, error) {
		return "rows", nil
	})
	r.Kick()

	require.Equal(t, []any{"rows"}, log.snapshot())
}

func TestRefresher_StaleResponseDropped(t *testing.T) {
	page, _ := newFakePage(t)
	page.Init(context.Background(), nil)
	defer page.Cleanup()

	log := &refreshLog{}
	page.bus.SubscribeNS(page.Namespace(), log.record)

	slowStarted := make(chan struct{})
	release := make(chan struct{})
	first := true
	var mu sync.Mutex
	r := page.StartRefresh(0, func(ctx context.Context) (any, error) {
		mu.Lock()
		slow := first
		first = false
		mu.Unlock()
		if slow {
			close(slowStarted)
			<-release
			return "stale", nil
		}
		return "fresh", nil
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		r.Kick()
	}()
	<-slowStarted

	// A newer poll finishes while the first is still in flight.
	r.Kick()
	close(release)
	<-done

	assert.Equal(t, []any{"fresh"}, log.snapshot())
}

func TestRefresher_SilentAfterCleanup(t *testing.T) {
	page, _ := newFakePage(t)
	page.Init(context.Background(), nil)

	// A global subscriber survives the namespace teardown, so silence
	// below proves the refresher itself went quiet.
	log := &refreshLog{}
	page.bus.Subscribe(log.record)

	r := page.StartRefresh(0, func(ctx context.Context) (any, error) {
		return "rows", nil
	})

	page.Cleanup()
	r.Kick()
	assert.Empty(t, log.snapshot())

	// The feature-wide cleanup cancelled the refresher for good; even a
	// re-activated page must not revive the old handle.
	page.Init(context.Background(), nil)
	defer page.Cleanup()
	r.Kick()
	assert.Empty(t, log.snapshot())
}
