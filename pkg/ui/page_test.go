package ui

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevaops/temple-console/pkg/eventbus"
	"github.com/sevaops/temple-console/pkg/feature"
	"github.com/sevaops/temple-console/pkg/logging"
)

type fakePage struct {
	*Lifecycle
	inits    int
	cleanups int
}

func newFakePage(t *testing.T) (*fakePage, *feature.Registry) {
	t.Helper()
	bus := eventbus.NewEventPublisher(logging.ConsoleLogger(logrus.PanicLevel))
	reg := feature.New("events", feature.Options{
		Bus:         bus,
		Stylesheets: feature.NewStylesheetSet(),
	})
	return &fakePage{Lifecycle: NewLifecycle("list", reg, bus)}, reg
}

func (p *fakePage) Init(ctx context.Context, params Params) {
	p.inits++
	p.Begin()
}

func (p *fakePage) Cleanup() {
	p.cleanups++
	p.End()
}

func TestLifecycle_CleanupIdempotent(t *testing.T) {
	page, reg := newFakePage(t)

	page.Init(context.Background(), nil)
	require.True(t, reg.HasActivePages())

	page.Cleanup()
	assert.False(t, reg.HasActivePages())

	// A second cleanup observes the same state as the first.
	page.Cleanup()
	assert.False(t, reg.HasActivePages())
	assert.Empty(t, reg.ActivePages())
}

func TestLifecycle_CleanupBeforeInit(t *testing.T) {
	page, reg := newFakePage(t)

	assert.NotPanics(t, func() { page.Cleanup() })
	assert.Empty(t, reg.ActivePages(), "registry must be untouched for a never-initialized page")
}

func TestLifecycle_ReinitAfterCleanupOwnsFreshTimers(t *testing.T) {
	page, _ := newFakePage(t)

	page.Init(context.Background(), nil)
	page.Cleanup()
	page.Init(context.Background(), nil)

	fired := make(chan struct{}, 1)
	page.Timers().After(5*time.Millisecond, func() { fired <- struct{}{} })
	select {
	case <-fired:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timer scheduled after re-init never fired")
	}
	page.Cleanup()
}

func TestNavigator_CleansUpOutgoingPage(t *testing.T) {
	first, reg := newFakePage(t)
	second := &fakePage{Lifecycle: NewLifecycle("view", reg, nil)}

	nav := NewNavigator(logging.ConsoleLogger(logrus.PanicLevel))
	nav.Navigate(context.Background(), "s1", first, nil)
	require.Equal(t, 1, first.inits)

	nav.Navigate(context.Background(), "s1", second, Params{"event_id": "7"})
	assert.Equal(t, 1, first.cleanups, "outgoing page must be cleaned up before the next init")
	assert.Equal(t, 1, second.inits)

	active, ok := nav.Active("s1")
	require.True(t, ok)
	assert.Equal(t, second.PageID(), active.PageID())

	nav.Deactivate("s1")
	assert.Equal(t, 1, second.cleanups)
	_, ok = nav.Active("s1")
	assert.False(t, ok)
}

func TestDebouncer_CoalescesTriggers(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	var mu sync.Mutex
	calls := 0

	for i := 0; i < 5; i++ {
		d.Trigger(func() {
			mu.Lock()
			calls++
			mu.Unlock()
		})
	}
	time.Sleep(120 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls, "rapid triggers must coalesce into one invocation")
}

func TestDebouncer_FlushRunsImmediately(t *testing.T) {
	d := NewDebouncer(time.Hour)
	pending := 0
	d.Trigger(func() { pending++ })

	ran := false
	d.Flush(func() { ran = true })
	assert.True(t, ran)

	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, pending, "flush must cancel the pending trigger")
}

func TestFetchGuard_DiscardsStaleResponses(t *testing.T) {
	var g FetchGuard

	stale := g.Next()
	fresh := g.Next()

	assert.False(t, g.Latest(stale))
	assert.True(t, g.Latest(fresh))
}

func TestTimerSet_StopAllCancelsEverything(t *testing.T) {
	s := NewTimerSet()
	var mu sync.Mutex
	fired := 0

	s.After(20*time.Millisecond, func() {
		mu.Lock()
		fired++
		mu.Unlock()
	})
	s.Every(10*time.Millisecond, func() {
		mu.Lock()
		fired++
		mu.Unlock()
	})
	s.StopAll()

	time.Sleep(80 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, fired)
}
