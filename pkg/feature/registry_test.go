package feature

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevaops/temple-console/pkg/eventbus"
	"github.com/sevaops/temple-console/pkg/logging"
)

func newTestRegistry(t *testing.T) (*Registry, *StylesheetSet, eventbus.EventBus) {
	t.Helper()
	bus := eventbus.NewEventPublisher(logging.ConsoleLogger(logrus.PanicLevel))
	sheets := NewStylesheetSet()
	r := New("events", Options{
		StylesheetHref: "/assets/css/events.css",
		Bus:            bus,
		Stylesheets:    sheets,
	})
	return r, sheets, bus
}

func TestRegistry_StylesheetMirrorsActivePages(t *testing.T) {
	r, sheets, _ := newTestRegistry(t)

	require.False(t, sheets.Contains("events-styles"))

	r.RegisterPage("list-1")
	r.RegisterPage("calendar-2")
	assert.True(t, sheets.Contains("events-styles"))

	r.UnregisterPage("list-1")
	assert.True(t, sheets.Contains("events-styles"), "stylesheet must survive while a sibling page is active")
	assert.True(t, r.HasActivePages())

	r.UnregisterPage("calendar-2")
	assert.False(t, sheets.Contains("events-styles"), "stylesheet must be removed with the last page")
	assert.False(t, r.HasActivePages())
}

func TestRegistry_RegisterIdempotent(t *testing.T) {
	r, _, _ := newTestRegistry(t)

	r.RegisterPage("list-1")
	r.RegisterPage("list-1")
	assert.Equal(t, []string{"list-1"}, r.ActivePages())

	r.UnregisterPage("list-1")
	assert.Empty(t, r.ActivePages())
}

func TestRegistry_UnregisterUnknownIsNoop(t *testing.T) {
	r, sheets, _ := newTestRegistry(t)

	r.RegisterPage("list-1")
	r.UnregisterPage("never-registered")
	assert.True(t, sheets.Contains("events-styles"))
	assert.True(t, r.HasActivePages())
}

func TestRegistry_CleanupTearsDownNamespaceAndTweens(t *testing.T) {
	r, _, bus := newTestRegistry(t)

	type tick struct{}
	firstFired := 0
	secondFired := 0
	bus.SubscribeNS(r.PageNamespace("list-1"), func(e *tick) { firstFired++ })
	bus.SubscribeNS(r.PageNamespace("calendar-2"), func(e *tick) { secondFired++ })

	cancelled := false
	r.AddTween(func() { cancelled = true })

	r.RegisterPage("list-1")
	r.RegisterPage("calendar-2")

	// First page leaves: sibling handlers stay bound.
	r.UnregisterPage("list-1")
	bus.Publish(&tick{})
	assert.Equal(t, 1, secondFired, "sibling page must stay responsive")
	assert.False(t, cancelled)

	// Last page leaves: the whole feature prefix is unbound and tweens
	// are cancelled.
	r.UnregisterPage("calendar-2")
	assert.Zero(t, bus.NamespaceCount("events"))
	assert.True(t, cancelled)

	bus.Publish(&tick{})
	assert.Equal(t, 1, secondFired)
	assert.Equal(t, 1, firstFired, "handler fired only while its page was registered")
}

func TestSet_LazySingletonPerFeature(t *testing.T) {
	bus := eventbus.NewEventPublisher(logging.ConsoleLogger(logrus.PanicLevel))
	set := NewSet(bus, NewStylesheetSet(), nil)
	set.DeclareStylesheet("volunteers", "/assets/css/volunteers.css")

	a := set.Get("volunteers")
	b := set.Get("volunteers")
	require.Same(t, a, b)

	a.RegisterPage("approval-1")
	assert.True(t, set.Stylesheets().Contains("volunteers-styles"))
}
