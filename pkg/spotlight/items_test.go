package spotlight

import (
	"context"
	"strings"
	"testing"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/sevaops/temple-console/pkg/intl"
)

func TestQuickLinks_FuzzyMatch(t *testing.T) {
	t.Parallel()

	ctx := withLocalizer(t, context.Background())

	links := QuickLinks{}
	links.Add(
		NewQuickLink(nil, "NavigationLinks.Events", "/events"),
		NewQuickLink(nil, "NavigationLinks.Attendance", "/volunteers/attendance"),
	)

	found := links.Find(ctx, "evnt")
	require.Len(t, found, 1)

	var sb strings.Builder
	require.NoError(t, found[0].Render(ctx, &sb))
	require.Contains(t, sb.String(), `href="/events"`)
	require.Contains(t, sb.String(), "Events")
}

func TestQuickLinks_NoMatch(t *testing.T) {
	t.Parallel()

	ctx := withLocalizer(t, context.Background())

	links := QuickLinks{}
	links.Add(NewQuickLink(nil, "NavigationLinks.Events", "/events"))

	require.Empty(t, links.Find(ctx, "zzz"))
}

func withLocalizer(t *testing.T, ctx context.Context) context.Context {
	bundle := i18n.NewBundle(language.English)
	require.NoError(t, bundle.AddMessages(language.English,
		&i18n.Message{ID: "NavigationLinks.Events", Other: "Events"},
		&i18n.Message{ID: "NavigationLinks.Attendance", Other: "Attendance"},
	))
	localizer := i18n.NewLocalizer(bundle, "en")
	ctx = intl.WithLocale(ctx, language.English)
	ctx = intl.WithLocalizer(ctx, localizer)
	return ctx
}
