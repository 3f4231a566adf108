package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sevaops/temple-console/pkg/constants"
	"github.com/sevaops/temple-console/pkg/types"
)

// NavProvider is the slice of the app registry the sidebar needs.
type NavProvider interface {
	NavItems() []types.NavigationItem
}

// getEnabledNavItems collapses groups: a group with one child flattens
// into that child, a group with none disappears.
func getEnabledNavItems(items []types.NavigationItem) []types.NavigationItem {
	var out []types.NavigationItem
	for _, item := range items {
		if len(item.Children) > 0 {
			children := getEnabledNavItems(item.Children)
			childrenLen := len(children)
			if childrenLen == 0 {
				continue
			}
			if childrenLen == 1 {
				out = append(out, children[0])
			} else {
				item.Children = children
				out = append(out, item)
			}
		} else {
			out = append(out, item)
		}
	}

	return out
}

func NavItems(app NavProvider) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				enabledNavItems := getEnabledNavItems(app.NavItems())
				ctx := context.WithValue(r.Context(), constants.NavItemsKey, enabledNavItems)
				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}

// UseNavItems returns the sidebar items bound by NavItems.
func UseNavItems(ctx context.Context) []types.NavigationItem {
	items, ok := ctx.Value(constants.NavItemsKey).([]types.NavigationItem)
	if !ok {
		return nil
	}
	return items
}
