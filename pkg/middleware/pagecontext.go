package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sevaops/temple-console/pkg/composables"
	"github.com/sevaops/temple-console/pkg/intl"
	"github.com/sevaops/temple-console/pkg/types"
)

// WithPageContext attaches the per-request PageContext that page
// templates translate through. It must run after ProvideLocalizer;
// a missing localizer is a wiring mistake, not a runtime condition,
// so it panics rather than serving untranslated pages.
func WithPageContext() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			localizer, found := intl.UseLocalizer(r.Context())
			if !found {
				panic(intl.ErrNoLocalizer)
			}
			locale, ok := intl.UseLocale(r.Context())
			if !ok {
				panic("locale not found")
			}
			ctx := composables.WithPageCtx(r.Context(), &types.PageContext{
				URL:       r.URL,
				Localizer: localizer,
				Locale:    locale,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
