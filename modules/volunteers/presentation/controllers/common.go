// Package controllers mounts the seva screens. Every GET page swaps
// the session's active page instance so the volunteers feature registry
// tracks exactly the pages currently on screen.
package controllers

import (
	"net/http"
	"net/url"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"

	"github.com/sevaops/temple-console/components/layout"
	"github.com/sevaops/temple-console/pkg/apiclient"
	"github.com/sevaops/temple-console/pkg/application"
	"github.com/sevaops/temple-console/pkg/composables"
	"github.com/sevaops/temple-console/pkg/configuration"
	"github.com/sevaops/temple-console/pkg/middleware"
	"github.com/sevaops/temple-console/pkg/ui"
)

const featureName = "volunteers"

func commonMiddleware(app application.Application) []mux.MiddlewareFunc {
	return []mux.MiddlewareFunc{
		middleware.ProvideLocalizer(app),
		middleware.NavItems(app),
		middleware.WithPageContext(),
	}
}

func activatePage(app application.Application, r *http.Request, kind string, params ui.Params) *ui.BasicPage {
	sid, ok := composables.UseSessionID(r.Context())
	if !ok {
		return nil
	}
	reg := app.Features().Get(featureName)
	page := ui.NewBasicPage(kind, reg, app.EventPublisher(), nil)
	app.Navigator().Navigate(r.Context(), sid, page, params)
	return page
}

func deactivatePage(app application.Application, r *http.Request) {
	if sid, ok := composables.UseSessionID(r.Context()); ok {
		app.Navigator().Deactivate(sid)
	}
}

func renderPage(app application.Application, w http.ResponseWriter, r *http.Request, title string, content templ.Component) {
	flash, _ := composables.UseFlash(w, r, configuration.Use().FlashCookieKey)
	errFlash, _ := composables.UseFlash(w, r, "error")
	props := layout.BaseProps{
		Title:       title,
		Stylesheets: app.Stylesheets().Links(),
		NavItems:    middleware.UseNavItems(r.Context()),
		ActivePath:  r.URL.Path,
		Flash:       string(flash),
		Error:       string(errFlash),
	}
	templ.Handler(layout.Base(props, content)).ServeHTTP(w, r)
}

func filterQuery(filters map[string]string) url.Values {
	f := apiclient.Filter{}
	for k, v := range filters {
		f.Set(k, v)
	}
	return f.Values()
}
