package server

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/sevaops/temple-console/pkg/application"
	"github.com/sevaops/temple-console/pkg/middleware"
)

// spotlightController serves the quick-search palette as an HTML
// fragment the page swaps in while the user types.
type spotlightController struct {
	app application.Application
}

func newSpotlightController(app application.Application) application.Controller {
	return &spotlightController{app: app}
}

func (c *spotlightController) Key() string {
	return "/spotlight"
}

func (c *spotlightController) Register(r *mux.Router) {
	router := r.PathPrefix("/spotlight").Subrouter()
	router.Use(middleware.ProvideLocalizer(c.app))
	router.HandleFunc("/search", c.search).Methods(http.MethodGet)
}

func (c *spotlightController) search(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if q == "" {
		return
	}
	for _, item := range c.app.Spotlight().Find(r.Context(), q) {
		if err := item.Render(r.Context(), w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}
