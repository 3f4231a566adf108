// Package metrics mounts the Prometheus scrape endpoint when the
// deployment enables it through configuration.
package metrics

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sevaops/temple-console/pkg/application"
)

type prometheusController struct {
	path string
}

// NewPrometheusController serves the default registry at path; the
// empty string falls back to /debug/prometheus.
func NewPrometheusController(path string) application.Controller {
	if path == "" {
		path = "/debug/prometheus"
	}
	return &prometheusController{path: path}
}

func (c *prometheusController) Key() string {
	return c.path
}

func (c *prometheusController) Register(r *mux.Router) {
	r.Handle(c.path, promhttp.Handler()).Methods(http.MethodGet)
}
