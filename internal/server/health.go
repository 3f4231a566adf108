package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sevaops/temple-console/pkg/application"
)

// healthController reports console liveness and backend reachability.
type healthController struct {
	app application.Application
}

func newHealthController(app application.Application) application.Controller {
	return &healthController{app: app}
}

func (c *healthController) Key() string {
	return "/health"
}

func (c *healthController) Register(r *mux.Router) {
	r.HandleFunc("/health", c.health).Methods(http.MethodGet)
}

func (c *healthController) health(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"console": "ok", "backend": "ok"}
	code := http.StatusOK
	if _, err := c.app.API().Get(r.Context(), "/health", nil); err != nil {
		status["backend"] = "unreachable"
		code = http.StatusServiceUnavailable
	}
	respondJSON(w, code, status)
}
