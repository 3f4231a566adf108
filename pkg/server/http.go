// Package server assembles the registered controllers and middleware
// into the console's single gzip-wrapped HTTP handler.
package server

import (
	"net/http"

	"github.com/NYTimes/gziphandler"
	"github.com/gorilla/mux"

	"github.com/sevaops/temple-console/pkg/application"
)

type HTTPServer struct {
	controllers      []application.Controller
	middlewares      []mux.MiddlewareFunc
	notFound         http.Handler
	methodNotAllowed http.Handler
}

func NewHTTPServer(app application.Application, notFound, methodNotAllowed http.Handler) *HTTPServer {
	return &HTTPServer{
		controllers:      app.Controllers(),
		middlewares:      app.Middleware(),
		notFound:         notFound,
		methodNotAllowed: methodNotAllowed,
	}
}

func (s *HTTPServer) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.middlewares...)
	for _, controller := range s.controllers {
		controller.Register(r)
	}
	// mux does not run Use middleware for the router-level fallbacks,
	// so misses would otherwise skip request logging and tracing.
	r.NotFoundHandler = s.chain(s.notFound)
	r.MethodNotAllowedHandler = s.chain(s.methodNotAllowed)
	return r
}

func (s *HTTPServer) chain(h http.Handler) http.Handler {
	for i := len(s.middlewares) - 1; i >= 0; i-- {
		h = s.middlewares[i](h)
	}
	return h
}

func (s *HTTPServer) Start(socketAddress string) error {
	return http.ListenAndServe(socketAddress, gziphandler.GzipHandler(s.Router()))
}
