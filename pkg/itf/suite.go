// Package itf is the console's integration test harness: it stands up
// the application against a scripted backend and drives controllers
// through the real router and middleware chain.
package itf

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/sevaops/temple-console/modules"
	"github.com/sevaops/temple-console/pkg/apiclient"
	"github.com/sevaops/temple-console/pkg/application"
	"github.com/sevaops/temple-console/pkg/eventbus"
	"github.com/sevaops/temple-console/pkg/middleware"
)

const backendPathPrefix = "/api/v1"

type SuiteBuilder struct {
	tb      testing.TB
	mods    []application.Module
	backend *Backend
}

func NewSuiteBuilder(tb testing.TB) *SuiteBuilder {
	tb.Helper()
	return &SuiteBuilder{tb: tb}
}

func (b *SuiteBuilder) WithModules(mods ...application.Module) *SuiteBuilder {
	b.mods = append(b.mods, mods...)
	return b
}

func (b *SuiteBuilder) WithBackend(backend *Backend) *SuiteBuilder {
	b.backend = backend
	return b
}

func (b *SuiteBuilder) Build() *Suite {
	b.tb.Helper()

	backend := b.backend
	if backend == nil {
		backend = NewBackend(b.tb)
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	api, err := apiclient.New(apiclient.Options{
		BaseURL:    backend.URL(),
		PathPrefix: backendPathPrefix,
		Timeout:    5 * time.Second,
		Logger:     logger,
	})
	require.NoError(b.tb, err)

	app := application.New(&application.ApplicationOptions{
		EventBus: eventbus.NewEventPublisher(logger),
		Logger:   logger,
		Bundle:   application.LoadBundle(),
		API:      api,
	})
	require.NoError(b.tb, modules.Load(app, b.mods...))
	app.RegisterNavItems(modules.NavLinks...)

	router := mux.NewRouter()
	router.Use(
		middleware.WithLogger(logger, middleware.LoggerOptions{}),
		middleware.RequestParams(),
	)
	for _, controller := range app.Controllers() {
		controller.Register(router)
	}

	return &Suite{
		tb:      b.tb,
		app:     app,
		backend: backend,
		router:  router,
		cookies: map[string]string{},
	}
}

// Suite drives one application instance. Cookies persist across calls,
// so a session keeps its id and flash messages between requests.
type Suite struct {
	tb      testing.TB
	app     application.Application
	backend *Backend
	router  *mux.Router
	cookies map[string]string
}

func (s *Suite) App() application.Application {
	return s.app
}

func (s *Suite) Backend() *Backend {
	return s.backend
}

// Register mounts an extra controller that is not part of a module.
func (s *Suite) Register(controller application.Controller) {
	controller.Register(s.router)
}

func (s *Suite) GET(path string) *Response {
	return s.do(http.MethodGet, path, nil)
}

func (s *Suite) POST(path string, form url.Values) *Response {
	return s.do(http.MethodPost, path, form)
}

func (s *Suite) do(method, path string, form url.Values) *Response {
	s.tb.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for name, value := range s.cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(s.cookies, c.Name)
			continue
		}
		s.cookies[c.Name] = c.Value
	}

	return &Response{tb: s.tb, rec: rec}
}

type Response struct {
	tb  testing.TB
	rec *httptest.ResponseRecorder
	doc *goquery.Document
}

func (r *Response) Code() int {
	return r.rec.Code
}

func (r *Response) Body() string {
	return r.rec.Body.String()
}

func (r *Response) Header() http.Header {
	return r.rec.Header()
}

func (r *Response) ExpectOK() *Response {
	r.tb.Helper()
	require.Equal(r.tb, http.StatusOK, r.rec.Code, r.rec.Body.String())
	return r
}

func (r *Response) ExpectStatus(code int) *Response {
	r.tb.Helper()
	require.Equal(r.tb, code, r.rec.Code, r.rec.Body.String())
	return r
}

// ExpectRedirect accepts both a plain 302 and an htmx redirect header.
func (r *Response) ExpectRedirect(to string) *Response {
	r.tb.Helper()
	if hx := r.rec.Header().Get("Hx-Redirect"); hx != "" {
		require.Equal(r.tb, to, hx)
		return r
	}
	require.Equal(r.tb, http.StatusFound, r.rec.Code, r.rec.Body.String())
	require.Equal(r.tb, to, r.rec.Header().Get("Location"))
	return r
}

// HTML parses the response body once and caches the document.
func (r *Response) HTML() *goquery.Document {
	r.tb.Helper()
	if r.doc == nil {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(r.rec.Body.String()))
		require.NoError(r.tb, err)
		r.doc = doc
	}
	return r.doc
}
