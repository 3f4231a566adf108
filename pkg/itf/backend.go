package itf

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

// RecordedRequest is one call the console made to the scripted backend.
type RecordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Body   []byte
}

type scriptedResponse struct {
	status int
	body   string
}

// Backend is a scripted stand-in for the temple REST API. Tests declare
// responses per method and path, drive the console, then assert on the
// calls the backend actually saw.
type Backend struct {
	tb     testing.TB
	server *httptest.Server

	mu       sync.Mutex
	routes   map[string]scriptedResponse
	requests []RecordedRequest
}

func NewBackend(tb testing.TB) *Backend {
	tb.Helper()
	b := &Backend{
		tb:     tb,
		routes: map[string]scriptedResponse{},
	}
	b.server = httptest.NewServer(http.HandlerFunc(b.serve))
	tb.Cleanup(b.server.Close)
	return b
}

func (b *Backend) URL() string {
	return b.server.URL
}

// On scripts a response for an exact method and path. Path is matched
// as it arrives on the wire, prefix included.
func (b *Backend) On(method, path string, status int, body string) *Backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[method+" "+path] = scriptedResponse{status: status, body: body}
	return b
}

// Requests returns a snapshot of every recorded call in arrival order.
func (b *Backend) Requests() []RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]RecordedRequest, len(b.requests))
	copy(out, b.requests)
	return out
}

// RequestsTo filters recorded calls by method and path.
func (b *Backend) RequestsTo(method, path string) []RecordedRequest {
	var out []RecordedRequest
	for _, req := range b.Requests() {
		if req.Method == method && req.Path == path {
			out = append(out, req)
		}
	}
	return out
}

// Reset drops the recorded calls, keeping the scripted routes.
func (b *Backend) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = nil
}

func (b *Backend) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	b.mu.Lock()
	b.requests = append(b.requests, RecordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Body:   body,
	})
	resp, ok := b.routes[r.Method+" "+r.URL.Path]
	b.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, Fail("not found"))
		return
	}
	w.WriteHeader(resp.status)
	_, _ = io.WriteString(w, resp.body)
}

// OK wraps data in a success envelope.
func OK(data any) string {
	raw, err := json.Marshal(data)
	if err != nil {
		panic(err)
	}
	return fmt.Sprintf(`{"success":true,"data":%s}`, raw)
}

// Fail builds a failure envelope with an optional field-error map.
func Fail(message string, fieldErrors ...map[string][]string) string {
	payload := map[string]any{
		"success": false,
		"message": message,
	}
	if len(fieldErrors) > 0 {
		payload["errors"] = fieldErrors[0]
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}
	return string(raw)
}

// Paginated wraps items in the backend's paginated list shape.
func Paginated(items any, currentPage, lastPage, perPage, total int) string {
	raw, err := json.Marshal(items)
	if err != nil {
		panic(err)
	}
	return fmt.Sprintf(
		`{"success":true,"data":{"data":%s,"current_page":%d,"last_page":%d,"per_page":%d,"total":%d}}`,
		raw, currentPage, lastPage, perPage, total,
	)
}
