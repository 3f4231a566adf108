package apiclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevaops/temple-console/pkg/apiclient"
)

type eventRow struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func newClient(t *testing.T, srv *httptest.Server, retries uint64) *apiclient.Client {
	t.Helper()
	c, err := apiclient.New(apiclient.Options{
		BaseURL:    srv.URL,
		PathPrefix: "/api/v1",
		Timeout:    5 * time.Second,
		RetryCount: retries,
	})
	require.NoError(t, err)
	return c
}

func TestClient_DecodesBareArrayList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/events", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":1,"name":"Janmashtami"},{"id":2,"name":"Diwali"}]}`))
	}))
	defer srv.Close()

	env, err := newClient(t, srv, 0).Get(context.Background(), "/events", nil)
	require.NoError(t, err)
	require.True(t, env.Success)

	col, err := apiclient.DecodeCollection[eventRow](env.Data)
	require.NoError(t, err)
	assert.Len(t, col.Items, 2)
	assert.False(t, col.Paginated)
	assert.True(t, col.SinglePage())
}

func TestClient_DecodesPaginatedList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {
				"data": [{"id":1,"name":"Janmashtami"},{"id":2,"name":"Diwali"}],
				"current_page": 1, "last_page": 1, "per_page": 15, "total": 2, "from": 1, "to": 2
			}
		}`))
	}))
	defer srv.Close()

	env, err := newClient(t, srv, 0).Get(context.Background(), "/events", nil)
	require.NoError(t, err)

	col, err := apiclient.DecodeCollection[eventRow](env.Data)
	require.NoError(t, err)
	assert.Len(t, col.Items, 2)
	assert.True(t, col.Paginated)
	assert.Equal(t, 2, col.Page.Total)
	assert.True(t, col.SinglePage(), "a one-page result needs no pagination controls")
}

func TestClient_BusinessRuleFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"message":"event is full","errors":{"capacity":["no seats remain"]}}`))
	}))
	defer srv.Close()

	env, err := newClient(t, srv, 0).Get(context.Background(), "/events/7/register", nil)
	require.NoError(t, err)
	require.False(t, env.Success)

	apiErr := env.Err(http.StatusOK, "register for event")
	require.Error(t, apiErr)
	assert.Equal(t, "capacity: no seats remain", apiErr.Error(), "field errors outrank the top-level message")
}

func TestClient_FallbackErrorMessage(t *testing.T) {
	env := &apiclient.Envelope{Success: false}
	err := env.Err(http.StatusOK, "load events")
	require.Error(t, err)
	assert.Equal(t, "failed to load events", err.Error())
}

func TestClient_RetriesServerErrorsOnGet(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer srv.Close()

	env, err := newClient(t, srv, 3).Get(context.Background(), "/events", nil)
	require.NoError(t, err)
	assert.True(t, env.Success)
	assert.Equal(t, int64(3), calls.Load())
}

func TestClient_DoesNotRetryValidationFailures(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"success":false,"errors":{"name":["name is required"]}}`))
	}))
	defer srv.Close()

	_, err := newClient(t, srv, 3).Get(context.Background(), "/events", nil)
	require.Error(t, err)
	assert.Equal(t, int64(1), calls.Load())

	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Contains(t, apiErr.FieldErrors(), "name")
}

func TestFilter_StripsEmptyValues(t *testing.T) {
	f := apiclient.Filter{}.
		Set("search", "  aarti  ").
		Set("status", "").
		Set("department_id", "null").
		Set("volunteer", "undefined").
		SetDate("from_date", time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)).
		SetDate("to_date", time.Time{}).
		SetInt("page", 2).
		SetInt("per_page", 0)

	q := f.Values()
	assert.Equal(t, "aarti", q.Get("search"))
	assert.Equal(t, "2026-08-01", q.Get("from_date"))
	assert.Equal(t, "2", q.Get("page"))
	for _, absent := range []string{"status", "department_id", "volunteer", "to_date", "per_page"} {
		assert.NotContains(t, q, absent)
	}
}

func TestFilter_RoundTripsThroughQuery(t *testing.T) {
	f := apiclient.Filter{}.
		Set("search", "prasad").
		Set("status", "published").
		SetDate("from_date", time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC))

	encoded := f.Values().Encode()
	parsed, err := url.ParseQuery(encoded)
	require.NoError(t, err)

	back := apiclient.ParseFilter(parsed)
	assert.Equal(t, f, back)
}

func TestDecodeCollection_NullPayload(t *testing.T) {
	col, err := apiclient.DecodeCollection[eventRow](json.RawMessage(`null`))
	require.NoError(t, err)
	assert.Empty(t, col.Items)
	assert.False(t, col.Paginated)
}
