package controllers_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/sevaops/temple-console/modules/events"
	"github.com/sevaops/temple-console/pkg/itf"
)

func eventFixture(id int, name string) map[string]any {
	return map[string]any{
		"id":               id,
		"name":             name,
		"description":      "Evening aarti and prasad distribution",
		"location":         "Main hall",
		"from_date":        "2026-09-10",
		"to_date":          "2026-09-12",
		"start_time":       "18:00",
		"end_time":         "21:00",
		"status":           "published",
		"capacity":         200,
		"registered_count": 45,
		"donation_amount":  "101.00",
		"currency":         "INR",
		"created_at":       "2026-08-01T10:00:00Z",
	}
}

func newEventsSuite(t *testing.T) *itf.Suite {
	t.Helper()
	return itf.NewSuiteBuilder(t).WithModules(events.NewModule()).Build()
}

func TestEventsController_List_RendersRows(t *testing.T) {
	suite := newEventsSuite(t)
	suite.Backend().On(http.MethodGet, "/api/v1/events", http.StatusOK, itf.Paginated(
		[]map[string]any{
			eventFixture(1, "Ganesh Chaturthi"),
			eventFixture(2, "Navaratri"),
		}, 1, 1, 20, 2,
	))

	doc := suite.GET("/events").ExpectOK().HTML()

	rows := doc.Find("tr[data-event-id]")
	require.Equal(t, 2, rows.Length())
	require.Contains(t, doc.Find(`tr[data-event-id="1"] td a`).First().Text(), "Ganesh Chaturthi")
	require.Contains(t, doc.Find(`tr[data-event-id="2"] td a`).First().Text(), "Navaratri")

	// One page of results renders no paging controls at all.
	require.Equal(t, 0, doc.Find("nav.pagination").Length())
}

func TestEventsController_List_MultiPageShowsPagination(t *testing.T) {
	suite := newEventsSuite(t)
	suite.Backend().On(http.MethodGet, "/api/v1/events", http.StatusOK, itf.Paginated(
		[]map[string]any{eventFixture(1, "Ganesh Chaturthi"), eventFixture(2, "Navaratri")},
		1, 3, 2, 6,
	))

	doc := suite.GET("/events").ExpectOK().HTML()
	require.Equal(t, 1, doc.Find("nav.pagination").Length())
	require.Equal(t, 3, doc.Find("a.pagination-link").Length())
	require.Contains(t, doc.Find("span.pagination-summary").Text(), "of 6")
}

func TestEventsController_List_FilterRoundTrip(t *testing.T) {
	suite := newEventsSuite(t)
	suite.Backend().On(http.MethodGet, "/api/v1/events", http.StatusOK, itf.OK([]map[string]any{}))

	doc := suite.GET("/events?search=puja&status=published&from_date=2026-09-01&to_date=").
		ExpectOK().HTML()

	calls := suite.Backend().RequestsTo(http.MethodGet, "/api/v1/events")
	require.Len(t, calls, 1)
	q := calls[0].Query
	require.Equal(t, "puja", q.Get("search"))
	require.Equal(t, "published", q.Get("status"))
	require.Equal(t, "2026-09-01", q.Get("from_date"))
	// Blank filters never reach the wire.
	require.NotContains(t, q, "to_date")

	// The form renders the applied filters back.
	val, _ := doc.Find(`input[name="search"]`).Attr("value")
	require.Equal(t, "puja", val)
	require.Equal(t, 1, doc.Find(`select[name="status"] option[selected]`).Length())
}

func TestEventsController_List_BackendFailureShowsInlineError(t *testing.T) {
	suite := newEventsSuite(t)
	suite.Backend().On(http.MethodGet, "/api/v1/events", http.StatusInternalServerError, itf.Fail("boom"))

	doc := suite.GET("/events").ExpectOK().HTML()
	require.Equal(t, 1, doc.Find("tr.error-row td[role=alert]").Length())
	require.Equal(t, 0, doc.Find("tr[data-event-id]").Length())
}

func TestEventsController_List_ActivatesFeatureStylesheet(t *testing.T) {
	suite := newEventsSuite(t)
	suite.Backend().On(http.MethodGet, "/api/v1/events", http.StatusOK, itf.OK([]map[string]any{}))

	doc := suite.GET("/events").ExpectOK().HTML()

	found := false
	doc.Find("link[rel=stylesheet]").Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok && strings.Contains(href, "events") {
			found = true
		}
	})
	require.True(t, found, "events stylesheet should be linked while an events page is active")
}

func TestEventsController_Create_DateOrderBlocksSubmit(t *testing.T) {
	suite := newEventsSuite(t)

	form := url.Values{
		"name":      {"Diwali"},
		"location":  {"Courtyard"},
		"from_date": {"2026-11-10"},
		"to_date":   {"2026-11-08"},
		"status":    {"draft"},
	}
	doc := suite.POST("/events", form).ExpectOK().HTML()

	// The form re-renders with the end date flagged.
	errText := doc.Find(`div.form-field.has-error p.field-error`).Text()
	require.NotEmpty(t, errText)
	require.Equal(t, 1, doc.Find(`input[name="to_date"][aria-invalid="true"]`).Length())

	// Nothing reached the backend.
	require.Empty(t, suite.Backend().RequestsTo(http.MethodPost, "/api/v1/events"))
}

func TestEventsController_Create_ValidFormPostsAndRedirects(t *testing.T) {
	suite := newEventsSuite(t)
	suite.Backend().On(http.MethodPost, "/api/v1/events", http.StatusOK, itf.OK(eventFixture(7, "Diwali")))

	form := url.Values{
		"name":      {"Diwali"},
		"location":  {"Courtyard"},
		"from_date": {"2026-11-08"},
		"to_date":   {"2026-11-10"},
		"status":    {"published"},
		"capacity":  {"300"},
	}
	suite.POST("/events", form).ExpectRedirect("/events")

	calls := suite.Backend().RequestsTo(http.MethodPost, "/api/v1/events")
	require.Len(t, calls, 1)
	require.Contains(t, string(calls[0].Body), `"name":"Diwali"`)
	require.Contains(t, string(calls[0].Body), `"capacity":300`)
}

func TestEventsController_Edit_MissingEventRedirectsToList(t *testing.T) {
	suite := newEventsSuite(t)
	suite.Backend().On(http.MethodGet, "/api/v1/events/99", http.StatusNotFound, itf.Fail("event not found"))

	suite.GET("/events/99/edit").ExpectRedirect("/events")
}

func TestEventsController_View_MalformedIDRedirectsToList(t *testing.T) {
	suite := newEventsSuite(t)

	// No backend call happens for an unparseable id; the list picks the
	// visitor up with a notice.
	suite.GET("/events/not-a-number").ExpectRedirect("/events")
	suite.GET("/events/not-a-number/edit").ExpectRedirect("/events")
	require.Empty(t, suite.Backend().RequestsTo(http.MethodGet, "/api/v1/events/not-a-number"))
}

func TestEventsController_Delete_PostsAndRedirects(t *testing.T) {
	suite := newEventsSuite(t)
	suite.Backend().On(http.MethodDelete, "/api/v1/events/7", http.StatusOK, itf.OK(nil))

	suite.POST("/events/7/delete", url.Values{}).ExpectRedirect("/events")
	require.Len(t, suite.Backend().RequestsTo(http.MethodDelete, "/api/v1/events/7"), 1)
}
