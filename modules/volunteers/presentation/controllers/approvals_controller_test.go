package controllers_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sevaops/temple-console/modules/volunteers"
	"github.com/sevaops/temple-console/pkg/itf"
)

func volunteerFixture(id int, name string, daysAgo int) map[string]any {
	return map[string]any{
		"id":                     id,
		"name":                   name,
		"email":                  "volunteer@example.org",
		"phone":                  "+91 98765 43210",
		"status":                 "pending_approval",
		"registered_at":          time.Now().AddDate(0, 0, -daysAgo).UTC().Format(time.RFC3339),
		"resubmission_requested": false,
		"required_documents":     []string{"id_proof", "photo"},
		"submitted_documents":    []string{"id_proof"},
	}
}

func newVolunteersSuite(t *testing.T) *itf.Suite {
	t.Helper()
	return itf.NewSuiteBuilder(t).WithModules(volunteers.NewModule()).Build()
}

func TestApprovalsController_Queue_RendersDerivedBadges(t *testing.T) {
	suite := newVolunteersSuite(t)
	suite.Backend().On(http.MethodGet, "/api/v1/volunteers", http.StatusOK, itf.OK(
		[]map[string]any{volunteerFixture(3, "Meera Iyer", 4)},
	))

	doc := suite.GET("/volunteers/approvals").ExpectOK().HTML()

	card := doc.Find(`li.approval-card[data-volunteer-id="3"]`)
	require.Equal(t, 1, card.Length())
	require.Equal(t, "MI", card.Find("span.avatar").Text())
	require.Contains(t, card.Find("span.days-waiting").Text(), "4")
	require.Contains(t, card.Find("span.docs-badge").Text(), "1/2")
	require.Equal(t, 1, card.Find("span.docs-badge.incomplete").Length())

	// Backend always receives the pending filter.
	calls := suite.Backend().RequestsTo(http.MethodGet, "/api/v1/volunteers")
	require.Len(t, calls, 1)
	require.Equal(t, "pending_approval", calls[0].Query.Get("status"))
}

func TestApprovalsController_Reject_RequiresReason(t *testing.T) {
	suite := newVolunteersSuite(t)
	suite.Backend().On(http.MethodGet, "/api/v1/volunteers", http.StatusOK, itf.OK(
		[]map[string]any{volunteerFixture(3, "Meera Iyer", 4)},
	))

	// Empty justification: the queue re-renders with the field flagged
	// and the decision never reaches the backend.
	doc := suite.POST("/volunteers/approvals/3/reject", url.Values{"reason": {"   "}}).
		ExpectOK().HTML()

	card := doc.Find(`li.approval-card[data-volunteer-id="3"]`)
	require.Equal(t, 1, card.Find(`input[name="reason"][aria-invalid="true"]`).Length())
	require.NotEmpty(t, card.Find("p.field-error").Text())
	require.Empty(t, suite.Backend().RequestsTo(http.MethodPost, "/api/v1/volunteers/3/reject"))
}

func TestApprovalsController_Reject_WithReasonPostsAndReloads(t *testing.T) {
	suite := newVolunteersSuite(t)
	suite.Backend().
		On(http.MethodGet, "/api/v1/volunteers", http.StatusOK, itf.OK([]map[string]any{})).
		On(http.MethodPost, "/api/v1/volunteers/3/reject", http.StatusOK, itf.OK(nil))

	suite.POST("/volunteers/approvals/3/reject", url.Values{"reason": {"ID document is illegible"}}).
		ExpectRedirect("/volunteers/approvals")

	calls := suite.Backend().RequestsTo(http.MethodPost, "/api/v1/volunteers/3/reject")
	require.Len(t, calls, 1)
	require.Contains(t, string(calls[0].Body), "ID document is illegible")

	// Following the redirect reloads the queue.
	suite.GET("/volunteers/approvals").ExpectOK()
	require.NotEmpty(t, suite.Backend().RequestsTo(http.MethodGet, "/api/v1/volunteers"))
}

func TestApprovalsController_Approve_NeedsNoReason(t *testing.T) {
	suite := newVolunteersSuite(t)
	suite.Backend().On(http.MethodPost, "/api/v1/volunteers/3/approve", http.StatusOK, itf.OK(nil))

	suite.POST("/volunteers/approvals/3/approve", url.Values{}).
		ExpectRedirect("/volunteers/approvals")
	require.Len(t, suite.Backend().RequestsTo(http.MethodPost, "/api/v1/volunteers/3/approve"), 1)
}

func TestApprovalsController_RequestResubmission_RequiresReason(t *testing.T) {
	suite := newVolunteersSuite(t)
	suite.Backend().
		On(http.MethodGet, "/api/v1/volunteers", http.StatusOK, itf.OK([]map[string]any{})).
		On(http.MethodPost, "/api/v1/volunteers/3/request-resubmission", http.StatusOK, itf.OK(nil))

	suite.POST("/volunteers/approvals/3/request-resubmission", url.Values{}).ExpectOK()
	require.Empty(t, suite.Backend().RequestsTo(http.MethodPost, "/api/v1/volunteers/3/request-resubmission"))

	suite.POST("/volunteers/approvals/3/request-resubmission", url.Values{"reason": {"Address proof expired"}}).
		ExpectRedirect("/volunteers/approvals")
	require.Len(t, suite.Backend().RequestsTo(http.MethodPost, "/api/v1/volunteers/3/request-resubmission"), 1)
}

func TestApprovalsController_BackendRejectionShowsFlash(t *testing.T) {
	suite := newVolunteersSuite(t)
	suite.Backend().
		On(http.MethodPost, "/api/v1/volunteers/3/reject", http.StatusUnprocessableEntity,
			itf.Fail("registration already decided")).
		On(http.MethodGet, "/api/v1/volunteers", http.StatusOK, itf.OK([]map[string]any{}))

	suite.POST("/volunteers/approvals/3/reject", url.Values{"reason": {"duplicate"}}).
		ExpectRedirect("/volunteers/approvals")

	doc := suite.GET("/volunteers/approvals").ExpectOK().HTML()
	require.Contains(t, doc.Find("div.notice-error").Text(), "registration already decided")
}
