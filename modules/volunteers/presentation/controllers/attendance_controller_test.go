package controllers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sevaops/temple-console/pkg/itf"
)

func attendanceFixture(id int, entryType string) map[string]any {
	row := map[string]any{
		"id":             id,
		"volunteer_id":   11,
		"volunteer_name": "Ravi Pillai",
		"date":           "2026-08-15",
		"check_in":       "08:00",
		"check_out":      "12:30",
		"hours_worked":   "4.5",
		"entry_type":     entryType,
	}
	if entryType == "manual" {
		row["manual_reason"] = "Scanner was offline"
	}
	return row
}

func TestAttendanceController_List_MarksManualEntries(t *testing.T) {
	suite := newVolunteersSuite(t)
	suite.Backend().On(http.MethodGet, "/api/v1/volunteers/attendance", http.StatusOK, itf.OK(
		[]map[string]any{attendanceFixture(1, "normal"), attendanceFixture(2, "manual")},
	))

	doc := suite.GET("/volunteers/attendance").ExpectOK().HTML()

	require.Equal(t, 2, doc.Find("tr[data-entry-id]").Length())
	manual := doc.Find(`tr[data-entry-id="2"] span.entry-manual`)
	require.Equal(t, 1, manual.Length())
	title, _ := manual.Attr("title")
	require.Equal(t, "Scanner was offline", title)

	// Check-in times render in 12 hour form.
	require.Contains(t, doc.Find(`tr[data-entry-id="1"]`).Text(), "8:00 AM")
}

func TestAttendanceController_ManualEntry_RequiresReason(t *testing.T) {
	suite := newVolunteersSuite(t)

	form := url.Values{
		"volunteer_id":  {"11"},
		"date":          {"2026-08-15"},
		"check_in":      {"08:00"},
		"check_out":     {"12:30"},
		"manual_reason": {"  "},
	}
	doc := suite.POST("/volunteers/attendance", form).ExpectOK().HTML()

	require.Equal(t, 1, doc.Find(`textarea[name="manual_reason"][aria-invalid="true"]`).Length())
	require.Empty(t, suite.Backend().RequestsTo(http.MethodPost, "/api/v1/volunteers/attendance"))
}

func TestAttendanceController_ManualEntry_SubmitsAsManual(t *testing.T) {
	suite := newVolunteersSuite(t)
	suite.Backend().On(http.MethodPost, "/api/v1/volunteers/attendance", http.StatusOK,
		itf.OK(attendanceFixture(9, "manual")))

	form := url.Values{
		"volunteer_id":  {"11"},
		"date":          {"2026-08-15"},
		"check_in":      {"08:00"},
		"check_out":     {"12:30"},
		"manual_reason": {"Scanner was offline"},
	}
	suite.POST("/volunteers/attendance", form).ExpectRedirect("/volunteers/attendance")

	calls := suite.Backend().RequestsTo(http.MethodPost, "/api/v1/volunteers/attendance")
	require.Len(t, calls, 1)
	body := string(calls[0].Body)
	require.Contains(t, body, `"entry_type":"manual"`)
	require.Contains(t, body, `"manual_reason":"Scanner was offline"`)
}

func TestAttendanceController_Calendar_RendersActivityCells(t *testing.T) {
	suite := newVolunteersSuite(t)
	suite.Backend().On(http.MethodGet, "/api/v1/volunteers/reports/attendance", http.StatusOK, itf.OK(
		[]map[string]any{
			{
				"date":            "2026-08-15",
				"volunteer_count": 12,
				"total_hours":     "40.5",
				"activity_level":  "high",
				"entries": []map[string]any{
					{"entry_id": 1, "volunteer_name": "Ravi Pillai", "check_in": "08:00", "check_out": "12:30", "hours_worked": "4.5"},
				},
			},
			{
				"date":            "2026-08-16",
				"volunteer_count": 2,
				"total_hours":     "3.0",
				"activity_level":  "low",
			},
		},
	))

	doc := suite.GET("/volunteers/attendance/calendar?period=day&from_date=2026-08-15&to_date=2026-08-16").
		ExpectOK().HTML()

	require.Equal(t, 1, doc.Find(`div.calendar-cell.activity-high[data-date="2026-08-15"]`).Length())
	require.Equal(t, 1, doc.Find(`div.calendar-cell.activity-low[data-date="2026-08-16"]`).Length())

	popup := doc.Find(`div.calendar-cell[data-date="2026-08-15"] div.popup-entry`)
	require.Equal(t, 1, popup.Length())
	require.Contains(t, popup.Text(), "RP")
	require.Contains(t, popup.Text(), "8:00 AM")

	calls := suite.Backend().RequestsTo(http.MethodGet, "/api/v1/volunteers/reports/attendance")
	require.Len(t, calls, 1)
	require.Equal(t, "day", calls[0].Query.Get("period"))
}

func TestAttendanceController_Export_StreamsWorkbook(t *testing.T) {
	suite := newVolunteersSuite(t)
	suite.Backend().On(http.MethodGet, "/api/v1/volunteers/reports/attendance", http.StatusOK,
		itf.OK([]map[string]any{}))

	resp := suite.GET("/volunteers/attendance/calendar/export?period=week")
	resp.ExpectOK()
	require.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header().Get("Content-Type"))
	require.NotEmpty(t, resp.Body())
}
