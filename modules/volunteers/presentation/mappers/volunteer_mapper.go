package mappers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sevaops/temple-console/modules/volunteers/domain/assignment"
	"github.com/sevaops/temple-console/modules/volunteers/domain/attendance"
	"github.com/sevaops/temple-console/modules/volunteers/domain/department"
	"github.com/sevaops/temple-console/modules/volunteers/domain/report"
	"github.com/sevaops/temple-console/modules/volunteers/domain/task"
	"github.com/sevaops/temple-console/modules/volunteers/domain/volunteer"
	"github.com/sevaops/temple-console/modules/volunteers/presentation/viewmodels"
)

func DepartmentToRow(d department.Department) *viewmodels.DepartmentRow {
	return &viewmodels.DepartmentRow{
		ID:         strconv.FormatUint(uint64(d.ID), 10),
		Name:       d.Name,
		Head:       d.Head,
		Volunteers: strconv.Itoa(d.VolunteerCount),
		OpenTasks:  strconv.Itoa(d.OpenTasks),
	}
}

func TaskToRow(t task.Task) *viewmodels.TaskRow {
	timeRange := ""
	if t.StartTime != "" {
		timeRange = To12Hour(t.StartTime)
		if t.EndTime != "" {
			timeRange += " to " + To12Hour(t.EndTime)
		}
	}
	return &viewmodels.TaskRow{
		ID:           strconv.FormatUint(uint64(t.ID), 10),
		Title:        t.Title,
		Department:   t.DepartmentName,
		Date:         t.Date.String(),
		Time:         timeRange,
		Status:       string(t.Status),
		Staffing:     fmt.Sprintf("%d / %d", t.AssignedCount, t.RequiredCount),
		Understaffed: t.Status == task.StatusOpen && t.AssignedCount < t.RequiredCount,
	}
}

func AssignmentToRow(a assignment.Assignment) *viewmodels.AssignmentRow {
	dates := a.StartDate.String()
	if !a.EndDate.IsZero() && a.EndDate.String() != dates {
		dates += " to " + a.EndDate.String()
	}
	return &viewmodels.AssignmentRow{
		ID:         strconv.FormatUint(uint64(a.ID), 10),
		Volunteer:  a.VolunteerName,
		Task:       a.TaskTitle,
		Department: a.DepartmentName,
		Dates:      dates,
		Status:     string(a.Status),
		CancelTo:   fmt.Sprintf("/volunteers/assignments/%d/cancel", a.ID),
	}
}

func AttendanceToRow(e attendance.Entry) *viewmodels.AttendanceRow {
	return &viewmodels.AttendanceRow{
		ID:           strconv.FormatUint(uint64(e.ID), 10),
		Volunteer:    e.VolunteerName,
		Date:         e.Date.String(),
		CheckIn:      To12Hour(e.CheckIn),
		CheckOut:     To12Hour(e.CheckOut),
		Hours:        e.Hours.StringFixed(1),
		EntryType:    string(e.EntryType),
		ManualReason: e.ManualReason,
	}
}

// VolunteerToApprovalRow derives the queue's presentation values fresh
// on every render; nothing here is persisted.
func VolunteerToApprovalRow(v volunteer.Volunteer, now time.Time) *viewmodels.ApprovalRow {
	id := strconv.FormatUint(uint64(v.ID), 10)
	submitted := countSubmitted(v.RequiredDocuments, v.SubmittedDocuments)
	return &viewmodels.ApprovalRow{
		ID:           id,
		Name:         v.Name,
		Email:        v.Email,
		Phone:        v.Phone,
		Initials:     Initials(v.Name),
		AvatarColor:  AvatarColor(v.Name),
		DaysWaiting:  strconv.Itoa(DaysWaiting(v.RegisteredAt, now)),
		DocsBadge:    fmt.Sprintf("%d/%d", submitted, len(v.RequiredDocuments)),
		DocsComplete: submitted >= len(v.RequiredDocuments),
		Resubmission: v.Resubmission,
		ApproveTo:    "/volunteers/approvals/" + id + "/approve",
		RejectTo:     "/volunteers/approvals/" + id + "/reject",
		ResubmitTo:   "/volunteers/approvals/" + id + "/request-resubmission",
	}
}

// countSubmitted counts required document types with a submission;
// extra unrelated documents do not inflate the badge.
func countSubmitted(required, submitted []string) int {
	have := make(map[string]struct{}, len(submitted))
	for _, doc := range submitted {
		have[doc] = struct{}{}
	}
	n := 0
	for _, doc := range required {
		if _, ok := have[doc]; ok {
			n++
		}
	}
	return n
}

func BucketToCell(b report.Bucket) *viewmodels.CalendarCell {
	entries := make([]*viewmodels.CalendarEntry, 0, len(b.Entries))
	for _, e := range b.Entries {
		entries = append(entries, &viewmodels.CalendarEntry{
			EntryID:     strconv.FormatUint(uint64(e.EntryID), 10),
			Volunteer:   e.VolunteerName,
			Initials:    Initials(e.VolunteerName),
			AvatarColor: AvatarColor(e.VolunteerName),
			CheckIn:     To12Hour(e.CheckIn),
			CheckOut:    To12Hour(e.CheckOut),
			Hours:       e.Hours.StringFixed(1),
		})
	}
	label := b.Label
	if label == "" {
		label = b.Date.String()
	}
	return &viewmodels.CalendarCell{
		Date:          b.Date.String(),
		Label:         label,
		Volunteers:    strconv.Itoa(b.VolunteerCount),
		Hours:         b.TotalHours.StringFixed(1),
		ActivityClass: activityClass(b.Activity),
		Entries:       entries,
	}
}

func activityClass(level report.ActivityLevel) string {
	switch level {
	case report.ActivityHigh:
		return "activity-high"
	case report.ActivityMed:
		return "activity-medium"
	default:
		return "activity-low"
	}
}
