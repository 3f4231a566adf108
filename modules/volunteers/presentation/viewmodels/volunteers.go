package viewmodels

import (
	"net/url"

	"github.com/sevaops/temple-console/modules/volunteers/domain/assignment"
	"github.com/sevaops/temple-console/modules/volunteers/domain/attendance"
	"github.com/sevaops/temple-console/modules/volunteers/domain/department"
	"github.com/sevaops/temple-console/modules/volunteers/domain/task"
	"github.com/sevaops/temple-console/modules/volunteers/domain/volunteer"
	"github.com/sevaops/temple-console/pkg/apiclient"
)

// ListChrome is the shared list-page scaffolding: current filters, the
// encoded query for pagination links and the inline error panel.
type ListChrome struct {
	Search    string
	Query     url.Values
	BasePath  string
	LoadError string
}

type DepartmentRow struct {
	ID         string
	Name       string
	Head       string
	Volunteers string
	OpenTasks  string
}

type DepartmentsPageProps struct {
	ListChrome
	Rows       []*DepartmentRow
	Collection apiclient.Collection[department.Department]
}

type TaskRow struct {
	ID         string
	Title      string
	Department string
	Date       string
	Time       string
	Status     string
	Staffing   string
	// Understaffed marks a task still short of its required count.
	Understaffed bool
}

type TasksPageProps struct {
	ListChrome
	DepartmentID string
	Status       string
	Rows         []*TaskRow
	Collection   apiclient.Collection[task.Task]
}

type AssignmentRow struct {
	ID         string
	Volunteer  string
	Task       string
	Department string
	Dates      string
	Status     string
	CancelTo   string
}

type AssignmentsPageProps struct {
	ListChrome
	DepartmentID string
	Status       string
	Rows         []*AssignmentRow
	Collection   apiclient.Collection[assignment.Assignment]
}

type AttendanceRow struct {
	ID        string
	Volunteer string
	Date      string
	CheckIn   string
	CheckOut  string
	Hours     string
	EntryType string
	// ManualReason shows in a tooltip badge on manual rows.
	ManualReason string
}

type AttendancePageProps struct {
	ListChrome
	EntryType  string
	FromDate   string
	ToDate     string
	Rows       []*AttendanceRow
	Collection apiclient.Collection[attendance.Entry]
	NewURL     string
}

type ManualEntryFormProps struct {
	Title   string
	Errors  map[string]string
	Form    *ManualEntryVM
	PostTo  string
	BackURL string
	Saving  bool
}

type ManualEntryVM struct {
	VolunteerID  string
	Date         string
	CheckIn      string
	CheckOut     string
	ManualReason string
}

// ApprovalRow carries the derived presentation values the queue
// recomputes on every render.
type ApprovalRow struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Initials    string
	AvatarColor string
	DaysWaiting string
	// DocsBadge is "n/m" of submitted over required document types;
	// DocsComplete drives the badge color.
	DocsBadge    string
	DocsComplete bool
	Resubmission bool
	ApproveTo    string
	RejectTo     string
	ResubmitTo   string
}

type ApprovalQueuePageProps struct {
	ListChrome
	Rows       []*ApprovalRow
	Collection apiclient.Collection[volunteer.Volunteer]
	// DecisionErrors flags a justification field after a blocked submit,
	// keyed by volunteer id.
	DecisionErrors map[string]string
}

type CalendarCell struct {
	Date       string
	Label      string
	Volunteers string
	Hours      string
	// ActivityClass is the server activity level mapped to a css class.
	ActivityClass string
	Entries       []*CalendarEntry
}

type CalendarEntry struct {
	EntryID     string
	Volunteer   string
	Initials    string
	AvatarColor string
	CheckIn     string
	CheckOut    string
	Hours       string
}

type CalendarPageProps struct {
	Period    string
	FromDate  string
	ToDate    string
	Cells     []*CalendarCell
	BasePath  string
	ExportURL string
	LoadError string
}
