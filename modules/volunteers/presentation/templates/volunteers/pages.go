// Package volunteers renders the seva screens: department, task,
// assignment and attendance lists, the approval queue and the
// attendance calendar.
package volunteers

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/sevaops/temple-console/components/pagination"
	"github.com/sevaops/temple-console/modules/volunteers/presentation/viewmodels"
	"github.com/sevaops/temple-console/pkg/composables"
)

type translator func(key string, args ...map[string]interface{}) string

func Departments(props *viewmodels.DepartmentsPageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		t := composables.UsePageCtx(ctx).Namespace("Volunteers.Departments").T
		if err := write(w,
			`<section class="volunteers-list" data-page="volunteers-departments">`,
			`<header class="page-header"><h1>`, esc(t("Title")), `</h1></header>`,
			searchForm(props.BasePath, props.Search, t("SearchPlaceholder"), t("Apply")),
			`<table class="data-table"><thead><tr>`,
			`<th>`, esc(t("Name")), `</th><th>`, esc(t("Head")), `</th>`,
			`<th>`, esc(t("Volunteers")), `</th><th>`, esc(t("OpenTasks")), `</th>`,
			`</tr></thead><tbody>`,
		); err != nil {
			return err
		}
		switch {
		case props.LoadError != "":
			if err := errorRow(w, 4, props.LoadError); err != nil {
				return err
			}
		case len(props.Rows) == 0:
			if err := emptyRow(w, 4, t("Empty")); err != nil {
				return err
			}
		default:
			for _, row := range props.Rows {
				if err := write(w,
					`<tr data-department-id="`, esc(row.ID), `">`,
					`<td>`, esc(row.Name), `</td><td>`, esc(row.Head), `</td>`,
					`<td>`, esc(row.Volunteers), `</td><td>`, esc(row.OpenTasks), `</td></tr>`,
				); err != nil {
					return err
				}
			}
		}
		if err := write(w, `</tbody></table>`); err != nil {
			return err
		}
		if err := pagination.Controls(props.Collection, props.BasePath, props.Query).Render(ctx, w); err != nil {
			return err
		}
		return write(w, `</section>`)
	})
}

func Tasks(props *viewmodels.TasksPageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		t := composables.UsePageCtx(ctx).Namespace("Volunteers.Tasks").T
		if err := write(w,
			`<section class="volunteers-list" data-page="volunteers-tasks">`,
			`<header class="page-header"><h1>`, esc(t("Title")), `</h1></header>`,
			`<form class="list-filters" method="get" action="`, esc(props.BasePath), `">`,
			`<input type="search" name="search" value="`, esc(props.Search),
			`" placeholder="`, esc(t("SearchPlaceholder")), `" data-debounce="300"/>`,
			`<select name="status"><option value="">`, esc(t("AnyStatus")), `</option>`,
			options([]string{"open", "filled", "closed"}, props.Status),
			`</select>`,
			`<input type="text" name="department_id" value="`, esc(props.DepartmentID),
			`" placeholder="`, esc(t("DepartmentID")), `"/>`,
			`<button type="submit" class="btn">`, esc(t("Apply")), `</button></form>`,
			`<table class="data-table"><thead><tr>`,
			`<th>`, esc(t("Task")), `</th><th>`, esc(t("Department")), `</th>`,
			`<th>`, esc(t("Date")), `</th><th>`, esc(t("Time")), `</th>`,
			`<th>`, esc(t("Status")), `</th><th>`, esc(t("Staffing")), `</th>`,
			`</tr></thead><tbody>`,
		); err != nil {
			return err
		}
		switch {
		case props.LoadError != "":
			if err := errorRow(w, 6, props.LoadError); err != nil {
				return err
			}
		case len(props.Rows) == 0:
			if err := emptyRow(w, 6, t("Empty")); err != nil {
				return err
			}
		default:
			for _, row := range props.Rows {
				staffCls := "staffing"
				if row.Understaffed {
					staffCls += " understaffed"
				}
				if err := write(w,
					`<tr data-task-id="`, esc(row.ID), `">`,
					`<td>`, esc(row.Title), `</td><td>`, esc(row.Department), `</td>`,
					`<td>`, esc(row.Date), `</td><td>`, esc(row.Time), `</td>`,
					`<td><span class="status status-`, esc(row.Status), `">`, esc(row.Status), `</span></td>`,
					`<td><span class="`, staffCls, `">`, esc(row.Staffing), `</span></td></tr>`,
				); err != nil {
					return err
				}
			}
		}
		if err := write(w, `</tbody></table>`); err != nil {
			return err
		}
		if err := pagination.Controls(props.Collection, props.BasePath, props.Query).Render(ctx, w); err != nil {
			return err
		}
		return write(w, `</section>`)
	})
}

func Assignments(props *viewmodels.AssignmentsPageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		t := composables.UsePageCtx(ctx).Namespace("Volunteers.Assignments").T
		if err := write(w,
			`<section class="volunteers-list" data-page="volunteers-assignments">`,
			`<header class="page-header"><h1>`, esc(t("Title")), `</h1></header>`,
			searchForm(props.BasePath, props.Search, t("SearchPlaceholder"), t("Apply")),
			`<table class="data-table"><thead><tr>`,
			`<th>`, esc(t("Volunteer")), `</th><th>`, esc(t("Task")), `</th>`,
			`<th>`, esc(t("Department")), `</th><th>`, esc(t("Dates")), `</th>`,
			`<th>`, esc(t("Status")), `</th><th></th></tr></thead><tbody>`,
		); err != nil {
			return err
		}
		switch {
		case props.LoadError != "":
			if err := errorRow(w, 6, props.LoadError); err != nil {
				return err
			}
		case len(props.Rows) == 0:
			if err := emptyRow(w, 6, t("Empty")); err != nil {
				return err
			}
		default:
			for _, row := range props.Rows {
				if err := write(w,
					`<tr data-assignment-id="`, esc(row.ID), `">`,
					`<td>`, esc(row.Volunteer), `</td><td>`, esc(row.Task), `</td>`,
					`<td>`, esc(row.Department), `</td><td>`, esc(row.Dates), `</td>`,
					`<td><span class="status status-`, esc(row.Status), `">`, esc(row.Status), `</span></td>`,
					`<td>`,
				); err != nil {
					return err
				}
				if row.Status == "active" {
					if err := write(w,
						`<form method="post" action="`, esc(row.CancelTo),
						`" data-confirm="`, esc(t("CancelConfirm")), `">`,
						`<button type="submit" class="btn btn-sm btn-danger">`, esc(t("Cancel")), `</button></form>`,
					); err != nil {
						return err
					}
				}
				if err := write(w, `</td></tr>`); err != nil {
					return err
				}
			}
		}
		if err := write(w, `</tbody></table>`); err != nil {
			return err
		}
		if err := pagination.Controls(props.Collection, props.BasePath, props.Query).Render(ctx, w); err != nil {
			return err
		}
		return write(w, `</section>`)
	})
}

func Attendance(props *viewmodels.AttendancePageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		t := composables.UsePageCtx(ctx).Namespace("Volunteers.Attendance").T
		if err := write(w,
			`<section class="volunteers-list" data-page="volunteers-attendance">`,
			`<header class="page-header"><h1>`, esc(t("Title")), `</h1>`,
			`<a class="btn btn-primary" href="`, esc(props.NewURL), `">`, esc(t("ManualEntry")), `</a></header>`,
			`<form class="list-filters" method="get" action="`, esc(props.BasePath), `">`,
			`<input type="search" name="search" value="`, esc(props.Search),
			`" placeholder="`, esc(t("SearchPlaceholder")), `" data-debounce="300"/>`,
			`<select name="entry_type"><option value="">`, esc(t("AnyEntryType")), `</option>`,
			options([]string{"normal", "manual"}, props.EntryType),
			`</select>`,
			`<input type="date" name="from_date" value="`, esc(props.FromDate), `"/>`,
			`<input type="date" name="to_date" value="`, esc(props.ToDate), `"/>`,
			`<button type="submit" class="btn">`, esc(t("Apply")), `</button></form>`,
			`<table class="data-table"><thead><tr>`,
			`<th>`, esc(t("Volunteer")), `</th><th>`, esc(t("Date")), `</th>`,
			`<th>`, esc(t("CheckIn")), `</th><th>`, esc(t("CheckOut")), `</th>`,
			`<th>`, esc(t("Hours")), `</th><th>`, esc(t("EntryType")), `</th>`,
			`</tr></thead><tbody>`,
		); err != nil {
			return err
		}
		switch {
		case props.LoadError != "":
			if err := errorRow(w, 6, props.LoadError); err != nil {
				return err
			}
		case len(props.Rows) == 0:
			if err := emptyRow(w, 6, t("Empty")); err != nil {
				return err
			}
		default:
			for _, row := range props.Rows {
				if err := write(w,
					`<tr data-entry-id="`, esc(row.ID), `" data-entry-type="`, esc(row.EntryType), `">`,
					`<td>`, esc(row.Volunteer), `</td><td>`, esc(row.Date), `</td>`,
					`<td>`, esc(row.CheckIn), `</td><td>`, esc(row.CheckOut), `</td>`,
					`<td>`, esc(row.Hours), `</td><td>`,
				); err != nil {
					return err
				}
				if row.EntryType == "manual" {
					if err := write(w,
						`<span class="entry-badge entry-manual" title="`, esc(row.ManualReason), `">`,
						esc(t("Manual")), `</span>`,
					); err != nil {
						return err
					}
				} else {
					if err := write(w, `<span class="entry-badge entry-normal">`, esc(t("Normal")), `</span>`); err != nil {
						return err
					}
				}
				if err := write(w, `</td></tr>`); err != nil {
					return err
				}
			}
		}
		if err := write(w, `</tbody></table>`); err != nil {
			return err
		}
		if err := pagination.Controls(props.Collection, props.BasePath, props.Query).Render(ctx, w); err != nil {
			return err
		}
		return write(w, `</section>`)
	})
}

func ManualEntryForm(props *viewmodels.ManualEntryFormProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		t := composables.UsePageCtx(ctx).Namespace("Volunteers.Attendance").T
		if err := write(w,
			`<section class="manual-entry-form" data-page="attendance-manual">`,
			`<header class="page-header"><h1>`, esc(props.Title), `</h1></header>`,
			`<form method="post" action="`, esc(props.PostTo), `" novalidate>`,
		); err != nil {
			return err
		}
		if err := formField(w, "volunteer_id", t("Fields.VolunteerID"), "number", props.Form.VolunteerID, props.Errors["VolunteerID"]); err != nil {
			return err
		}
		if err := formField(w, "date", t("Fields.Date"), "date", props.Form.Date, props.Errors["Date"]); err != nil {
			return err
		}
		if err := formField(w, "check_in", t("Fields.CheckIn"), "time", props.Form.CheckIn, props.Errors["CheckIn"]); err != nil {
			return err
		}
		if err := formField(w, "check_out", t("Fields.CheckOut"), "time", props.Form.CheckOut, props.Errors["CheckOut"]); err != nil {
			return err
		}
		if err := reasonField(w, "manual_reason", t("Fields.ManualReason"), props.Form.ManualReason, props.Errors["ManualReason"]); err != nil {
			return err
		}
		submitLabel := t("Form.Save")
		disabled := ""
		if props.Saving {
			submitLabel = t("Form.Saving")
			disabled = ` disabled`
		}
		return write(w,
			`<footer class="form-actions">`,
			`<a class="btn" href="`, esc(props.BackURL), `">`, esc(t("Form.Cancel")), `</a>`,
			`<button type="submit" class="btn btn-primary"`, disabled, `>`, esc(submitLabel), `</button>`,
			`</footer></form></section>`,
		)
	})
}

func ApprovalQueue(props *viewmodels.ApprovalQueuePageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		t := composables.UsePageCtx(ctx).Namespace("Volunteers.Approvals").T
		if err := write(w,
			`<section class="approval-queue" data-page="volunteers-approvals">`,
			`<header class="page-header"><h1>`, esc(t("Title")), `</h1></header>`,
			searchForm(props.BasePath, props.Search, t("SearchPlaceholder"), t("Apply")),
		); err != nil {
			return err
		}
		switch {
		case props.LoadError != "":
			if err := write(w, `<div class="error-panel" role="alert">`, esc(props.LoadError), `</div>`); err != nil {
				return err
			}
		case len(props.Rows) == 0:
			if err := write(w, `<div class="empty-panel">`, esc(t("Empty")), `</div>`); err != nil {
				return err
			}
		default:
			if err := write(w, `<ul class="approval-cards">`); err != nil {
				return err
			}
			for _, row := range props.Rows {
				if err := approvalCard(w, t, row, props.DecisionErrors[row.ID]); err != nil {
					return err
				}
			}
			if err := write(w, `</ul>`); err != nil {
				return err
			}
		}
		if err := pagination.Controls(props.Collection, props.BasePath, props.Query).Render(ctx, w); err != nil {
			return err
		}
		return write(w, `</section>`)
	})
}

func approvalCard(w io.Writer, t translator, row *viewmodels.ApprovalRow, decisionError string) error {
	docsCls := "docs-badge incomplete"
	if row.DocsComplete {
		docsCls = "docs-badge complete"
	}
	if err := write(w,
		`<li class="approval-card" data-volunteer-id="`, esc(row.ID), `">`,
		`<span class="avatar" style="background-color:`, esc(row.AvatarColor), `">`, esc(row.Initials), `</span>`,
		`<div class="approval-body"><h2>`, esc(row.Name), `</h2>`,
		`<p>`, esc(row.Email), ` · `, esc(row.Phone), `</p>`,
		`<span class="days-waiting">`, esc(t("DaysWaiting", map[string]interface{}{"Days": row.DaysWaiting})), `</span>`,
		`<span class="`, docsCls, `">`, esc(t("Documents")), ` `, esc(row.DocsBadge), `</span>`,
	); err != nil {
		return err
	}
	if row.Resubmission {
		if err := write(w, `<span class="resubmission-badge">`, esc(t("Resubmission")), `</span>`); err != nil {
			return err
		}
	}
	reasonCls := "form-field reason-field"
	invalid := ""
	if decisionError != "" {
		reasonCls += " has-error"
		invalid = ` aria-invalid="true"`
	}
	if err := write(w,
		`</div><div class="approval-actions">`,
		`<form method="post" action="`, esc(row.ApproveTo), `" data-confirm="`, esc(t("ApproveConfirm")), `">`,
		`<button type="submit" class="btn btn-sm btn-primary">`, esc(t("Approve")), `</button></form>`,
		`<form method="post" action="`, esc(row.RejectTo), `" data-confirm="`, esc(t("RejectConfirm")), `">`,
		`<div class="`, reasonCls, `">`,
		`<input type="text" name="reason" placeholder="`, esc(t("Fields.Reason")), `"`, invalid, `/>`,
	); err != nil {
		return err
	}
	if decisionError != "" {
		if err := write(w, `<p class="field-error">`, esc(decisionError), `</p>`); err != nil {
			return err
		}
	}
	return write(w,
		`</div>`,
		`<button type="submit" class="btn btn-sm btn-danger">`, esc(t("Reject")), `</button></form>`,
		`<form method="post" action="`, esc(row.ResubmitTo), `" data-confirm="`, esc(t("ResubmitConfirm")), `">`,
		`<input type="text" name="reason" placeholder="`, esc(t("Fields.Reason")), `"/>`,
		`<button type="submit" class="btn btn-sm">`, esc(t("RequestResubmission")), `</button></form>`,
		`</div></li>`,
	)
}

func Calendar(props *viewmodels.CalendarPageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		t := composables.UsePageCtx(ctx).Namespace("Volunteers.Calendar").T
		if err := write(w,
			`<section class="attendance-calendar" data-page="volunteers-calendar">`,
			`<header class="page-header"><h1>`, esc(t("Title")), `</h1>`,
			`<a class="btn" href="`, esc(props.ExportURL), `">`, esc(t("Export")), `</a></header>`,
			`<form class="list-filters" method="get" action="`, esc(props.BasePath), `">`,
			`<select name="period">`,
			options([]string{"day", "week", "month"}, props.Period),
			`</select>`,
			`<input type="date" name="from_date" value="`, esc(props.FromDate), `"/>`,
			`<input type="date" name="to_date" value="`, esc(props.ToDate), `"/>`,
			`<button type="submit" class="btn">`, esc(t("Apply")), `</button></form>`,
		); err != nil {
			return err
		}
		if props.LoadError != "" {
			if err := write(w, `<div class="error-panel" role="alert">`, esc(props.LoadError), `</div></section>`); err != nil {
				return err
			}
			return nil
		}
		if err := write(w, `<div class="calendar-grid">`); err != nil {
			return err
		}
		for _, cell := range props.Cells {
			if err := calendarCell(w, t, cell); err != nil {
				return err
			}
		}
		return write(w, `</div></section>`)
	})
}

func calendarCell(w io.Writer, t translator, cell *viewmodels.CalendarCell) error {
	if err := write(w,
		`<div class="calendar-cell `, esc(cell.ActivityClass), `" data-date="`, esc(cell.Date), `">`,
		`<span class="cell-label">`, esc(cell.Label), `</span>`,
		`<span class="cell-volunteers">`, esc(cell.Volunteers), `</span>`,
		`<span class="cell-hours">`, esc(t("HoursShort", map[string]interface{}{"Hours": cell.Hours})), `</span>`,
		`<div class="cell-popup">`,
	); err != nil {
		return err
	}
	for _, entry := range cell.Entries {
		if err := write(w,
			`<div class="popup-entry" data-entry-id="`, esc(entry.EntryID), `">`,
			`<span class="avatar avatar-sm" style="background-color:`, esc(entry.AvatarColor), `">`, esc(entry.Initials), `</span>`,
			`<span>`, esc(entry.Volunteer), `</span>`,
			`<span>`, esc(entry.CheckIn), ` to `, esc(entry.CheckOut), `</span>`,
			`<span>`, esc(entry.Hours), `</span></div>`,
		); err != nil {
			return err
		}
	}
	return write(w, `</div></div>`)
}

func searchForm(action, value, placeholder, apply string) string {
	return `<form class="list-filters" method="get" action="` + esc(action) + `">` +
		`<input type="search" name="search" value="` + esc(value) +
		`" placeholder="` + esc(placeholder) + `" data-debounce="300"/>` +
		`<button type="submit" class="btn">` + esc(apply) + `</button></form>`
}

func options(values []string, selected string) string {
	out := ""
	for _, v := range values {
		sel := ""
		if v == selected {
			sel = ` selected`
		}
		out += `<option value="` + esc(v) + `"` + sel + `>` + esc(v) + `</option>`
	}
	return out
}

func errorRow(w io.Writer, colspan int, message string) error {
	return write(w, `<tr class="error-row"><td colspan="`, strconv.Itoa(colspan), `" role="alert">`, esc(message), `</td></tr>`)
}

func emptyRow(w io.Writer, colspan int, message string) error {
	return write(w, `<tr class="empty-row"><td colspan="`, strconv.Itoa(colspan), `">`, esc(message), `</td></tr>`)
}

func formField(w io.Writer, name, label, inputType, value, errMsg string) error {
	cls := "form-field"
	invalid := ""
	if errMsg != "" {
		cls += " has-error"
		invalid = ` aria-invalid="true"`
	}
	if err := write(w,
		`<div class="`, cls, `"><label for="`, name, `">`, esc(label), `</label>`,
		`<input type="`, inputType, `" id="`, name, `" name="`, name, `" value="`, esc(value), `" required`, invalid, `/>`,
	); err != nil {
		return err
	}
	if errMsg != "" {
		if err := write(w, `<p class="field-error">`, esc(errMsg), `</p>`); err != nil {
			return err
		}
	}
	return write(w, `</div>`)
}

func reasonField(w io.Writer, name, label, value, errMsg string) error {
	cls := "form-field"
	invalid := ""
	if errMsg != "" {
		cls += " has-error"
		invalid = ` aria-invalid="true"`
	}
	if err := write(w,
		`<div class="`, cls, `"><label for="`, name, `">`, esc(label), `</label>`,
		`<textarea id="`, name, `" name="`, name, `" rows="2" required`, invalid, `>`, esc(value), `</textarea>`,
	); err != nil {
		return err
	}
	if errMsg != "" {
		if err := write(w, `<p class="field-error">`, esc(errMsg), `</p>`); err != nil {
			return err
		}
	}
	return write(w, `</div>`)
}

func esc(s string) string {
	return templ.EscapeString(s)
}

func write(w io.Writer, parts ...string) error {
	for _, p := range parts {
		if _, err := io.WriteString(w, p); err != nil {
			return err
		}
	}
	return nil
}
