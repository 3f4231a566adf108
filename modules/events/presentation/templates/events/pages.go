// Package events renders the event screens: list with filters, the
// create/edit form and the detail view.
package events

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/sevaops/temple-console/components/pagination"
	"github.com/sevaops/temple-console/modules/events/presentation/viewmodels"
	"github.com/sevaops/temple-console/pkg/composables"
)

func Index(props *viewmodels.EventsListPageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx).Namespace("Events")
		if err := write(w,
			`<section class="events-list" data-page="events-list">`,
			`<header class="page-header"><h1>`, esc(pageCtx.T("List.Title")), `</h1>`,
			`<a class="btn btn-primary" href="`, esc(props.NewURL), `">`, esc(pageCtx.T("List.New")), `</a></header>`,
		); err != nil {
			return err
		}
		if err := filters(w, pageCtx.T, props); err != nil {
			return err
		}
		if err := table(w, pageCtx.T, props); err != nil {
			return err
		}
		if err := pagination.Controls(props.Collection, props.BasePath, props.Query).Render(ctx, w); err != nil {
			return err
		}
		return write(w, `</section>`)
	})
}

type translator func(key string, args ...map[string]interface{}) string

func filters(w io.Writer, t translator, props *viewmodels.EventsListPageProps) error {
	return write(w,
		`<form class="list-filters" method="get" action="`, esc(props.BasePath), `">`,
		`<input type="search" name="search" value="`, esc(props.Search),
		`" placeholder="`, esc(t("List.SearchPlaceholder")), `" data-debounce="300"/>`,
		`<select name="status"><option value="">`, esc(t("List.AnyStatus")), `</option>`,
		statusOptions(props.Status),
		`</select>`,
		`<input type="date" name="from_date" value="`, esc(props.FromDate), `"/>`,
		`<input type="date" name="to_date" value="`, esc(props.ToDate), `"/>`,
		`<button type="submit" class="btn">`, esc(t("List.Apply")), `</button>`,
		`</form>`,
	)
}

func statusOptions(selected string) string {
	out := ""
	for _, s := range []string{"draft", "published", "cancelled", "completed"} {
		sel := ""
		if s == selected {
			sel = ` selected`
		}
		out += `<option value="` + s + `"` + sel + `>` + s + `</option>`
	}
	return out
}

func table(w io.Writer, t translator, props *viewmodels.EventsListPageProps) error {
	if err := write(w,
		`<table class="data-table"><thead><tr>`,
		`<th>`, esc(t("List.Name")), `</th>`,
		`<th>`, esc(t("List.Location")), `</th>`,
		`<th>`, esc(t("List.Dates")), `</th>`,
		`<th>`, esc(t("List.Status")), `</th>`,
		`<th>`, esc(t("List.Capacity")), `</th>`,
		`<th>`, esc(t("List.Donation")), `</th>`,
		`<th></th></tr></thead><tbody>`,
	); err != nil {
		return err
	}
	switch {
	case props.LoadError != "":
		if err := write(w, `<tr class="error-row"><td colspan="7" role="alert">`, esc(props.LoadError), `</td></tr>`); err != nil {
			return err
		}
	case len(props.Items) == 0:
		if err := write(w, `<tr class="empty-row"><td colspan="7">`, esc(t("List.Empty")), `</td></tr>`); err != nil {
			return err
		}
	default:
		for _, item := range props.Items {
			if err := write(w,
				`<tr data-event-id="`, esc(item.ID), `">`,
				`<td><a href="`, esc(item.ViewURL), `">`, esc(item.Name), `</a></td>`,
				`<td>`, esc(item.Location), `</td>`,
				`<td>`, esc(item.Dates), `</td>`,
				`<td><span class="status status-`, esc(item.Status), `">`, esc(item.Status), `</span></td>`,
				`<td>`, esc(item.Capacity), `</td>`,
				`<td>`, esc(item.Donation), `</td>`,
				`<td><a class="btn btn-sm" href="`, esc(item.EditURL), `">`, esc(t("List.Edit")), `</a></td>`,
				`</tr>`,
			); err != nil {
				return err
			}
		}
	}
	return write(w, `</tbody></table>`)
}

func Form(props *viewmodels.EventFormPageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx).Namespace("Events")
		t := pageCtx.T
		if err := write(w,
			`<section class="event-form" data-page="event-form">`,
			`<header class="page-header"><h1>`, esc(props.Title), `</h1></header>`,
			`<form method="post" action="`, esc(props.PostTo), `" novalidate>`,
		); err != nil {
			return err
		}
		if err := textField(w, "name", t("Fields.Name"), props.Form.Name, props.Errors["Name"], true); err != nil {
			return err
		}
		if err := textArea(w, "description", t("Fields.Details"), props.Form.Description, props.Errors["Description"]); err != nil {
			return err
		}
		if err := textField(w, "location", t("Fields.Location"), props.Form.Location, props.Errors["Location"], true); err != nil {
			return err
		}
		if err := dateField(w, "from_date", t("Fields.FromDate"), props.Form.FromDate, props.Errors["FromDate"]); err != nil {
			return err
		}
		if err := dateField(w, "to_date", t("Fields.ToDate"), props.Form.ToDate, props.Errors["ToDate"]); err != nil {
			return err
		}
		if err := timeField(w, "start_time", t("Fields.StartTime"), props.Form.StartTime); err != nil {
			return err
		}
		if err := timeField(w, "end_time", t("Fields.EndTime"), props.Form.EndTime); err != nil {
			return err
		}
		if err := selectField(w, "status", t("Fields.Status"), props.Form.Status, props.Statuses, props.Errors["Status"]); err != nil {
			return err
		}
		if err := numberField(w, "capacity", t("Fields.Capacity"), props.Form.Capacity, props.Errors["Capacity"]); err != nil {
			return err
		}
		if err := numberField(w, "donation_amount", t("Fields.DonationAmount"), props.Form.DonationAmount, props.Errors["DonationAmount"]); err != nil {
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

func View(props *viewmodels.EventDetailPageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx).Namespace("Events")
		t := pageCtx.T
		e := props.Event
		if err := write(w,
			`<section class="event-detail" data-page="event-view">`,
			`<header class="page-header"><h1>`, esc(e.Name), `</h1>`,
			`<span class="status status-`, esc(e.Status), `">`, esc(e.Status), `</span></header>`,
			`<dl class="detail-grid">`,
			`<dt>`, esc(t("List.Location")), `</dt><dd>`, esc(e.Location), `</dd>`,
			`<dt>`, esc(t("List.Dates")), `</dt><dd>`, esc(e.Dates), `</dd>`,
			`<dt>`, esc(t("List.Capacity")), `</dt><dd>`, esc(e.Capacity), `</dd>`,
			`<dt>`, esc(t("List.Donation")), `</dt><dd>`, esc(e.Donation), `</dd>`,
		); err != nil {
			return err
		}
		for label, value := range props.Longform {
			if err := write(w, `<dt>`, esc(label), `</dt><dd>`, esc(value), `</dd>`); err != nil {
				return err
			}
		}
		return write(w,
			`</dl><footer class="form-actions">`,
			`<a class="btn" href="`, esc(props.BackURL), `">`, esc(t("Form.Back")), `</a>`,
			`<a class="btn" href="`, esc(props.EditURL), `">`, esc(t("List.Edit")), `</a>`,
			`<form method="post" action="`, esc(props.DeleteTo), `" data-confirm="`, esc(t("Detail.DeleteConfirm")), `">`,
			`<button type="submit" class="btn btn-danger">`, esc(t("Detail.Delete")), `</button>`,
			`</form></footer></section>`,
		)
	})
}

func textField(w io.Writer, name, label, value, errMsg string, required bool) error {
	req := ""
	if required {
		req = ` required`
	}
	return field(w, name, label, errMsg,
		`<input type="text" id="`+name+`" name="`+name+`" value="`+esc(value)+`"`+req+invalidAttr(errMsg)+`/>`)
}

func textArea(w io.Writer, name, label, value, errMsg string) error {
	return field(w, name, label, errMsg,
		`<textarea id="`+name+`" name="`+name+`" rows="4">`+esc(value)+`</textarea>`)
}

func dateField(w io.Writer, name, label, value, errMsg string) error {
	return field(w, name, label, errMsg,
		`<input type="date" id="`+name+`" name="`+name+`" value="`+esc(value)+`" required`+invalidAttr(errMsg)+`/>`)
}

func timeField(w io.Writer, name, label, value string) error {
	return field(w, name, label, "",
		`<input type="time" id="`+name+`" name="`+name+`" value="`+esc(value)+`"/>`)
}

func numberField(w io.Writer, name, label, value, errMsg string) error {
	return field(w, name, label, errMsg,
		`<input type="number" id="`+name+`" name="`+name+`" value="`+esc(value)+`" min="0" step="any"`+invalidAttr(errMsg)+`/>`)
}

func selectField(w io.Writer, name, label, selected string, options []string, errMsg string) error {
	html := `<select id="` + name + `" name="` + name + `"` + invalidAttr(errMsg) + `>`
	for _, opt := range options {
		sel := ""
		if opt == selected {
			sel = ` selected`
		}
		html += `<option value="` + esc(opt) + `"` + sel + `>` + esc(opt) + `</option>`
	}
	html += `</select>`
	return field(w, name, label, errMsg, html)
}

func field(w io.Writer, name, label, errMsg, control string) error {
	cls := "form-field"
	if errMsg != "" {
		cls += " has-error"
	}
	parts := []string{
		`<div class="`, cls, `"><label for="`, name, `">`, esc(label), `</label>`, control,
	}
	if errMsg != "" {
		parts = append(parts, `<p class="field-error">`, esc(errMsg), `</p>`)
	}
	parts = append(parts, `</div>`)
	return write(w, parts...)
}

func invalidAttr(errMsg string) string {
	if errMsg == "" {
		return ""
	}
	return ` aria-invalid="true"`
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
