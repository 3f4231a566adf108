package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/sevaops/temple-console/modules/volunteers/domain/attendance"
	"github.com/sevaops/temple-console/modules/volunteers/domain/report"
	"github.com/sevaops/temple-console/modules/volunteers/presentation/mappers"
	volunteertemplates "github.com/sevaops/temple-console/modules/volunteers/presentation/templates/volunteers"
	"github.com/sevaops/temple-console/modules/volunteers/presentation/viewmodels"
	"github.com/sevaops/temple-console/modules/volunteers/services"
	"github.com/sevaops/temple-console/pkg/application"
	"github.com/sevaops/temple-console/pkg/composables"
	"github.com/sevaops/temple-console/pkg/configuration"
	"github.com/sevaops/temple-console/pkg/shared"
	"github.com/sevaops/temple-console/pkg/ui"
)

type AttendanceController struct {
	app        application.Application
	attendance *services.AttendanceService
	reports    *services.ReportService
	basePath   string
}

func NewAttendanceController(app application.Application) application.Controller {
	return &AttendanceController{
		app:        app,
		attendance: app.Service(services.AttendanceService{}).(*services.AttendanceService),
		reports:    app.Service(services.ReportService{}).(*services.ReportService),
		basePath:   "/volunteers/attendance",
	}
}

func (c *AttendanceController) Key() string {
	return c.basePath
}

func (c *AttendanceController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(commonMiddleware(c.app)...)
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("/new", c.NewManualEntry).Methods(http.MethodGet)
	router.HandleFunc("", c.CreateManualEntry).Methods(http.MethodPost)
	router.HandleFunc("/calendar", c.Calendar).Methods(http.MethodGet)
	router.HandleFunc("/calendar/export", c.Export).Methods(http.MethodGet)
}

func (c *AttendanceController) List(w http.ResponseWriter, r *http.Request) {
	pageCtx := composables.UsePageCtx(r.Context()).Namespace("Volunteers.Attendance")
	filters := composables.GetLastQueryParams(r, "search", "entry_type", "from_date", "to_date")
	paging := composables.UsePaginated(r)

	page := activatePage(c.app, r, "attendance", ui.Params(filters))

	params := &attendance.FindParams{
		Search:    filters["search"],
		EntryType: filters["entry_type"],
		FromDate:  filters["from_date"],
		ToDate:    filters["to_date"],
		Page:      paging.Page,
		PerPage:   paging.PerPage,
	}
	if page != nil {
		page.StartRefresh(configuration.Use().PageRefreshInterval, func(ctx context.Context) (any, error) {
			return c.attendance.List(ctx, params)
		})
	}

	props := &viewmodels.AttendancePageProps{
		ListChrome: viewmodels.ListChrome{
			Search:   filters["search"],
			Query:    filterQuery(filters),
			BasePath: c.basePath,
		},
		EntryType: filters["entry_type"],
		FromDate:  filters["from_date"],
		ToDate:    filters["to_date"],
		NewURL:    c.basePath + "/new",
	}

	col, err := c.attendance.List(r.Context(), params)
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to load attendance")
		props.LoadError = pageCtx.T("LoadError")
	} else {
		props.Collection = col
		props.Rows = make([]*viewmodels.AttendanceRow, 0, len(col.Items))
		for _, item := range col.Items {
			props.Rows = append(props.Rows, mappers.AttendanceToRow(item))
		}
	}

	renderPage(c.app, w, r, pageCtx.T("Title"), volunteertemplates.Attendance(props))
}

func (c *AttendanceController) NewManualEntry(w http.ResponseWriter, r *http.Request) {
	pageCtx := composables.UsePageCtx(r.Context()).Namespace("Volunteers.Attendance")
	activatePage(c.app, r, "attendance-manual", nil)

	props := &viewmodels.ManualEntryFormProps{
		Title:   pageCtx.T("ManualEntry"),
		Errors:  map[string]string{},
		Form:    &viewmodels.ManualEntryVM{Date: time.Now().Format(time.DateOnly)},
		PostTo:  c.basePath,
		BackURL: c.basePath,
	}
	renderPage(c.app, w, r, props.Title, volunteertemplates.ManualEntryForm(props))
}

func (c *AttendanceController) CreateManualEntry(w http.ResponseWriter, r *http.Request) {
	pageCtx := composables.UsePageCtx(r.Context()).Namespace("Volunteers.Attendance")

	dto, err := composables.UseForm(&attendance.ManualEntryDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	props := &viewmodels.ManualEntryFormProps{
		Title:   pageCtx.T("ManualEntry"),
		Form:    manualDTOToVM(dto),
		PostTo:  c.basePath,
		BackURL: c.basePath,
	}

	// The backfill reason is checked before any request leaves.
	if errorsMap, ok := dto.Ok(r.Context()); !ok {
		props.Errors = errorsMap
		renderPage(c.app, w, r, props.Title, volunteertemplates.ManualEntryForm(props))
		return
	}

	if _, err := c.attendance.CreateManual(r.Context(), dto); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to record attendance")
		props.Errors = map[string]string{}
		shared.SetFlash(w, "error", []byte(err.Error()))
		renderPage(c.app, w, r, props.Title, volunteertemplates.ManualEntryForm(props))
		return
	}

	shared.SetFlash(w, configuration.Use().FlashCookieKey, []byte(pageCtx.T("Recorded")))
	deactivatePage(c.app, r)
	shared.Redirect(w, r, c.basePath)
}

func (c *AttendanceController) Calendar(w http.ResponseWriter, r *http.Request) {
	pageCtx := composables.UsePageCtx(r.Context()).Namespace("Volunteers.Calendar")
	filters := composables.GetLastQueryParams(r, "period", "from_date", "to_date")

	activatePage(c.app, r, "calendar", ui.Params(filters))

	params := calendarParams(filters)
	props := &viewmodels.CalendarPageProps{
		Period:    string(params.Period),
		FromDate:  params.FromDate,
		ToDate:    params.ToDate,
		BasePath:  c.basePath + "/calendar",
		ExportURL: c.basePath + "/calendar/export?" + filterQuery(filters).Encode(),
	}

	buckets, err := c.reports.Calendar(r.Context(), params)
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to load attendance report")
		props.LoadError = pageCtx.T("LoadError")
	} else {
		props.Cells = make([]*viewmodels.CalendarCell, 0, len(buckets))
		for _, b := range buckets {
			props.Cells = append(props.Cells, mappers.BucketToCell(b))
		}
	}

	renderPage(c.app, w, r, pageCtx.T("Title"), volunteertemplates.Calendar(props))
}

func (c *AttendanceController) Export(w http.ResponseWriter, r *http.Request) {
	filters := composables.GetLastQueryParams(r, "period", "from_date", "to_date")
	params := calendarParams(filters)

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="attendance-report.xlsx"`)
	if err := c.reports.ExportXLSX(r.Context(), params, w); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to export attendance report")
		http.Error(w, err.Error(), http.StatusBadGateway)
	}
}

func calendarParams(filters map[string]string) *report.Params {
	params := &report.Params{
		Period:   report.ParsePeriod(filters["period"]),
		FromDate: filters["from_date"],
		ToDate:   filters["to_date"],
	}
	// Default to the current month when no range is chosen.
	if params.FromDate == "" && params.ToDate == "" {
		now := time.Now()
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		params.FromDate = first.Format(time.DateOnly)
		params.ToDate = first.AddDate(0, 1, -1).Format(time.DateOnly)
	}
	return params
}

func manualDTOToVM(d *attendance.ManualEntryDTO) *viewmodels.ManualEntryVM {
	volunteerID := ""
	if d.VolunteerID != 0 {
		volunteerID = strconv.FormatUint(uint64(d.VolunteerID), 10)
	}
	return &viewmodels.ManualEntryVM{
		VolunteerID:  volunteerID,
		Date:         d.Date.String(),
		CheckIn:      d.CheckIn,
		CheckOut:     d.CheckOut,
		ManualReason: d.ManualReason,
	}
}
