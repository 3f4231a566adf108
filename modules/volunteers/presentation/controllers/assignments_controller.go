package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sevaops/temple-console/modules/volunteers/domain/assignment"
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

type AssignmentsController struct {
	app         application.Application
	assignments *services.AssignmentService
	basePath    string
}

func NewAssignmentsController(app application.Application) application.Controller {
	return &AssignmentsController{
		app:         app,
		assignments: app.Service(services.AssignmentService{}).(*services.AssignmentService),
		basePath:    "/volunteers/assignments",
	}
}

func (c *AssignmentsController) Key() string {
	return c.basePath
}

func (c *AssignmentsController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(commonMiddleware(c.app)...)
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9]+}/cancel", c.Cancel).Methods(http.MethodPost)
}

func (c *AssignmentsController) List(w http.ResponseWriter, r *http.Request) {
	pageCtx := composables.UsePageCtx(r.Context()).Namespace("Volunteers.Assignments")
	filters := composables.GetLastQueryParams(r, "search", "status", "department_id")
	paging := composables.UsePaginated(r)

	activatePage(c.app, r, "assignments", ui.Params(filters))

	props := &viewmodels.AssignmentsPageProps{
		ListChrome: viewmodels.ListChrome{
			Search:   filters["search"],
			Query:    filterQuery(filters),
			BasePath: c.basePath,
		},
		DepartmentID: filters["department_id"],
		Status:       filters["status"],
	}

	col, err := c.assignments.List(r.Context(), &assignment.FindParams{
		Search:       filters["search"],
		DepartmentID: filters["department_id"],
		Status:       filters["status"],
		Page:         paging.Page,
		PerPage:      paging.PerPage,
	})
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to load assignments")
		props.LoadError = pageCtx.T("LoadError")
	} else {
		props.Collection = col
		props.Rows = make([]*viewmodels.AssignmentRow, 0, len(col.Items))
		for _, item := range col.Items {
			props.Rows = append(props.Rows, mappers.AssignmentToRow(item))
		}
	}

	renderPage(c.app, w, r, pageCtx.T("Title"), volunteertemplates.Assignments(props))
}

func (c *AssignmentsController) Cancel(w http.ResponseWriter, r *http.Request) {
	pageCtx := composables.UsePageCtx(r.Context()).Namespace("Volunteers.Assignments")
	id, err := shared.ParseID(r)
	if err != nil {
		shared.SetFlash(w, "error", []byte(pageCtx.T("MissingID")))
		shared.Redirect(w, r, c.basePath)
		return
	}

	if err := c.assignments.Cancel(r.Context(), id); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to cancel assignment")
		shared.SetFlash(w, "error", []byte(err.Error()))
		shared.Redirect(w, r, c.basePath)
		return
	}

	shared.SetFlash(w, configuration.Use().FlashCookieKey, []byte(pageCtx.T("Cancelled")))
	shared.Redirect(w, r, c.basePath)
}
