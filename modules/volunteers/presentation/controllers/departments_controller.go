package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sevaops/temple-console/modules/volunteers/domain/department"
	"github.com/sevaops/temple-console/modules/volunteers/presentation/mappers"
	volunteertemplates "github.com/sevaops/temple-console/modules/volunteers/presentation/templates/volunteers"
	"github.com/sevaops/temple-console/modules/volunteers/presentation/viewmodels"
	"github.com/sevaops/temple-console/modules/volunteers/services"
	"github.com/sevaops/temple-console/pkg/application"
	"github.com/sevaops/temple-console/pkg/composables"
	"github.com/sevaops/temple-console/pkg/ui"
)

type DepartmentsController struct {
	app         application.Application
	departments *services.DepartmentService
	basePath    string
}

func NewDepartmentsController(app application.Application) application.Controller {
	return &DepartmentsController{
		app:         app,
		departments: app.Service(services.DepartmentService{}).(*services.DepartmentService),
		basePath:    "/volunteers/departments",
	}
}

func (c *DepartmentsController) Key() string {
	return c.basePath
}

func (c *DepartmentsController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(commonMiddleware(c.app)...)
	router.HandleFunc("", c.List).Methods(http.MethodGet)
}

func (c *DepartmentsController) List(w http.ResponseWriter, r *http.Request) {
	pageCtx := composables.UsePageCtx(r.Context()).Namespace("Volunteers.Departments")
	filters := composables.GetLastQueryParams(r, "search")
	paging := composables.UsePaginated(r)

	activatePage(c.app, r, "departments", ui.Params(filters))

	props := &viewmodels.DepartmentsPageProps{
		ListChrome: viewmodels.ListChrome{
			Search:   filters["search"],
			Query:    filterQuery(filters),
			BasePath: c.basePath,
		},
	}

	col, err := c.departments.List(r.Context(), &department.FindParams{
		Search:  filters["search"],
		Page:    paging.Page,
		PerPage: paging.PerPage,
	})
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to load departments")
		props.LoadError = pageCtx.T("LoadError")
	} else {
		props.Collection = col
		props.Rows = make([]*viewmodels.DepartmentRow, 0, len(col.Items))
		for _, d := range col.Items {
			props.Rows = append(props.Rows, mappers.DepartmentToRow(d))
		}
	}

	renderPage(c.app, w, r, pageCtx.T("Title"), volunteertemplates.Departments(props))
}
