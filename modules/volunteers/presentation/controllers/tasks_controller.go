package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sevaops/temple-console/modules/volunteers/domain/task"
	"github.com/sevaops/temple-console/modules/volunteers/presentation/mappers"
	volunteertemplates "github.com/sevaops/temple-console/modules/volunteers/presentation/templates/volunteers"
	"github.com/sevaops/temple-console/modules/volunteers/presentation/viewmodels"
	"github.com/sevaops/temple-console/modules/volunteers/services"
	"github.com/sevaops/temple-console/pkg/application"
	"github.com/sevaops/temple-console/pkg/composables"
	"github.com/sevaops/temple-console/pkg/ui"
)

type TasksController struct {
	app      application.Application
	tasks    *services.TaskService
	basePath string
}

func NewTasksController(app application.Application) application.Controller {
	return &TasksController{
		app:      app,
		tasks:    app.Service(services.TaskService{}).(*services.TaskService),
		basePath: "/volunteers/tasks",
	}
}

func (c *TasksController) Key() string {
	return c.basePath
}

func (c *TasksController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(commonMiddleware(c.app)...)
	router.HandleFunc("", c.List).Methods(http.MethodGet)
}

func (c *TasksController) List(w http.ResponseWriter, r *http.Request) {
	pageCtx := composables.UsePageCtx(r.Context()).Namespace("Volunteers.Tasks")
	filters := composables.GetLastQueryParams(r, "search", "status", "department_id")
	paging := composables.UsePaginated(r)

	activatePage(c.app, r, "tasks", ui.Params(filters))

	props := &viewmodels.TasksPageProps{
		ListChrome: viewmodels.ListChrome{
			Search:   filters["search"],
			Query:    filterQuery(filters),
			BasePath: c.basePath,
		},
		DepartmentID: filters["department_id"],
		Status:       filters["status"],
	}

	col, err := c.tasks.List(r.Context(), &task.FindParams{
		Search:       filters["search"],
		DepartmentID: filters["department_id"],
		Status:       filters["status"],
		Page:         paging.Page,
		PerPage:      paging.PerPage,
	})
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to load tasks")
		props.LoadError = pageCtx.T("LoadError")
	} else {
		props.Collection = col
		props.Rows = make([]*viewmodels.TaskRow, 0, len(col.Items))
		for _, item := range col.Items {
			props.Rows = append(props.Rows, mappers.TaskToRow(item))
		}
	}

	renderPage(c.app, w, r, pageCtx.T("Title"), volunteertemplates.Tasks(props))
}
