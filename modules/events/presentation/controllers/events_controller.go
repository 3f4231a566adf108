package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"

	"github.com/sevaops/temple-console/components/layout"
	"github.com/sevaops/temple-console/modules/events/domain/event"
	"github.com/sevaops/temple-console/modules/events/presentation/mappers"
	eventtemplates "github.com/sevaops/temple-console/modules/events/presentation/templates/events"
	"github.com/sevaops/temple-console/modules/events/presentation/viewmodels"
	"github.com/sevaops/temple-console/modules/events/services"
	"github.com/sevaops/temple-console/pkg/apiclient"
	"github.com/sevaops/temple-console/pkg/application"
	"github.com/sevaops/temple-console/pkg/composables"
	"github.com/sevaops/temple-console/pkg/configuration"
	"github.com/sevaops/temple-console/pkg/middleware"
	"github.com/sevaops/temple-console/pkg/shared"
	"github.com/sevaops/temple-console/pkg/ui"
)

const featureName = "events"

type EventsController struct {
	app      application.Application
	events   *services.EventService
	basePath string
}

func NewEventsController(app application.Application) application.Controller {
	return &EventsController{
		app:      app,
		events:   app.Service(services.EventService{}).(*services.EventService),
		basePath: "/events",
	}
}

func (c *EventsController) Key() string {
	return c.basePath
}

func (c *EventsController) Register(r *mux.Router) {
	commonMiddleware := []mux.MiddlewareFunc{
		middleware.ProvideLocalizer(c.app),
		middleware.NavItems(c.app),
		middleware.WithPageContext(),
	}

	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(commonMiddleware...)
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("/new", c.NewForm).Methods(http.MethodGet)
	// Detail routes accept any id segment: a malformed one falls back to
	// the list with a notice instead of a bare router 404.
	router.HandleFunc("/{id}", c.View).Methods(http.MethodGet)
	router.HandleFunc("/{id}/edit", c.Edit).Methods(http.MethodGet)

	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/{id:[0-9]+}", c.Update).Methods(http.MethodPost)
	router.HandleFunc("/{id:[0-9]+}/delete", c.Delete).Methods(http.MethodPost)
}

// activate swaps the session's active page to a fresh instance of kind,
// cleaning up whatever page the session had before.
func (c *EventsController) activate(r *http.Request, kind string, params ui.Params) *ui.BasicPage {
	sid, ok := composables.UseSessionID(r.Context())
	if !ok {
		return nil
	}
	reg := c.app.Features().Get(featureName)
	page := ui.NewBasicPage(kind, reg, c.app.EventPublisher(), nil)
	c.app.Navigator().Navigate(r.Context(), sid, page, params)
	return page
}

func (c *EventsController) render(w http.ResponseWriter, r *http.Request, title string, content templ.Component) {
	flash, _ := composables.UseFlash(w, r, configuration.Use().FlashCookieKey)
	errFlash, _ := composables.UseFlash(w, r, "error")
	props := layout.BaseProps{
		Title:       title,
		Stylesheets: c.app.Stylesheets().Links(),
		NavItems:    middleware.UseNavItems(r.Context()),
		ActivePath:  r.URL.Path,
		Flash:       string(flash),
		Error:       string(errFlash),
	}
	templ.Handler(layout.Base(props, content)).ServeHTTP(w, r)
}

func (c *EventsController) List(w http.ResponseWriter, r *http.Request) {
	pageCtx := composables.UsePageCtx(r.Context()).Namespace("Events")
	filters := composables.GetLastQueryParams(r, "search", "status", "from_date", "to_date")
	paging := composables.UsePaginated(r)

	page := c.activate(r, "list", ui.Params(filters))

	params := &event.FindParams{
		Search:  strings.TrimSpace(filters["search"]),
		Status:  filters["status"],
		Page:    paging.Page,
		PerPage: paging.PerPage,
	}
	if t, err := time.Parse(time.DateOnly, filters["from_date"]); err == nil {
		params.FromDate = t
	}
	if t, err := time.Parse(time.DateOnly, filters["to_date"]); err == nil {
		params.ToDate = t
	}

	if page != nil {
		page.StartRefresh(configuration.Use().PageRefreshInterval, func(ctx context.Context) (any, error) {
			return c.events.List(ctx, params)
		})
	}

	props := &viewmodels.EventsListPageProps{
		Search:   params.Search,
		Status:   params.Status,
		FromDate: filters["from_date"],
		ToDate:   filters["to_date"],
		Query:    listQuery(filters),
		NewURL:   c.basePath + "/new",
		BasePath: c.basePath,
	}

	col, err := c.events.List(r.Context(), params)
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to load events")
		props.LoadError = pageCtx.T("List.LoadError")
	} else {
		props.Collection = col
		props.Items = make([]*viewmodels.EventListItem, 0, len(col.Items))
		for _, e := range col.Items {
			props.Items = append(props.Items, mappers.EventToListItem(e))
		}
	}

	c.render(w, r, pageCtx.T("List.Title"), eventtemplates.Index(props))
}

func (c *EventsController) NewForm(w http.ResponseWriter, r *http.Request) {
	pageCtx := composables.UsePageCtx(r.Context()).Namespace("Events")
	c.activate(r, "create", nil)

	conf := configuration.Use()
	capacity := conf.DefaultEventCapacity
	dto := &event.CreateDTO{Status: string(event.StatusDraft), Capacity: &capacity}

	props := &viewmodels.EventFormPageProps{
		Title:    pageCtx.T("Form.NewTitle"),
		Errors:   map[string]string{},
		Form:     mappers.DTOToFormVM(dto),
		PostTo:   c.basePath,
		BackURL:  c.basePath,
		Statuses: statusStrings(),
	}
	c.render(w, r, props.Title, eventtemplates.Form(props))
}

func (c *EventsController) Create(w http.ResponseWriter, r *http.Request) {
	pageCtx := composables.UsePageCtx(r.Context()).Namespace("Events")

	dto, err := composables.UseForm(&event.CreateDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	props := &viewmodels.EventFormPageProps{
		Title:    pageCtx.T("Form.NewTitle"),
		Form:     mappers.DTOToFormVM(dto),
		PostTo:   c.basePath,
		BackURL:  c.basePath,
		Statuses: statusStrings(),
	}

	// Constraint validation runs before any request is issued.
	if errorsMap, ok := dto.Ok(r.Context()); !ok {
		props.Errors = errorsMap
		c.render(w, r, props.Title, eventtemplates.Form(props))
		return
	}

	if _, err := c.events.Create(r.Context(), dto); err != nil {
		props.Errors = map[string]string{}
		props.Form = mappers.DTOToFormVM(dto)
		c.renderSaveError(w, r, err, props, eventtemplates.Form(props))
		return
	}

	shared.SetFlash(w, configuration.Use().FlashCookieKey, []byte(pageCtx.T("Form.Created")))
	c.deactivate(r)
	shared.Redirect(w, r, c.basePath)
}

func (c *EventsController) View(w http.ResponseWriter, r *http.Request) {
	pageCtx := composables.UsePageCtx(r.Context()).Namespace("Events")
	id, err := shared.ParseID(r)
	if err != nil {
		c.missingID(w, r)
		return
	}
	c.activate(r, "view", ui.Params{"event_id": mux.Vars(r)["id"]})

	e, err := c.events.GetByID(r.Context(), id)
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to load event")
		shared.SetFlash(w, "error", []byte(pageCtx.T("Detail.LoadError")))
		shared.Redirect(w, r, c.basePath)
		return
	}

	item := mappers.EventToListItem(*e)
	props := &viewmodels.EventDetailPageProps{
		Event: item,
		Longform: map[string]string{
			pageCtx.T("Fields.Details"): e.Description,
		},
		BackURL:  c.basePath,
		EditURL:  item.EditURL,
		DeleteTo: item.ViewURL + "/delete",
	}
	c.render(w, r, e.Name, eventtemplates.View(props))
}

func (c *EventsController) Edit(w http.ResponseWriter, r *http.Request) {
	pageCtx := composables.UsePageCtx(r.Context()).Namespace("Events")
	id, err := shared.ParseID(r)
	if err != nil {
		c.missingID(w, r)
		return
	}
	c.activate(r, "edit", ui.Params{"event_id": mux.Vars(r)["id"]})

	e, err := c.events.GetByID(r.Context(), id)
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to load event")
		shared.SetFlash(w, "error", []byte(pageCtx.T("Detail.LoadError")))
		shared.Redirect(w, r, c.basePath)
		return
	}

	props := &viewmodels.EventFormPageProps{
		Title:    pageCtx.T("Form.EditTitle"),
		Errors:   map[string]string{},
		Form:     mappers.EventToFormVM(e),
		PostTo:   c.basePath + "/" + mux.Vars(r)["id"],
		BackURL:  c.basePath,
		Statuses: statusStrings(),
	}
	c.render(w, r, props.Title, eventtemplates.Form(props))
}

func (c *EventsController) Update(w http.ResponseWriter, r *http.Request) {
	pageCtx := composables.UsePageCtx(r.Context()).Namespace("Events")
	id, err := shared.ParseID(r)
	if err != nil {
		c.missingID(w, r)
		return
	}

	dto, err := composables.UseForm(&event.UpdateDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	props := &viewmodels.EventFormPageProps{
		Title:    pageCtx.T("Form.EditTitle"),
		Form:     mappers.DTOToFormVM(&dto.CreateDTO),
		PostTo:   c.basePath + "/" + mux.Vars(r)["id"],
		BackURL:  c.basePath,
		Statuses: statusStrings(),
	}

	if errorsMap, ok := dto.Ok(r.Context()); !ok {
		props.Errors = errorsMap
		c.render(w, r, props.Title, eventtemplates.Form(props))
		return
	}

	if _, err := c.events.Update(r.Context(), id, dto); err != nil {
		c.renderSaveError(w, r, err, props, eventtemplates.Form(props))
		return
	}

	shared.SetFlash(w, configuration.Use().FlashCookieKey, []byte(pageCtx.T("Form.Updated")))
	c.deactivate(r)
	shared.Redirect(w, r, c.basePath)
}

func (c *EventsController) Delete(w http.ResponseWriter, r *http.Request) {
	pageCtx := composables.UsePageCtx(r.Context()).Namespace("Events")
	id, err := shared.ParseID(r)
	if err != nil {
		c.missingID(w, r)
		return
	}

	if err := c.events.Delete(r.Context(), id); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to delete event")
		shared.SetFlash(w, "error", []byte(flattenError(err)))
		shared.Redirect(w, r, c.basePath)
		return
	}

	shared.SetFlash(w, configuration.Use().FlashCookieKey, []byte(pageCtx.T("Detail.Deleted")))
	c.deactivate(r)
	shared.Redirect(w, r, c.basePath)
}

// renderSaveError re-renders the form with the backend's message so the
// user can correct and resubmit; no navigation happens on failure.
func (c *EventsController) renderSaveError(w http.ResponseWriter, r *http.Request, err error, props *viewmodels.EventFormPageProps, form templ.Component) {
	composables.UseLogger(r.Context()).WithError(err).Error("failed to save event")
	if props.Errors == nil {
		props.Errors = map[string]string{}
	}
	shared.SetFlash(w, "error", []byte(flattenError(err)))
	c.render(w, r, props.Title, form)
}

// missingID covers a detail or edit page opened without a usable id:
// notify and fall back to the list view instead of a broken page.
func (c *EventsController) missingID(w http.ResponseWriter, r *http.Request) {
	pageCtx := composables.UsePageCtx(r.Context()).Namespace("Events")
	shared.SetFlash(w, "error", []byte(pageCtx.T("Detail.MissingID")))
	shared.Redirect(w, r, c.basePath)
}

func (c *EventsController) deactivate(r *http.Request) {
	if sid, ok := composables.UseSessionID(r.Context()); ok {
		c.app.Navigator().Deactivate(sid)
	}
}

func flattenError(err error) string {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return err.Error()
}

func listQuery(filters map[string]string) url.Values {
	f := apiclient.Filter{}
	for k, v := range filters {
		f.Set(k, v)
	}
	return f.Values()
}

func statusStrings() []string {
	statuses := event.Statuses()
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
