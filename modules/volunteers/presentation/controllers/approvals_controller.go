package controllers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/sevaops/temple-console/modules/volunteers/domain/volunteer"
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

type ApprovalsController struct {
	app        application.Application
	volunteers *services.VolunteerService
	basePath   string
}

func NewApprovalsController(app application.Application) application.Controller {
	return &ApprovalsController{
		app:        app,
		volunteers: app.Service(services.VolunteerService{}).(*services.VolunteerService),
		basePath:   "/volunteers/approvals",
	}
}

func (c *ApprovalsController) Key() string {
	return c.basePath
}

func (c *ApprovalsController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.Use(commonMiddleware(c.app)...)
	router.HandleFunc("", c.Queue).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9]+}/approve", c.Approve).Methods(http.MethodPost)
	router.HandleFunc("/{id:[0-9]+}/reject", c.Reject).Methods(http.MethodPost)
	router.HandleFunc("/{id:[0-9]+}/request-resubmission", c.RequestResubmission).Methods(http.MethodPost)
}

func (c *ApprovalsController) Queue(w http.ResponseWriter, r *http.Request) {
	c.renderQueue(w, r, nil)
}

// renderQueue loads and renders the queue; decisionErrors carry a
// blocked submit's field flags back onto the offending card.
func (c *ApprovalsController) renderQueue(w http.ResponseWriter, r *http.Request, decisionErrors map[string]string) {
	pageCtx := composables.UsePageCtx(r.Context()).Namespace("Volunteers.Approvals")
	filters := composables.GetLastQueryParams(r, "search")
	paging := composables.UsePaginated(r)

	activatePage(c.app, r, "approvals", ui.Params(filters))

	props := &viewmodels.ApprovalQueuePageProps{
		ListChrome: viewmodels.ListChrome{
			Search:   filters["search"],
			Query:    filterQuery(filters),
			BasePath: c.basePath,
		},
		DecisionErrors: decisionErrors,
	}

	col, err := c.volunteers.Queue(r.Context(), &volunteer.FindParams{
		Search:  filters["search"],
		Page:    paging.Page,
		PerPage: paging.PerPage,
	})
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to load approval queue")
		props.LoadError = pageCtx.T("LoadError")
	} else {
		now := time.Now()
		props.Collection = col
		props.Rows = make([]*viewmodels.ApprovalRow, 0, len(col.Items))
		for _, v := range col.Items {
			props.Rows = append(props.Rows, mappers.VolunteerToApprovalRow(v, now))
		}
	}

	renderPage(c.app, w, r, pageCtx.T("Title"), volunteertemplates.ApprovalQueue(props))
}

func (c *ApprovalsController) Approve(w http.ResponseWriter, r *http.Request) {
	c.decide(w, r, volunteer.DecisionApprove)
}

func (c *ApprovalsController) Reject(w http.ResponseWriter, r *http.Request) {
	c.decide(w, r, volunteer.DecisionReject)
}

func (c *ApprovalsController) RequestResubmission(w http.ResponseWriter, r *http.Request) {
	c.decide(w, r, volunteer.DecisionRequestResubmission)
}

func (c *ApprovalsController) decide(w http.ResponseWriter, r *http.Request, decision volunteer.Decision) {
	pageCtx := composables.UsePageCtx(r.Context()).Namespace("Volunteers.Approvals")
	id, err := shared.ParseID(r)
	if err != nil {
		shared.SetFlash(w, "error", []byte(pageCtx.T("MissingID")))
		shared.Redirect(w, r, c.basePath)
		return
	}

	dto, err := composables.UseForm(&volunteer.DecisionDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// A missing justification re-renders the queue with the field
	// flagged; the backend is never contacted.
	if errorsMap, ok := dto.Ok(r.Context(), decision); !ok {
		c.renderQueue(w, r, map[string]string{mux.Vars(r)["id"]: errorsMap["Reason"]})
		return
	}

	if err := c.volunteers.Decide(r.Context(), id, decision, dto.Reason); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("queue decision failed")
		shared.SetFlash(w, "error", []byte(err.Error()))
		shared.Redirect(w, r, c.basePath)
		return
	}

	shared.SetFlash(w, configuration.Use().FlashCookieKey, []byte(pageCtx.T("Decided."+string(decision))))
	// Success reloads the queue so the decided card drops out.
	shared.Redirect(w, r, c.basePath)
}
