package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"github.com/sevaops/temple-console/modules/volunteers/domain/volunteer"
	"github.com/sevaops/temple-console/pkg/apiclient"
)

type VolunteerService struct {
	api *apiclient.Client
}

func NewVolunteerService(api *apiclient.Client) *VolunteerService {
	return &VolunteerService{api: api}
}

// Queue lists registrations waiting for a decision.
func (s *VolunteerService) Queue(ctx context.Context, params *volunteer.FindParams) (apiclient.Collection[volunteer.Volunteer], error) {
	f := apiclient.Filter{}
	f.Set("status", string(volunteer.StatusPendingApproval))
	if params != nil {
		f.Set("search", params.Search).
			SetInt("page", params.Page).
			SetInt("per_page", params.PerPage)
	}
	env, err := s.api.Get(ctx, "/volunteers", f.Values())
	if err != nil {
		return apiclient.Collection[volunteer.Volunteer]{}, errors.Wrap(err, "list approval queue")
	}
	if !env.Success {
		return apiclient.Collection[volunteer.Volunteer]{}, env.Err(http.StatusOK, "load approval queue")
	}
	return apiclient.DecodeCollection[volunteer.Volunteer](env.Data)
}

func (s *VolunteerService) GetByID(ctx context.Context, id uint) (*volunteer.Volunteer, error) {
	env, err := s.api.Get(ctx, fmt.Sprintf("/volunteers/%d", id), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "get volunteer %d", id)
	}
	if !env.Success {
		return nil, env.Err(http.StatusOK, "load volunteer")
	}
	var v volunteer.Volunteer
	if err := env.Decode(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Decide submits an approval-queue action. Callers validate the
// justification before this point; the backend enforces it again.
func (s *VolunteerService) Decide(ctx context.Context, id uint, decision volunteer.Decision, reason string) error {
	env, err := s.api.Post(
		ctx,
		fmt.Sprintf("/volunteers/%d/%s", id, decision),
		volunteer.DecisionPayload{Reason: reason},
	)
	if err != nil {
		return errors.Wrapf(err, "%s volunteer %d", decision, id)
	}
	if !env.Success {
		return env.Err(http.StatusOK, string(decision)+" volunteer")
	}
	return nil
}
