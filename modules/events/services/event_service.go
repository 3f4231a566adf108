package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"github.com/sevaops/temple-console/modules/events/domain/event"
	"github.com/sevaops/temple-console/pkg/apiclient"
)

type EventService struct {
	api *apiclient.Client
}

func NewEventService(api *apiclient.Client) *EventService {
	return &EventService{api: api}
}

// List fetches events matching params. Empty filter values never reach
// the query string.
func (s *EventService) List(ctx context.Context, params *event.FindParams) (apiclient.Collection[event.Event], error) {
	f := apiclient.Filter{}
	if params != nil {
		f.Set("search", params.Search).
			Set("status", params.Status).
			SetDate("from_date", params.FromDate).
			SetDate("to_date", params.ToDate).
			SetInt("page", params.Page).
			SetInt("per_page", params.PerPage)
	}

	env, err := s.api.Get(ctx, "/events", f.Values())
	if err != nil {
		return apiclient.Collection[event.Event]{}, errors.Wrap(err, "list events")
	}
	if !env.Success {
		return apiclient.Collection[event.Event]{}, env.Err(http.StatusOK, "load events")
	}
	return apiclient.DecodeCollection[event.Event](env.Data)
}

func (s *EventService) GetByID(ctx context.Context, id uint) (*event.Event, error) {
	env, err := s.api.Get(ctx, fmt.Sprintf("/events/%d", id), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "get event %d", id)
	}
	if !env.Success {
		return nil, env.Err(http.StatusOK, "load event")
	}
	var e event.Event
	if err := env.Decode(&e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *EventService) Create(ctx context.Context, dto *event.CreateDTO) (*event.Event, error) {
	if dto == nil {
		return nil, errors.New("missing dto")
	}
	dto.Normalize()
	env, err := s.api.Post(ctx, "/events", dto.ToPayload())
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, env.Err(http.StatusOK, "create event")
	}
	var e event.Event
	if err := env.Decode(&e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *EventService) Update(ctx context.Context, id uint, dto *event.UpdateDTO) (*event.Event, error) {
	if dto == nil {
		return nil, errors.New("missing dto")
	}
	dto.Normalize()
	env, err := s.api.Put(ctx, fmt.Sprintf("/events/%d", id), dto.ToPayload())
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, env.Err(http.StatusOK, "update event")
	}
	var e event.Event
	if err := env.Decode(&e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *EventService) Delete(ctx context.Context, id uint) error {
	env, err := s.api.Delete(ctx, fmt.Sprintf("/events/%d", id))
	if err != nil {
		return err
	}
	if !env.Success {
		return env.Err(http.StatusOK, "delete event")
	}
	return nil
}
