package services

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/sevaops/temple-console/modules/volunteers/domain/attendance"
	"github.com/sevaops/temple-console/pkg/apiclient"
)

type AttendanceService struct {
	api *apiclient.Client
}

func NewAttendanceService(api *apiclient.Client) *AttendanceService {
	return &AttendanceService{api: api}
}

func (s *AttendanceService) List(ctx context.Context, params *attendance.FindParams) (apiclient.Collection[attendance.Entry], error) {
	f := apiclient.Filter{}
	if params != nil {
		f.Set("search", params.Search).
			Set("entry_type", params.EntryType).
			Set("from_date", params.FromDate).
			Set("to_date", params.ToDate).
			SetInt("page", params.Page).
			SetInt("per_page", params.PerPage)
	}
	env, err := s.api.Get(ctx, "/volunteers/attendance", f.Values())
	if err != nil {
		return apiclient.Collection[attendance.Entry]{}, errors.Wrap(err, "list attendance")
	}
	if !env.Success {
		return apiclient.Collection[attendance.Entry]{}, env.Err(http.StatusOK, "load attendance")
	}
	return apiclient.DecodeCollection[attendance.Entry](env.Data)
}

// CreateManual backfills an attendance entry. The entry type is forced
// to manual and carries the operator's reason.
func (s *AttendanceService) CreateManual(ctx context.Context, dto *attendance.ManualEntryDTO) (*attendance.Entry, error) {
	if dto == nil {
		return nil, errors.New("missing dto")
	}
	dto.Normalize()
	env, err := s.api.Post(ctx, "/volunteers/attendance", dto.ToPayload())
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, env.Err(http.StatusOK, "record attendance")
	}
	var e attendance.Entry
	if err := env.Decode(&e); err != nil {
		return nil, err
	}
	return &e, nil
}
