package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"github.com/sevaops/temple-console/modules/volunteers/domain/assignment"
	"github.com/sevaops/temple-console/pkg/apiclient"
)

type AssignmentService struct {
	api *apiclient.Client
}

func NewAssignmentService(api *apiclient.Client) *AssignmentService {
	return &AssignmentService{api: api}
}

func (s *AssignmentService) List(ctx context.Context, params *assignment.FindParams) (apiclient.Collection[assignment.Assignment], error) {
	f := apiclient.Filter{}
	if params != nil {
		f.Set("search", params.Search).
			Set("department_id", params.DepartmentID).
			Set("status", params.Status).
			SetInt("page", params.Page).
			SetInt("per_page", params.PerPage)
	}
	env, err := s.api.Get(ctx, "/volunteers/assignments", f.Values())
	if err != nil {
		return apiclient.Collection[assignment.Assignment]{}, errors.Wrap(err, "list assignments")
	}
	if !env.Success {
		return apiclient.Collection[assignment.Assignment]{}, env.Err(http.StatusOK, "load assignments")
	}
	return apiclient.DecodeCollection[assignment.Assignment](env.Data)
}

// Cancel releases a volunteer from a task.
func (s *AssignmentService) Cancel(ctx context.Context, id uint) error {
	env, err := s.api.Post(ctx, fmt.Sprintf("/volunteers/assignments/%d/cancel", id), nil)
	if err != nil {
		return errors.Wrapf(err, "cancel assignment %d", id)
	}
	if !env.Success {
		return env.Err(http.StatusOK, "cancel assignment")
	}
	return nil
}
