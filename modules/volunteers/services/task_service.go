package services

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/sevaops/temple-console/modules/volunteers/domain/task"
	"github.com/sevaops/temple-console/pkg/apiclient"
)

type TaskService struct {
	api *apiclient.Client
}

func NewTaskService(api *apiclient.Client) *TaskService {
	return &TaskService{api: api}
}

func (s *TaskService) List(ctx context.Context, params *task.FindParams) (apiclient.Collection[task.Task], error) {
	f := apiclient.Filter{}
	if params != nil {
		f.Set("search", params.Search).
			Set("department_id", params.DepartmentID).
			Set("status", params.Status).
			SetInt("page", params.Page).
			SetInt("per_page", params.PerPage)
	}
	env, err := s.api.Get(ctx, "/volunteers/tasks", f.Values())
	if err != nil {
		return apiclient.Collection[task.Task]{}, errors.Wrap(err, "list tasks")
	}
	if !env.Success {
		return apiclient.Collection[task.Task]{}, env.Err(http.StatusOK, "load tasks")
	}
	return apiclient.DecodeCollection[task.Task](env.Data)
}
