package services

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/sevaops/temple-console/modules/volunteers/domain/department"
	"github.com/sevaops/temple-console/pkg/apiclient"
)

type DepartmentService struct {
	api *apiclient.Client
}

func NewDepartmentService(api *apiclient.Client) *DepartmentService {
	return &DepartmentService{api: api}
}

func (s *DepartmentService) List(ctx context.Context, params *department.FindParams) (apiclient.Collection[department.Department], error) {
	f := apiclient.Filter{}
	if params != nil {
		f.Set("search", params.Search).
			SetInt("page", params.Page).
			SetInt("per_page", params.PerPage)
	}
	env, err := s.api.Get(ctx, "/volunteers/departments", f.Values())
	if err != nil {
		return apiclient.Collection[department.Department]{}, errors.Wrap(err, "list departments")
	}
	if !env.Success {
		return apiclient.Collection[department.Department]{}, env.Err(http.StatusOK, "load departments")
	}
	return apiclient.DecodeCollection[department.Department](env.Data)
}
