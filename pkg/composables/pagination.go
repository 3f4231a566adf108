package composables

import (
	"net/http"
	"strconv"

	"github.com/sevaops/temple-console/pkg/configuration"
)

type PaginationParams struct {
	Page    int
	PerPage int
}

// UsePaginated reads page and per_page from the query, clamping to the
// configured bounds. Page numbering is 1-based to match the backend.
func UsePaginated(r *http.Request) PaginationParams {
	conf := configuration.Use()

	page, err := strconv.Atoi(GetLastQueryParam(r, "page"))
	if err != nil || page < 1 {
		page = 1
	}

	perPage, err := strconv.Atoi(GetLastQueryParam(r, "per_page"))
	if err != nil || perPage < 1 {
		perPage = conf.PageSize
	}
	if perPage > conf.MaxPageSize {
		perPage = conf.MaxPageSize
	}

	return PaginationParams{Page: page, PerPage: perPage}
}
