package apiclient

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// Pagination mirrors the backend's paginated list shape. Values are
// taken verbatim from the response, never recomputed.
type Pagination struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	From        int `json:"from"`
	To          int `json:"to"`
}

// Collection is the decoded form of a list payload. The backend returns
// either a bare array or a paginated object wrapping one; the shape is
// resolved exactly once here, so callers branch on Paginated instead of
// sniffing JSON.
type Collection[T any] struct {
	Items     []T
	Paginated bool
	Page      Pagination
}

// DecodeCollection resolves the two list payload shapes. A null or
// empty payload decodes to an empty plain collection.
func DecodeCollection[T any](data json.RawMessage) (Collection[T], error) {
	var c Collection[T]
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		c.Items = []T{}
		return c, nil
	}

	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &c.Items); err != nil {
			return c, errors.Wrap(err, "decode list payload")
		}
		return c, nil
	}

	var page struct {
		Data []T `json:"data"`
		Pagination
	}
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return c, errors.Wrap(err, "decode paginated payload")
	}
	c.Items = page.Data
	if c.Items == nil {
		c.Items = []T{}
	}
	c.Paginated = true
	c.Page = page.Pagination
	return c, nil
}

// SinglePage reports whether pagination controls should be hidden: a
// plain collection has no pages at all, and a one-page result needs no
// navigation.
func (c Collection[T]) SinglePage() bool {
	return !c.Paginated || c.Page.LastPage <= 1
}
