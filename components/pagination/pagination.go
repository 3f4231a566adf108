// Package pagination renders list paging controls from the backend's
// verbatim pagination block.
package pagination

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/sevaops/temple-console/pkg/apiclient"
)

type Props struct {
	Page apiclient.Pagination
	// BasePath plus the current filter query, page substituted per link.
	BasePath string
	Query    url.Values
}

// Controls renders nothing when the collection fits one page; the
// backend's numbers are displayed as-is, never recomputed.
func Controls[T any](col apiclient.Collection[T], basePath string, query url.Values) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if col.SinglePage() {
			return nil
		}
		p := col.Page
		if _, err := io.WriteString(w, `<nav class="pagination" aria-label="pagination">`); err != nil {
			return err
		}
		if _, err := io.WriteString(w,
			`<span class="pagination-summary">`+
				templ.EscapeString(fmt.Sprintf("%d-%d of %d", p.From, p.To, p.Total))+
				`</span>`); err != nil {
			return err
		}
		for page := 1; page <= p.LastPage; page++ {
			cls := "pagination-link"
			if page == p.CurrentPage {
				cls += " current"
			}
			href := pageHref(basePath, query, page)
			if _, err := io.WriteString(w,
				`<a class="`+cls+`" href="`+templ.EscapeString(href)+`">`+
					strconv.Itoa(page)+`</a>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</nav>`)
		return err
	})
}

func pageHref(basePath string, query url.Values, page int) string {
	q := url.Values{}
	for k, vals := range query {
		for _, v := range vals {
			q.Add(k, v)
		}
	}
	q.Set("page", strconv.Itoa(page))
	return basePath + "?" + q.Encode()
}
