package spotlight

import (
	"context"
	"io"
	"sort"

	"github.com/a-h/templ"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/sevaops/temple-console/pkg/intl"
)

// Item represents a renderable spotlight entry.
type Item interface {
	templ.Component
}

// NewItem creates a simple Item with a static label and link.
func NewItem(icon templ.Component, label, link string) Item {
	return &item{label: label, icon: icon, link: link}
}

type item struct {
	label string
	icon  templ.Component
	link  string
}

func (i *item) Render(ctx context.Context, w io.Writer) error {
	return renderLink(ctx, w, i.label, i.link, i.icon)
}

func NewQuickLink(icon templ.Component, trKey, link string) *QuickLink {
	return &QuickLink{trKey: trKey, icon: icon, link: link}
}

type QuickLink struct {
	trKey string
	icon  templ.Component
	link  string
}

func (i *QuickLink) Render(ctx context.Context, w io.Writer) error {
	label := intl.MustT(ctx, i.trKey)
	return renderLink(ctx, w, label, i.link, i.icon)
}

type QuickLinks struct {
	items []*QuickLink
}

// Find ranks the registered links against q with normalized
// case-folding fuzzy matching, best match first.
func (ql *QuickLinks) Find(ctx context.Context, q string) []Item {
	if len(ql.items) == 0 {
		return nil
	}
	words := make([]string, len(ql.items))
	for i, it := range ql.items {
		words[i] = intl.MustT(ctx, it.trKey)
	}
	ranks := fuzzy.RankFindNormalizedFold(q, words)
	sort.Sort(ranks)

	result := make([]Item, 0, len(ranks))
	for _, rank := range ranks {
		result = append(result, ql.items[rank.OriginalIndex])
	}
	return result
}

func (ql *QuickLinks) Add(links ...*QuickLink) {
	ql.items = append(ql.items, links...)
}

func renderLink(ctx context.Context, w io.Writer, label, link string, icon templ.Component) error {
	if _, err := io.WriteString(w, `<a class="spotlight-item" href="`+templ.EscapeString(link)+`">`); err != nil {
		return err
	}
	if icon != nil {
		if err := icon.Render(ctx, w); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, `<span>`+templ.EscapeString(label)+`</span></a>`); err != nil {
		return err
	}
	return nil
}
