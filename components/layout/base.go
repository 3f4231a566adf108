// Package layout holds the document shell every page renders into: the
// head with the active feature stylesheets, the sidebar and the single
// page container.
package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/sevaops/temple-console/pkg/composables"
	"github.com/sevaops/temple-console/pkg/feature"
	"github.com/sevaops/temple-console/pkg/types"
)

type BaseProps struct {
	Title string
	// Stylesheets is the snapshot of the feature stylesheet set at
	// render time; only features with active pages contribute links.
	Stylesheets []feature.StylesheetLink
	NavItems    []types.NavigationItem
	ActivePath  string
	// Flash is a one-shot notice consumed from the flash cookie.
	Flash string
	Error string
}

// Base wraps content in the full HTML document.
func Base(props BaseProps, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeStrings(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/>`,
			`<meta name="viewport" content="width=device-width, initial-scale=1"/>`,
			`<title>`, templ.EscapeString(props.Title), ` | Temple Console</title>`,
			`<link rel="stylesheet" href="/assets/css/app.css"/>`,
		); err != nil {
			return err
		}
		for _, link := range props.Stylesheets {
			if err := writeStrings(w,
				`<link rel="stylesheet" id="`, templ.EscapeString(link.ID),
				`" href="`, templ.EscapeString(link.Href), `"/>`,
			); err != nil {
				return err
			}
		}
		if err := writeStrings(w, `</head><body>`); err != nil {
			return err
		}
		if err := sidebar(props.NavItems, props.ActivePath).Render(ctx, w); err != nil {
			return err
		}
		if err := writeStrings(w, `<main id="app-container" class="page-container">`); err != nil {
			return err
		}
		if props.Flash != "" {
			if err := writeStrings(w, `<div class="notice notice-success" role="status">`, templ.EscapeString(props.Flash), `</div>`); err != nil {
				return err
			}
		}
		if props.Error != "" {
			if err := writeStrings(w, `<div class="notice notice-error" role="alert">`, templ.EscapeString(props.Error), `</div>`); err != nil {
				return err
			}
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		return writeStrings(w, `</main></body></html>`)
	})
}

func sidebar(items []types.NavigationItem, activePath string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeStrings(w, `<nav class="sidebar"><ul>`); err != nil {
			return err
		}
		for _, item := range items {
			if err := navEntry(ctx, w, item, activePath); err != nil {
				return err
			}
		}
		return writeStrings(w, `</ul></nav>`)
	})
}

func navEntry(ctx context.Context, w io.Writer, item types.NavigationItem, activePath string) error {
	cls := "nav-item"
	if item.IsActive(activePath) {
		cls += " active"
	}
	if err := writeStrings(w, `<li class="`, cls, `">`); err != nil {
		return err
	}
	if item.Href != "" {
		if err := writeStrings(w, `<a href="`, templ.EscapeString(item.Href), `">`); err != nil {
			return err
		}
	}
	if item.Icon != nil {
		if err := item.Icon.Render(ctx, w); err != nil {
			return err
		}
	}
	label := item.Name
	if pageCtx, ok := composables.TryUsePageCtx(ctx); ok {
		if translated := pageCtx.TSafe(item.Name); translated != "" {
			label = translated
		}
	}
	if err := writeStrings(w, `<span>`, templ.EscapeString(label), `</span>`); err != nil {
		return err
	}
	if item.Href != "" {
		if err := writeStrings(w, `</a>`); err != nil {
			return err
		}
	}
	if len(item.Children) > 0 {
		if err := writeStrings(w, `<ul>`); err != nil {
			return err
		}
		for _, child := range item.Children {
			if err := navEntry(ctx, w, child, activePath); err != nil {
				return err
			}
		}
		if err := writeStrings(w, `</ul>`); err != nil {
			return err
		}
	}
	return writeStrings(w, `</li>`)
}

func writeStrings(w io.Writer, parts ...string) error {
	for _, p := range parts {
		if _, err := io.WriteString(w, p); err != nil {
			return err
		}
	}
	return nil
}
