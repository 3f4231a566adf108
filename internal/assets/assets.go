// Package assets embeds the console's static files and serves them
// with content-hashed names so feature stylesheets cache forever.
package assets

import (
	"embed"
	"net/http"

	"github.com/benbjohnson/hashfs"
	"github.com/gorilla/mux"
)

//go:embed css/*.css
var FS embed.FS

var HashFS = hashfs.NewFS(FS)

// StylesheetHref returns the hashed href for a feature stylesheet,
// e.g. StylesheetHref("events") -> "/assets/css/events-<hash>.css".
func StylesheetHref(feature string) string {
	return "/assets/" + HashFS.HashName("css/"+feature+".css")
}

// AppStylesheetHref is the always-present base stylesheet.
func AppStylesheetHref() string {
	return "/assets/" + HashFS.HashName("css/app.css")
}

type Controller struct {
	prefix string
}

func NewController() *Controller {
	return &Controller{prefix: "/assets"}
}

func (c *Controller) Key() string {
	return c.prefix
}

func (c *Controller) Register(r *mux.Router) {
	r.PathPrefix(c.prefix + "/").Handler(
		http.StripPrefix(c.prefix+"/", hashfs.FileServer(HashFS)),
	)
}
