package types

import (
	"github.com/a-h/templ"
)

// NavigationItem is one sidebar entry. Feature is the owning feature
// module's name; the layout uses it to mark which stylesheet bundle the
// link activates.
type NavigationItem struct {
	Name     string
	Href     string
	Feature  string
	Children []NavigationItem
	Icon     templ.Component
}

// IsActive reports whether path falls under this item or any child.
func (n NavigationItem) IsActive(path string) bool {
	if n.Href != "" && n.Href != "/" && hasPathPrefix(path, n.Href) {
		return true
	}
	for _, child := range n.Children {
		if child.IsActive(path) {
			return true
		}
	}
	return false
}

func hasPathPrefix(path, prefix string) bool {
	if len(path) < len(prefix) || path[:len(prefix)] != prefix {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '/' || path[len(prefix)] == '?'
}
