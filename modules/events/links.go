package events

import (
	icons "github.com/iota-uz/icons/phosphor"

	"github.com/sevaops/temple-console/pkg/types"
)

var EventsLink = types.NavigationItem{
	Name:     "NavigationLinks.Events",
	Icon:     icons.CalendarBlank(icons.Props{Size: "20"}),
	Href:     "/events",
	Feature:  "events",
	Children: nil,
}

var NavItems = []types.NavigationItem{
	EventsLink,
}
