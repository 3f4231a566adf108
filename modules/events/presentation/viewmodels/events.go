package viewmodels

import (
	"net/url"

	"github.com/sevaops/temple-console/modules/events/domain/event"
	"github.com/sevaops/temple-console/pkg/apiclient"
)

type EventListItem struct {
	ID       string
	Name     string
	Location string
	Dates    string
	Status   string
	Capacity string
	Donation string
	ViewURL  string
	EditURL  string
}

type EventsListPageProps struct {
	Items      []*EventListItem
	Collection apiclient.Collection[event.Event]
	Search     string
	Status     string
	FromDate   string
	ToDate     string
	Query      url.Values
	NewURL     string
	BasePath   string
	// LoadError renders an inline panel in place of the table body.
	LoadError string
}

type EventFormVM struct {
	Name           string
	Description    string
	Location       string
	FromDate       string
	ToDate         string
	StartTime      string
	EndTime        string
	Status         string
	Capacity       string
	DonationAmount string
}

type EventFormPageProps struct {
	Title    string
	Errors   map[string]string
	Form     *EventFormVM
	PostTo   string
	BackURL  string
	Statuses []string
	// Saving disables the submit control with a busy label.
	Saving bool
}

type EventDetailPageProps struct {
	Event    *EventListItem
	Longform map[string]string
	BackURL  string
	EditURL  string
	DeleteTo string
}
