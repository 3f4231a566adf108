package mappers

import (
	"fmt"
	"strconv"

	"github.com/sevaops/temple-console/modules/events/domain/event"
	"github.com/sevaops/temple-console/modules/events/presentation/viewmodels"
	"github.com/sevaops/temple-console/pkg/configuration"
)

func EventToListItem(e event.Event) *viewmodels.EventListItem {
	capacity := "—"
	if e.Capacity != nil {
		capacity = fmt.Sprintf("%d / %d", e.Registered, *e.Capacity)
	}
	return &viewmodels.EventListItem{
		ID:       strconv.FormatUint(uint64(e.ID), 10),
		Name:     e.Name,
		Location: e.Location,
		Dates:    formatDateRange(e),
		Status:   string(e.Status),
		Capacity: capacity,
		Donation: formatDonation(e),
		ViewURL:  fmt.Sprintf("/events/%d", e.ID),
		EditURL:  fmt.Sprintf("/events/%d/edit", e.ID),
	}
}

func EventToFormVM(e *event.Event) *viewmodels.EventFormVM {
	capacity := ""
	if e.Capacity != nil {
		capacity = strconv.Itoa(*e.Capacity)
	}
	donation := ""
	if !e.DonationAmount.IsZero() {
		donation = e.DonationAmount.String()
	}
	return &viewmodels.EventFormVM{
		Name:           e.Name,
		Description:    e.Description,
		Location:       e.Location,
		FromDate:       e.FromDate.String(),
		ToDate:         e.ToDate.String(),
		StartTime:      e.StartTime,
		EndTime:        e.EndTime,
		Status:         string(e.Status),
		Capacity:       capacity,
		DonationAmount: donation,
	}
}

func DTOToFormVM(d *event.CreateDTO) *viewmodels.EventFormVM {
	capacity := ""
	if d.Capacity != nil {
		capacity = strconv.Itoa(*d.Capacity)
	}
	donation := ""
	if !d.DonationAmount.IsZero() {
		donation = d.DonationAmount.String()
	}
	return &viewmodels.EventFormVM{
		Name:           d.Name,
		Description:    d.Description,
		Location:       d.Location,
		FromDate:       d.FromDate.String(),
		ToDate:         d.ToDate.String(),
		StartTime:      d.StartTime,
		EndTime:        d.EndTime,
		Status:         d.Status,
		Capacity:       capacity,
		DonationAmount: donation,
	}
}

func formatDateRange(e event.Event) string {
	from := e.FromDate.String()
	to := e.ToDate.String()
	if from == to || to == "" {
		return from
	}
	return from + " to " + to
}

func formatDonation(e event.Event) string {
	if e.DonationAmount.IsZero() {
		return "—"
	}
	symbol := configuration.Use().CurrencySymbols[e.Currency]
	if symbol == "" {
		symbol = e.Currency + " "
	}
	return symbol + e.DonationAmount.StringFixed(2)
}
