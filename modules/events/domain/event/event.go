// Package event holds the event records fetched from the temple
// backend and the DTOs the console submits back.
package event

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sevaops/temple-console/pkg/shared"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func Statuses() []Status {
	return []Status{StatusDraft, StatusPublished, StatusCancelled, StatusCompleted}
}

// Event is an ephemeral snapshot of a backend record, held only for
// rendering the current view.
type Event struct {
	ID             uint            `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Location       string          `json:"location"`
	FromDate       shared.DateOnly `json:"from_date"`
	ToDate         shared.DateOnly `json:"to_date"`
	StartTime      string          `json:"start_time"`
	EndTime        string          `json:"end_time"`
	Status         Status          `json:"status"`
	Capacity       *int            `json:"capacity"`
	Registered     int             `json:"registered_count"`
	DonationAmount decimal.Decimal `json:"donation_amount"`
	Currency       string          `json:"currency"`
	CreatedAt      time.Time       `json:"created_at"`
}

// FindParams is the list filter; empty values are stripped before they
// reach the wire.
type FindParams struct {
	Search   string
	Status   string
	FromDate time.Time
	ToDate   time.Time
	Page     int
	PerPage  int
}
