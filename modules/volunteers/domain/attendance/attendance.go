// Package attendance holds volunteer attendance entries. Entries are
// either recorded live at check-in or backfilled manually, in which
// case a reason for the backfill is mandatory.
package attendance

import (
	"github.com/shopspring/decimal"

	"github.com/sevaops/temple-console/pkg/shared"
)

type EntryType string

const (
	EntryNormal EntryType = "normal"
	EntryManual EntryType = "manual"
)

type Entry struct {
	ID            uint            `json:"id"`
	VolunteerID   uint            `json:"volunteer_id"`
	VolunteerName string          `json:"volunteer_name"`
	Date          shared.DateOnly `json:"date"`
	CheckIn       string          `json:"check_in"`
	CheckOut      string          `json:"check_out"`
	Hours         decimal.Decimal `json:"hours_worked"`
	EntryType     EntryType       `json:"entry_type"`
	// ManualReason is set only for manual entries.
	ManualReason string `json:"manual_reason"`
}

type FindParams struct {
	Search    string
	EntryType string
	FromDate  string
	ToDate    string
	Page      int
	PerPage   int
}
