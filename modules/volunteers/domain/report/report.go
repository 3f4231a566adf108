// Package report holds the server-bucketed attendance aggregates the
// calendar screen renders. Buckets arrive fully computed; the console
// derives display values only.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/sevaops/temple-console/pkg/shared"
)

// Period is the bucket granularity the user picks on the calendar.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

func ParsePeriod(s string) Period {
	switch Period(s) {
	case PeriodWeek:
		return PeriodWeek
	case PeriodMonth:
		return PeriodMonth
	default:
		return PeriodDay
	}
}

// ActivityLevel colors a bucket cell. Computed server-side, rendered
// verbatim.
type ActivityLevel string

const (
	ActivityHigh ActivityLevel = "high"
	ActivityMed  ActivityLevel = "medium"
	ActivityLow  ActivityLevel = "low"
)

// EntrySummary is one attendance record inside a bucket's drill-down.
type EntrySummary struct {
	EntryID       uint            `json:"entry_id"`
	VolunteerName string          `json:"volunteer_name"`
	CheckIn       string          `json:"check_in"`
	CheckOut      string          `json:"check_out"`
	Hours         decimal.Decimal `json:"hours_worked"`
}

// Bucket is one aggregate cell for a day, week or month.
type Bucket struct {
	Date           shared.DateOnly `json:"date"`
	Label          string          `json:"label"`
	VolunteerCount int             `json:"volunteer_count"`
	TotalHours     decimal.Decimal `json:"total_hours"`
	Activity       ActivityLevel   `json:"activity_level"`
	Entries        []EntrySummary  `json:"entries"`
}

type Params struct {
	Period   Period
	FromDate string
	ToDate   string
}
