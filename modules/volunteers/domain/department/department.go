// Package department holds the seva department records fetched from
// the temple backend.
package department

import "time"

type Department struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Head           string    `json:"head_name"`
	Description    string    `json:"description"`
	VolunteerCount int       `json:"volunteer_count"`
	OpenTasks      int       `json:"open_task_count"`
	CreatedAt      time.Time `json:"created_at"`
}

type FindParams struct {
	Search  string
	Page    int
	PerPage int
}
