// Package assignment links a volunteer to a seva task for a date range.
package assignment

import "github.com/sevaops/temple-console/pkg/shared"

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

type Assignment struct {
	ID             uint            `json:"id"`
	VolunteerID    uint            `json:"volunteer_id"`
	VolunteerName  string          `json:"volunteer_name"`
	TaskID         uint            `json:"task_id"`
	TaskTitle      string          `json:"task_title"`
	DepartmentName string          `json:"department_name"`
	StartDate      shared.DateOnly `json:"start_date"`
	EndDate        shared.DateOnly `json:"end_date"`
	Status         Status          `json:"status"`
}

type FindParams struct {
	Search       string
	DepartmentID string
	Status       string
	Page         int
	PerPage      int
}
