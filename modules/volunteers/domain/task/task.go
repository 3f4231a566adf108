// Package task holds seva task records: a unit of work a department
// needs volunteers assigned to.
package task

import "github.com/sevaops/temple-console/pkg/shared"

type Status string

const (
	StatusOpen   Status = "open"
	StatusFilled Status = "filled"
	StatusClosed Status = "closed"
)

type Task struct {
	ID             uint            `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	DepartmentID   uint            `json:"department_id"`
	DepartmentName string          `json:"department_name"`
	Status         Status          `json:"status"`
	RequiredCount  int             `json:"required_count"`
	AssignedCount  int             `json:"assigned_count"`
	Date           shared.DateOnly `json:"date"`
	StartTime      string          `json:"start_time"`
	EndTime        string          `json:"end_time"`
}

type FindParams struct {
	Search       string
	DepartmentID string
	Status       string
	Page         int
	PerPage      int
}
