// Package volunteer holds volunteer registrations and the approval
// decisions the console submits for them. A registration moves from
// pending_approval to active or rejected, or back to pending_approval
// when a resubmission of documents is requested.
package volunteer

import "time"

type Status string

const (
	StatusPendingApproval Status = "pending_approval"
	StatusActive          Status = "active"
	StatusRejected        Status = "rejected"
)

type Volunteer struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Status       Status    `json:"status"`
	RegisteredAt time.Time `json:"registered_at"`
	// Resubmission marks a registration sent back for new documents and
	// waiting again in the queue.
	Resubmission       bool     `json:"resubmission_requested"`
	RequiredDocuments  []string `json:"required_documents"`
	SubmittedDocuments []string `json:"submitted_documents"`
}

type FindParams struct {
	Search  string
	Status  string
	Page    int
	PerPage int
}
