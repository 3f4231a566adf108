package volunteer

import (
	"context"
	"fmt"
	"strings"

	"github.com/sevaops/temple-console/pkg/intl"
)

// Decision is one of the three approval-queue actions.
type Decision string

const (
	DecisionApprove             Decision = "approve"
	DecisionReject              Decision = "reject"
	DecisionRequestResubmission Decision = "request-resubmission"
)

// DecisionDTO carries the justification for a queue decision. Approve
// needs none; reject and request-resubmission refuse to leave the
// browser without one.
type DecisionDTO struct {
	Reason string `form:"reason"`
}

func (d *DecisionDTO) Normalize() {
	d.Reason = strings.TrimSpace(d.Reason)
}

// Ok validates the justification for the given decision before any
// request is issued.
func (d *DecisionDTO) Ok(ctx context.Context, decision Decision) (map[string]string, bool) {
	d.Normalize()
	if decision == DecisionApprove || d.Reason != "" {
		return map[string]string{}, true
	}
	return map[string]string{
		"Reason": fmt.Sprintf("%s is required", intl.T(ctx, "Volunteers.Approvals.Fields.Reason")),
	}, false
}

type DecisionPayload struct {
	Reason string `json:"reason,omitempty"`
}
