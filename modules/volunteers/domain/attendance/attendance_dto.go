package attendance

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sevaops/temple-console/pkg/constants"
	"github.com/sevaops/temple-console/pkg/intl"
	"github.com/sevaops/temple-console/pkg/serrors"
	"github.com/sevaops/temple-console/pkg/shared"
)

// ManualEntryDTO backfills an attendance record. A backfill reason is
// always required; the backend rejects manual entries without one.
type ManualEntryDTO struct {
	VolunteerID  uint            `form:"volunteer_id" validate:"required"`
	Date         shared.DateOnly `form:"date"`
	CheckIn      string          `form:"check_in" validate:"required"`
	CheckOut     string          `form:"check_out" validate:"required"`
	ManualReason string          `form:"manual_reason" validate:"required"`
}

func (d *ManualEntryDTO) Normalize() {
	d.CheckIn = strings.TrimSpace(d.CheckIn)
	d.CheckOut = strings.TrimSpace(d.CheckOut)
	d.ManualReason = strings.TrimSpace(d.ManualReason)
}

func (d *ManualEntryDTO) Ok(ctx context.Context) (map[string]string, bool) {
	d.Normalize()

	validationErrors := make(serrors.ValidationErrors)
	if errs := constants.Validate.Struct(d); errs != nil {
		validatorErrs := errs.(validator.ValidationErrors)
		for field, msg := range serrors.ProcessValidatorErrors(validatorErrs, func(field string) string {
			return fieldLabel(ctx, field)
		}) {
			validationErrors[field] = msg
		}
	}

	if d.Date.IsZero() {
		validationErrors["Date"] = fmt.Sprintf("%s is required", fieldLabel(ctx, "Date"))
	}

	return validationErrors, len(validationErrors) == 0
}

type ManualEntryPayload struct {
	VolunteerID  uint            `json:"volunteer_id"`
	Date         shared.DateOnly `json:"date"`
	CheckIn      string          `json:"check_in"`
	CheckOut     string          `json:"check_out"`
	EntryType    EntryType       `json:"entry_type"`
	ManualReason string          `json:"manual_reason"`
}

func (d *ManualEntryDTO) ToPayload() ManualEntryPayload {
	return ManualEntryPayload{
		VolunteerID:  d.VolunteerID,
		Date:         d.Date,
		CheckIn:      d.CheckIn,
		CheckOut:     d.CheckOut,
		EntryType:    EntryManual,
		ManualReason: d.ManualReason,
	}
}

func fieldLabel(ctx context.Context, field string) string {
	return intl.T(ctx, fmt.Sprintf("Volunteers.Attendance.Fields.%s", field))
}
