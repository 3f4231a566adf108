package event

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/sevaops/temple-console/pkg/constants"
	"github.com/sevaops/temple-console/pkg/intl"
	"github.com/sevaops/temple-console/pkg/serrors"
	"github.com/sevaops/temple-console/pkg/shared"
)

type CreateDTO struct {
	Name           string          `form:"name" validate:"required"`
	Description    string          `form:"description"`
	Location       string          `form:"location" validate:"required"`
	FromDate       shared.DateOnly `form:"from_date"`
	ToDate         shared.DateOnly `form:"to_date"`
	StartTime      string          `form:"start_time"`
	EndTime        string          `form:"end_time"`
	Status         string          `form:"status" validate:"required,oneof=draft published cancelled completed"`
	Capacity       *int            `form:"capacity" validate:"omitempty,min=1"`
	DonationAmount decimal.Decimal `form:"donation_amount"`
}

type UpdateDTO struct {
	CreateDTO
}

func (d *CreateDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
	d.Location = strings.TrimSpace(d.Location)
	d.StartTime = strings.TrimSpace(d.StartTime)
	d.EndTime = strings.TrimSpace(d.EndTime)
	d.Status = strings.TrimSpace(d.Status)
}

// Ok validates the form. The cross-field date check runs after struct
// validation: ToDate must not precede FromDate.
func (d *CreateDTO) Ok(ctx context.Context) (map[string]string, bool) {
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

	if d.FromDate.IsZero() {
		validationErrors["FromDate"] = fmt.Sprintf("%s is required", fieldLabel(ctx, "FromDate"))
	}
	if d.ToDate.IsZero() {
		validationErrors["ToDate"] = fmt.Sprintf("%s is required", fieldLabel(ctx, "ToDate"))
	}
	if !d.FromDate.IsZero() && !d.ToDate.IsZero() && d.ToDate.Time().Before(d.FromDate.Time()) {
		validationErrors["ToDate"] = fmt.Sprintf("%s must not precede %s", fieldLabel(ctx, "ToDate"), fieldLabel(ctx, "FromDate"))
	}

	return validationErrors, len(validationErrors) == 0
}

// Payload is the backend request body. Capacity stays a pointer so a
// blank optional field marshals to an explicit null.
type Payload struct {
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Location       string          `json:"location"`
	FromDate       shared.DateOnly `json:"from_date"`
	ToDate         shared.DateOnly `json:"to_date"`
	StartTime      string          `json:"start_time"`
	EndTime        string          `json:"end_time"`
	Status         string          `json:"status"`
	Capacity       *int            `json:"capacity"`
	DonationAmount decimal.Decimal `json:"donation_amount"`
}

func (d *CreateDTO) ToPayload() Payload {
	return Payload{
		Name:           d.Name,
		Description:    d.Description,
		Location:       d.Location,
		FromDate:       d.FromDate,
		ToDate:         d.ToDate,
		StartTime:      d.StartTime,
		EndTime:        d.EndTime,
		Status:         d.Status,
		Capacity:       d.Capacity,
		DonationAmount: d.DonationAmount,
	}
}

func fieldLabel(ctx context.Context, field string) string {
	return intl.T(ctx, fmt.Sprintf("Events.Fields.%s", field))
}
