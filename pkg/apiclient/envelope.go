package apiclient

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"

	"github.com/sevaops/temple-console/pkg/serrors"
)

// Envelope is the backend's uniform response wrapper. Data stays raw
// until the caller decodes it into the expected shape; list endpoints in
// particular need a second look at the payload (see DecodeCollection).
type Envelope struct {
	Success bool                `json:"success"`
	Data    json.RawMessage     `json:"data,omitempty"`
	Message string              `json:"message"`
	Errors  serrors.FieldErrors `json:"errors,omitempty"`
}

// Decode unmarshals the data payload into out.
func (e *Envelope) Decode(out any) error {
	if len(e.Data) == 0 {
		return errors.New("empty response payload")
	}
	if err := json.Unmarshal(e.Data, out); err != nil {
		return errors.Wrap(err, "decode payload")
	}
	return nil
}

// Err converts a non-success envelope into an *APIError. The field
// error map takes precedence over the top-level message; a fallback
// built from the action name covers empty bodies.
func (e *Envelope) Err(status int, action string) error {
	if e.Success {
		return nil
	}
	msg := strings.TrimSpace(e.Message)
	if len(e.Errors) > 0 {
		msg = e.Errors.Flatten()
	}
	if msg == "" {
		msg = "failed to " + action
	}
	return &APIError{
		Status:  status,
		Message: msg,
		Fields:  e.Errors,
	}
}

// APIError is a request or business-rule failure reported by the
// backend. Business-rule failures arrive with HTTP 200 and success set
// to false; both render through the same display path.
type APIError struct {
	Status  int
	Message string
	Fields  serrors.FieldErrors
}

func (e *APIError) Error() string {
	return e.Message
}

// FieldErrors returns the per-field messages, if the backend sent any.
func (e *APIError) FieldErrors() serrors.FieldErrors {
	return e.Fields
}
