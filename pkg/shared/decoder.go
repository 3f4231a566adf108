package shared

import (
	"strings"
	"time"

	"github.com/go-playground/form"
	"github.com/shopspring/decimal"
)

// Decoder decodes url.Values into DTO structs. Registered custom types
// cover the date-only and money fields the backend exchanges as strings.
var Decoder = newDecoder()

func newDecoder() *form.Decoder {
	d := form.NewDecoder()
	d.RegisterCustomTypeFunc(func(vals []string) (interface{}, error) {
		if len(vals) == 0 || strings.TrimSpace(vals[0]) == "" {
			return DateOnly{}, nil
		}
		t, err := time.Parse(time.DateOnly, vals[0])
		if err != nil {
			return nil, err
		}
		return DateOnly(t), nil
	}, DateOnly{})
	d.RegisterCustomTypeFunc(func(vals []string) (interface{}, error) {
		if len(vals) == 0 || strings.TrimSpace(vals[0]) == "" {
			return decimal.Zero, nil
		}
		return decimal.NewFromString(vals[0])
	}, decimal.Decimal{})
	return d
}

// DateOnly is a calendar date without a time component, rendered and
// parsed as YYYY-MM-DD.
type DateOnly time.Time

func (d DateOnly) Time() time.Time {
	return time.Time(d)
}

func (d DateOnly) IsZero() bool {
	return time.Time(d).IsZero()
}

func (d DateOnly) String() string {
	if d.IsZero() {
		return ""
	}
	return time.Time(d).Format(time.DateOnly)
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = DateOnly{}
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	*d = DateOnly(t)
	return nil
}
