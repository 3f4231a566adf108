package apiclient

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Filter accumulates list query parameters. Empty values never reach
// the wire: Values strips them, so a blank search box or an unselected
// status dropdown adds no key at all.
type Filter map[string]string

func (f Filter) Set(key, value string) Filter {
	f[key] = strings.TrimSpace(value)
	return f
}

func (f Filter) SetInt(key string, value int) Filter {
	if value != 0 {
		f[key] = strconv.Itoa(value)
	}
	return f
}

// SetDate formats t as YYYY-MM-DD; a zero time adds nothing.
func (f Filter) SetDate(key string, t time.Time) Filter {
	if !t.IsZero() {
		f[key] = t.Format(time.DateOnly)
	}
	return f
}

// Values drops keys whose value is empty, "null" or "undefined" and
// returns the rest as url.Values.
func (f Filter) Values() url.Values {
	q := url.Values{}
	for k, v := range f {
		v = strings.TrimSpace(v)
		if v == "" || v == "null" || v == "undefined" {
			continue
		}
		q.Set(k, v)
	}
	return q
}

// ParseFilter rebuilds a Filter from query parameters, the inverse of
// Values for round-tripping list state through the URL.
func ParseFilter(q url.Values) Filter {
	f := Filter{}
	for k, vals := range q {
		if len(vals) == 0 {
			continue
		}
		// htmx form includes can append duplicates; the last value is
		// the current one.
		f.Set(k, vals[len(vals)-1])
	}
	return f
}
