package review

import (
	"net/url"
	"strings"
	"time"
)

// dateLayouts are the formats accepted for query dates and stored timestamps.
var dateLayouts = []string{
	TimestampLayout,
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
}

// parseTime tries each accepted layout. Times without a zone are UTC.
func parseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Filter restricts which reviews List returns. Zero values mean no constraint.
type Filter struct {
	Location string
	Start    *time.Time
	End      *time.Time
}

// ParseFilter builds a Filter from query parameters.
// Only the first value of a repeated parameter is used. A start_date or
// end_date that cannot be parsed is ignored rather than rejected.
func ParseFilter(q url.Values) Filter {
	f := Filter{Location: q.Get("location")}
	if t, ok := parseTime(q.Get("start_date")); ok {
		f.Start = &t
	}
	if t, ok := parseTime(q.Get("end_date")); ok {
		f.End = &t
	}
	return f
}

// Matches reports whether r satisfies every clause of the filter.
// Both date bounds are inclusive. A review whose timestamp cannot be
// parsed fails any date bound that is set.
func (f Filter) Matches(r Review) bool {
	if f.Location != "" && f.Location != r.Location {
		return false
	}
	if f.Start == nil && f.End == nil {
		return true
	}

	ts, ok := r.ParsedTimestamp()
	if !ok {
		return false
	}
	if f.Start != nil && ts.Before(*f.Start) {
		return false
	}
	if f.End != nil && ts.After(*f.End) {
		return false
	}
	return true
}

// Query encodes the filter back into query parameters.
func (f Filter) Query() url.Values {
	q := url.Values{}
	if f.Location != "" {
		q.Set("location", f.Location)
	}
	if f.Start != nil {
		q.Set("start_date", f.Start.Format(TimestampLayout))
	}
	if f.End != nil {
		q.Set("end_date", f.End.Format(TimestampLayout))
	}
	return q
}
