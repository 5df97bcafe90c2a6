// Package daterange reconciles chart windows against sparsely and irregularly
// logged baby-care data. It keeps date pickers, range filters and "not enough
// data" messaging consistent across the feeding, stool and growth series.
//
// Everything here is a pure function over in-memory records; callers own all
// I/O and state. Dates are ISO calendar dates ("2006-01-02") with no time or
// zone component.
package daterange

import (
	"sort"
	"strings"
	"time"
)

// ISODate is the calendar-date layout used throughout the package.
const ISODate = "2006-01-02"

// Record is one time-stamped entry as decoded from its source. The three
// record sources disagree on the name and shape of their date field, so
// records stay generic and the date is probed from a candidate list.
type Record = map[string]any

// DefaultDateFields is the probe order used when no explicit candidate list
// is given: feedings carry "timestamp", stool events "date"/"created_at",
// growth measurements "measurement_date".
var DefaultDateFields = []string{"date", "timestamp", "created_at", "measurement_date"}

// Mode selects the fixed chart window length.
type Mode string

const (
	ModeWeek  Mode = "week"
	ModeMonth Mode = "month"
)

// WindowDays returns the window length for the mode (7 for week, 30 otherwise).
func (m Mode) WindowDays() int {
	if m == ModeWeek {
		return 7
	}
	return 30
}

// spanDays is the day distance between the start and end of a full window.
func (m Mode) spanDays() int { return m.WindowDays() - 1 }

// DataType identifies which series a dataset belongs to; sufficiency
// thresholds differ per series.
type DataType string

const (
	DataFeed   DataType = "feed"
	DataStool  DataType = "stool"
	DataGrowth DataType = "growth"
)

// Bounds is the earliest and latest logged date across one or more datasets.
// Empty strings mean no data is available.
type Bounds struct {
	MinDate string `json:"min_date"`
	MaxDate string `json:"max_date"`
}

// Range is a validated (start, end) pair of calendar dates, start <= end.
type Range struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ExtractDate returns the calendar-date portion of the first non-empty
// candidate field on rec. ISO datetime values are truncated at the 'T'
// separator. The second return is false when no candidate field carries a
// value or when the value is not a calendar date; absence is a valid, silent
// outcome and callers filter such records out.
func ExtractDate(rec Record, fields ...string) (string, bool) {
	if len(fields) == 0 {
		fields = DefaultDateFields
	}
	for _, f := range fields {
		v, ok := rec[f]
		if !ok {
			continue
		}
		var s string
		switch t := v.(type) {
		case string:
			s = strings.TrimSpace(t)
		case time.Time:
			if t.IsZero() {
				continue
			}
			s = t.UTC().Format(ISODate)
		default:
			continue
		}
		if s == "" {
			continue
		}
		if i := strings.IndexByte(s, 'T'); i >= 0 {
			s = s[:i]
		}
		if _, ok := parseISO(s); !ok {
			return "", false
		}
		return s, true
	}
	return "", false
}

// parseISO parses an ISO calendar date, reporting failure instead of erroring.
func parseISO(s string) (time.Time, bool) {
	t, err := time.Parse(ISODate, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// collectDates extracts every valid date in the dataset, sorted ascending.
// ISO date strings sort lexicographically in chronological order.
func collectDates(dataset []Record) []string {
	dates := make([]string, 0, len(dataset))
	for _, rec := range dataset {
		if d, ok := ExtractDate(rec); ok {
			dates = append(dates, d)
		}
	}
	sort.Strings(dates)
	return dates
}
