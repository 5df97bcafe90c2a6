package daterange

// FilterByRange returns the records whose extracted date falls within
// [start, end]. Input order is preserved; records without a parseable date
// are excluded. An unparseable range yields an empty result rather than an
// error.
//
// Month mode admits records dated one day past the requested end. The
// reference behavior extends the upper bound to counteract a timezone
// truncation effect in its environment; it is reproduced here unchanged for
// compatibility. Week mode is a plain closed interval.
func FilterByRange(dataset []Record, start, end string, mode Mode) []Record {
	out := make([]Record, 0, len(dataset))
	s, ok1 := parseISO(start)
	e, ok2 := parseISO(end)
	if !ok1 || !ok2 {
		return out
	}
	if mode == ModeMonth {
		e = e.AddDate(0, 0, 1)
	}
	for _, rec := range dataset {
		ds, ok := ExtractDate(rec)
		if !ok {
			continue
		}
		d, ok := parseISO(ds)
		if !ok {
			continue
		}
		if d.Before(s) || d.After(e) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// minDistinctDates is the per-series threshold for rendering a trend chart.
// Stool and growth thresholds are fixed regardless of mode.
func minDistinctDates(mode Mode, dataType DataType) int {
	switch dataType {
	case DataStool:
		return 7
	case DataGrowth:
		return 3
	default: // feed
		if mode == ModeMonth {
			return 7
		}
		return 3
	}
}

// HasEnoughDataPoints reports whether the dataset covers enough distinct
// calendar dates (not record count) to justify a trend chart for the given
// mode and series.
func HasEnoughDataPoints(dataset []Record, mode Mode, dataType DataType) bool {
	seen := make(map[string]struct{}, len(dataset))
	for _, rec := range dataset {
		if d, ok := ExtractDate(rec); ok {
			seen[d] = struct{}{}
		}
	}
	return len(seen) >= minDistinctDates(mode, dataType)
}

// LastLoggedDate returns the most recent extracted date in the dataset, or ""
// when none parses. Callers use it as context in "not enough data" messages.
func LastLoggedDate(dataset []Record) string {
	dates := collectDates(dataset)
	if len(dates) == 0 {
		return ""
	}
	return dates[len(dates)-1]
}
