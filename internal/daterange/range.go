package daterange

// FindDateRange scans one or more datasets and returns the global earliest and
// latest logged dates. Records without a parseable date are skipped. An empty
// pool yields empty bounds; callers must treat those as "no data available"
// and disable their range pickers.
func FindDateRange(datasets ...[]Record) Bounds {
	var dates []string
	for _, ds := range datasets {
		dates = append(dates, collectDates(ds)...)
	}
	if len(dates) == 0 {
		return Bounds{}
	}
	min, max := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return Bounds{MinDate: min, MaxDate: max}
}

// ValidateDateRange clamps a candidate (start, end) pair into
// [minDate, maxDate] and restores start <= end. Missing or unparseable inputs
// fall back to the logged bounds; a parse problem never reaches the caller.
//
// Both ends are clamped independently before the ordering check, so when the
// two conflict the user's chosen end date wins and start is recomputed as
// end minus the mode's window. A candidate lying entirely outside the bounds
// collapses onto the nearest bound.
func ValidateDateRange(start, end, minDate, maxDate string, mode Mode) Range {
	fallback := Range{Start: minDate, End: maxDate}
	if start == "" || end == "" || minDate == "" || maxDate == "" {
		return fallback
	}
	s, ok1 := parseISO(start)
	e, ok2 := parseISO(end)
	lo, ok3 := parseISO(minDate)
	hi, ok4 := parseISO(maxDate)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return fallback
	}

	if s.Before(lo) {
		s = lo
	}
	if e.After(hi) {
		e = hi
	}
	if e.Before(lo) {
		e = lo
	}
	if s.After(e) {
		s = e.AddDate(0, 0, -mode.spanDays())
		if s.Before(lo) {
			s = lo
		}
	}
	return Range{Start: s.Format(ISODate), End: e.Format(ISODate)}
}

// FindOptimalDateRange picks the window to render when the mode changes or
// data first loads. A naive "last N days from the anchor" window shows nothing
// when the newest entry is old, so when that window would miss every logged
// date entirely, the window is re-anchored at the oldest logged date instead.
func FindOptimalDateRange(dataset []Record, currentEnd string, mode Mode, minDate, maxDate string) Range {
	dates := collectDates(dataset)
	if len(dates) == 0 {
		end := currentEnd
		if end == "" {
			end = maxDate
		}
		return Range{Start: minDate, End: end}
	}
	oldest, _ := parseISO(dates[0])
	newest, _ := parseISO(dates[len(dates)-1])

	targetEnd := newest
	if t, ok := parseISO(currentEnd); ok {
		targetEnd = t
	}
	if hi, ok := parseISO(maxDate); ok && targetEnd.After(hi) {
		targetEnd = hi
	}

	span := mode.spanDays()
	targetStart := targetEnd.AddDate(0, 0, -span)

	if targetStart.After(newest) {
		targetStart = oldest
		targetEnd = oldest.AddDate(0, 0, span)
		if hi, ok := parseISO(maxDate); ok && targetEnd.After(hi) {
			targetEnd = hi
		}
	}
	if lo, ok := parseISO(minDate); ok && targetStart.Before(lo) {
		targetStart = lo
	}

	return Range{Start: targetStart.Format(ISODate), End: targetEnd.Format(ISODate)}
}
