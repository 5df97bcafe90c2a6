package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"babytrack/internal/daterange"
	"babytrack/internal/repository"
)

var (
	errUnknownDataType = errors.New("unknown data type: must be feed, stool, or growth")
	errInvalidMode     = errors.New("invalid mode: must be week or month")
)

// AnalysisService is the impure shell around the daterange core: it loads the
// user's datasets, picks/validates a window, filters, and aggregates a
// per-day series. All date policy lives in the core.
type AnalysisService struct {
	feedings repository.FeedingRepo
	stool    repository.StoolRepo
	growth   repository.GrowthRepo
}

func NewAnalysisService(feedings repository.FeedingRepo, stool repository.StoolRepo, growth repository.GrowthRepo) *AnalysisService {
	return &AnalysisService{feedings: feedings, stool: stool, growth: growth}
}

// Analyze computes the reconciled window and series for one data type.
// Bounds come from all three series so the dashboard's pickers stay
// consistent whichever tab is open.
func (s *AnalysisService) Analyze(ctx context.Context, userID int, q AnalysisQuery) (AnalysisResult, error) {
	if q.Mode == "" {
		q.Mode = daterange.ModeWeek
	}
	if q.Mode != daterange.ModeWeek && q.Mode != daterange.ModeMonth {
		return AnalysisResult{}, errInvalidMode
	}

	feedSet, stoolSet, growthSet, err := s.loadDatasets(ctx, userID)
	if err != nil {
		return AnalysisResult{}, err
	}

	var target []daterange.Record
	switch q.DataType {
	case daterange.DataFeed:
		target = feedSet
	case daterange.DataStool:
		target = stoolSet
	case daterange.DataGrowth:
		target = growthSet
	default:
		return AnalysisResult{}, errUnknownDataType
	}

	bounds := daterange.FindDateRange(feedSet, stoolSet, growthSet)

	var rng daterange.Range
	if q.Start != "" && q.End != "" {
		rng = daterange.ValidateDateRange(q.Start, q.End, bounds.MinDate, bounds.MaxDate, q.Mode)
	} else {
		rng = daterange.FindOptimalDateRange(target, q.EndAnchor, q.Mode, bounds.MinDate, bounds.MaxDate)
	}

	filtered := daterange.FilterByRange(target, rng.Start, rng.End, q.Mode)

	lastLogged := daterange.LastLoggedDate(filtered)
	if lastLogged == "" {
		lastLogged = daterange.LastLoggedDate(target)
	}

	return AnalysisResult{
		DataType:      q.DataType,
		Mode:          q.Mode,
		Bounds:        bounds,
		Range:         rng,
		Records:       filtered,
		Series:        buildSeries(filtered, q.DataType),
		HasEnoughData: daterange.HasEnoughDataPoints(filtered, q.Mode, q.DataType),
		LastLogged:    lastLogged,
	}, nil
}

// loadDatasets fetches the user's full history for all three series in the
// generic record shape the core consumes.
func (s *AnalysisService) loadDatasets(ctx context.Context, userID int) (feedSet, stoolSet, growthSet []daterange.Record, err error) {
	feedings, err := s.feedings.List(ctx, userID, time.Time{}, time.Time{})
	if err != nil {
		return nil, nil, nil, err
	}
	stool, err := s.stool.List(ctx, userID, "", "")
	if err != nil {
		return nil, nil, nil, err
	}
	growth, err := s.growth.List(ctx, userID, "", "")
	if err != nil {
		return nil, nil, nil, err
	}

	feedSet = make([]daterange.Record, 0, len(feedings))
	for _, r := range feedings {
		feedSet = append(feedSet, r.AsRecord())
	}
	stoolSet = make([]daterange.Record, 0, len(stool))
	for _, r := range stool {
		stoolSet = append(stoolSet, r.AsRecord())
	}
	growthSet = make([]daterange.Record, 0, len(growth))
	for _, r := range growth {
		growthSet = append(growthSet, r.AsRecord())
	}
	return feedSet, stoolSet, growthSet, nil
}

// valueField returns the numeric field averaged per day, "" when the series
// is count-only.
func valueField(dataType daterange.DataType) string {
	switch dataType {
	case daterange.DataFeed:
		return "amount_ml"
	case daterange.DataGrowth:
		return "weight_kg"
	default:
		return ""
	}
}

// buildSeries aggregates the filtered records into one point per distinct
// date: a count, plus the day's average of the series' value field.
func buildSeries(filtered []daterange.Record, dataType daterange.DataType) []SeriesPoint {
	field := valueField(dataType)

	type agg struct {
		count int
		sum   float64
		n     int
	}
	byDate := make(map[string]*agg)
	for _, rec := range filtered {
		d, ok := daterange.ExtractDate(rec)
		if !ok {
			continue
		}
		a := byDate[d]
		if a == nil {
			a = &agg{}
			byDate[d] = a
		}
		a.count++
		if field != "" {
			if v, ok := rec[field].(float64); ok && v > 0 {
				a.sum += v
				a.n++
			}
		}
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	out := make([]SeriesPoint, 0, len(dates))
	for _, d := range dates {
		a := byDate[d]
		p := SeriesPoint{Date: d, Count: a.count}
		if a.n > 0 {
			p.Value = a.sum / float64(a.n)
		}
		out = append(out, p)
	}
	return out
}
