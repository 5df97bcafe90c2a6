package models

import (
	"time"

	"babytrack/internal/daterange"
)

// The three record types deliberately keep the field names their original
// sources use for "the date" (timestamp / date+created_at / measurement_date).
// The analysis core probes these names; see daterange.DefaultDateFields.

// FeedingRecord is a single feeding entry.
type FeedingRecord struct {
	ID        string    `json:"id"`
	UserID    int       `json:"-"`
	Timestamp time.Time `json:"timestamp"` // ISO datetime of the feeding
	Method    string    `json:"method"`    // BOTTLE | BREAST | SOLID
	AmountML  float64   `json:"amount_ml,omitempty"`
	Notes     string    `json:"notes,omitempty"`
}

// StoolRecord is a single stool event.
type StoolRecord struct {
	ID          string    `json:"id"`
	UserID      int       `json:"-"`
	Date        string    `json:"date"` // yyyy-MM-dd
	CreatedAt   time.Time `json:"created_at"`
	Color       string    `json:"color"`       // YELLOW | BROWN | GREEN | BLACK | RED
	Consistency string    `json:"consistency"` // LIQUID | SOFT | FORMED | HARD
	Notes       string    `json:"notes,omitempty"`
}

// GrowthRecord is a single growth measurement.
type GrowthRecord struct {
	ID              string  `json:"id"`
	UserID          int     `json:"-"`
	MeasurementDate string  `json:"measurement_date"` // yyyy-MM-dd
	HeightCM        float64 `json:"height_cm,omitempty"`
	WeightKG        float64 `json:"weight_kg,omitempty"`
	HeadCircCM      float64 `json:"head_circumference_cm,omitempty"`
}

// AsRecord exposes the feeding in the generic shape the analysis core expects.
func (f FeedingRecord) AsRecord() daterange.Record {
	return daterange.Record{
		"id":        f.ID,
		"timestamp": f.Timestamp.UTC().Format(time.RFC3339),
		"method":    f.Method,
		"amount_ml": f.AmountML,
	}
}

// AsRecord exposes the stool event in the generic shape the analysis core expects.
func (s StoolRecord) AsRecord() daterange.Record {
	return daterange.Record{
		"id":          s.ID,
		"date":        s.Date,
		"created_at":  s.CreatedAt.UTC().Format(time.RFC3339),
		"color":       s.Color,
		"consistency": s.Consistency,
	}
}

// AsRecord exposes the measurement in the generic shape the analysis core expects.
func (g GrowthRecord) AsRecord() daterange.Record {
	return daterange.Record{
		"id":               g.ID,
		"measurement_date": g.MeasurementDate,
		"height_cm":        g.HeightCM,
		"weight_kg":        g.WeightKG,
	}
}
