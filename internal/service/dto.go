package service

import (
	"babytrack/internal/daterange"
	"babytrack/internal/models"
)

// AnalysisQuery selects a series and a window for the analysis endpoints.
// When Start and End are both set, they are validated against the logged
// bounds; otherwise the optimal window is chosen around EndAnchor.
type AnalysisQuery struct {
	DataType  daterange.DataType
	Mode      daterange.Mode
	Start     string // optional manual range start, yyyy-MM-dd
	End       string // optional manual range end, yyyy-MM-dd
	EndAnchor string // optional anchor for optimal selection, yyyy-MM-dd
}

// SeriesPoint is one aggregated day in an analysis series.
type SeriesPoint struct {
	Date  string  `json:"date"`
	Count int     `json:"count"`
	Value float64 `json:"value,omitempty"` // avg amount_ml (feed) or weight_kg (growth)
}

// AnalysisResult is everything the dashboard needs to render one series.
type AnalysisResult struct {
	DataType      daterange.DataType `json:"data_type"`
	Mode          daterange.Mode     `json:"mode"`
	Bounds        daterange.Bounds   `json:"bounds"`
	Range         daterange.Range    `json:"range"`
	Records       []daterange.Record `json:"records"`
	Series        []SeriesPoint      `json:"series"`
	HasEnoughData bool               `json:"has_enough_data"`
	LastLogged    string             `json:"last_logged,omitempty"`
}

// ProviderFilter narrows, orders and pages the provider directory.
type ProviderFilter struct {
	City      string
	Service   string
	Query     string
	MinRating float64
	SortBy    string // rating | price | name
	Order     string // asc | desc
	Page      int
	PerPage   int
}

// ProviderPage is one page of directory results.
type ProviderPage struct {
	Providers []models.Provider `json:"providers"`
	Total     int               `json:"total"`
	Page      int               `json:"page"`
	PerPage   int               `json:"per_page"`
}
