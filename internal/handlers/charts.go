package handlers

import (
	"fmt"
	"net/http"

	"babytrack/internal/daterange"
	"babytrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// chartTitles maps a series to its chart title and value-axis label.
var chartTitles = map[daterange.DataType][2]string{
	daterange.DataFeed:   {"Feedings", "Avg amount (ml)"},
	daterange.DataStool:  {"Stool events", ""},
	daterange.DataGrowth: {"Growth", "Avg weight (kg)"},
}

// @Summary      Render a data series as a chart
// @Description  Same window reconciliation as the analysis endpoint, rendered as an HTML line chart
// @Tags         analysis
// @Produce      html
// @Param        type        path   string  true   "feed | stool | growth"
// @Param        mode        query  string  false  "week | month (default week)"
// @Param        start       query  string  false  "manual range start, yyyy-MM-dd"
// @Param        end         query  string  false  "manual range end, yyyy-MM-dd"
// @Param        end_anchor  query  string  false  "anchor for automatic selection, yyyy-MM-dd"
// @Success      200  {string}  string  "HTML page"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/analysis/{type}/chart [get]
// @Security     BearerAuth
func (h *Handler) getAnalysisChart(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	res, err := h.analyze(c, userID)
	if err != nil {
		return // response already written
	}

	line := seriesLineChart(res)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := line.Render(c.Writer); err != nil {
		if h.log != nil {
			h.log.Errorw("chart_render_failed", "err", err, "type", res.DataType)
		}
		c.Status(http.StatusInternalServerError)
	}
}

// seriesLineChart turns an analysis result into a rendered line chart: the
// per-day count, plus the value series when the data type carries one.
func seriesLineChart(res service.AnalysisResult) *charts.Line {
	titles := chartTitles[res.DataType]

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "macarons"}),
		charts.WithTitleOpts(opts.Title{
			Title:    titles[0],
			Subtitle: fmt.Sprintf("%s to %s (%s)", res.Range.Start, res.Range.End, res.Mode),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{
				Rotate: 45,
			},
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:            opts.Bool(true),
			Trigger:         "axis",
			BackgroundColor: "#f5f5f5",
			BorderColor:     "#ccc",
			AxisPointer: &opts.AxisPointer{
				Type: "cross",
			}}),
	)

	dates := make([]string, 0, len(res.Series))
	counts := make([]opts.LineData, 0, len(res.Series))
	values := make([]opts.LineData, 0, len(res.Series))
	hasValues := false
	for _, p := range res.Series {
		dates = append(dates, p.Date)
		counts = append(counts, opts.LineData{Value: p.Count})
		values = append(values, opts.LineData{Value: p.Value})
		if p.Value != 0 {
			hasValues = true
		}
	}

	line.SetXAxis(dates)
	line.AddSeries("Entries per day", counts)
	if hasValues && titles[1] != "" {
		line.AddSeries(titles[1], values)
	}
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	return line
}
