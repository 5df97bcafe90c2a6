package handlers

import (
	"net/http"

	"babytrack/internal/daterange"
	"babytrack/internal/service"

	"github.com/gin-gonic/gin"
)

const errRunAnalysis = "failed to run analysis"

// analysisQueryFromRequest maps path and query params onto a service query.
func analysisQueryFromRequest(c *gin.Context) service.AnalysisQuery {
	return service.AnalysisQuery{
		DataType:  daterange.DataType(c.Param("type")),
		Mode:      daterange.Mode(c.Query("mode")),
		Start:     c.Query("start"),
		End:       c.Query("end"),
		EndAnchor: c.Query("end_anchor"),
	}
}

// @Summary      Analyze a data series
// @Description  Reconciles the requested window against logged data and returns the filtered records plus a per-day series
// @Tags         analysis
// @Produce      json
// @Param        type        path   string  true   "feed | stool | growth"
// @Param        mode        query  string  false  "week | month (default week)"
// @Param        start       query  string  false  "manual range start, yyyy-MM-dd"
// @Param        end         query  string  false  "manual range end, yyyy-MM-dd"
// @Param        end_anchor  query  string  false  "anchor for automatic selection, yyyy-MM-dd"
// @Success      200  {object}  service.AnalysisResult
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/analysis/{type} [get]
// @Security     BearerAuth
func (h *Handler) getAnalysis(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	res, err := h.analyze(c, userID)
	if err != nil {
		return // response already written
	}
	c.JSON(http.StatusOK, res)
}

// analyze runs the service call and writes the error response on failure.
func (h *Handler) analyze(c *gin.Context, userID int) (service.AnalysisResult, error) {
	q := analysisQueryFromRequest(c)
	res, err := h.services.Analyze(c.Request.Context(), userID, q)
	if err != nil {
		switch q.DataType {
		case daterange.DataFeed, daterange.DataStool, daterange.DataGrowth:
			if q.Mode == "" || q.Mode == daterange.ModeWeek || q.Mode == daterange.ModeMonth {
				h.logAndJSONError(c, http.StatusInternalServerError, errRunAnalysis, "analysis_failed", err, "type", q.DataType)
				return service.AnalysisResult{}, err
			}
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return service.AnalysisResult{}, err
	}
	return res, nil
}
