package handlers

import (
	"errors"
	"net/http"
	"time"

	"babytrack/internal/models"
	"babytrack/internal/repository"

	"github.com/gin-gonic/gin"
)

const (
	errListFeedings = "failed to list feedings"
	errListStool    = "failed to list stool events"
	errListGrowth   = "failed to list growth measurements"

	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// deleteStatus maps a delete outcome to a response. Missing rows are 404,
// everything else is 500.
func (h *Handler) deleteStatus(c *gin.Context, err error, logKey string) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to delete", logKey, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// parseTimeQuery accepts either a date (yyyy-MM-dd) or an RFC3339 timestamp.
func parseTimeQuery(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// FeedingRequest is the exported model for Swagger docs of the feeding payload.
type FeedingRequest struct {
	// ISO timestamp of the feeding; defaults to now
	Timestamp time.Time `json:"timestamp,omitempty" example:"2025-07-15T09:30:00Z"`
	// Allowed: BOTTLE, BREAST, SOLID
	Method string `json:"method" example:"BOTTLE"`
	// Millilitres; required for BOTTLE
	AmountML float64 `json:"amount_ml,omitempty" example:"120"`
	Notes    string  `json:"notes,omitempty"`
}

// @Summary      Log a feeding
// @Tags         feedings
// @Accept       json
// @Produce      json
// @Param        body  body  FeedingRequest  true  "Feeding payload"
// @Success      200  {object}  models.FeedingRecord
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/feedings [post]
// @Security     BearerAuth
func (h *Handler) addFeeding(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var rec models.FeedingRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	rec.UserID = userID

	stored, err := h.services.AddFeeding(c.Request.Context(), rec)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stored)
}

// @Summary      List feedings
// @Tags         feedings
// @Produce      json
// @Param        from  query  string  false  "lower bound, date or RFC3339"
// @Param        to    query  string  false  "upper bound, date or RFC3339"
// @Success      200  {array}   models.FeedingRecord
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/feedings [get]
// @Security     BearerAuth
func (h *Handler) listFeedings(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	from, okFrom := parseTimeQuery(c.Query("from"))
	to, okTo := parseTimeQuery(c.Query("to"))
	if !okFrom || !okTo {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from/to: expected yyyy-MM-dd or RFC3339"})
		return
	}

	out, err := h.services.ListFeedings(c.Request.Context(), userID, from, to)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListFeedings, "feedings_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary      Delete a feeding
// @Tags         feedings
// @Produce      json
// @Param        id  path  string  true  "feeding id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/feedings/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteFeeding(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	err := h.services.DeleteFeeding(c.Request.Context(), userID, c.Param("id"))
	h.deleteStatus(c, err, "feedings_delete_failed")
}

// StoolRequest is the exported model for Swagger docs of the stool payload.
type StoolRequest struct {
	// yyyy-MM-dd; defaults to today
	Date string `json:"date,omitempty" example:"2025-07-15"`
	// Allowed: YELLOW, BROWN, GREEN, BLACK, RED
	Color string `json:"color" example:"YELLOW"`
	// Allowed: LIQUID, SOFT, FORMED, HARD
	Consistency string `json:"consistency" example:"SOFT"`
	Notes       string `json:"notes,omitempty"`
}

// @Summary      Log a stool event
// @Tags         stool
// @Accept       json
// @Produce      json
// @Param        body  body  StoolRequest  true  "Stool payload"
// @Success      200  {object}  models.StoolRecord
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/stool [post]
// @Security     BearerAuth
func (h *Handler) addStool(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var rec models.StoolRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	rec.UserID = userID

	stored, err := h.services.AddStool(c.Request.Context(), rec)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stored)
}

// @Summary      List stool events
// @Tags         stool
// @Produce      json
// @Param        from  query  string  false  "lower bound, yyyy-MM-dd"
// @Param        to    query  string  false  "upper bound, yyyy-MM-dd"
// @Success      200  {array}   models.StoolRecord
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/stool [get]
// @Security     BearerAuth
func (h *Handler) listStool(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	out, err := h.services.ListStool(c.Request.Context(), userID, c.Query("from"), c.Query("to"))
	if err != nil {
		// Validation errors come back from the service; treat them as 400.
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary      Delete a stool event
// @Tags         stool
// @Produce      json
// @Param        id  path  string  true  "stool event id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/stool/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteStool(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	err := h.services.DeleteStool(c.Request.Context(), userID, c.Param("id"))
	h.deleteStatus(c, err, "stool_delete_failed")
}

// GrowthRequest is the exported model for Swagger docs of the growth payload.
type GrowthRequest struct {
	// yyyy-MM-dd; defaults to today
	MeasurementDate string  `json:"measurement_date,omitempty" example:"2025-07-15"`
	HeightCM        float64 `json:"height_cm,omitempty" example:"58.5"`
	WeightKG        float64 `json:"weight_kg,omitempty" example:"5.2"`
	HeadCircCM      float64 `json:"head_circumference_cm,omitempty" example:"38.1"`
}

// @Summary      Log a growth measurement
// @Tags         growth
// @Accept       json
// @Produce      json
// @Param        body  body  GrowthRequest  true  "Measurement payload"
// @Success      200  {object}  models.GrowthRecord
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/growth [post]
// @Security     BearerAuth
func (h *Handler) addGrowth(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var rec models.GrowthRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	rec.UserID = userID

	stored, err := h.services.AddGrowth(c.Request.Context(), rec)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stored)
}

// @Summary      List growth measurements
// @Tags         growth
// @Produce      json
// @Param        from  query  string  false  "lower bound, yyyy-MM-dd"
// @Param        to    query  string  false  "upper bound, yyyy-MM-dd"
// @Success      200  {array}   models.GrowthRecord
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/growth [get]
// @Security     BearerAuth
func (h *Handler) listGrowth(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	out, err := h.services.ListGrowth(c.Request.Context(), userID, c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary      Delete a growth measurement
// @Tags         growth
// @Produce      json
// @Param        id  path  string  true  "measurement id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/growth/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteGrowth(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	err := h.services.DeleteGrowth(c.Request.Context(), userID, c.Param("id"))
	h.deleteStatus(c, err, "growth_delete_failed")
}
