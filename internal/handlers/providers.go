package handlers

import (
	"net/http"
	"strconv"

	"babytrack/internal/service"

	"github.com/gin-gonic/gin"
)

const errListProviders = "failed to list providers"

// @Summary      Browse the childcare provider directory
// @Tags         providers
// @Produce      json
// @Param        city        query  string  false  "exact city, case-insensitive"
// @Param        service     query  string  false  "offered service, e.g. daycare"
// @Param        q           query  string  false  "name substring"
// @Param        min_rating  query  number  false  "minimum rating"
// @Param        sort        query  string  false  "rating | price | name (default rating)"
// @Param        order       query  string  false  "asc | desc"
// @Param        page        query  int     false  "page number, 1-based"
// @Param        per_page    query  int     false  "page size, max 100"
// @Success      200  {object}  service.ProviderPage
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/providers [get]
// @Security     BearerAuth
func (h *Handler) listProviders(c *gin.Context) {
	if _, ok := getUserID(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	f := service.ProviderFilter{
		City:    c.Query("city"),
		Service: c.Query("service"),
		Query:   c.Query("q"),
		SortBy:  c.Query("sort"),
		Order:   c.Query("order"),
	}
	if s := c.Query("min_rating"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			f.MinRating = v
		}
	}
	if s := c.Query("page"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			f.Page = v
		}
	}
	if s := c.Query("per_page"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			f.PerPage = v
		}
	}

	page, err := h.services.ListProviders(c.Request.Context(), f)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListProviders, "providers_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, page)
}
