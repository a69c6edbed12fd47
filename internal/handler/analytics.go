package handler

import (
	"net/http"
	"strconv"

	"friction-log/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	svc *service.AnalyticsService
}

func NewAnalyticsHandler(svc *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// GET /api/analytics/score
func (h *AnalyticsHandler) Score(c *gin.Context) {
	score, err := h.svc.CurrentScore(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, score)
}

// GET /api/analytics/trend?days=
func (h *AnalyticsHandler) Trend(c *gin.Context) {
	days := 30
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "days must be an integer"})
			return
		}
		days = n
	}
	if days < 1 || days > 365 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "days must be between 1 and 365"})
		return
	}

	points, err := h.svc.Trend(c.Request.Context(), days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, points)
}

// GET /api/analytics/by-category
func (h *AnalyticsHandler) ByCategory(c *gin.Context) {
	breakdown, err := h.svc.CategoryBreakdown(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, breakdown)
}

// GET /api/analytics/most-annoying?limit=
func (h *AnalyticsHandler) MostAnnoying(c *gin.Context) {
	limit := 5
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "limit must be an integer"})
			return
		}
		limit = n
	}
	if limit < 1 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "limit must be at least 1"})
		return
	}

	items, err := h.svc.MostAnnoying(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}
