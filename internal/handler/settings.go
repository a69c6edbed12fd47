package handler

import (
	"net/http"
	"strconv"

	"friction-log/internal/logger"
	"friction-log/internal/service"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	svc *service.SettingsService
}

func NewSettingsHandler(svc *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// GET /api/settings/global-daily-limit
func (h *SettingsHandler) GetGlobalDailyLimit(c *gin.Context) {
	limit, err := h.svc.GlobalDailyLimit(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"limit": limit})
}

// PUT /api/settings/global-daily-limit?limit=
// Omitting limit clears the setting.
func (h *SettingsHandler) SetGlobalDailyLimit(c *gin.Context) {
	var limit *int
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "limit must be an integer"})
			return
		}
		if n < 1 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "global daily limit must be at least 1"})
			return
		}
		limit = &n
	}

	if err := h.svc.SetGlobalDailyLimit(c.Request.Context(), limit); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logger.Info("settings.global_daily_limit", "limit", limit)
	c.JSON(http.StatusOK, gin.H{"limit": limit})
}
