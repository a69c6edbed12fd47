package handler

import (
	"net/http"

	"friction-log/internal/config"
	"friction-log/internal/middleware"
	"friction-log/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter wires services and routes onto a gin engine.
func NewRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	items := service.NewItemService(db)
	settings := service.NewSettingsService(db)
	analytics := service.NewAnalyticsService(db, settings)
	auth := service.NewAuthService(cfg.Auth)

	itemH := NewItemHandler(items)
	analyticsH := NewAnalyticsHandler(analytics)
	settingsH := NewSettingsHandler(settings)
	authH := NewAuthHandler(auth)

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    "Friction Log API",
			"version": "1.0.0",
			"health":  "/health",
		})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	if auth.Enabled() {
		r.POST("/api/login", authH.Login)
		api.Use(middleware.JWTAuth())
	}

	api.POST("/friction-items", itemH.Create)
	api.GET("/friction-items", itemH.List)
	api.GET("/friction-items/:id", itemH.Get)
	api.PUT("/friction-items/:id", itemH.Update)
	api.DELETE("/friction-items/:id", itemH.Delete)
	api.POST("/friction-items/:id/encounter", itemH.RecordEncounter)

	api.GET("/analytics/score", analyticsH.Score)
	api.GET("/analytics/trend", analyticsH.Trend)
	api.GET("/analytics/by-category", analyticsH.ByCategory)
	api.GET("/analytics/most-annoying", analyticsH.MostAnnoying)

	api.GET("/settings/global-daily-limit", settingsH.GetGlobalDailyLimit)
	api.PUT("/settings/global-daily-limit", settingsH.SetGlobalDailyLimit)

	return r
}
