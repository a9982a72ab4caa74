package api

import (
	"net/http"
	"time"

	"github.com/areum/activity-backend-go/internal/activity"
	"github.com/areum/activity-backend-go/internal/config"
	"github.com/areum/activity-backend-go/internal/handler"
	"github.com/areum/activity-backend-go/internal/middleware"
	"github.com/areum/activity-backend-go/internal/service"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires the recognition pipeline and registers all routes
func SetupRouter(cfg *config.Config, history service.HistoryStore) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	calc := activity.NewCalculator(cfg.ActivityDetectionThreshold)
	recognitionService := service.NewRecognitionService(calc, history)
	activityHandler := handler.NewActivityHandler(recognitionService)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Activity Recognition API is running",
		})
	})

	api := r.Group("/api/v1")
	if cfg.AuthEnabled {
		api.Use(middleware.Auth(cfg.JWTSecret))
	}
	{
		act := api.Group("/activity")
		{
			act.POST("/recognize", activityHandler.RecognizeActivity)
			act.POST("/metrics", activityHandler.CalculateMetrics)
			act.GET("/types", activityHandler.GetActivityTypes)
			act.GET("/history", activityHandler.GetRecognitionHistory)
		}
	}

	return r
}
