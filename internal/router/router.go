package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/proactivefit/backend/config"
	"github.com/proactivefit/backend/internal/api"
	"github.com/proactivefit/backend/internal/database"
	"github.com/proactivefit/backend/internal/middleware"
	"github.com/proactivefit/backend/internal/service"
)

// SetupRouter configures the application routes. redisClient may be nil, in
// which case plans are kept in process memory and creation rate limits are
// disabled.
func SetupRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS(nil))
	router.Use(middleware.Metrics())

	// Health and metrics endpoints (no auth required)
	router.GET("/health", api.HealthCheck)
	router.GET("/api/health", api.HealthCheck)
	router.GET("/health/ready", func(c *gin.Context) {
		if err := database.HealthCheck(c.Request.Context(), db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Initialize services
	supportService := service.NewSupportService(db)
	authService := service.NewAuthService(cfg.JWTSecret, cfg.AdminPasswordHash)
	galleryService := service.NewGalleryService(db)

	var planStore service.PlanStore = service.NewMemoryPlanStore()
	var topicLimiter, postLimiter *middleware.RateLimiter
	if redisClient != nil {
		planStore = service.NewRedisPlanStore(redisClient)
		topicLimiter = middleware.NewTopicCreationRateLimiter(redisClient)
		postLimiter = middleware.NewPostCreationRateLimiter(redisClient)
	}
	planService := service.NewPlanService(planStore)

	// Initialize handlers
	supportHandler := api.NewSupportHandlerWithRateLimit(supportService, topicLimiter, postLimiter)
	planHandler := api.NewPlanHandler(planService)
	calculatorHandler := api.NewCalculatorHandler()
	workoutsHandler := api.NewWorkoutsHandler()
	authHandler := api.NewAuthHandler(authService)
	galleryHandler := api.NewGalleryHandler(galleryService, authService)

	// Register routes
	apiGroup := router.Group("/api")
	supportHandler.RegisterRoutes(apiGroup)
	planHandler.RegisterRoutes(apiGroup)
	calculatorHandler.RegisterRoutes(apiGroup)
	workoutsHandler.RegisterRoutes(apiGroup)
	authHandler.RegisterRoutes(apiGroup)
	galleryHandler.RegisterRoutes(apiGroup)

	return router
}
