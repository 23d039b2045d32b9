package routes

import (
	"net/http"
	"time"

	"github.com/AnoopG7/Day-Tracker-sub001/config"
	"github.com/AnoopG7/Day-Tracker-sub001/controllers"
	"github.com/AnoopG7/Day-Tracker-sub001/middlewares"
	"github.com/AnoopG7/Day-Tracker-sub001/services"
	"github.com/AnoopG7/Day-Tracker-sub001/validation"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupRouter wires middleware, services and controllers onto a gin engine.
func SetupRouter(cfg *config.Config, db *gorm.DB, log *zap.Logger) *gin.Engine {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(log))
	r.Use(middlewares.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	rules := validation.DefaultRules()
	hub := services.NewRealtimeHub()

	userSvc := services.NewUserService(db, cfg.JWTSecret)
	dayLogSvc := services.NewDayLogService(db)
	activitySvc := services.NewActivityService(db, rules)
	templateSvc := services.NewTemplateService(db, rules)
	nutritionSvc := services.NewNutritionService(db)
	expenseSvc := services.NewExpenseService(db)
	dashboardSvc := services.NewDashboardService(db)
	trendsSvc := services.NewTrendsService(db)
	estimatorSvc := services.NewEstimatorService(cfg.EstimatorAPIURL, cfg.EstimatorAPIKey)

	authCtl := controllers.NewAuthController(userSvc)
	userCtl := controllers.NewUserController(userSvc)
	dayLogCtl := controllers.NewDayLogController(dayLogSvc, hub)
	activityCtl := controllers.NewActivityController(activitySvc, hub)
	templateCtl := controllers.NewTemplateController(templateSvc)
	nutritionCtl := controllers.NewNutritionController(nutritionSvc, estimatorSvc, hub)
	expenseCtl := controllers.NewExpenseController(expenseSvc, hub)
	dashboardCtl := controllers.NewDashboardController(dashboardSvc)
	trendsCtl := controllers.NewTrendsController(trendsSvc)
	realtimeCtl := controllers.NewRealtimeController(hub)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		api.GET("/profile", userCtl.GetProfile)
		api.PUT("/profile", userCtl.UpdateProfile)

		api.GET("/daylogs", dayLogCtl.Get)
		api.PUT("/daylogs/:date", dayLogCtl.Upsert)
		api.DELETE("/daylogs/:date", dayLogCtl.Delete)

		api.GET("/activities", activityCtl.List)
		api.POST("/activities", activityCtl.Create)
		api.PUT("/activities/:id", activityCtl.Update)
		api.DELETE("/activities/:id", activityCtl.Delete)

		api.GET("/templates", templateCtl.List)
		api.POST("/templates", templateCtl.Create)
		api.PUT("/templates/:id", templateCtl.Update)
		api.DELETE("/templates/:id", templateCtl.Deactivate)
		api.POST("/templates/:id/restore", templateCtl.Restore)

		api.GET("/nutrition", nutritionCtl.List)
		api.POST("/nutrition", nutritionCtl.Create)
		api.PUT("/nutrition/:id", nutritionCtl.Update)
		api.DELETE("/nutrition/:id", nutritionCtl.Delete)
		api.POST("/nutrition/estimate", nutritionCtl.Estimate)

		api.GET("/expenses", expenseCtl.List)
		api.POST("/expenses", expenseCtl.Create)
		api.PUT("/expenses/:id", expenseCtl.Update)
		api.DELETE("/expenses/:id", expenseCtl.Delete)

		api.GET("/dashboard", dashboardCtl.Get)
		api.GET("/trends/summary", trendsCtl.Summary)
		api.GET("/trends/calendar", trendsCtl.Calendar)

		api.GET("/ws", realtimeCtl.DayUpdatesWS)
	}

	return r
}
