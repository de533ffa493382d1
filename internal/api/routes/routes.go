package routes

import (
	"time"

	"gearguard-backend/internal/api/handlers"
	"gearguard-backend/internal/api/middleware"
	"gearguard-backend/internal/auth"
	"gearguard-backend/internal/config"
	"gearguard-backend/internal/service"
	"gearguard-backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all the routes for the application. The store is
// passed in explicitly so callers (and tests) control its lifecycle.
func SetupRoutes(st *store.Store, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validate := validator.New()
	notifier := service.NewLogNotifier()

	// Initialize services
	teamService := service.NewTeamService(st, validate)
	memberService := service.NewMemberService(st, validate)
	equipmentService := service.NewEquipmentService(st, validate)
	requestService := service.NewRequestService(st, validate, notifier)
	calendarService := service.NewCalendarService(st)
	dashboardService := service.NewDashboardService(st)
	authService := auth.NewService(cfg.JWTSecret, time.Duration(cfg.AuthDelayMillis)*time.Millisecond)

	// Initialize handlers
	teamHandler := handlers.NewTeamHandler(teamService)
	memberHandler := handlers.NewMemberHandler(memberService)
	equipmentHandler := handlers.NewEquipmentHandler(equipmentService)
	requestHandler := handlers.NewRequestHandler(requestService)
	calendarHandler := handlers.NewCalendarHandler(calendarService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	healthHandler := handlers.NewHealthHandler(st)
	authHandler := auth.NewHandler(authService)
	authMiddleware := auth.NewMiddleware(authService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.Signup)
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
		}

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
		}

		// Team member routes
		members := v1.Group("/members")
		{
			members.GET("", memberHandler.ListMembers)
			members.POST("", memberHandler.CreateMember)
			members.GET("/:id", memberHandler.GetMember)
			members.PUT("/:id", memberHandler.UpdateMember)
			members.DELETE("/:id", memberHandler.DeleteMember)
		}

		// Equipment routes
		equipment := v1.Group("/equipment")
		{
			equipment.GET("", equipmentHandler.ListEquipment)
			equipment.POST("", equipmentHandler.CreateEquipment)
			equipment.GET("/:id", equipmentHandler.GetEquipment)
			equipment.PUT("/:id", equipmentHandler.UpdateEquipment)
			equipment.POST("/:id/scrap", equipmentHandler.ScrapEquipment)
			equipment.DELETE("/:id", equipmentHandler.DeleteEquipment)
		}

		// Maintenance request routes
		requests := v1.Group("/requests")
		{
			requests.GET("", requestHandler.ListRequests)
			requests.GET("/board", requestHandler.GetBoard)
			requests.POST("", requestHandler.CreateRequest)
			requests.GET("/:id", requestHandler.GetRequest)
			requests.PUT("/:id", requestHandler.UpdateRequest)
			requests.PUT("/:id/stage", requestHandler.MoveStage)
			requests.PUT("/:id/assign", requestHandler.Assign)
			requests.PUT("/:id/duration", requestHandler.RecordDuration)
			requests.DELETE("/:id", requestHandler.DeleteRequest)
		}

		// Calendar route
		v1.GET("/calendar", calendarHandler.GetMonth)

		// Dashboard routes
		v1.GET("/dashboard/stats", dashboardHandler.GetStats)
		v1.GET("/meta", dashboardHandler.GetMeta)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}
