package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tourmuse/cmd/fx/ai_fx"
	"tourmuse/cmd/fx/budget_fx"
	"tourmuse/cmd/fx/chat_fx"
	"tourmuse/cmd/fx/controllers_fx"
	"tourmuse/cmd/fx/db_fx"
	"tourmuse/cmd/fx/guide_fx"
	"tourmuse/cmd/fx/hotels_fx"
	"tourmuse/cmd/fx/itinerary_fx"
	"tourmuse/cmd/fx/planner_fx"
	"tourmuse/cmd/fx/staging_fx"
	"tourmuse/cmd/fx/trips_fx"
	"tourmuse/internal/api/controllers"
	"tourmuse/internal/config"
	"tourmuse/internal/infra"
	"tourmuse/pkg/logger"
	"tourmuse/pkg/middleware"
	"tourmuse/pkg/utils"

	"github.com/redis/go-redis/v9"
)

func main() {
	logger.Init()

	app := fx.New(
		db_fx.Module,
		staging_fx.Module,
		ai_fx.Module,
		itinerary_fx.Module,
		planner_fx.Module,
		trips_fx.Module,
		budget_fx.Module,
		chat_fx.Module,
		hotels_fx.Module,
		guide_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(InstallJWTSecret),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func InstallJWTSecret(cfg *config.Config) {
	utils.SetJWTSecret(cfg.JWTSecret)
}

func StartServer(
	lc fx.Lifecycle,
	engine *gin.Engine,
	cfg *config.Config,
	mongoDB *mongo.Database,
	catalogDB *gorm.DB,
	redisClient *redis.Client,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Log.Infof("starting HTTP server on :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					logger.Log.Fatalf("failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Log.Info("stopping HTTP server")
			infra.CloseMongo(mongoDB)
			infra.ClosePostgresql(catalogDB)
			if redisClient != nil {
				infra.CloseRedis(redisClient)
			}
			return nil
		},
	})
}

func ProvideRouter(
	plannerController *controllers.PlannerController,
	itineraryController *controllers.ItineraryController,
	tripsController *controllers.TripsController,
	budgetController *controllers.BudgetController,
	chatController *controllers.ChatController,
	hotelsController *controllers.HotelsController,
	guideController *controllers.GuideController,
) *gin.Engine {

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		plannerController,
		itineraryController,
		tripsController,
		budgetController,
		chatController,
		hotelsController,
		guideController,
	)

	return r
}

func RegisterRoutes(r *gin.Engine,
	plannerController *controllers.PlannerController,
	itineraryController *controllers.ItineraryController,
	tripsController *controllers.TripsController,
	budgetController *controllers.BudgetController,
	chatController *controllers.ChatController,
	hotelsController *controllers.HotelsController,
	guideController *controllers.GuideController,
) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	planGroup := r.Group("/plan")
	planGroup.POST("/submit", middleware.SessionMiddleware(), plannerController.Submit)
	planGroup.POST("/resume/:draftId", middleware.JWTAuthMiddleware(), plannerController.Resume)

	itineraryGroup := r.Group("/itinerary")
	itineraryGroup.Use(middleware.JWTAuthMiddleware())
	itineraryGroup.GET("", itineraryController.Get)
	itineraryGroup.POST("/replan", itineraryController.Replan)

	tripsGroup := r.Group("/trips")
	tripsGroup.Use(middleware.JWTAuthMiddleware())
	tripsGroup.POST("/confirm", tripsController.Confirm)
	tripsGroup.GET("", tripsController.List)
	tripsGroup.GET("/recent", tripsController.Recent)
	tripsGroup.GET("/:tripId", tripsController.Get)
	tripsGroup.PATCH("/:tripId", tripsController.Update)
	tripsGroup.PUT("/:tripId/status", tripsController.SetStatus)
	tripsGroup.DELETE("/:tripId", tripsController.Delete)

	budgetGroup := r.Group("/budget")
	budgetGroup.Use(middleware.JWTAuthMiddleware())
	budgetGroup.GET("", budgetController.Summary)
	budgetGroup.PUT("/tier", budgetController.SetTier)
	budgetGroup.POST("/optimize", budgetController.Optimize)

	chatGroup := r.Group("/chat")
	chatGroup.Use(middleware.JWTAuthMiddleware())
	chatGroup.POST("/message", chatController.Message)
	chatGroup.GET("/history", chatController.History)

	r.GET("/hotels", hotelsController.Search)
	r.GET("/guide", guideController.Guide)
	r.GET("/guide/place", guideController.PlaceDetails)
}
