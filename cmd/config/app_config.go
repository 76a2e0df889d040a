package config

import (
	"os"
	"time"

	"recipehub/internal/api/handlers"
	"recipehub/internal/api/routes"
	"recipehub/internal/middleware"
	"recipehub/internal/utils"
	"recipehub/internal/utils/storage"
	"recipehub/pkg/assist"
	"recipehub/pkg/engagement"
	"recipehub/pkg/feed"
	"recipehub/pkg/jwt"
	"recipehub/pkg/recipe"
	"recipehub/pkg/stats"
	"recipehub/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	engagementRepository := engagement.NewEngagementRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	recipeService := recipe.NewRecipeService(recipeRepository, engagementRepository, s3)
	engagementService := engagement.NewEngagementService(engagementRepository, recipeRepository, userRepository)
	feedService := feed.NewFeedService(engagementRepository)
	statsService := stats.NewStatsService(recipeRepository, engagementRepository, feedService)
	assistService := assist.NewAssistService()

	// Handler
	userHandler := handlers.NewUserHandler(userService, statsService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, engagementService, assistService, validator)
	engagementHandler := handlers.NewEngagementHandler(engagementService, validator)
	dashboardHandler := handlers.NewDashboardHandler(statsService)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		RecipeHandler:     recipeHandler,
		EngagementHandler: engagementHandler,
		DashboardHandler:  dashboardHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
