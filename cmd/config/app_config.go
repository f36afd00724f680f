package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rotnot/rotnot-backend/internal/api/handlers"
	"github.com/rotnot/rotnot-backend/internal/api/routes"
	"github.com/rotnot/rotnot-backend/internal/middleware"
	"github.com/rotnot/rotnot-backend/internal/utils"
	"github.com/rotnot/rotnot-backend/pkg/detection"
	"github.com/rotnot/rotnot-backend/pkg/donation"
	"github.com/rotnot/rotnot-backend/pkg/expiry"
	"github.com/rotnot/rotnot-backend/pkg/food"
	"github.com/rotnot/rotnot-backend/pkg/foodbank"
	"github.com/rotnot/rotnot-backend/pkg/jwt"
	"github.com/rotnot/rotnot-backend/pkg/surplus"
	"github.com/rotnot/rotnot-backend/pkg/user"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, *expiry.Sweeper, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
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

	app.Use(recover.New())

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
	}))

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	donationRepository := donation.NewDonationRepository(db)
	surplusRepository := surplus.NewSurplusRepository(db)
	foodBankRepository := foodbank.NewFoodBankRepository(db)
	sweepRepository := expiry.NewSweepRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository)
	foodService := food.NewFoodService(foodRepository)
	donationService := donation.NewDonationService(donationRepository, foodRepository, userRepository)
	surplusService := surplus.NewSurplusService(surplusRepository, userRepository)
	foodBankService := foodbank.NewFoodBankService(foodBankRepository)
	detectionService := detection.NewDetectionService()
	sweeper := expiry.NewSweeper(sweepRepository)

	middlewares := middleware.NewMiddleware(userService)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	donationHandler := handlers.NewDonationHandler(donationService, validator)
	surplusHandler := handlers.NewSurplusHandler(surplusService, validator)
	foodBankHandler := handlers.NewFoodBankHandler(foodBankService, validator)
	detectionHandler := handlers.NewDetectionHandler(detectionService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		FoodHandler:      foodHandler,
		DonationHandler:  donationHandler,
		SurplusHandler:   surplusHandler,
		FoodBankHandler:  foodBankHandler,
		DetectionHandler: detectionHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, sweeper, nil
}
