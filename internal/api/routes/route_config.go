package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rotnot/rotnot-backend/internal/api/handlers"
	"github.com/rotnot/rotnot-backend/internal/middleware"
	"github.com/rotnot/rotnot-backend/pkg/jwt"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	FoodHandler      handlers.FoodHandler
	DonationHandler  handlers.DonationHandler
	SurplusHandler   handlers.SurplusHandler
	FoodBankHandler  handlers.FoodBankHandler
	DetectionHandler handlers.DetectionHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.User()
	c.Foods()
	c.Donations()
	c.Surplus()
	c.FoodBanks()
	c.Detection()
}

// GuestRoute registers everything reachable without a token. Public reads
// must be registered before the authenticated groups claim their prefixes.
func (c *Config) GuestRoute() {
	c.App.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	c.App.Get("/api/v1/donations/leaderboard", c.DonationHandler.GetLeaderboard)
	c.App.Get("/api/v1/food-banks/nearby", c.FoodBankHandler.GetNearbyFoodBanks)
	c.App.Get("/api/v1/food-banks", c.FoodBankHandler.GetAllFoodBanks)
	c.App.Get("/api/v1/food-detection/health", c.DetectionHandler.Health)
}

func (c *Config) User() {
	users := c.App.Group("/api/v1/users", c.Middleware.AuthMiddleware(c.JWTService))
	{
		users.Post("/profile", c.UserHandler.UpdateProfile)
		users.Get("/profile/me", c.UserHandler.Me)
	}
}

func (c *Config) Foods() {
	foods := c.App.Group("/api/v1/foods", c.Middleware.AuthMiddleware(c.JWTService))

	foods.Get("/expiring", c.FoodHandler.GetExpiringFoodItems)

	// Basic CRUD operations
	foods.Post("", c.FoodHandler.AddFoodItem)
	foods.Get("", c.FoodHandler.GetFoodItems)
	foods.Get("/:id", c.FoodHandler.GetFoodItemDetails)
	foods.Put("/:id", c.FoodHandler.UpdateFoodItem)
	foods.Delete("/:id", c.FoodHandler.DeleteFoodItem)
}

func (c *Config) Donations() {
	donations := c.App.Group("/api/v1/donations", c.Middleware.AuthMiddleware(c.JWTService))

	donations.Get("/pending", c.DonationHandler.GetPendingDonations)

	donations.Post("", c.DonationHandler.CreateDonation)
	donations.Get("", c.DonationHandler.GetUserDonations)
	donations.Get("/:id", c.DonationHandler.GetDonationDetails)
	donations.Post("/:id/accept", c.DonationHandler.AcceptDonation)
	donations.Post("/:id/decline", c.DonationHandler.DeclineDonation)
	donations.Post("/:id/dismiss", c.DonationHandler.DismissDonation)
	donations.Patch("/:id/status", c.DonationHandler.UpdateDonationStatus)
	donations.Delete("/:id", c.DonationHandler.CancelDonation)
}

func (c *Config) Surplus() {
	surplus := c.App.Group("/api/v1/surplus", c.Middleware.AuthMiddleware(c.JWTService))

	surplus.Post("", c.SurplusHandler.PostSurplus)
	surplus.Get("", c.SurplusHandler.GetAvailableSurplus)
	surplus.Post("/:id/claim", c.SurplusHandler.ClaimSurplus)
	surplus.Post("/:id/complete", c.SurplusHandler.CompleteSurplus)
}

func (c *Config) FoodBanks() {
	foodBanks := c.App.Group("/api/v1/food-banks", c.Middleware.AuthMiddleware(c.JWTService))

	foodBanks.Post("", c.FoodBankHandler.CreateFoodBank)
}

func (c *Config) Detection() {
	detect := c.App.Group("/api/v1/food-detection", c.Middleware.AuthMiddleware(c.JWTService))

	detect.Post("/detect", c.DetectionHandler.DetectBase64)
}
