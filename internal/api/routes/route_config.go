package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kiranchaudhary18/crop-disease-identifier/internal/api/handlers"
	"github.com/kiranchaudhary18/crop-disease-identifier/internal/middleware"
	"github.com/kiranchaudhary18/crop-disease-identifier/pkg/jwt"
)

type Config struct {
	App            *fiber.App
	UserHandler    handlers.UserHandler
	ScanHandler    handlers.ScanHandler
	ProductHandler handlers.ProductHandler
	DiseaseHandler handlers.DiseaseHandler
	AdvisorHandler handlers.AdvisorHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Scans()
	c.Store()
	c.Diseases()
	c.Advisor()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
	}
}

func (c *Config) Scans() {
	scans := c.App.Group("/api/v1/scans", c.Middleware.AuthMiddleware(c.JWTService))

	scans.Post("", c.ScanHandler.SubmitScan)
	scans.Get("", c.ScanHandler.GetScanHistory)
	scans.Get("/:id", c.ScanHandler.GetScanDetail)
}

func (c *Config) Store() {
	products := c.App.Group("/api/v1/products")

	products.Get("", c.ProductHandler.GetProducts)
	products.Get("/:id", c.ProductHandler.GetProductDetails)
}

func (c *Config) Diseases() {
	diseases := c.App.Group("/api/v1/diseases")

	diseases.Get("/search", c.DiseaseHandler.SearchSolutions)
}

func (c *Config) Advisor() {
	advisor := c.App.Group("/api/v1/advisor", c.Middleware.AuthMiddleware(c.JWTService))

	advisor.Post("/chat", c.AdvisorHandler.Chat)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
