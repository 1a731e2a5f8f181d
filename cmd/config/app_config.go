package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"github.com/kiranchaudhary18/crop-disease-identifier/internal/api/handlers"
	"github.com/kiranchaudhary18/crop-disease-identifier/internal/api/routes"
	"github.com/kiranchaudhary18/crop-disease-identifier/internal/middleware"
	"github.com/kiranchaudhary18/crop-disease-identifier/internal/utils"
	"github.com/kiranchaudhary18/crop-disease-identifier/internal/utils/storage"
	"github.com/kiranchaudhary18/crop-disease-identifier/pkg/advisor"
	"github.com/kiranchaudhary18/crop-disease-identifier/pkg/disease"
	"github.com/kiranchaudhary18/crop-disease-identifier/pkg/jwt"
	"github.com/kiranchaudhary18/crop-disease-identifier/pkg/prediction"
	"github.com/kiranchaudhary18/crop-disease-identifier/pkg/product"
	"github.com/kiranchaudhary18/crop-disease-identifier/pkg/scan"
	"github.com/kiranchaudhary18/crop-disease-identifier/pkg/user"
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
		TimeZone:   "Asia/Kolkata",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	predictionClient := prediction.NewClient()

	// Repository
	userRepository := user.NewUserRepository(db)
	scanRepository := scan.NewScanRepository(db)
	productRepository := product.NewProductRepository(db)
	diseaseRepository := disease.NewDiseaseRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	scanService := scan.NewScanService(scanRepository, s3, predictionClient)
	productService := product.NewProductService(productRepository)
	diseaseService := disease.NewDiseaseService(diseaseRepository)
	advisorService := advisor.NewAdvisorService()

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	scanHandler := handlers.NewScanHandler(scanService, validator)
	productHandler := handlers.NewProductHandler(productService, validator)
	diseaseHandler := handlers.NewDiseaseHandler(diseaseService)
	advisorHandler := handlers.NewAdvisorHandler(advisorService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		UserHandler:    userHandler,
		ScanHandler:    scanHandler,
		ProductHandler: productHandler,
		DiseaseHandler: diseaseHandler,
		AdvisorHandler: advisorHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
