package main

import (
	"log"

	"github.com/kiranchaudhary18/crop-disease-identifier/cmd/config"
	migration "github.com/kiranchaudhary18/crop-disease-identifier/cmd/database/migrate"
	"github.com/kiranchaudhary18/crop-disease-identifier/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to build application: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
