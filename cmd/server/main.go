package main

import (
	"log"

	"github.com/areum/activity-backend-go/internal/api"
	"github.com/areum/activity-backend-go/internal/config"
	"github.com/areum/activity-backend-go/internal/database"
	"github.com/areum/activity-backend-go/internal/repository"
)

func main() {
	cfg := config.Load()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	if err := database.Migrate(database.GetDB()); err != nil {
		log.Fatal("Failed to apply migrations:", err)
	}

	history := repository.NewRecognitionRepository(database.GetDB())
	router := api.SetupRouter(cfg, history)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
