package main

import (
	"log"

	"github.com/jagdish-cm/cricketora-sub000/config"
	_ "github.com/jagdish-cm/cricketora-sub000/docs"
	"github.com/jagdish-cm/cricketora-sub000/internal/match"
	"github.com/jagdish-cm/cricketora-sub000/routes"
)

// @title Cricketora REST API
// @version 1.0
// @description Live cricket scoring backend: ball-by-ball scoring with real-time viewer updates.
// @host localhost:8088
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	if err := config.DB.AutoMigrate(&match.Match{}); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes(config.DB, cfg)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
