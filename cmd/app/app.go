package app

import (
	"log"

	"goblog/internal/config"
	"goblog/internal/database"
	"goblog/internal/repository"
	"goblog/internal/service"
)

// App connects the database, applies migrations, and wires repositories
// and services together.
func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}

	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg)

	return db, repo, services
}
