package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/cabanes/backstage/internal/pkg/logger"
	"github.com/cabanes/backstage/internal/server"
)

// @title Backstage API
// @version 1.0
// @description Admin backend for a university theater department: students, actors, crew, shows, characters and scenes.

// @contact.name Backstage

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for staff authorization

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		logger.Debug().Msg("Loaded environment from .env")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
