package main

import (
	"os"

	"github.com/victoriayuechen/tarecruit/internal/pkg/logger"
	"github.com/victoriayuechen/tarecruit/internal/server"
)

// @title TA Recruit API
// @version 1.0
// @description TA recruitment workflow: identity, course directory, application intake, TA ledger and notification delivery

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT bearer token

func main() {
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
