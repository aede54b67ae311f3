package main

import (
	"os"

	"github.com/tawan/eduadmin/internal/pkg/logger"
	"github.com/tawan/eduadmin/internal/server"
)

// @title EduAdmin API
// @version 1.0
// @description Student and course administration backend

// @host localhost:4000
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT access token

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

	logger.Info().Msg("Application finished gracefully")
}
