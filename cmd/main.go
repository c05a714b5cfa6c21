package main

import (
	"os"

	"github.com/qtcyy/practice-system/internal/cli"
	"github.com/qtcyy/practice-system/internal/logger"
	"github.com/rs/zerolog/log"
)

// @title Practice Problem API
// @version 1.0
// @description Problem set authoring and practice with server-side grading.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	if err := cli.Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
