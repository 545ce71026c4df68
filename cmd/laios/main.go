package main

import (
	"os"

	"laios/app"
	"laios/config"
	"laios/internal/logging"
)

func main() {
	constants, err := config.Load()
	if err != nil {
		logging.Stderr("info").Error("failed to load constants", "error", err)
		os.Exit(1)
	}
	logger := logging.Stderr(constants.LogLevel)

	if err := run(constants, logger); err != nil {
		logger.Error("laios failed to start", "error", err)
		os.Exit(1)
	}
}

func run(constants config.Constants, logger logging.Logger) error {
	application, err := app.New(constants, app.WithLogger(logger))
	if err != nil {
		return err
	}
	defer application.Destroy()

	return application.Run()
}
