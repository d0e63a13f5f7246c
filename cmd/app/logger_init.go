package main

import (
	"github.com/mirefen/GloamBot_Go/internal/config"
	"github.com/mirefen/GloamBot_Go/internal/handler"
	"github.com/mirefen/GloamBot_Go/internal/logger"
)

const serviceName = "gloambot-api"

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source locations only in dev; they bloat production log lines
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		serviceName,
		handler.Version,
		cfg.Environment,
		addSource,
	)

	logger.InitLogger(loggerConfig)
}
