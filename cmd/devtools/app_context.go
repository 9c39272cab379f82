package main

import (
	"github.com/alexisbeaulieu97/devtools/internal/config"
	"github.com/alexisbeaulieu97/devtools/internal/logger"
)

// AppContext bundles the configuration and logger created before any subcommand runs.
type AppContext struct {
	Config *config.Config
	Logger *logger.Logger
}
