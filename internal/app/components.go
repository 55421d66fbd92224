package app

import "go.trai.ch/scenecache/internal/core/ports"

// Components contains the dependencies the CLI needs to run a command.
type Components struct {
	App          *App
	Logger       ports.Logger
	ConfigLoader ports.ConfigLoader
}

// NewComponents creates a new Components instance.
func NewComponents(app *App, logger ports.Logger, loader ports.ConfigLoader) *Components {
	return &Components{
		App:          app,
		Logger:       logger,
		ConfigLoader: loader,
	}
}
