package ports

import "go.trai.ch/scenecache/internal/core/domain"

// ConfigLoader defines the interface for loading the project settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers the config file starting at cwd and returns the merged settings.
	// A missing config file is not an error; defaults are returned.
	Load(cwd string) (domain.Settings, error)

	// LoadFile reads the settings from an explicit config file path.
	LoadFile(path string) (domain.Settings, error)
}
