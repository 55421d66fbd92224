// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/scenecache/internal/adapters/artifact"
	_ "go.trai.ch/scenecache/internal/adapters/config"
	_ "go.trai.ch/scenecache/internal/adapters/fs"
	_ "go.trai.ch/scenecache/internal/adapters/logger"
	_ "go.trai.ch/scenecache/internal/adapters/telemetry"
	_ "go.trai.ch/scenecache/internal/adapters/unityyaml"
	_ "go.trai.ch/scenecache/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/scenecache/internal/app"
	_ "go.trai.ch/scenecache/internal/engine/builder"
)
