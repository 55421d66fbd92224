// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/scenecache/internal/core/domain"
)

// AssetCache is the capability exposed to drivers.
//
// The query methods are declared but not supported yet: they always return an
// error matching domain.ErrNotImplemented so that drivers can branch on it.
type AssetCache interface {
	// Build parses the scene at path into a cache. interrupt is polled every
	// few documents; a cancellation yields a partial cache and no error.
	Build(ctx context.Context, path string, interrupt domain.InterruptChecker) (*domain.Cache, error)

	// Persist stores cache as the artifact of path. A nil cache is ignored.
	Persist(path string, cache *domain.Cache) error

	// GetLocalAnchorUsages counts references to a local file anchor.
	GetLocalAnchorUsages(anchor uint64) (int, error)

	// GetGuidUsages counts references to an asset GUID.
	GetGuidUsages(guid string) (int, error)

	// GetComponentsFor lists the component anchors of a game object.
	GetComponentsFor(gameObjectAnchor uint64) ([]uint64, error)
}
