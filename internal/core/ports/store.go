package ports

import "go.trai.ch/scenecache/internal/core/domain"

// ArtifactStore persists caches next to their source and keeps the in-memory handles.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ArtifactStore interface {
	// Persist writes cache to the artifact of path and replaces the handle for path.
	// A nil cache is ignored. On error the handle is left untouched.
	Persist(path string, cache *domain.Cache) error

	// Load reads the artifact of path and installs it as the handle for path.
	Load(path string) (domain.CacheHandle, error)

	// Handle returns the in-memory handle for path, if any.
	Handle(path string) (domain.CacheHandle, bool)

	// Remove deletes the artifact of path and forgets its handle.
	// A missing artifact is not an error.
	Remove(path string) error
}
