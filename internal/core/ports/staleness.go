package ports

import "go.trai.ch/scenecache/internal/core/domain"

// StalenessPolicy decides whether a cache handle can be reused for the current source.
type StalenessPolicy interface {
	// IsStale reports whether handle no longer describes source.
	IsStale(handle domain.CacheHandle, source domain.SourceInfo) bool
	// RequiresChecksum reports whether source must carry a content checksum.
	RequiresChecksum() bool
}

// SourceInspector reads the metadata of source files.
//
//go:generate mockgen -source=staleness.go -destination=mocks/mock_staleness.go -package=mocks
type SourceInspector interface {
	// Inspect stats path and, when withChecksum is set, hashes its content.
	Inspect(path string, withChecksum bool) (domain.SourceInfo, error)
}
