// Package staleness decides whether a persisted cache still describes its source.
package staleness

import (
	"go.trai.ch/scenecache/internal/core/domain"
	"go.trai.ch/scenecache/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.StalenessPolicy = ModTime{}
	_ ports.StalenessPolicy = Checksum{}
	_ ports.StalenessPolicy = Always{}
)

// ForMode returns the policy for mode.
func ForMode(mode domain.StalenessMode) (ports.StalenessPolicy, error) {
	switch mode {
	case domain.StalenessModTime, "":
		return ModTime{}, nil
	case domain.StalenessChecksum:
		return Checksum{}, nil
	case domain.StalenessAlways:
		return Always{}, nil
	default:
		return nil, zerr.With(domain.ErrInvalidStalenessMode, "staleness", string(mode))
	}
}

// usable reports whether handle carries a complete cache at all.
// Cancelled caches never satisfy a policy.
func usable(handle domain.CacheHandle) bool {
	return handle.Cache != nil && !handle.Cache.Cancelled()
}

// ModTime treats a cache as stale when the size or modification time of the
// source differs from the recorded one, or when the source was modified after
// the artifact was deserialized.
type ModTime struct{}

// IsStale implements ports.StalenessPolicy.
func (ModTime) IsStale(handle domain.CacheHandle, source domain.SourceInfo) bool {
	if !usable(handle) {
		return true
	}
	recorded := handle.Cache.Source
	if recorded.Size != source.Size || !recorded.ModTime.Equal(source.ModTime) {
		return true
	}
	return source.ModTime.After(handle.DeserializedAt)
}

// RequiresChecksum implements ports.StalenessPolicy.
func (ModTime) RequiresChecksum() bool { return false }

// Checksum compares the content hash of the source with the recorded one.
type Checksum struct{}

// IsStale implements ports.StalenessPolicy.
func (Checksum) IsStale(handle domain.CacheHandle, source domain.SourceInfo) bool {
	if !usable(handle) {
		return true
	}
	recorded := handle.Cache.Source.Checksum
	return recorded == 0 || recorded != source.Checksum
}

// RequiresChecksum implements ports.StalenessPolicy.
func (Checksum) RequiresChecksum() bool { return true }

// Always never reuses an artifact.
type Always struct{}

// IsStale implements ports.StalenessPolicy.
func (Always) IsStale(domain.CacheHandle, domain.SourceInfo) bool { return true }

// RequiresChecksum implements ports.StalenessPolicy.
func (Always) RequiresChecksum() bool { return false }
