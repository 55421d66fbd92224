package ports

import (
	"context"

	"go.trai.ch/scenecache/internal/core/domain"
)

// CacheBuilder builds a cache from a source file.
//
//go:generate mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type CacheBuilder interface {
	// Build parses the source at path. A cancellation signalled through
	// opts.Interrupt is not an error: the partial cache is returned with
	// domain.StatusCancelled.
	Build(ctx context.Context, path string, opts domain.BuildOptions) (*domain.Cache, error)
}
