// Package builder turns scene sources into node-description caches.
package builder

import (
	"context"
	"errors"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
	"go.trai.ch/scenecache/internal/core/domain"
	"go.trai.ch/scenecache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheBuilder = (*Builder)(nil)

// Builder implements ports.CacheBuilder.
// A Builder holds no per-build state and may run builds for different sources concurrently.
type Builder struct {
	fs      afero.Fs
	decoder ports.SceneDecoder
	tracer  ports.Tracer
}

// NewBuilder creates a new Builder reading sources from fsys.
func NewBuilder(fsys afero.Fs, decoder ports.SceneDecoder, tracer ports.Tracer) *Builder {
	return &Builder{
		fs:      fsys,
		decoder: decoder,
		tracer:  tracer,
	}
}

// Build parses the source at path into a cache.
//
// opts.Interrupt is called each time opts.CheckFrequency documents have been
// read since the previous call. When it signals cancellation, Build stops and
// returns the nodes of the documents read so far with domain.StatusCancelled.
func (b *Builder) Build(ctx context.Context, path string, opts domain.BuildOptions) (*domain.Cache, error) {
	frequency := opts.CheckFrequency
	if frequency < 0 {
		return nil, errors.Join(domain.ErrInvalidCheckFrequency, zerr.With(zerr.New("negative check frequency"), "check_frequency", frequency))
	}
	if frequency == 0 {
		frequency = domain.DefaultCheckFrequency
	}
	interrupt := opts.Interrupt
	if interrupt == nil {
		interrupt = domain.NoInterrupt
	}

	_, span := b.tracer.Start(ctx, "build")
	defer span.End()
	span.SetAttribute("path", path)
	span.SetAttribute("check_frequency", frequency)

	cache, err := b.build(path, frequency, interrupt)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttribute("documents", cache.Documents)
	span.SetAttribute("nodes", cache.Len())
	span.SetAttribute("cancelled", cache.Cancelled())
	return cache, nil
}

func (b *Builder) build(path string, frequency int, interrupt domain.InterruptChecker) (*domain.Cache, error) {
	f, err := b.fs.Open(path)
	if err != nil {
		return nil, errors.Join(domain.ErrSourceOpenFailed, zerr.With(zerr.Wrap(err, "open source"), "path", path))
	}
	defer f.Close() //nolint:errcheck // read-only handle

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Join(domain.ErrSourceReadFailed, zerr.With(zerr.Wrap(err, "stat source"), "path", path))
	}
	if info.IsDir() {
		return nil, errors.Join(domain.ErrSourceOpenFailed, zerr.With(zerr.New("source is a directory"), "path", path))
	}

	digest := xxhash.New()
	stream, err := b.decoder.NewStream(io.TeeReader(f, digest))
	if err != nil {
		return nil, withPath(err, path)
	}

	cache := &domain.Cache{
		Source: domain.SourceInfo{
			Path:    path,
			ModTime: info.ModTime(),
			Size:    info.Size(),
		},
	}

	sinceCheck := 0
	for {
		doc, err := stream.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, withPath(err, path)
		}

		nodes, err := b.decoder.Decode(doc)
		if err != nil {
			return nil, withPath(err, path)
		}
		cache.Nodes = append(cache.Nodes, nodes...)
		cache.Documents++

		sinceCheck++
		if sinceCheck < frequency {
			continue
		}
		sinceCheck = 0

		if err := interrupt(); err != nil {
			if domain.IsCancellation(err) {
				cache.Status = domain.StatusCancelled
				return cache, nil
			}
			return nil, err
		}
	}

	cache.Status = domain.StatusCompleted
	cache.Source.Checksum = digest.Sum64()
	return cache, nil
}

// withPath attaches the source path to err while keeping its classification.
func withPath(err error, path string) error {
	return errors.Join(err, zerr.With(zerr.New("source rejected"), "path", path))
}
