// Package fs provides file system adapters for resolving and inspecting scene sources.
package fs

import (
	"errors"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
	"go.trai.ch/scenecache/internal/core/domain"
	"go.trai.ch/scenecache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceInspector = (*Inspector)(nil)

// Inspector reads source metadata through an afero filesystem.
type Inspector struct {
	fs afero.Fs
}

// NewInspector creates a new Inspector.
func NewInspector(fsys afero.Fs) *Inspector {
	return &Inspector{fs: fsys}
}

// Inspect stats path and, when withChecksum is set, hashes its content.
func (i *Inspector) Inspect(path string, withChecksum bool) (domain.SourceInfo, error) {
	info, err := i.fs.Stat(path)
	if err != nil {
		return domain.SourceInfo{}, errors.Join(domain.ErrSourceOpenFailed, zerr.With(zerr.Wrap(err, "failed to stat source"), "path", path))
	}
	if info.IsDir() {
		return domain.SourceInfo{}, errors.Join(domain.ErrSourceOpenFailed, zerr.With(zerr.New("source is a directory"), "path", path))
	}

	src := domain.SourceInfo{
		Path:    path,
		ModTime: info.ModTime(),
		Size:    info.Size(),
	}
	if !withChecksum {
		return src, nil
	}

	src.Checksum, err = i.ComputeFileHash(path)
	if err != nil {
		return domain.SourceInfo{}, err
	}
	return src, nil
}

// ComputeFileHash computes the XXHash of a file's content.
func (i *Inspector) ComputeFileHash(path string) (uint64, error) {
	f, err := i.fs.Open(path)
	if err != nil {
		return 0, errors.Join(domain.ErrSourceOpenFailed, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path))
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, errors.Join(domain.ErrSourceReadFailed, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path))
	}

	return hasher.Sum64(), nil
}
