// Package artifact persists scene caches as binary sidecar files next to their source.
package artifact

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/afero"
	"go.trai.ch/scenecache/internal/core/domain"
	"go.trai.ch/scenecache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactStore = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used to stamp persisted caches.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Store implements ports.ArtifactStore on an afero filesystem.
// It keeps one handle per source path; callers serialize calls for the same path.
type Store struct {
	fs      afero.Fs
	now     func() time.Time
	mu      sync.RWMutex
	handles map[string]domain.CacheHandle
}

// NewStore creates a new Store writing artifacts through fsys.
func NewStore(fsys afero.Fs, opts ...Option) *Store {
	s := &Store{
		fs:      fsys,
		now:     time.Now,
		handles: make(map[string]domain.CacheHandle),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Persist writes cache to the artifact of path and replaces the handle for path.
// A nil cache is ignored.
func (s *Store) Persist(path string, cache *domain.Cache) error {
	if cache == nil {
		return nil
	}

	persistedAt := s.now()
	target := domain.ArtifactPath(filepath.Clean(path))

	if err := s.atomicWriteFile(target, Encode(cache, persistedAt)); err != nil {
		return errors.Join(domain.ErrArtifactWriteFailed, zerr.With(err, "artifact", target))
	}

	s.mu.Lock()
	s.handles[filepath.Clean(path)] = domain.CacheHandle{Cache: cache, DeserializedAt: persistedAt}
	s.mu.Unlock()

	return nil
}

// Load reads the artifact of path and installs it as the handle for path.
// The handle carries the time the artifact was persisted.
func (s *Store) Load(path string) (domain.CacheHandle, error) {
	target := domain.ArtifactPath(filepath.Clean(path))

	data, err := afero.ReadFile(s.fs, target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.CacheHandle{}, errors.Join(domain.ErrArtifactNotFound, zerr.With(zerr.Wrap(err, "stat artifact"), "artifact", target))
		}
		return domain.CacheHandle{}, errors.Join(domain.ErrArtifactReadFailed, zerr.With(zerr.Wrap(err, "read artifact"), "artifact", target))
	}

	cache, persistedAt, err := Decode(data)
	if err != nil {
		return domain.CacheHandle{}, errors.Join(domain.ErrArtifactCorrupt, zerr.With(err, "artifact", target))
	}

	handle := domain.CacheHandle{Cache: cache, DeserializedAt: persistedAt}

	s.mu.Lock()
	s.handles[filepath.Clean(path)] = handle
	s.mu.Unlock()

	return handle, nil
}

// Handle returns the in-memory handle for path, if any.
func (s *Store) Handle(path string) (domain.CacheHandle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.handles[filepath.Clean(path)]
	return h, ok
}

// Remove deletes the artifact of path and forgets its handle.
func (s *Store) Remove(path string) error {
	target := domain.ArtifactPath(filepath.Clean(path))

	if err := s.fs.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Join(domain.ErrArtifactRemoveFailed, zerr.With(zerr.Wrap(err, "remove artifact"), "artifact", target))
	}

	s.mu.Lock()
	delete(s.handles, filepath.Clean(path))
	s.mu.Unlock()

	return nil
}

// atomicWriteFile writes data to a temp file in the target directory and renames it over path.
func (s *Store) atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := s.fs.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "create artifact directory")
	}

	tmpFile, err := afero.TempFile(s.fs, dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return zerr.Wrap(err, "create temp file")
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := s.fs.Stat(tmpName); statErr == nil {
			_ = s.fs.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return zerr.Wrap(err, "write temp file")
	}

	if err := tmpFile.Close(); err != nil {
		return zerr.Wrap(err, "close temp file")
	}

	if err := s.fs.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "chmod temp file")
	}

	if err := s.fs.Rename(tmpName, path); err != nil {
		return zerr.Wrap(err, "rename temp file")
	}
	return nil
}
