package fs

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"go.trai.ch/scenecache/internal/core/domain"
	"go.trai.ch/scenecache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceResolver = (*Resolver)(nil)

// skipDirectories are never descended into when a directory is given as a source.
var skipDirectories = map[string]bool{
	".git":         true,
	".jj":          true,
	"Library":      true,
	"Temp":         true,
	"node_modules": true,
}

// Resolver implements ports.SourceResolver using afero globbing and walking.
type Resolver struct {
	fs afero.Fs
}

// NewResolver creates a new Resolver.
func NewResolver(fsys afero.Fs) *Resolver {
	return &Resolver{fs: fsys}
}

// Resolve expands the given arguments into a sorted list of scene file paths.
// Plain files are taken as is, whatever their extension; directories contribute
// the scene files found below them.
func (r *Resolver) Resolve(args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, domain.ErrNoSourcesSpecified
	}

	uniquePaths := make(map[string]bool)
	for _, arg := range args {
		paths, err := r.expand(arg)
		if err != nil {
			return nil, err
		}
		for _, p := range paths {
			uniquePaths[p] = true
		}
	}

	result := make([]string, 0, len(uniquePaths))
	for path := range uniquePaths {
		result = append(result, path)
	}
	slices.Sort(result)

	return result, nil
}

func (r *Resolver) expand(arg string) ([]string, error) {
	// Existing paths are taken literally, even when they contain glob metacharacters.
	info, err := r.fs.Stat(arg)
	switch {
	case err == nil && info.IsDir():
		return r.walkScenes(arg)
	case err == nil:
		return []string{filepath.Clean(arg)}, nil
	case !errors.Is(err, os.ErrNotExist):
		return nil, errors.Join(domain.ErrSourceOpenFailed, zerr.With(zerr.Wrap(err, "failed to stat source"), "path", arg))
	}

	matches, err := afero.Glob(r.fs, arg)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "path", arg)
	}
	if len(matches) == 0 {
		return nil, errors.Join(domain.ErrSourceNotFound, zerr.With(zerr.New("no file matches"), "path", arg))
	}

	var paths []string
	for _, match := range matches {
		info, err := r.fs.Stat(match)
		if err != nil {
			return nil, errors.Join(domain.ErrSourceOpenFailed, zerr.With(zerr.Wrap(err, "failed to stat source"), "path", match))
		}
		if !info.IsDir() {
			paths = append(paths, filepath.Clean(match))
			continue
		}

		found, err := r.walkScenes(match)
		if err != nil {
			return nil, err
		}
		paths = append(paths, found...)
	}
	return paths, nil
}

// walkScenes returns the scene files below root, skipping tool and VCS directories.
func (r *Resolver) walkScenes(root string) ([]string, error) {
	var paths []string
	err := afero.Walk(r.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != root && skipDirectories[info.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if isScene(info.Name()) {
			paths = append(paths, filepath.Clean(path))
		}
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to walk directory"), "path", root)
	}
	return paths, nil
}

func isScene(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return slices.Contains(domain.SceneExtensions, ext)
}
