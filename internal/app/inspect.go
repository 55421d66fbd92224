package app

import (
	"errors"
	"fmt"

	"go.trai.ch/scenecache/internal/core/domain"
)

// ArtifactStatus describes the persisted artifact of one source.
type ArtifactStatus struct {
	Path   string
	Handle domain.CacheHandle
	Source domain.SourceInfo
	Stale  bool
	// Err is set when the source or its artifact could not be read.
	Err error
}

// Inspect reports the artifact state of every source matched by args.
// Artifacts are always read from disk.
func (a *App) Inspect(args []string) ([]ArtifactStatus, error) {
	paths, err := a.resolver.Resolve(args)
	if err != nil {
		return nil, err
	}

	policy, err := a.policyFor()
	if err != nil {
		return nil, err
	}

	statuses := make([]ArtifactStatus, 0, len(paths))
	for _, path := range paths {
		status := ArtifactStatus{Path: path}

		status.Source, status.Err = a.inspector.Inspect(path, policy.RequiresChecksum())
		if status.Err == nil {
			status.Handle, status.Err = a.store.Load(path)
		}
		status.Stale = status.Err != nil || policy.IsStale(status.Handle, status.Source)
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// Clean removes the artifacts of every source matched by args.
func (a *App) Clean(args []string) error {
	paths, err := a.resolver.Resolve(args)
	if err != nil {
		return err
	}

	var errs error
	for _, path := range paths {
		if err := a.store.Remove(path); err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		a.logger.Info(fmt.Sprintf("removed %s", domain.ArtifactPath(path)))
	}
	return errs
}
