// Package app implements the application layer for scenecache.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/dustin/go-humanize"
	"go.trai.ch/scenecache/internal/core/domain"
	"go.trai.ch/scenecache/internal/core/ports"
	"go.trai.ch/scenecache/internal/engine/staleness"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.AssetCache = (*App)(nil)

// App represents the main application logic.
type App struct {
	builder   ports.CacheBuilder
	store     ports.ArtifactStore
	inspector ports.SourceInspector
	resolver  ports.SourceResolver
	watcher   ports.Watcher
	logger    ports.Logger
	tracer    ports.Tracer
	settings  domain.Settings
	policy    ports.StalenessPolicy

	locks sync.Map // cleaned source path -> *sync.Mutex
}

// New creates a new App instance with the default settings.
func New(
	builder ports.CacheBuilder,
	store ports.ArtifactStore,
	inspector ports.SourceInspector,
	resolver ports.SourceResolver,
	watcher ports.Watcher,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		builder:   builder,
		store:     store,
		inspector: inspector,
		resolver:  resolver,
		watcher:   watcher,
		logger:    log,
		tracer:    tracer,
		settings:  domain.DefaultSettings(),
	}
}

// Configure replaces the effective settings of the App.
// It must be called before any other method.
func (a *App) Configure(s domain.Settings) {
	a.settings = s
}

// UsePolicy makes Index judge staleness with p instead of the configured mode.
// Like Configure, it must be called before any other method.
func (a *App) UsePolicy(p ports.StalenessPolicy) {
	a.policy = p
}

// Settings returns the effective settings.
func (a *App) Settings() domain.Settings {
	return a.settings
}

// Build parses the scene at path using the configured check frequency.
func (a *App) Build(ctx context.Context, path string, interrupt domain.InterruptChecker) (*domain.Cache, error) {
	return a.builder.Build(ctx, path, domain.BuildOptions{
		Interrupt:      interrupt,
		CheckFrequency: a.settings.CheckFrequency,
	})
}

// Persist stores cache as the artifact of path.
func (a *App) Persist(path string, cache *domain.Cache) error {
	return a.store.Persist(path, cache)
}

// GetLocalAnchorUsages is not supported yet.
func (a *App) GetLocalAnchorUsages(anchor uint64) (int, error) {
	return 0, notImplemented("GetLocalAnchorUsages", "anchor", anchor)
}

// GetGuidUsages is not supported yet.
func (a *App) GetGuidUsages(guid string) (int, error) {
	return 0, notImplemented("GetGuidUsages", "guid", guid)
}

// GetComponentsFor is not supported yet.
func (a *App) GetComponentsFor(gameObjectAnchor uint64) ([]uint64, error) {
	return nil, notImplemented("GetComponentsFor", "anchor", gameObjectAnchor)
}

func notImplemented(operation, key string, value any) error {
	return errors.Join(
		domain.ErrNotImplemented,
		zerr.With(zerr.With(zerr.New("query is not supported yet"), "operation", operation), key, value),
	)
}

// Outcome is the result of indexing one source.
type Outcome uint8

const (
	// OutcomeBuilt means the source was parsed and its artifact written.
	OutcomeBuilt Outcome = iota
	// OutcomeReused means the existing artifact was still fresh.
	OutcomeReused
	// OutcomeCancelled means the build was interrupted and a partial artifact written.
	OutcomeCancelled
	// OutcomeSkipped means the source was not visited because the run was interrupted.
	OutcomeSkipped
	// OutcomeFailed means the source could not be indexed.
	OutcomeFailed
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeBuilt:
		return "built"
	case OutcomeReused:
		return "reused"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "failed"
	}
}

// IndexOptions configures an Index run.
type IndexOptions struct {
	// Force rebuilds every source regardless of its artifact.
	Force bool
}

// IndexResult describes how one source was indexed.
type IndexResult struct {
	Path    string
	Outcome Outcome
	Nodes   int
	Size    int64
	Err     error
}

// Index resolves args and brings the artifact of every source up to date.
// Distinct sources are indexed concurrently, bounded by the configured jobs.
// Results are returned in source order; the error joins every per-source failure.
func (a *App) Index(ctx context.Context, args []string, opts IndexOptions) ([]IndexResult, error) {
	paths, err := a.resolver.Resolve(args)
	if err != nil {
		return nil, err
	}
	return a.indexPaths(ctx, paths, opts)
}

func (a *App) indexPaths(ctx context.Context, paths []string, opts IndexOptions) ([]IndexResult, error) {
	policy, err := a.policyFor()
	if err != nil {
		return nil, err
	}

	jobs := a.settings.Jobs
	if jobs < 1 {
		jobs = 1
	}

	results := make([]IndexResult, len(paths))
	var g errgroup.Group
	g.SetLimit(jobs)

	for i, path := range paths {
		g.Go(func() error {
			results[i] = a.indexOne(ctx, path, policy, opts.Force)
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	if len(errs) > 0 {
		return results, errors.Join(append([]error{domain.ErrIndexFailed}, errs...)...)
	}
	return results, nil
}

func (a *App) indexOne(ctx context.Context, path string, policy ports.StalenessPolicy, force bool) IndexResult {
	result := IndexResult{Path: path}
	if ctx.Err() != nil {
		result.Outcome = OutcomeSkipped
		return result
	}

	mu := a.lockFor(path)
	mu.Lock()
	defer mu.Unlock()

	ctx, span := a.tracer.Start(ctx, "index")
	defer span.End()
	span.SetAttribute("path", path)
	span.SetAttribute("force", force)

	fail := func(err error) IndexResult {
		span.RecordError(err)
		result.Outcome = OutcomeFailed
		result.Err = err
		return result
	}

	source, err := a.inspector.Inspect(path, policy.RequiresChecksum() && !force)
	if err != nil {
		return fail(err)
	}
	result.Size = source.Size

	if !force {
		if handle, ok := a.currentHandle(path); ok && !policy.IsStale(handle, source) {
			result.Outcome = OutcomeReused
			result.Nodes = handle.Cache.Len()
			span.SetAttribute("outcome", result.Outcome.String())
			a.logger.Debug(fmt.Sprintf("%s is up to date (%d nodes)", path, result.Nodes))
			return result
		}
	}

	cache, err := a.Build(ctx, path, domain.ContextInterrupt(ctx))
	if err != nil {
		return fail(err)
	}
	if err := a.Persist(path, cache); err != nil {
		return fail(err)
	}

	result.Nodes = cache.Len()
	result.Size = cache.Source.Size
	result.Outcome = OutcomeBuilt
	if cache.Cancelled() {
		result.Outcome = OutcomeCancelled
		a.logger.Warn(fmt.Sprintf("%s: interrupted after %d documents, partial artifact written", path, cache.Documents))
	} else {
		a.logger.Info(fmt.Sprintf("indexed %s: %d nodes from %s", path, result.Nodes, humanize.IBytes(uint64(max(result.Size, 0)))))
	}
	span.SetAttribute("outcome", result.Outcome.String())
	return result
}

// currentHandle returns the in-memory handle of path, loading the artifact from
// disk when none is held. A missing or unreadable artifact yields no handle.
func (a *App) currentHandle(path string) (domain.CacheHandle, bool) {
	if handle, ok := a.store.Handle(path); ok {
		return handle, true
	}

	handle, err := a.store.Load(path)
	switch {
	case err == nil:
		return handle, true
	case errors.Is(err, domain.ErrArtifactNotFound):
	case errors.Is(err, domain.ErrArtifactCorrupt):
		a.logger.Warn(fmt.Sprintf("%s: discarding corrupt artifact", path))
	default:
		a.logger.Warn(fmt.Sprintf("%s: artifact unreadable, rebuilding: %v", path, err))
	}
	return domain.CacheHandle{}, false
}

func (a *App) policyFor() (ports.StalenessPolicy, error) {
	if a.policy != nil {
		return a.policy, nil
	}
	return staleness.ForMode(a.settings.Staleness)
}

func (a *App) lockFor(path string) *sync.Mutex {
	mu, _ := a.locks.LoadOrStore(filepath.Clean(path), &sync.Mutex{})
	return mu.(*sync.Mutex)
}
