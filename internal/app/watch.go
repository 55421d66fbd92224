package app

import (
	"context"
	"fmt"

	"go.trai.ch/scenecache/internal/adapters/watcher" //nolint:depguard // Wired in app layer
)

// Watch indexes the sources matched by args, then re-indexes them whenever
// they change until ctx is done. Changes are coalesced over the configured
// debounce window and re-indexed one batch at a time.
func (a *App) Watch(ctx context.Context, args []string, opts IndexOptions) error {
	paths, err := a.resolver.Resolve(args)
	if err != nil {
		return err
	}

	if _, err := a.indexPaths(ctx, paths, opts); err != nil {
		a.logger.Error(err)
	}

	if err := a.watcher.Start(ctx, paths); err != nil {
		return err
	}
	defer func() {
		if err := a.watcher.Stop(); err != nil {
			a.logger.Warn(fmt.Sprintf("failed to stop watcher: %v", err))
		}
	}()

	batches := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(a.settings.Debounce, func(changed []string) {
		select {
		case batches <- changed:
		case <-ctx.Done():
		}
	})

	go func() {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
	}()

	a.logger.Info(fmt.Sprintf("watching %d sources", len(paths)))

	// Force applies to the initial run only.
	rebuild := IndexOptions{}
	for {
		select {
		case <-ctx.Done():
			return nil
		case changed := <-batches:
			a.logger.Info(fmt.Sprintf("%d sources changed", len(changed)))
			if _, err := a.indexPaths(ctx, changed, rebuild); err != nil {
				a.logger.Error(err)
			}
		}
	}
}
