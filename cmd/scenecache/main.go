// Package main is the entry point for the scenecache tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/scenecache/cmd/scenecache/commands"
	"go.trai.ch/scenecache/internal/app"
	"go.trai.ch/scenecache/internal/core/domain"
	_ "go.trai.ch/scenecache/internal/wiring"
)

const (
	exitFailure     = 1
	exitUnsupported = 2
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return exitFailure
	}
	defer cleanup()

	if w, ok := components.Logger.(interface{ SetOutput(io.Writer) }); ok {
		w.SetOutput(stderr)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App, components.ConfigLoader, components.Logger)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrNotImplemented) {
			_, _ = fmt.Fprintln(stderr, "Error: this query is not yet supported")
			return exitUnsupported
		}
		components.Logger.Error(err)
		return exitFailure
	}
	return 0
}
