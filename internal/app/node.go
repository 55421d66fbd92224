package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/scenecache/internal/adapters/artifact"  //nolint:depguard // Wired in app layer
	"go.trai.ch/scenecache/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/scenecache/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/scenecache/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/scenecache/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/scenecache/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/scenecache/internal/core/ports"
	"go.trai.ch/scenecache/internal/engine/builder"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			builder.NodeID,
			artifact.NodeID,
			fs.InspectorNodeID,
			fs.ResolverNodeID,
			watcher.WatcherNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	b, err := graft.Dep[ports.CacheBuilder](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ArtifactStore](ctx)
	if err != nil {
		return nil, err
	}

	inspector, err := graft.Dep[ports.SourceInspector](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.SourceResolver](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(b, store, inspector, resolver, w, log, tracer), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, loader), nil
}
