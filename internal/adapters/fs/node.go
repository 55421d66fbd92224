package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/scenecache/internal/core/ports"
)

const (
	// FilesystemNodeID is the unique identifier for the shared afero filesystem node.
	FilesystemNodeID graft.ID = "adapter.fs.filesystem"
	// InspectorNodeID is the unique identifier for the source inspector node.
	InspectorNodeID graft.ID = "adapter.fs.inspector"
	// ResolverNodeID is the unique identifier for the source resolver node.
	ResolverNodeID graft.ID = "adapter.fs.resolver"
)

func init() {
	graft.Register(graft.Node[afero.Fs]{
		ID:        FilesystemNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (afero.Fs, error) {
			return afero.NewOsFs(), nil
		},
	})

	graft.Register(graft.Node[ports.SourceInspector]{
		ID:        InspectorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{FilesystemNodeID},
		Run: func(ctx context.Context) (ports.SourceInspector, error) {
			fsys, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			return NewInspector(fsys), nil
		},
	})

	graft.Register(graft.Node[ports.SourceResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{FilesystemNodeID},
		Run: func(ctx context.Context) (ports.SourceResolver, error) {
			fsys, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(fsys), nil
		},
	})
}
