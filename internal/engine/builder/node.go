package builder

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/scenecache/internal/adapters/fs"
	"go.trai.ch/scenecache/internal/adapters/telemetry"
	"go.trai.ch/scenecache/internal/adapters/unityyaml"
	"go.trai.ch/scenecache/internal/core/ports"
)

// NodeID is the unique identifier for the cache builder Graft node.
const NodeID graft.ID = "engine.builder"

func init() {
	graft.Register(graft.Node[ports.CacheBuilder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.FilesystemNodeID, unityyaml.NodeID, telemetry.TracerNodeID},
		Run: func(ctx context.Context) (ports.CacheBuilder, error) {
			fsys, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			decoder, err := graft.Dep[ports.SceneDecoder](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(fsys, decoder, tracer), nil
		},
	})
}
