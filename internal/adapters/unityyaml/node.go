package unityyaml

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/scenecache/internal/core/ports"
)

// NodeID is the unique identifier for the scene decoder Graft node.
const NodeID graft.ID = "adapter.scene_decoder"

func init() {
	graft.Register(graft.Node[ports.SceneDecoder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SceneDecoder, error) {
			return NewDecoder(), nil
		},
	})
}
