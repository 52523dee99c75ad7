package linear

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/csscalc/internal/adapters/config"
	"go.trai.ch/csscalc/internal/core/domain"
)

// NodeID is the unique identifier for the text renderer Graft node.
const NodeID graft.ID = "adapter.linear"

func init() {
	graft.Register(graft.Node[*Renderer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (*Renderer, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewRenderer(nil, cfg.Precision), nil
		},
	})
}
