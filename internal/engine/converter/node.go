package converter

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/csscalc/internal/adapters/colorspace" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/csscalc/internal/core/ports"
)

// NodeID is the unique identifier for the converter Graft node.
const NodeID graft.ID = "engine.converter"

func init() {
	graft.Register(graft.Node[*Converter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			colorspace.NodeID,
		},
		Run: func(ctx context.Context) (*Converter, error) {
			space, err := graft.Dep[ports.ColorSpace](ctx)
			if err != nil {
				return nil, err
			}

			return NewConverter(space), nil
		},
	})
}
