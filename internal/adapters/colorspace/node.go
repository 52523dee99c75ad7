package colorspace

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/csscalc/internal/core/ports"
)

// NodeID is the unique identifier for the color space Graft node.
const NodeID graft.ID = "adapter.colorspace"

func init() {
	graft.Register(graft.Node[ports.ColorSpace]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ColorSpace, error) {
			return New(), nil
		},
	})
}
