package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/csscalc/internal/adapters/config"
	"go.trai.ch/csscalc/internal/core/domain"
	"go.trai.ch/csscalc/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			l := &Logger{}
			l.SetOutput(nil)
			l.SetJSON(cfg.LogFormat == domain.LogJSON)
			return l, nil
		},
	})
}
