package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/csscalc/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/csscalc/internal/adapters/linear"     //nolint:depguard // Wired in app layer
	"go.trai.ch/csscalc/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/csscalc/internal/adapters/structured" //nolint:depguard // Wired in app layer
	"go.trai.ch/csscalc/internal/core/domain"
	"go.trai.ch/csscalc/internal/core/ports"
	"go.trai.ch/csscalc/internal/engine/converter"
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
			config.SettingsNodeID,
			converter.NodeID,
			linear.NodeID,
			structured.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			conv, err := graft.Dep[*converter.Converter](ctx)
			if err != nil {
				return nil, err
			}

			text, err := graft.Dep[*linear.Renderer](ctx)
			if err != nil {
				return nil, err
			}

			data, err := graft.Dep[*structured.Renderer](ctx)
			if err != nil {
				return nil, err
			}

			return New(conv, selectRenderer(cfg.Output, text, data)), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    app,
				Logger: log,
			}, nil
		},
	})
}

func selectRenderer(format domain.OutputFormat, text *linear.Renderer, data *structured.Renderer) ports.Renderer {
	if format == domain.OutputText {
		return text
	}
	return data
}
